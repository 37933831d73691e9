package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/handler"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/middleware"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/storage"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/config"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/worker"
)

func main() {
	// 1. Load Config
	cfg := config.LoadConfig()

	// 2. Setup Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 3. Build the in-memory ledger. All state lives and dies with the
	// process.
	ledger := storage.NewLedger(cfg.BranchCode, cfg.OverdraftLimit, cfg.DailyWithdrawalLimit)

	// 4. Start the webhook worker (nil when WEBHOOK_URL is unset)
	events := worker.StartWebhookWorker(cfg.WebhookURL)

	// 5. Setup Handlers
	customerHandler := &handler.CustomerHandler{Ledger: ledger}
	accountHandler := &handler.AccountHandler{Ledger: ledger}
	transactionHandler := &handler.TransactionHandler{Ledger: ledger, Events: events}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New())

	// 7. Routes
	api := app.Group("/v1")

	api.Post("/customers", customerHandler.CreateCustomer)
	api.Get("/customers/:cpf", customerHandler.GetCustomer)

	api.Post("/accounts", accountHandler.OpenAccount)
	api.Get("/accounts", accountHandler.ListAccounts)
	api.Get("/accounts/:number/statement", transactionHandler.GetStatement)

	api.Post("/deposit", middleware.Idempotency(), transactionHandler.Deposit)
	api.Post("/withdraw", middleware.Idempotency(), transactionHandler.Withdraw)

	// Listen for OS signals (Ctrl+C, docker stop)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run the server in a separate goroutine so it doesn't block
	go func() {
		slog.Info("🚀 Server starting", "env", cfg.Env, "port", cfg.Port, "branch", cfg.BranchCode)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}()

	// Block here until we receive a stop signal
	<-stop
	slog.Info("🛑 Shutting down server...")

	// Stop the webhook worker before the server goes away
	events.Close()

	// Tell Fiber to stop accepting new requests and finish active ones
	if err := app.Shutdown(); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	slog.Info("👋 Server exited successfully")
}
