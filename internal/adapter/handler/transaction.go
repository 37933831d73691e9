package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/storage"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/domain"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/notifications"
	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/worker"
)

type TransactionHandler struct {
	Ledger *storage.Ledger
	Events *worker.WebhookQueue
}

// OperationRequest covers deposits and withdrawals. AccountNumber is
// optional; zero means the customer's first account. Amount is in
// centavos.
type OperationRequest struct {
	CPF           string `json:"cpf"`
	AccountNumber int    `json:"account_number"`
	Amount        int64  `json:"amount"`
}

type operationResponse struct {
	Status           string    `json:"status"`
	TransactionID    string    `json:"transaction_id"`
	AccountNumber    int       `json:"account_number"`
	Kind             string    `json:"kind"`
	Amount           int64     `json:"amount"`
	Balance          int64     `json:"balance"`
	BalanceFormatted string    `json:"balance_formatted"`
	At               time.Time `json:"at"`
}

func (h *TransactionHandler) Deposit(c *fiber.Ctx) error {
	return h.operate(c, domain.Deposit)
}

func (h *TransactionHandler) Withdraw(c *fiber.Ctx) error {
	return h.operate(c, domain.Withdrawal)
}

func (h *TransactionHandler) operate(c *fiber.Ctx, kind domain.TransactionKind) error {
	var req OperationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.CPF == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "CPF is required"})
	}

	var (
		res storage.OperationResult
		err error
	)
	if kind == domain.Deposit {
		res, err = h.Ledger.Deposit(req.CPF, req.AccountNumber, req.Amount)
	} else {
		res, err = h.Ledger.Withdraw(req.CPF, req.AccountNumber, req.Amount)
	}
	if err != nil {
		slog.Warn("Transaction rejected",
			"kind", kind, "cpf", req.CPF, "amount", req.Amount, "reason", reasonOf(err))
		return fail(c, err)
	}

	slog.Info("Transaction recorded",
		"kind", kind, "cpf", req.CPF, "account", res.AccountNumber, "amount", req.Amount, "balance", res.Balance)

	h.Events.Enqueue(notifications.TransactionEvent{
		Event:         "transaction.recorded",
		TransactionID: res.Entry.ID,
		CPF:           req.CPF,
		AccountNumber: res.AccountNumber,
		Kind:          string(res.Entry.Kind),
		Amount:        res.Entry.Amount,
		Balance:       res.Balance,
		At:            res.Entry.At,
	})

	return c.JSON(operationResponse{
		Status:           "success",
		TransactionID:    res.Entry.ID.String(),
		AccountNumber:    res.AccountNumber,
		Kind:             string(res.Entry.Kind),
		Amount:           res.Entry.Amount,
		Balance:          res.Balance,
		BalanceFormatted: domain.FormatBRL(res.Balance),
		At:               res.Entry.At,
	})
}

type statementEntry struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Amount          int64     `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	At              time.Time `json:"at"`
}

// GetStatement returns the account's full history, oldest first, plus
// the closing balance.
func (h *TransactionHandler) GetStatement(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid account number"})
	}
	cpf := c.Query("cpf")
	if cpf == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "CPF is required"})
	}

	entries, balance, err := h.Ledger.Statement(cpf, number)
	if err != nil {
		return fail(c, err)
	}

	out := make([]statementEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, statementEntry{
			ID:              e.ID.String(),
			Kind:            string(e.Kind),
			Amount:          e.Amount,
			AmountFormatted: domain.FormatBRL(e.Amount),
			At:              e.At,
		})
	}

	return c.JSON(fiber.Map{
		"transactions":      out,
		"balance":           balance,
		"balance_formatted": domain.FormatBRL(balance),
	})
}
