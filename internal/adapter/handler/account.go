package handler

import (
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/storage"
)

type AccountHandler struct {
	Ledger *storage.Ledger
}

// OpenAccountRequest links the new account to a registered customer.
type OpenAccountRequest struct {
	CPF string `json:"cpf"`
}

func (h *AccountHandler) OpenAccount(c *fiber.Ctx) error {
	var req OpenAccountRequest

	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid account body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.CPF == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "CPF is required"})
	}

	account, err := h.Ledger.OpenAccount(req.CPF)
	if err != nil {
		slog.Warn("Failed to open account", "error", err, "cpf", req.CPF)
		return fail(c, err)
	}

	slog.Info("Account opened", "number", account.Number, "branch", account.Branch, "cpf", req.CPF)

	return c.Status(http.StatusCreated).JSON(account)
}

func (h *AccountHandler) ListAccounts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"accounts": h.Ledger.ListAccounts(),
	})
}
