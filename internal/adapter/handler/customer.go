package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/adapter/storage"
)

type CustomerHandler struct {
	Ledger *storage.Ledger
}

// CreateCustomerRequest defines what the caller sends us.
type CreateCustomerRequest struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
	Address   string `json:"address"`
}

type customerResponse struct {
	Name      string `json:"name"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Accounts  []int  `json:"accounts"`
}

func toCustomerResponse(c storage.CustomerSummary) customerResponse {
	return customerResponse{
		Name:      c.Name,
		CPF:       c.CPF,
		BirthDate: c.BirthDate.Format("2006-01-02"),
		Address:   c.Address,
		Accounts:  c.Accounts,
	}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var req CreateCustomerRequest

	if err := c.BodyParser(&req); err != nil {
		slog.Warn("Invalid customer body", "error", err)
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}
	if req.CPF == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "CPF is required"})
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Birth date must be YYYY-MM-DD"})
	}

	customer, err := h.Ledger.RegisterCustomer(req.Name, req.CPF, req.Address, birthDate)
	if err != nil {
		slog.Warn("Failed to register customer", "error", err, "cpf", req.CPF)
		return fail(c, err)
	}

	slog.Info("Customer registered", "cpf", customer.CPF, "name", customer.Name)

	return c.Status(http.StatusCreated).JSON(toCustomerResponse(customer))
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	customer, err := h.Ledger.FindCustomer(c.Params("cpf"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(toCustomerResponse(customer))
}
