package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ramisesreis/modelando-sistema-bancario/internal/core/domain"
)

// reasonOf maps a domain error to the machine-readable reason code the
// API returns alongside the message.
func reasonOf(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return "INVALID_AMOUNT"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, domain.ErrLimitExceeded):
		return "LIMIT_EXCEEDED"
	case errors.Is(err, domain.ErrDailyLimitExceeded):
		return "DAILY_LIMIT_EXCEEDED"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "CUSTOMER_NOT_FOUND"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "ACCOUNT_NOT_FOUND"
	case errors.Is(err, domain.ErrNoAccounts):
		return "NO_ACCOUNTS"
	case errors.Is(err, domain.ErrCustomerExists):
		return "CUSTOMER_EXISTS"
	}
	return "INTERNAL"
}

// statusOf maps a domain error to an HTTP status: bad input is 400,
// lookup misses are 404, duplicates 409 and business rejections 422.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNoAccounts):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCustomerExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrLimitExceeded),
		errors.Is(err, domain.ErrDailyLimitExceeded):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// fail writes the uniform error body.
func fail(c *fiber.Ctx, err error) error {
	return c.Status(statusOf(err)).JSON(fiber.Map{
		"error":  err.Error(),
		"reason": reasonOf(err),
	})
}
