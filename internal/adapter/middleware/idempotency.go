package middleware

import (
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

type cachedResponse struct {
	status int
	body   []byte
}

// Idempotency replays the cached response for requests that repeat an
// Idempotency-Key header, so a retried withdrawal is not applied twice.
// The cache is in memory and lives as long as the process, like every
// other piece of ledger state.
func Idempotency() fiber.Handler {
	var (
		mu    sync.Mutex
		cache = make(map[string]cachedResponse)
	)

	return func(c *fiber.Ctx) error {
		// Header values share fiber's reusable request buffer; copy the
		// key so the map entry survives this request.
		key := utils.CopyString(c.Get("Idempotency-Key"))

		// If no key, skip.
		if key == "" {
			return c.Next()
		}

		mu.Lock()
		cached, ok := cache[key]
		mu.Unlock()
		if ok {
			slog.Info("Idempotency hit, returning cached response", "key", key)
			c.Set("X-Idempotency-Hit", "true")
			c.Set("Content-Type", "application/json")
			return c.Status(cached.status).Send(cached.body)
		}

		if err := c.Next(); err != nil {
			return err
		}

		// Copy the response body before caching; fiber reuses the buffer.
		body := make([]byte, len(c.Response().Body()))
		copy(body, c.Response().Body())

		mu.Lock()
		cache[key] = cachedResponse{status: c.Response().StatusCode(), body: body}
		mu.Unlock()
		slog.Info("Idempotency key saved", "key", key)

		return nil
	}
}
