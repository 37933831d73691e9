package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TransactionEvent is the payload posted to the webhook listener after
// a transaction is recorded.
type TransactionEvent struct {
	Event         string    `json:"event"`
	TransactionID uuid.UUID `json:"transaction_id"`
	CPF           string    `json:"cpf"`
	AccountNumber int       `json:"account_number"`
	Kind          string    `json:"kind"`
	Amount        int64     `json:"amount"`
	Balance       int64     `json:"balance"`
	At            time.Time `json:"at"`
}

// SendWebhook posts the event to the configured listener URL.
func SendWebhook(url string, event TransactionEvent) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Banco-Webhook/1.0")

	// Send with a timeout so a slow listener can't block the worker.
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	return fmt.Errorf("webhook listener returned error: %d", resp.StatusCode)
}
