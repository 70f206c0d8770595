package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// RelayError is a delivery failure reported by the relay itself, carrying
// the provider's error payload so it can be surfaced to the caller.
type RelayError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay error %d (%s): %s", e.StatusCode, e.Name, e.Message)
}

// ResendRelay sends notifications through the Resend REST API.
type ResendRelay struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

var _ Relay = (*ResendRelay)(nil)

func NewResendRelay(apiKey string) *ResendRelay {
	return &ResendRelay{
		apiKey:     apiKey,
		endpoint:   defaultResendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewResendRelayWithEndpoint is used by tests to point at a fake API.
func NewResendRelayWithEndpoint(apiKey, endpoint string) *ResendRelay {
	r := NewResendRelay(apiKey)
	r.endpoint = endpoint
	return r
}

func (r *ResendRelay) Configured() bool {
	return r.apiKey != ""
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (r *ResendRelay) Send(ctx context.Context, n Notification) (string, error) {
	payload, err := json.Marshal(resendRequest{
		From:    n.From,
		To:      []string{n.To},
		ReplyTo: n.ReplyTo,
		Subject: n.Subject,
		HTML:    n.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		relayErr := &RelayError{StatusCode: resp.StatusCode}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err := json.Unmarshal(body, relayErr); err != nil {
			relayErr.Message = string(body)
		}
		if relayErr.StatusCode == 0 {
			relayErr.StatusCode = resp.StatusCode
		}
		return "", relayErr
	}

	var out resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode relay response: %w", err)
	}
	return out.ID, nil
}
