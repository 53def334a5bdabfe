package intake

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrWeightsNotHundred means the scoring scheme's area weights do not
	// total 100.
	ErrWeightsNotHundred = errors.New("scoring scheme weights must total 100")
	// ErrNoWebhook means no workflow webhook URL is configured.
	ErrNoWebhook = errors.New("workflow webhook URL not configured")
)

var validate = validator.New()

// ValidatePayload checks structural constraints plus the scoring-total rule.
func ValidatePayload(p *Payload) error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	total := 0.0
	for _, row := range p.ScoringScheme {
		total += row.WeightPercent
	}
	if math.Abs(total-100) >= 0.001 {
		return ErrWeightsNotHundred
	}

	return nil
}

// Relay forwards validated intake payloads to the workflow engine. The
// engine is opaque to this service: one POST, JSON body, no retries.
type Relay struct {
	WebhookURL string

	http *http.Client
}

func NewRelay(webhookURL string) *Relay {
	return &Relay{
		WebhookURL: webhookURL,
		http:       &http.Client{Timeout: 60 * time.Second},
	}
}

// Submit validates the payload, stamps it with a submission ID and posts it
// to the webhook. Returns the submission ID on success.
func (r *Relay) Submit(ctx context.Context, p *Payload) (string, error) {
	if err := ValidatePayload(p); err != nil {
		return "", err
	}
	if r.WebhookURL == "" {
		return "", ErrNoWebhook
	}

	id := uuid.New().String()
	body, err := json.Marshal(struct {
		*Payload
		SubmissionID string `json:"submissionId"`
	}{p, id})
	if err != nil {
		return "", fmt.Errorf("encode intake payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("workflow webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("workflow webhook returned status %d", resp.StatusCode)
	}

	return id, nil
}

// IsValidationError reports whether err is a payload problem the caller
// should surface as a bad request rather than a server fault.
func IsValidationError(err error) bool {
	var vErrs validator.ValidationErrors
	return errors.Is(err, ErrWeightsNotHundred) || errors.As(err, &vErrs)
}
