package intake

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func validPayload() *Payload {
	return &Payload{
		JobTitle:         "Data Engineer",
		NumberOfProfiles: 5,
		Batch:            1,
		ScoringScheme: []ScoringSchemeRow{
			{Area: "Experience", WeightPercent: 40},
			{Area: "Academic Qualification", WeightPercent: 30},
			{Area: "JD Match", WeightPercent: 30},
		},
	}
}

func TestValidatePayload(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := ValidatePayload(validPayload()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("weights under 100", func(t *testing.T) {
		p := validPayload()
		p.ScoringScheme[0].WeightPercent = 30
		if err := ValidatePayload(p); !errors.Is(err, ErrWeightsNotHundred) {
			t.Errorf("got %v, want ErrWeightsNotHundred", err)
		}
	})

	t.Run("missing job title", func(t *testing.T) {
		p := validPayload()
		p.JobTitle = ""
		err := ValidatePayload(p)
		if err == nil || !IsValidationError(err) {
			t.Errorf("expected a validation error, got %v", err)
		}
	})

	t.Run("bad resume content format", func(t *testing.T) {
		p := validPayload()
		p.ResumeFiles = []ResumeFile{{
			FileName: "cv.txt", MimeType: "text/plain",
			ContentFormat: "plain_text", Content: "x",
		}}
		err := ValidatePayload(p)
		if err == nil || !IsValidationError(err) {
			t.Errorf("expected a validation error, got %v", err)
		}
	})
}

func TestRelaySubmit(t *testing.T) {
	var received map[string]any
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode webhook body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer webhook.Close()

	relay := NewRelay(webhook.URL)
	id, err := relay.Submit(context.Background(), validPayload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a submission ID")
	}
	if received["submissionId"] != id {
		t.Errorf("webhook submissionId = %v, want %q", received["submissionId"], id)
	}
	if received["jobTitle"] != "Data Engineer" {
		t.Errorf("webhook jobTitle = %v", received["jobTitle"])
	}
}

func TestRelaySubmitWebhookFailure(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer webhook.Close()

	relay := NewRelay(webhook.URL)
	if _, err := relay.Submit(context.Background(), validPayload()); err == nil {
		t.Fatal("expected error on non-success webhook status")
	}
}

func TestRelaySubmitNoWebhook(t *testing.T) {
	relay := NewRelay("")
	if _, err := relay.Submit(context.Background(), validPayload()); !errors.Is(err, ErrNoWebhook) {
		t.Fatalf("got %v, want ErrNoWebhook", err)
	}
}
