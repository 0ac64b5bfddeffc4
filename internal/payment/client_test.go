package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"plantstore/internal/domain"
)

func TestCreateIntent(t *testing.T) {
	var gotAmount int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orders" || r.Method != http.MethodPost {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var in intentRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Fatalf("decode: %v", err)
		}
		gotAmount = in.Amount
		json.NewEncoder(w).Encode(intentResponse{ID: "intent_123"})
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "secret", nil)
	id, err := c.CreateIntent(context.Background(), 60000, "INR", "rcpt-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "intent_123" || gotAmount != 60000 {
		t.Fatalf("unexpected intent id=%s amount=%d", id, gotAmount)
	}
}

func TestCreateIntentProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "key", "secret", nil)
	_, err := c.CreateIntent(context.Background(), 100, "INR", "rcpt", nil)
	if !errors.Is(err, domain.ErrPaymentUnavailable) {
		t.Fatalf("expected ErrPaymentUnavailable, got %v", err)
	}
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		payload paymentResponse
		want    error
	}{
		{"captured", http.StatusOK, paymentResponse{ID: "pay_1", Status: "captured"}, nil},
		{"paid", http.StatusOK, paymentResponse{ID: "pay_1", Status: "paid"}, nil},
		{"failed", http.StatusOK, paymentResponse{ID: "pay_1", Status: "failed"}, domain.ErrPaymentFailed},
		{"unknown", http.StatusNotFound, paymentResponse{}, domain.ErrPaymentFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(tc.payload)
			}))
			defer srv.Close()

			c := New(srv.URL, "key", "secret", nil)
			err := c.Verify(context.Background(), "pay_1")
			if tc.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
