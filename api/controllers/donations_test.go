package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/api/middleware"
	"github.com/mealbridge/mealbridge-backend/internal/inventory"
	"github.com/mealbridge/mealbridge-backend/pkg/pagination"
)

type testInventoryService struct {
	recordDonationFn func(ctx context.Context, input inventory.RecordDonationInput) (*inventory.DonationReceipt, error)
	bookFoodFn       func(ctx context.Context, input inventory.BookFoodInput) (*inventory.BookingReceipt, error)
	takeFoodFn       func(ctx context.Context, input inventory.TakeFoodInput) (*inventory.TakeFoodResult, error)
	donorTotalsFn    func(ctx context.Context, ngoID uuid.UUID) ([]inventory.DonorTotal, error)
	recipientFn      func(ctx context.Context, ngoID uuid.UUID) ([]inventory.RecipientTotal, error)
	listBookingsFn   func(ctx context.Context, filters inventory.BookingFilters, params pagination.Params) (*inventory.BookingList, error)
}

func (s *testInventoryService) RecordDonation(ctx context.Context, input inventory.RecordDonationInput) (*inventory.DonationReceipt, error) {
	if s.recordDonationFn != nil {
		return s.recordDonationFn(ctx, input)
	}
	return &inventory.DonationReceipt{}, nil
}

func (s *testInventoryService) BookFood(ctx context.Context, input inventory.BookFoodInput) (*inventory.BookingReceipt, error) {
	if s.bookFoodFn != nil {
		return s.bookFoodFn(ctx, input)
	}
	return &inventory.BookingReceipt{}, nil
}

func (s *testInventoryService) TakeFood(ctx context.Context, input inventory.TakeFoodInput) (*inventory.TakeFoodResult, error) {
	if s.takeFoodFn != nil {
		return s.takeFoodFn(ctx, input)
	}
	return &inventory.TakeFoodResult{}, nil
}

func (s *testInventoryService) DonorTotals(ctx context.Context, ngoID uuid.UUID) ([]inventory.DonorTotal, error) {
	if s.donorTotalsFn != nil {
		return s.donorTotalsFn(ctx, ngoID)
	}
	return nil, nil
}

func (s *testInventoryService) BookedRecipientTotals(ctx context.Context, ngoID uuid.UUID) ([]inventory.RecipientTotal, error) {
	if s.recipientFn != nil {
		return s.recipientFn(ctx, ngoID)
	}
	return nil, nil
}

func (s *testInventoryService) ListBookings(ctx context.Context, filters inventory.BookingFilters, params pagination.Params) (*inventory.BookingList, error) {
	if s.listBookingsFn != nil {
		return s.listBookingsFn(ctx, filters, params)
	}
	return &inventory.BookingList{}, nil
}

func TestRecordDonationSuccess(t *testing.T) {
	donorID := uuid.New()
	ngoID := uuid.New()
	called := false
	svc := &testInventoryService{
		recordDonationFn: func(ctx context.Context, input inventory.RecordDonationInput) (*inventory.DonationReceipt, error) {
			called = true
			if input.DonorID != donorID {
				t.Fatalf("unexpected donor %s", input.DonorID)
			}
			if input.NGOID != ngoID {
				t.Fatalf("unexpected ngo %s", input.NGOID)
			}
			if input.Quantity != 12 {
				t.Fatalf("unexpected quantity %d", input.Quantity)
			}
			return &inventory.DonationReceipt{PlatesAvailable: 12}, nil
		},
	}

	body := `{"ngo_id":"` + ngoID.String() + `","quantity":12}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", strings.NewReader(body))
	req = req.WithContext(middleware.WithAccountID(req.Context(), donorID.String()))

	resp := httptest.NewRecorder()
	RecordDonation(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if !called {
		t.Fatal("expected service called")
	}
	var envelope struct {
		Data inventory.DonationReceipt `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if envelope.Data.PlatesAvailable != 12 {
		t.Fatalf("unexpected plates_available %d", envelope.Data.PlatesAvailable)
	}
}

func TestRecordDonationMissingAccount(t *testing.T) {
	body := `{"ngo_id":"` + uuid.NewString() + `","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", strings.NewReader(body))
	resp := httptest.NewRecorder()
	RecordDonation(&testInventoryService{}, testLogger())(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestRecordDonationRejectsBadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing ngo", `{"quantity":3}`},
		{"zero quantity", `{"ngo_id":"` + uuid.NewString() + `","quantity":0}`},
		{"unknown field", `{"ngo_id":"` + uuid.NewString() + `","quantity":3,"extra":true}`},
		{"malformed", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/donations", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithAccountID(req.Context(), uuid.NewString()))
			resp := httptest.NewRecorder()
			RecordDonation(&testInventoryService{}, testLogger())(resp, req)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", resp.Code)
			}
		})
	}
}
