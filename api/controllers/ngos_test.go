package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/mealbridge/mealbridge-backend/internal/inventory"
)

func TestNGODonorTotalsSuccess(t *testing.T) {
	ngoID := uuid.New()
	svc := &testInventoryService{
		donorTotalsFn: func(ctx context.Context, id uuid.UUID) ([]inventory.DonorTotal, error) {
			if id != ngoID {
				t.Fatalf("unexpected ngo %s", id)
			}
			return []inventory.DonorTotal{{DonorID: uuid.New(), Name: "Asha", TotalPlates: 40}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos/"+ngoID.String()+"/donors", nil)
	req = addRouteParam(req, "ngoId", ngoID.String())
	resp := httptest.NewRecorder()
	NGODonorTotals(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data struct {
			Donors []inventory.DonorTotal `json:"donors"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data.Donors) != 1 || envelope.Data.Donors[0].TotalPlates != 40 {
		t.Fatalf("unexpected payload %+v", envelope.Data.Donors)
	}
}

func TestNGODonorTotalsInvalidID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos/nope/donors", nil)
	req = addRouteParam(req, "ngoId", "nope")
	resp := httptest.NewRecorder()
	NGODonorTotals(&testInventoryService{}, testLogger())(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestNGORecipientTotalsSuccess(t *testing.T) {
	ngoID := uuid.New()
	svc := &testInventoryService{
		recipientFn: func(ctx context.Context, id uuid.UUID) ([]inventory.RecipientTotal, error) {
			if id != ngoID {
				t.Fatalf("unexpected ngo %s", id)
			}
			return []inventory.RecipientTotal{{RecipientID: uuid.New(), Name: "Ravi", BookedPlates: 5}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos/"+ngoID.String()+"/recipients", nil)
	req = addRouteParam(req, "ngoId", ngoID.String())
	resp := httptest.NewRecorder()
	NGORecipientTotals(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data struct {
			Recipients []inventory.RecipientTotal `json:"recipients"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(envelope.Data.Recipients) != 1 || envelope.Data.Recipients[0].BookedPlates != 5 {
		t.Fatalf("unexpected payload %+v", envelope.Data.Recipients)
	}
}

func TestNGORecipientTotalsMissingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ngos//recipients", nil)
	req = addRouteParam(req, "ngoId", "")
	resp := httptest.NewRecorder()
	NGORecipientTotals(&testInventoryService{}, testLogger())(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
