package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/model"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/testutil"
)

func setupAssetHandler(t *testing.T) (*AssetHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	svc := testutil.NewTestAssetService(t, db)
	return NewAssetHandler(svc), db
}

func TestAssetHandler_CreateAsset(t *testing.T) {
	t.Run("creates an asset", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)

		body := request.CreateAssetRequest{
			Name:            "World ETF",
			StartingBalance: decimal.RequireFromString("2500.50"),
			StartingMonth:   "2024-03",
		}

		// Execute
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset", body, nil)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		// Assert
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var created model.InvestmentAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&created)

		if created.ID == "" {
			t.Error("Expected a generated asset ID")
		}
		if created.Name != "World ETF" {
			t.Errorf("Expected name 'World ETF', got %q", created.Name)
		}
		if !created.StartingBalance.Equal(decimal.RequireFromString("2500.50")) {
			t.Errorf("Expected starting balance 2500.50, got %s", created.StartingBalance)
		}
		if created.StartingMonth.String() != "2024-03" {
			t.Errorf("Expected starting month 2024-03, got %s", created.StartingMonth)
		}
	})

	t.Run("returns 400 when the name is missing", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)

		body := request.CreateAssetRequest{
			StartingBalance: decimal.NewFromInt(1000),
			StartingMonth:   "2024-01",
		}

		// Execute
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset", body, nil)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for a negative starting balance", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)

		body := request.CreateAssetRequest{
			Name:            "Shorted Fund",
			StartingBalance: decimal.NewFromInt(-1),
			StartingMonth:   "2024-01",
		}

		// Execute
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset", body, nil)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for a malformed starting month", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)

		body := request.CreateAssetRequest{
			Name:            "World ETF",
			StartingBalance: decimal.NewFromInt(1000),
			StartingMonth:   "March 2024",
		}

		// Execute
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/asset", body, nil)
		w := httptest.NewRecorder()
		handler.CreateAsset(w, req)

		// Assert
		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_AllAssets(t *testing.T) {
	t.Run("returns all assets", func(t *testing.T) {
		// Setup
		handler, db := setupAssetHandler(t)
		testutil.CreateAsset(t, db, "1000", "2024-01")
		testutil.CreateAsset(t, db, "500", "2024-02")

		// Execute
		req := httptest.NewRequest(http.MethodGet, "/api/asset", nil)
		w := httptest.NewRecorder()
		handler.AllAssets(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var assets []model.InvestmentAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&assets)

		if len(assets) != 2 {
			t.Errorf("Expected 2 assets, got %d", len(assets))
		}
	})
}

func TestAssetHandler_GetAsset(t *testing.T) {
	t.Run("returns the asset", func(t *testing.T) {
		// Setup
		handler, db := setupAssetHandler(t)
		asset := testutil.CreateAsset(t, db, "1000", "2024-01")

		// Execute
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/asset/"+asset.ID,
			map[string]string{"uuid": asset.ID})
		w := httptest.NewRecorder()
		handler.GetAsset(w, req)

		// Assert
		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var got model.InvestmentAsset
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&got)

		if got.ID != asset.ID {
			t.Errorf("Expected asset %s, got %s", asset.ID, got.ID)
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)
		missing := testutil.MakeID()

		// Execute
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/asset/"+missing,
			map[string]string{"uuid": missing})
		w := httptest.NewRecorder()
		handler.GetAsset(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestAssetHandler_DeleteAsset(t *testing.T) {
	t.Run("deletes the asset", func(t *testing.T) {
		// Setup
		handler, db := setupAssetHandler(t)
		asset := testutil.CreateAsset(t, db, "1000", "2024-01")

		// Execute
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/asset/"+asset.ID,
			map[string]string{"uuid": asset.ID})
		w := httptest.NewRecorder()
		handler.DeleteAsset(w, req)

		// Assert
		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 404 for an unknown asset", func(t *testing.T) {
		// Setup
		handler, _ := setupAssetHandler(t)
		missing := testutil.MakeID()

		// Execute
		req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/asset/"+missing,
			map[string]string{"uuid": missing})
		w := httptest.NewRecorder()
		handler.DeleteAsset(w, req)

		// Assert
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})
}
