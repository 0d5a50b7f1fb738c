package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/response"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/validation"
)

// AssetHandler handles HTTP requests for investment asset endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the assetService.
type AssetHandler struct {
	assetService *service.AssetService
}

// NewAssetHandler creates a new AssetHandler with the provided service dependency.
func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// AllAssets handles GET requests to retrieve all investment assets.
//
// Endpoint: GET /api/asset
// Response: 200 OK with array of InvestmentAsset
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) AllAssets(w http.ResponseWriter, _ *http.Request) {
	assets, err := h.assetService.GetAllAssets()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAssets.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, assets)
}

// GetAsset handles GET requests to retrieve a single investment asset by ID.
//
// Endpoint: GET /api/asset/{uuid}
// Response: 200 OK with InvestmentAsset
// Error: 400 Bad Request if asset ID is invalid (validated by middleware)
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *AssetHandler) GetAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	asset, err := h.assetService.GetAsset(assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveAsset.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, asset)
}

// CreateAsset handles POST requests to register a new investment asset.
// Validates the request body and creates the asset record.
//
// Endpoint: POST /api/asset
// Request Body: CreateAssetRequest (name, startingBalance, startingMonth)
// Response: 201 Created with InvestmentAsset
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 500 Internal Server Error if creation fails
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateAssetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateAsset(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	asset, err := h.assetService.CreateAsset(r.Context(), req)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to create investment asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusCreated, asset)
}

// DeleteAsset handles DELETE requests to remove an investment asset and all
// of its ledger entries.
//
// Endpoint: DELETE /api/asset/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if asset ID is invalid (validated by middleware)
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if deletion fails
func (h *AssetHandler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	assetID := chi.URLParam(r, "uuid")

	err := h.assetService.DeleteAsset(r.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete investment asset", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
