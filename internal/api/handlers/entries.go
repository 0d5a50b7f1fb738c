package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/request"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/response"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/ledger"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/validation"
)

// EntryHandler handles HTTP requests for ledger entry endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the entryService.
type EntryHandler struct {
	entryService *service.EntryService
}

// NewEntryHandler creates a new EntryHandler with the provided service dependency.
func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// EntriesPerAsset handles GET requests to retrieve the full entry series for
// an asset with derived metrics attached. The optional order query parameter
// selects the presentation order ("asc" default, "desc"); the running totals
// are computed chronologically either way.
//
// Endpoint: GET /api/entry/asset/{uuid}?order=asc|desc
// Response: 200 OK with array of LedgerEntryView
// Error: 400 Bad Request if asset ID is invalid (validated by middleware)
// Error: 404 Not Found if asset not found
// Error: 500 Internal Server Error if retrieval fails
func (h *EntryHandler) EntriesPerAsset(w http.ResponseWriter, r *http.Request) {
	investmentID := chi.URLParam(r, "uuid")

	order := ledger.Ascending
	if r.URL.Query().Get("order") == string(ledger.Descending) {
		order = ledger.Descending
	}

	entries, err := h.entryService.ListEntries(investmentID, order)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssetNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEntries.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entries)
}

// GetEntry handles GET requests to retrieve a single ledger entry by ID.
//
// Endpoint: GET /api/entry/{uuid}
// Response: 200 OK with LedgerEntry
// Error: 400 Bad Request if entry ID is invalid (validated by middleware)
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if retrieval fails
func (h *EntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	entry, err := h.entryService.GetEntry(entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRetrieveEntry.Error(), err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// CreateEntry handles POST requests to append a new monthly entry to an
// asset's series. The month is assigned server-side by the sequencer.
//
// Endpoint: POST /api/entry
// Request Body: CreateEntryRequest (investmentId, actualReturnRate, inflationRate, contribution, notes)
// Response: 201 Created with LedgerEntry
// Error: 400 Bad Request if validation fails or request body is invalid
// Error: 404 Not Found if the asset does not exist
// Error: 409 Conflict if the resolved month is already taken after a retry
// Error: 500 Internal Server Error if creation fails
func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.entryService.CreateEntry(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAssetNotFound):
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAssetNotFound.Error(), err.Error())
		case errors.Is(err, apperrors.ErrMonthConflict):
			response.RespondError(w, http.StatusConflict, apperrors.ErrMonthConflict.Error(), err.Error())
		default:
			response.RespondError(w, http.StatusInternalServerError, "failed to create ledger entry", err.Error())
		}
		return
	}

	response.RespondJSON(w, http.StatusCreated, entry)
}

// UpdateEntry handles PUT requests to update an existing ledger entry.
// Only the return rate, inflation rate, contribution, and notes are mutable;
// the month and owning asset are fixed at creation.
//
// Endpoint: PUT /api/entry/{uuid}
// Request Body: UpdateEntryRequest (all fields optional)
// Response: 200 OK with updated LedgerEntry
// Error: 400 Bad Request if entry ID is invalid (validated by middleware) or validation fails
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if update fails
func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	req, err := parseJSON[request.UpdateEntryRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpdateEntry(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry, err := h.entryService.UpdateEntry(r.Context(), entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to update ledger entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusOK, entry)
}

// DeleteEntry handles DELETE requests to remove a ledger entry.
//
// Endpoint: DELETE /api/entry/{uuid}
// Response: 204 No Content on successful deletion
// Error: 400 Bad Request if entry ID is invalid (validated by middleware)
// Error: 404 Not Found if entry not found
// Error: 500 Internal Server Error if deletion fails
func (h *EntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "uuid")

	err := h.entryService.DeleteEntry(r.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrEntryNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrEntryNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to delete ledger entry", err.Error())
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
