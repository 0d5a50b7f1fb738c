package handlers

import (
	"net/http"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/apperrors"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api/response"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/config"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
	auditService  *service.AuditService
	ledgerMode    string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService, auditService *service.AuditService, ledgerMode string) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
		auditService:  auditService,
		ledgerMode:    ledgerMode,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health checks the health of the system and database connectivity
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	// Check database health
	if err := h.systemService.CheckHealth(); err != nil {
		response := HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		}
		respondJSON(w, http.StatusServiceUnavailable, response)
		return
	}

	// System is healthy
	response := HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}
	respondJSON(w, http.StatusOK, response)
}

// VersionInfoResponse represents the version check response containing the
// application version and the active ledger features.
type VersionInfoResponse struct {
	AppVersion string          `json:"app_version"`
	LedgerMode string          `json:"ledger_mode"`
	Features   map[string]bool `json:"features"`
}

// Version handles GET requests to retrieve version information and feature availability.
// The ledger_mode field reports which recompute behavior is active, so callers
// never have to guess whether edits cascade.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion: h.systemService.CheckVersion(),
		LedgerMode: h.ledgerMode,
		Features: map[string]bool{
			"forwardRecompute": h.ledgerMode == config.ModeConsistentLedger,
		},
	})
}

// Audit handles GET requests to run the ledger consistency audit on demand.
// Returns one finding per entry whose stored closing balance no longer matches
// the compounding formula applied to its predecessor.
//
// Endpoint: GET /api/system/audit
// Response: 200 OK with array of AuditFinding
// Error: 500 Internal Server Error if the sweep fails
func (h *SystemHandler) Audit(w http.ResponseWriter, r *http.Request) {
	findings, err := h.auditService.Sweep(r.Context())
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, apperrors.ErrFailedToRunAudit.Error(), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, findings)
}
