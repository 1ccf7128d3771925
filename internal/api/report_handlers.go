package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"jirao/internal/auth"
	"jirao/internal/entities"
	"jirao/internal/service"
)

type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: svc}
}

func (h *ReportHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req entities.ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	view, err := h.Service.Create(callerID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (h *ReportHandler) UsersForReporting(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	currentUserID, err := strconv.Atoi(vars["currentUserId"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	users, err := h.Service.UsersForReporting(currentUserID, vars["targetRole"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
