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

type SpaceHandler struct {
	Service *service.SpaceService
}

func NewSpaceHandler(svc *service.SpaceService) *SpaceHandler {
	return &SpaceHandler{Service: svc}
}

func (h *SpaceHandler) ListSpaces(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	spaces, err := h.Service.ListAvailable(location)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spaces)
}

func (h *SpaceHandler) GetSpace(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	space, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}

func (h *SpaceHandler) ListHostSpaces(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.Atoi(mux.Vars(r)["ownerId"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	spaces, err := h.Service.ListByOwner(ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, spaces)
}

func (h *SpaceHandler) CreateSpace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req entities.SpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	space, err := h.Service.Create(callerID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, space)
}

func (h *SpaceHandler) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req entities.SpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	space, err := h.Service.Update(id, callerID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}

func (h *SpaceHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}
	var req struct {
		Availability string `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	space, err := h.Service.SetAvailability(id, callerID, req.Availability)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}
