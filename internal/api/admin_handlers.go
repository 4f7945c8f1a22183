package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
	httperrors "luxdrive/internal/errors"
	"luxdrive/internal/repository"
	"luxdrive/internal/service"

	"github.com/gorilla/mux"
)

// AdminHandler serves the back-office endpoints behind the JWT middleware.
type AdminHandler struct {
	Catalog      *service.CatalogService
	Availability *service.AvailabilityService
	Requests     *service.RequestService
	Leads        *service.LeadService
	VehicleRepo  *repository.VehicleRepository
}

// GetVehicles returns the operator-curated vehicle array. The public site
// polls this once per page load and merges it into its local catalogue; the
// response body is the bare array, never null.
func (h *AdminHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles := h.VehicleRepo.ListAdminVehicles()
	if vehicles == nil {
		vehicles = []db.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

// ReplaceVehicles swaps the curated array wholesale; there are no partial
// updates, last write wins.
func (h *AdminHandler) ReplaceVehicles(w http.ResponseWriter, r *http.Request) {
	var req ReplaceVehiclesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.Catalog.ReplaceAdminVehicles(req.Vehicles); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicles replaced"})
}

// SaveOverride stores operator edits for one base-fleet vehicle.
func (h *AdminHandler) SaveOverride(w http.ResponseWriter, r *http.Request) {
	var override db.VehicleOverride
	if err := json.NewDecoder(r.Body).Decode(&override); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	override.Slug = mux.Vars(r)["slug"]
	if err := h.Catalog.SaveOverride(override); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			httperrors.WriteJSON(w, http.StatusNotFound, "Unknown base-fleet vehicle")
			return
		}
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Override saved"})
}

func (h *AdminHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Availability.Repo.ListIntervals())
}

func (h *AdminHandler) AddReservation(w http.ResponseWriter, r *http.Request) {
	var req entities.IntervalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	interval, err := h.Availability.AddInterval(req)
	if err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, interval)
}

func (h *AdminHandler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.Availability.RemoveInterval(mux.Vars(r)["id"]); err != nil {
		httperrors.WriteJSON(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation deleted"})
}

func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Requests.List(r.URL.Query().Get("status")))
}

func (h *AdminHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	var body AcceptRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	request, err := h.Requests.Accept(mux.Vars(r)["id"], body.Pricing)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *AdminHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	request, err := h.Requests.Reject(mux.Vars(r)["id"])
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *AdminHandler) EditRequestPricing(w http.ResponseWriter, r *http.Request) {
	var body EditPricingBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	request, err := h.Requests.EditPricing(mux.Vars(r)["id"], body.Pricing)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *AdminHandler) EditRequestSpecs(w http.ResponseWriter, r *http.Request) {
	var body EditSpecsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	request, err := h.Requests.EditDisplaySpecs(mux.Vars(r)["id"], body.Specs)
	if err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

func (h *AdminHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.Requests.Delete(mux.Vars(r)["id"]); err != nil {
		writeRequestError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Request deleted"})
}

func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Leads.ListLeads())
}

func writeRequestError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		httperrors.WriteJSON(w, http.StatusNotFound, "Request not found")
	case errors.Is(err, service.ErrRequestDecided):
		httperrors.WriteJSON(w, http.StatusConflict, "Request already decided")
	default:
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
	}
}
