package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"luxdrive/internal/entities"
	httperrors "luxdrive/internal/errors"
	"luxdrive/internal/service"

	"github.com/gorilla/mux"
)

// UserHandler serves the public site endpoints: catalogue, quotes,
// availability, the assistant widget and the intake forms.
type UserHandler struct {
	Catalog      *service.CatalogService
	Pricing      *service.PricingService
	Availability *service.AvailabilityService
	Chat         *service.ChatService
	Requests     *service.RequestService
	Leads        *service.LeadService

	// ChatReplyDelay paces assistant replies so the widget can show a
	// "typing" state. Purely presentational.
	ChatReplyDelay time.Duration
}

func (h *UserHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Catalog())
}

func (h *UserHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	vehicle := h.Catalog.Vehicle(slug)
	if vehicle == nil {
		httperrors.WriteJSON(w, http.StatusNotFound, "Vehicle not found")
		return
	}
	writeJSON(w, http.StatusOK, VehicleDetailResponse{
		Vehicle:      *vehicle,
		Availability: h.Availability.Summary(slug, vehicle.CalendarURL),
	})
}

func (h *UserHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req entities.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	breakdown, err := h.Pricing.Quote(req)
	switch {
	case errors.Is(err, service.ErrVehicleNotFound):
		// Expected outcome, not a failure: the UI falls back to the
		// vehicle-page messaging.
		httperrors.WriteJSON(w, http.StatusNotFound, "Vehicle not found, consult the vehicle page")
	case errors.Is(err, service.ErrTierNotOffered):
		httperrors.WriteJSON(w, http.StatusBadRequest, "This vehicle does not offer the requested duration")
	case err != nil:
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusOK, breakdown)
	}
}

func (h *UserHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	slug := r.URL.Query().Get("vehicle")
	calendarURL := ""
	if slug != "" {
		if vehicle := h.Catalog.Vehicle(slug); vehicle != nil {
			calendarURL = vehicle.CalendarURL
		}
	}
	writeJSON(w, http.StatusOK, h.Availability.Summary(slug, calendarURL))
}

func (h *UserHandler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req entities.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	response := h.Chat.Respond(req)
	if h.ChatReplyDelay > 0 {
		time.Sleep(h.ChatReplyDelay)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *UserHandler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	var input entities.SubmitRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	request, err := h.Requests.Submit(input)
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		httperrors.WriteJSON(w, http.StatusTooManyRequests, "Daily submission limit reached, try again tomorrow")
	case err != nil:
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
	default:
		writeJSON(w, http.StatusCreated, request)
	}
}

func (h *UserHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var input entities.LeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	lead, err := h.Leads.SubmitLead(input)
	if err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *UserHandler) RecordVisit(w http.ResponseWriter, r *http.Request) {
	var req VisitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.WriteJSON(w, http.StatusBadRequest, "Invalid request")
		return
	}
	h.Leads.RecordVisit(req.Page, req.Referrer)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
