package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
	"luxdrive/internal/repository"
	"luxdrive/internal/service"
	"luxdrive/internal/store"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)

	vehicleRepo := repository.NewVehicleRepository(st)
	resRepo := repository.NewReservationRepository(st)
	requestRepo := repository.NewRequestRepository(st)
	leadRepo := repository.NewLeadRepository(st)

	catalog := service.NewCatalogService(vehicleRepo, requestRepo)
	availability := service.NewAvailabilityService(resRepo)
	handler := &UserHandler{
		Catalog:      catalog,
		Pricing:      service.NewPricingService(catalog),
		Availability: availability,
		Chat:         service.NewChatService(catalog, availability),
		Requests:     service.NewRequestService(requestRepo, nil),
		Leads:        service.NewLeadService(leadRepo, nil),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/vehicles", handler.GetCatalog).Methods(http.MethodGet)
	r.HandleFunc("/api/vehicles/{slug}", handler.GetVehicle).Methods(http.MethodGet)
	r.HandleFunc("/api/quote", handler.Quote).Methods(http.MethodPost)
	r.HandleFunc("/api/availability", handler.CheckAvailability).Methods(http.MethodGet)
	r.HandleFunc("/api/chat", handler.ChatMessage).Methods(http.MethodPost)
	r.HandleFunc("/api/requests", handler.SubmitRequest).Methods(http.MethodPost)
	r.HandleFunc("/api/leads", handler.SubmitLead).Methods(http.MethodPost)
	return r
}

func doJSON(t *testing.T, r *mux.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestGetCatalogEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/vehicles", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var vehicles []db.Vehicle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &vehicles))
	assert.Len(t, vehicles, 4)
}

func TestGetVehicleEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/vehicles/audi-r8-v8", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail VehicleDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, "audi-r8-v8", detail.Vehicle.Slug)

	rec = doJSON(t, r, http.MethodGet, "/api/vehicles/no-such-car", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/quote", entities.QuoteRequest{
		VehicleSlug: "audi-r8-v8",
		Tier:        "24h",
		ExtraKm:     50,
		TransportKm: 20,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var breakdown entities.PriceBreakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &breakdown))
	assert.Equal(t, 760, breakdown.Total)
}

func TestQuoteEndpointUnknownVehicle(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/quote", entities.QuoteRequest{
		VehicleSlug: "no-such-car",
		Tier:        "24h",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "consult the vehicle page")
}

func TestQuoteEndpointTierNotOffered(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/quote", entities.QuoteRequest{
		VehicleSlug: "mclaren-570s",
		Tier:        "month",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/chat", entities.ChatRequest{
		History: []entities.ChatMessage{{Role: "user", Content: "Quel est le prix de la McLaren ?"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entities.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Content, "Véhicules → Calculer le prix")
}

func TestSubmitRequestEndpointQuota(t *testing.T) {
	r := newTestRouter(t)

	input := entities.SubmitRequestInput{
		DepositorName:  "Marco",
		DepositorEmail: "marco@example.ch",
		Brand:          "Lamborghini",
		Model:          "Huracan",
	}
	for i := 0; i < 3; i++ {
		rec := doJSON(t, r, http.MethodPost, "/api/requests", input)
		require.Equal(t, http.StatusCreated, rec.Code, "submission %d", i+1)
	}

	rec := doJSON(t, r, http.MethodPost, "/api/requests", input)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSubmitLeadEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/leads", entities.LeadInput{
		Name:    "Julie",
		Contact: "julie@example.ch",
		Message: "Intéressée par la 911 pour un mariage.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/api/leads", entities.LeadInput{Name: "Julie"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteEndpointRejectsBadJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
