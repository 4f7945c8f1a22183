package service

import (
	"testing"
	"time"

	"luxdrive/internal/repository"
	"luxdrive/internal/store"

	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over a throwaway store.
type testEnv struct {
	Dir          string
	Store        *store.Store
	VehicleRepo  *repository.VehicleRepository
	ResRepo      *repository.ReservationRepository
	RequestRepo  *repository.RequestRepository
	Catalog      *CatalogService
	Pricing      *PricingService
	Availability *AvailabilityService
	Chat         *ChatService
	Requests     *RequestService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	st, err := store.New(dir)
	require.NoError(t, err)

	vehicleRepo := repository.NewVehicleRepository(st)
	resRepo := repository.NewReservationRepository(st)
	requestRepo := repository.NewRequestRepository(st)

	catalog := NewCatalogService(vehicleRepo, requestRepo)
	availability := NewAvailabilityService(resRepo)
	env := &testEnv{
		Dir:          dir,
		Store:        st,
		VehicleRepo:  vehicleRepo,
		ResRepo:      resRepo,
		RequestRepo:  requestRepo,
		Catalog:      catalog,
		Pricing:      NewPricingService(catalog),
		Availability: availability,
		Chat:         NewChatService(catalog, availability),
		Requests:     NewRequestService(requestRepo, nil),
	}
	return env
}

// fixedNow pins a service clock for deterministic date arithmetic.
func fixedNow(value string) func() time.Time {
	ts, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
}
