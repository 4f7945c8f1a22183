package main

import (
	"net/http"

	"luxdrive/internal/api"
	"luxdrive/internal/auth"
	"luxdrive/internal/config"
	"luxdrive/internal/repository"
	"luxdrive/internal/service"
	"luxdrive/internal/store"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data store: %v", err)
	}

	vehicleRepo := repository.NewVehicleRepository(st)
	reservationRepo := repository.NewReservationRepository(st)
	requestRepo := repository.NewRequestRepository(st)
	leadRepo := repository.NewLeadRepository(st)
	authRepo := repository.NewAdminAuthRepository(st)

	notifier := service.NewNotifyService(cfg.OperatorEmail, cfg.OperatorPhone)
	catalogSvc := service.NewCatalogService(vehicleRepo, requestRepo)
	pricingSvc := service.NewPricingService(catalogSvc)
	availabilitySvc := service.NewAvailabilityService(reservationRepo)
	chatSvc := service.NewChatService(catalogSvc, availabilitySvc)
	requestSvc := service.NewRequestService(requestRepo, notifier)
	leadSvc := service.NewLeadService(leadRepo, notifier)
	authSvc := service.NewAdminAuthService(authRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	if err := authSvc.Bootstrap(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to bootstrap operator account: %v", err)
	}

	userHandler := &api.UserHandler{
		Catalog:        catalogSvc,
		Pricing:        pricingSvc,
		Availability:   availabilitySvc,
		Chat:           chatSvc,
		Requests:       requestSvc,
		Leads:          leadSvc,
		ChatReplyDelay: cfg.ChatReplyDelay,
	}
	adminHandler := &api.AdminHandler{
		Catalog:      catalogSvc,
		Availability: availabilitySvc,
		Requests:     requestSvc,
		Leads:        leadSvc,
		VehicleRepo:  vehicleRepo,
	}
	authHandler := api.NewAdminAuthHandler(authSvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/vehicles", userHandler.GetCatalog).Methods("GET")
	r.HandleFunc("/api/vehicles/{slug}", userHandler.GetVehicle).Methods("GET")
	r.HandleFunc("/api/quote", userHandler.Quote).Methods("POST")
	r.HandleFunc("/api/availability", userHandler.CheckAvailability).Methods("GET")
	r.HandleFunc("/api/chat", userHandler.ChatMessage).Methods("POST")
	r.HandleFunc("/api/requests", userHandler.SubmitRequest).Methods("POST")
	r.HandleFunc("/api/leads", userHandler.SubmitLead).Methods("POST")
	r.HandleFunc("/api/visits", userHandler.RecordVisit).Methods("POST")

	// Operator session endpoints
	r.HandleFunc("/admin/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/admin/auth/refresh", authHandler.Refresh).Methods("POST")
	r.HandleFunc("/admin/auth/logout", authHandler.Logout).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(authSvc))
	admin.HandleFunc("/vehicles", adminHandler.GetVehicles).Methods("GET")
	admin.HandleFunc("/vehicles", adminHandler.ReplaceVehicles).Methods("POST")
	admin.HandleFunc("/fleet/{slug}", adminHandler.SaveOverride).Methods("PUT")
	admin.HandleFunc("/reservations", adminHandler.ListReservations).Methods("GET")
	admin.HandleFunc("/reservations", adminHandler.AddReservation).Methods("POST")
	admin.HandleFunc("/reservations/{id}", adminHandler.DeleteReservation).Methods("DELETE")
	admin.HandleFunc("/requests", adminHandler.ListRequests).Methods("GET")
	admin.HandleFunc("/requests/{id}/accept", adminHandler.AcceptRequest).Methods("POST")
	admin.HandleFunc("/requests/{id}/reject", adminHandler.RejectRequest).Methods("POST")
	admin.HandleFunc("/requests/{id}/pricing", adminHandler.EditRequestPricing).Methods("PUT")
	admin.HandleFunc("/requests/{id}/specs", adminHandler.EditRequestSpecs).Methods("PUT")
	admin.HandleFunc("/requests/{id}", adminHandler.DeleteRequest).Methods("DELETE")
	admin.HandleFunc("/leads", adminHandler.ListLeads).Methods("GET")

	jobSvc := service.NewJobService(authRepo, leadRepo, cfg.LogRetention)
	c := cron.New()
	c.AddFunc("0 3 * * *", jobSvc.PurgeExpiredTokens)
	c.AddFunc("30 3 * * *", jobSvc.TrimVisitLog)
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	log.Infof("Server running on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors(r)))
}
