package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"payslipgen/internal/domain/payslip"
	"payslipgen/internal/platform/assets"
	"payslipgen/internal/platform/config"
	"payslipgen/internal/render"
	authhandler "payslipgen/internal/transport/http/handlers/auth"
	payslipshandler "payslipgen/internal/transport/http/handlers/payslips"
	"payslipgen/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	router := NewRouter(cfg)

	log.Printf("payslip server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// NewRouter assembles the full HTTP surface from configuration.
func NewRouter(cfg config.Config) http.Handler {
	employer := payslip.Employer{
		Name:     cfg.EmployerName,
		Address:  cfg.EmployerAddress,
		Phone:    cfg.EmployerPhone,
		Currency: cfg.Currency,
		LogoURL:  cfg.LogoURL,
	}
	engine := render.New(assets.NewFetcher())
	generator := payslip.NewGenerator(employer, engine)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(cfg.JWTSecret, cfg.TokenTTL, cfg.OperatorEmail, cfg.OperatorPasswordHash)
		r.Post("/auth/login", authHandler.HandleLogin)

		payslipsHandler := payslipshandler.NewHandler(generator)
		payslipsHandler.RegisterRoutes(r)
	})

	router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(cfg.AssetsDir))))

	return router
}
