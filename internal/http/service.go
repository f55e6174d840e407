package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	govalidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/wingscafe/inventory/internal/apperr"
	"github.com/wingscafe/inventory/internal/config"
	"github.com/wingscafe/inventory/internal/http/apierr"
	"github.com/wingscafe/inventory/internal/http/metric"
	"github.com/wingscafe/inventory/internal/http/middleware"
	"github.com/wingscafe/inventory/internal/http/swagger"
	"github.com/wingscafe/inventory/internal/service"
	"github.com/wingscafe/inventory/pkg/validator"
	"github.com/wingscafe/inventory/pkg/zerror"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	catalogSvc service.CatalogService
	stockSvc   service.StockService
	userSvc    service.UserService
	authSvc    service.AuthService
	sales      *service.SalesAggregator

	validate validator.Validator
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	catalogSvc service.CatalogService,
	stockSvc service.StockService,
	userSvc service.UserService,
	authSvc service.AuthService,
	sales *service.SalesAggregator,
	validate validator.Validator,
) *Service {
	return &Service{
		cfg:        cfg,
		logger:     log.With(slog.String("service", "http")),
		metrics:    metric.New(),
		catalogSvc: catalogSvc,
		stockSvc:   stockSvc,
		userSvc:    userSvc,
		authSvc:    authSvc,
		sales:      sales,
		validate:   validate,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	productHandler := newProductHandler(s, s.catalogSvc)
	stockHandler := newStockHandler(s, s.stockSvc)
	dashboardHandler := newDashboardHandler(s, s.catalogSvc, s.stockSvc, s.sales)
	userHandler := newUserHandler(s, s.userSvc)
	authHandler := newAuthHandler(s, s.userSvc, s.authSvc)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
			r.Get("/options", productHandler.ListProductOptions)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})

		r.Route("/stock", func(r chi.Router) {
			r.Get("/", stockHandler.ListStockRecords)
			r.Post("/add", stockHandler.AddStock)
			r.Post("/reduce", stockHandler.ReduceStock)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetDashboard)
			r.Post("/sell", dashboardHandler.SellProduct)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.CreateUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.GetSession)
		})
	})

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))
}

// decode unmarshals and validates a JSON request body.
func (s *Service) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	if err := s.validate.Validate(dst); err != nil {
		return err
	}

	return nil
}

func (s *Service) respond(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	if payload == nil {
		w.WriteHeader(statusCode)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	// Anything that is neither a domain rejection nor a validation failure is
	// a failed persistence call: surfaced as a generic notice, no retry.
	var (
		zErr           zerror.ZError
		validationErrs govalidator.ValidationErrors
	)
	if !errors.As(err, &zErr) && !errors.As(err, &validationErrs) {
		err = apperr.StoreUnavailableErr.WrapParent(err)
	}

	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
