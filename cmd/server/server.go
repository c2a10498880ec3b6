package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/clubhub-app/clubhub/internal/adapters/config"
	httpController "github.com/clubhub-app/clubhub/internal/adapters/controller/http"
	"github.com/clubhub-app/clubhub/internal/adapters/database/postgres"
	"github.com/clubhub-app/clubhub/internal/domain/service"
	"github.com/clubhub-app/clubhub/pkg/logger"
	"github.com/clubhub-app/clubhub/pkg/logger/types"
	"github.com/clubhub-app/clubhub/pkg/smtp"
)

type Server struct {
	httpServer *http.Server
	logger     *types.Logger
}

func New(cfg *config.Config) (*Server, error) {
	httpLogger, err := logger.Named("http")
	if err != nil {
		return nil, err
	}
	placesLogger, err := logger.Named("places")
	if err != nil {
		return nil, err
	}

	userStorage := postgres.NewUserStorage(cfg.Database)
	clubStorage := postgres.NewClubStorage(cfg.Database)
	membershipStorage := postgres.NewMembershipStorage(cfg.Database)
	eventStorage := postgres.NewEventStorage(cfg.Database)
	registrationStorage := postgres.NewEventRegistrationStorage(cfg.Database)

	mailer := smtp.NewClient(
		cfg.SMTPDialer,
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.domain"),
	)

	userService := service.NewUserService(
		userStorage,
		viper.GetString("service.auth.jwt-secret"),
		viper.GetDuration("service.auth.token-ttl"),
	)
	clubService := service.NewClubService(clubStorage, membershipStorage)
	membershipService := service.NewMembershipService(membershipStorage, clubStorage, userStorage, mailer)
	eventService := service.NewEventService(eventStorage, clubStorage, registrationStorage, membershipStorage)
	registrationService := service.NewEventRegistrationService(registrationStorage, eventStorage, clubStorage, membershipStorage)
	placesService := service.NewPlacesService(
		cfg.Redis.Places,
		placesLogger,
		viper.GetString("service.places.api-key"),
		viper.GetString("service.places.base-url"),
		viper.GetDuration("service.places.cache-ttl"),
	)

	handler := httpController.NewHandler(
		httpLogger,
		userService,
		clubService,
		membershipService,
		eventService,
		registrationService,
		placesService,
	)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", viper.GetInt("service.http.port")),
			Handler:      handler.Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		logger: httpLogger,
	}, nil
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully, letting in-flight requests finish.
func (s *Server) Start() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		s.logger.Infof("HTTP server listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Errorf("HTTP server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	s.logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf("Shutdown error: %v", err)
	}
}
