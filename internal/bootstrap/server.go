package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/explorex/reservations/api"
	"github.com/explorex/reservations/config"
	"github.com/explorex/reservations/internal/auth"
	"github.com/explorex/reservations/internal/service/passenger"
	"github.com/explorex/reservations/internal/service/reservation"
	"github.com/explorex/reservations/internal/service/user"
	"github.com/explorex/reservations/internal/verify"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// Run starts the HTTP server with the CORS policy applied and blocks
// until the context is canceled or the server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	userSvc user.UserUseCase,
	reservationSvc reservation.ReservationUseCase,
	passengerSvc passenger.PassengerUseCase,
	tokens *auth.Manager,
	verifier verify.Verifier,
) error {
	engine := gin.Default()
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the Explorex reservations API")
	})

	group := engine.Group("/api")
	api.NewUserHandler(userSvc, tokens).Register(group)
	api.NewReservationHandler(reservationSvc, verifier).Register(group)
	api.NewPassengerHandler(passengerSvc).Register(group)

	policy := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: policy.Handler(engine),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
