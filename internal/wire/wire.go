package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"hotel-reservation/internal/adaptor"
	"hotel-reservation/internal/data/repository"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/middleware"
	"hotel-reservation/pkg/utils"
)

// App holds the router and the services behind it.
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards are the route middlewares shared by every wireX helper.
type guards struct {
	auth  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring builds services and handlers and mounts every route.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	g := &guards{
		auth:  middleware.AuthSession(service.Auth, logger),
		admin: middleware.Admin(repo.User, logger),
	}

	return &App{
		Router:  setupRouter(handler, g, config, logger),
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, g *guards, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireRoom(r, handler.Room, g)
	wireReservation(r, handler.Reservation, g)
	wireAdmin(r, handler.Admin, g)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
