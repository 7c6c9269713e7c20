package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-reservation/internal/adaptor"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g *guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(g.auth).Post("/api/logout", authHandler.Logout)
}
