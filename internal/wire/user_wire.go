package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-reservation/internal/adaptor"
)

// wireUser configures profile routes and admin account management
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g *guards) {
	// ==================== PROTECTED USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		r.Get("/api/me", userHandler.GetProfile)
		r.Put("/api/me", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.With(g.auth, g.admin).Route("/api/admin/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)       // GET /api/admin/users?page=1&per_page=10&q=
		r.Delete("/{id}", userHandler.DeleteUser) // DELETE /api/admin/users/{id}
	})
}
