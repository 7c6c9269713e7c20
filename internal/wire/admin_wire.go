package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-reservation/internal/adaptor"
)

func wireAdmin(r chi.Router, adminHandler *adaptor.AdminHandler, g *guards) {
	r.With(g.auth, g.admin).Get("/api/admin/dashboard", adminHandler.GetDashboard)
	r.With(g.auth, g.admin).Get("/api/admin/payments", adminHandler.GetPaymentRecords)
}
