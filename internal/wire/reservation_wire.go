package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-reservation/internal/adaptor"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler, g *guards) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		// Draft lives in the caller's session until checkout consumes it
		r.Post("/api/reservations/draft", reservationHandler.StartDraft)
		r.Get("/api/reservations/draft", reservationHandler.GetDraft)
		r.Delete("/api/reservations/draft", reservationHandler.ClearDraft)
		r.Post("/api/reservations/checkout", reservationHandler.Checkout)

		r.Get("/api/user/reservations", reservationHandler.GetUserReservations)
		r.Delete("/api/user/reservations/{id}", reservationHandler.CancelUserReservation)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reservations", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.admin)

		r.Get("/", reservationHandler.GetAllReservations) // ?q=&status=
		r.Delete("/{id}", reservationHandler.CancelReservation)
	})
}
