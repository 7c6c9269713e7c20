package wire

import (
	"github.com/go-chi/chi/v5"

	"hotel-reservation/internal/adaptor"
)

func wireRoom(r chi.Router, roomHandler *adaptor.RoomHandler, g *guards) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms?guests=2&type=suite&q=view
	r.Get("/api/rooms", roomHandler.ListRooms)
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)
	// GET /api/rooms/{id}/quote?check_in=2024-01-10&check_out=2024-01-13
	r.Get("/api/rooms/{id}/quote", roomHandler.GetQuote)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.admin)

		r.Get("/", roomHandler.ListRooms)
		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
