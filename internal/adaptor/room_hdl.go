package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/rooms?guests&type&q (public)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.RoomSearchRequest{
		Guests: utils.ParseOptionalInt(query.Get("guests")),
		Type:   query.Get("type"),
		Query:  query.Get("q"),
	}

	rooms, err := h.service.ListRooms(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoom handles GET /api/rooms/{id} (public)
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.service.GetRoom(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// GetQuote handles GET /api/rooms/{id}/quote?check_in&check_out (public)
func (h *RoomHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.QuoteRequest{
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	quote, err := h.service.GetQuote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// ==================== ADMIN METHODS ====================

// CreateRoom handles POST /api/admin/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.RoomUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRoom(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "Room deleted", nil)
}
