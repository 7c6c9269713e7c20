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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// identity returns the session token and user id set by AuthSession.
func identity(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return "", 0, false
	}
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return "", 0, false
	}
	return token, userID, true
}

// StartDraft handles POST /api/reservations/draft (protected)
func (h *ReservationHandler) StartDraft(w http.ResponseWriter, r *http.Request) {
	token, userID, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	draft, err := h.service.StartDraft(r.Context(), token, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "start draft")
		return
	}

	utils.ResponseCreated(w, "Reservation draft saved", draft)
}

// GetDraft handles GET /api/reservations/draft (protected)
func (h *ReservationHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	token, _, ok := identity(w, r)
	if !ok {
		return
	}

	draft, err := h.service.GetDraft(r.Context(), token)
	if err != nil {
		handleServiceError(h.log, w, err, "get draft")
		return
	}

	utils.ResponseSuccess(w, "success", draft)
}

// ClearDraft handles DELETE /api/reservations/draft (protected)
func (h *ReservationHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	token, _, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.ClearDraft(r.Context(), token); err != nil {
		handleServiceError(h.log, w, err, "clear draft")
		return
	}

	utils.ResponseSuccess(w, "Reservation draft cleared", nil)
}

// Checkout handles POST /api/reservations/checkout (protected)
func (h *ReservationHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	token, userID, ok := identity(w, r)
	if !ok {
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	req.CardNumber = usecase.NormalizeCardNumber(req.CardNumber)
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	reservation, err := h.service.Checkout(r.Context(), token, userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Payment successful", reservation)
}

// GetUserReservations handles GET /api/user/reservations (protected)
func (h *ReservationHandler) GetUserReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get user reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// CancelUserReservation handles DELETE /api/user/reservations/{id} (protected)
func (h *ReservationHandler) CancelUserReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.CancelUserReservation(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", nil)
}

// ==================== ADMIN METHODS ====================

// GetAllReservations handles GET /api/admin/reservations?q&status (admin only)
func (h *ReservationHandler) GetAllReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ReservationSearchRequest{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	}

	reservations, err := h.service.GetAllReservations(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get all reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// CancelReservation handles DELETE /api/admin/reservations/{id} (admin only)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CancelReservation(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(h.log, w, err, "admin cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", nil)
}
