package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/usecase"
	"hotel-reservation/pkg/utils"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetDashboard handles GET /api/admin/dashboard (admin only)
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", dashboard)
}

// GetPaymentRecords handles GET /api/admin/payments?q&status (admin only)
func (h *AdminHandler) GetPaymentRecords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ReservationSearchRequest{
		Query:  query.Get("q"),
		Status: query.Get("status"),
	}

	records, err := h.service.GetPaymentRecords(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get payment records")
		return
	}

	utils.ResponseSuccess(w, "success", records)
}
