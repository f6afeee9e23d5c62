package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	intconfig "poolside/internal/config"
	"poolside/internal/domain/models"
	"poolside/internal/http/middleware"
	"poolside/internal/repositories"
	"poolside/internal/services"
)

func reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		Store:      repositories.NewReservationRepo(intconfig.DB),
		CasualRate: env.CasualRate,
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/reservations
func CreateReservation(c *gin.Context) {
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "bad_payload", "payload inválido", nil)
		return
	}

	saved, err := reservationService(c).Create(c.Request.Context(), input)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GET /api/reservations?limit=N
func ListReservations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, "bad_limit", "limit inválido", nil)
			return
		}
		limit = n
	}

	list, err := reservationService(c).ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": list})
}

// GET /api/reservations/:code
func GetReservationByCode(c *gin.Context) {
	rec, err := reservationService(c).FindByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /api/reservations/:code/voucher
func GetReservationVoucher(c *gin.Context) {
	svc := services.VoucherService{
		Store:     repositories.NewReservationRepo(intconfig.DB),
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GenerateVoucher(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func reservationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "bad_id", "id inválido", nil)
		return 0, false
	}
	return id, true
}

// PUT /api/admin/reservations/:id/approve
func ApproveReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := reservationService(c).Approve(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reserva aprobada"})
}

type rejectRequest struct {
	RejectionReason string `json:"rejection_reason"`
}

// PUT /api/admin/reservations/:id/reject
func RejectReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_payload", "payload inválido", nil)
		return
	}
	if err := reservationService(c).Reject(c.Request.Context(), id, req.RejectionReason); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reserva rechazada"})
}

// PUT /api/admin/reservations/:id/cancel
func CancelReservation(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	if err := reservationService(c).Cancel(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reserva cancelada"})
}
