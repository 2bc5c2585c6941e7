package api

import (
	"errors"
	"net/http"

	"hotel-management-service/internal/domain/schedule"
	reqdto "hotel-management-service/internal/handler/dto/request"
	resdto "hotel-management-service/internal/handler/dto/response"
	"hotel-management-service/internal/pkg/errs"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Book a room for a customer over a [start, end) stay
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams()
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAmbiguousTimestamp):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Timestamp must include an explicit UTC offset",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed date; use YYYY-MM-DD or RFC 3339",
			})
		}
		return
	}

	result, err := h.reservationCommands.CreateReservation(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Stay must cover at least one night",
			})
		case errors.Is(err, commands.ErrRoomUnderMaintenance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room is under maintenance",
			})
		case errors.Is(err, commands.ErrRoomUnavailable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room is not available for the requested stay",
			})
		case errors.Is(err, commands.ErrReservationConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "The room was just booked by another request",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}

// @Summary Get reservation
// @Description Get reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid reservation ID format",
		})
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reservation not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List room reservations
// @Description List all reservations for a room
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/{id}/reservations [get]
func (h *ReservationHandler) ListRoomReservations(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	views, err := h.reservationQueries.ListByRoom(c.Request.Context(), roomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	responses := make([]resdto.ReservationResponse, len(views))
	for i, view := range views {
		responses[i] = resdto.FromReservationView(view)
	}

	c.JSON(http.StatusOK, responses)
}
