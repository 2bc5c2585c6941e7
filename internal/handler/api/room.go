package api

import (
	"errors"
	"net/http"

	"hotel-management-service/internal/domain/schedule"
	reqdto "hotel-management-service/internal/handler/dto/request"
	resdto "hotel-management-service/internal/handler/dto/response"
	"hotel-management-service/internal/pkg/errs"
	"hotel-management-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description List rooms with computed status, optionally filtered
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param room_type query string false "Room type filter"
// @Param floor query int false "Floor filter"
// @Param on_maintenance query bool false "Maintenance flag filter"
// @Param available_from query string false "Availability range start (date or RFC 3339)"
// @Param available_to query string false "Availability range end (date or RFC 3339)"
// @Param date query string false "Status check instant (date or RFC 3339 with offset)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.RoomListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var q reqdto.ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	params, err := q.ToParams()
	if err != nil {
		h.respondDateError(c, err)
		return
	}

	paged, err := h.roomQueries.ListRooms(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromPagedRooms(paged))
}

// @Summary Get room
// @Description Get a room with its maintenance issues and computed status
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param date query string false "Status check instant (date or RFC 3339 with offset)"
// @Success 200 {object} resdto.RoomDetailResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var q reqdto.RoomStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	checkAt, err := q.CheckTime()
	if err != nil {
		h.respondDateError(c, err)
		return
	}

	detail, err := h.roomQueries.GetRoom(c.Request.Context(), id, checkAt)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomDetailView(detail))
}

// @Summary Check room availability
// @Description Check whether a room is free for the whole [start, end) range
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param start query string true "Range start (date or RFC 3339 with offset)"
// @Param end query string true "Range end (date or RFC 3339 with offset)"
// @Param exclude_reservation_id query string false "Reservation to ignore when probing"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var q reqdto.RoomAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both start and end are required",
		})
		return
	}

	start, end, err := q.Range()
	if err != nil {
		h.respondDateError(c, err)
		return
	}

	excludeID, err := q.ExcludeID()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid exclude_reservation_id format",
		})
		return
	}

	available, err := h.roomQueries.IsRoomAvailable(c.Request.Context(), id, start, end, excludeID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, errs.ErrInvalidStayPeriod):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End must be after start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:    id,
		Start:     start,
		End:       end,
		Available: available,
	})
}

func (h *RoomHandler) respondDateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrAmbiguousTimestamp):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Timestamp must include an explicit UTC offset",
		})
	case errors.Is(err, schedule.ErrMalformedDate):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Malformed date; use YYYY-MM-DD or RFC 3339",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date input",
		})
	}
}
