package api

import (
	"errors"
	"net/http"

	reqdto "hotel-management-service/internal/handler/dto/request"
	resdto "hotel-management-service/internal/handler/dto/response"
	"hotel-management-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	maintenanceCommands commands.MaintenanceCommands
}

func NewMaintenanceHandler(maintenanceCommands commands.MaintenanceCommands) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceCommands: maintenanceCommands,
	}
}

// @Summary Report maintenance issue
// @Description Record a maintenance issue for a room. Does not change the room's maintenance flag.
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.AddMaintenanceIssueRequest true "Issue report"
// @Success 201 {object} resdto.AddMaintenanceIssueResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/maintenance-issues [post]
func (h *MaintenanceHandler) AddIssue(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.AddMaintenanceIssueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	issueID, err := h.maintenanceCommands.AddIssue(c.Request.Context(), req.ToParams(roomID))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
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

	c.JSON(http.StatusCreated, resdto.AddMaintenanceIssueResponse{ID: issueID})
}

// @Summary Set maintenance flag
// @Description Put a room into or take it out of maintenance
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.SetMaintenanceRequest true "Maintenance flag"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/maintenance [put]
func (h *MaintenanceHandler) SetMaintenance(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.SetMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.maintenanceCommands.SetRoomMaintenance(c.Request.Context(), roomID, *req.OnMaintenance); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
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

	c.Status(http.StatusNoContent)
}
