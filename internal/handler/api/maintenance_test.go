//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-management-service/internal/handler/api"
	reqdto "hotel-management-service/internal/handler/dto/request"
	resdto "hotel-management-service/internal/handler/dto/response"
	"hotel-management-service/internal/usecase/commands"
	"hotel-management-service/tests/common/httptest"
	"hotel-management-service/tests/common/testutil"
	commandsmock "hotel-management-service/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MaintenanceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMaintenanceCommands
	handler      *api.MaintenanceHandler
}

func (s *MaintenanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMaintenanceCommands(s.mockCtrl)
	s.handler = api.NewMaintenanceHandler(s.mockCommands)

	s.router.POST("/rooms/:id/maintenance-issues", s.handler.AddIssue)
	s.router.PUT("/rooms/:id/maintenance", s.handler.SetMaintenance)
}

func (s *MaintenanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMaintenanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}

func (s *MaintenanceHandlerTestSuite) TestAddIssue() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/maintenance-issues"

	reqBody := reqdto.AddMaintenanceIssueRequest{
		Description:         "Broken air conditioning",
		EstimatedCompletion: time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
	}

	s.Run("success: returns 201 Created with issue ID", func() {
		issueID := uuid.New()
		s.mockCommands.EXPECT().AddIssue(gomock.Any(), reqBody.ToParams(roomID)).
			Return(issueID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AddMaintenanceIssueResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(issueID, response.ID)
	})

	s.Run("error: 404 when room does not exist", func() {
		s.mockCommands.EXPECT().AddIssue(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 422 on empty description", func() {
		s.mockCommands.EXPECT().AddIssue(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDomainValidation).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("description", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 on missing estimated completion", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("estimated_completion", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *MaintenanceHandlerTestSuite) TestSetMaintenance() {
	roomID := uuid.New()
	url := "/rooms/" + roomID.String() + "/maintenance"

	on := true
	reqBody := reqdto.SetMaintenanceRequest{OnMaintenance: &on}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), roomID, true).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: clearing the flag also returns 204", func() {
		off := false
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), roomID, false).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.SetMaintenanceRequest{OnMaintenance: &off}, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when room does not exist", func() {
		s.mockCommands.EXPECT().SetRoomMaintenance(gomock.Any(), roomID, true).
			Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 when flag is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
