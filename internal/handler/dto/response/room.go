package response

import (
	"time"

	"hotel-management-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       int       `json:"roomNumber"`
	RoomType         string    `json:"roomType"`
	Floor            int       `json:"floor"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	OnMaintenance    bool      `json:"onMaintenance"`
	Amenities        []string  `json:"amenities"`
	Status           string    `json:"status"`
}

type RoomListResponse struct {
	Items           []RoomResponse `json:"items"`
	Page            int            `json:"page"`
	PageSize        int            `json:"pageSize"`
	TotalRecords    int64          `json:"totalRecords"`
	StatusCheckTime time.Time      `json:"statusCheckTime"`
}

type MaintenanceIssueResponse struct {
	ID                  uuid.UUID  `json:"id"`
	RoomID              uuid.UUID  `json:"roomId"`
	Description         string     `json:"description"`
	ReportedAt          time.Time  `json:"reportedAt"`
	EstimatedCompletion time.Time  `json:"estimatedCompletion"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
}

type RoomDetailResponse struct {
	RoomResponse
	Issues          []MaintenanceIssueResponse `json:"maintenanceIssues"`
	StatusCheckTime time.Time                  `json:"statusCheckTime"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID `json:"roomId"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

func FromRoomListItem(rm *queries.RoomListItem) RoomResponse {
	return RoomResponse{
		ID:               rm.ID,
		RoomNumber:       rm.RoomNumber,
		RoomType:         rm.RoomType,
		Floor:            rm.Floor,
		NightlyRateCents: rm.NightlyRateCents,
		OnMaintenance:    rm.OnMaintenance,
		Amenities:        rm.Amenities,
		Status:           rm.Status,
	}
}

func FromPagedRooms(rm *queries.PagedRooms) RoomListResponse {
	items := make([]RoomResponse, len(rm.Items))
	for i, item := range rm.Items {
		items[i] = FromRoomListItem(item)
	}
	return RoomListResponse{
		Items:           items,
		Page:            rm.Page,
		PageSize:        rm.PageSize,
		TotalRecords:    rm.TotalRecords,
		StatusCheckTime: rm.StatusCheckTime,
	}
}

func FromRoomDetailView(rm *queries.RoomDetailView) RoomDetailResponse {
	issues := make([]MaintenanceIssueResponse, len(rm.Issues))
	for i, issue := range rm.Issues {
		issues[i] = MaintenanceIssueResponse{
			ID:                  issue.ID,
			RoomID:              issue.RoomID,
			Description:         issue.Description,
			ReportedAt:          issue.ReportedAt,
			EstimatedCompletion: issue.EstimatedCompletion,
			ResolvedAt:          issue.ResolvedAt,
		}
	}
	return RoomDetailResponse{
		RoomResponse: RoomResponse{
			ID:               rm.ID,
			RoomNumber:       rm.RoomNumber,
			RoomType:         rm.RoomType,
			Floor:            rm.Floor,
			NightlyRateCents: rm.NightlyRateCents,
			OnMaintenance:    rm.OnMaintenance,
			Amenities:        rm.Amenities,
			Status:           rm.Status,
		},
		Issues:          issues,
		StatusCheckTime: rm.StatusCheckTime,
	}
}
