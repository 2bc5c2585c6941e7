//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-management-service/internal/infra"
	"hotel-management-service/internal/pkg/clock"
	"hotel-management-service/internal/pkg/errs"
	"hotel-management-service/internal/usecase/queries"
	"hotel-management-service/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoomReadStore returns canned rows; queries compute status on top.
type stubRoomReadStore struct {
	rows   []*queries.RoomRow
	issues []queries.MaintenanceIssueView
	spans  []queries.ReservationSpanRow
	err    error
}

func (s *stubRoomReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RoomRow, []queries.MaintenanceIssueView, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	for _, row := range s.rows {
		if row.ID == id {
			return row, s.issues, nil
		}
	}
	return nil, nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
}

func (s *stubRoomReadStore) List(_ context.Context, _ queries.RoomFilter) ([]*queries.RoomRow, int64, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.rows, int64(len(s.rows)), nil
}

func (s *stubRoomReadStore) ActiveSpans(_ context.Context, _ uuid.UUID) ([]queries.ReservationSpanRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.spans, nil
}

func fixedClock() *clock.MockClock {
	return clock.NewMockClock(time.Date(2025, 7, 11, 10, 0, 0, 0, time.UTC))
}

func TestListRooms_StatusComputation(t *testing.T) {
	stay := func(b *builder.RoomBuilder, status string) *builder.RoomBuilder {
		return b.WithActiveSpan(
			time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
			status,
		)
	}

	occupied := stay(builder.NewRoomBuilder(), "Checked-in")
	reserved := stay(builder.NewRoomBuilder(), "Pending")
	maintenance := stay(builder.NewRoomBuilder(), "Checked-in").With(func(b *builder.RoomBuilder) {
		b.OnMaintenance = true
	})
	free := builder.NewRoomBuilder()

	store := &stubRoomReadStore{rows: []*queries.RoomRow{
		occupied.BuildRow(), reserved.BuildRow(), maintenance.BuildRow(), free.BuildRow(),
	}}
	q := queries.NewRoomQueries(store, fixedClock())

	paged, err := q.ListRooms(context.Background(), queries.ListRoomsParams{})
	require.NoError(t, err)
	require.Len(t, paged.Items, 4)

	assert.Equal(t, "Occupied", paged.Items[0].Status)
	assert.Equal(t, "Reserved", paged.Items[1].Status)
	// Maintenance wins over an in-progress stay.
	assert.Equal(t, "Maintenance", paged.Items[2].Status)
	assert.Equal(t, "Available", paged.Items[3].Status)
	// No explicit date: statuses are evaluated as of now.
	assert.True(t, paged.StatusCheckTime.Equal(fixedClock().NowUTC()))
}

func TestListRooms_DateOnlyCheckUsesAfternoon(t *testing.T) {
	// Guest checks out on the 11th (exclusive end); a date-only check for
	// the 11th lands at 16:00, after checkout, so the room reads Available.
	room := builder.NewRoomBuilder().WithActiveSpan(
		time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
		"Checked-in",
	)
	store := &stubRoomReadStore{rows: []*queries.RoomRow{room.BuildRow()}}
	q := queries.NewRoomQueries(store, fixedClock())

	checkDate := time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC)
	paged, err := q.ListRooms(context.Background(), queries.ListRoomsParams{StatusCheckDate: &checkDate})
	require.NoError(t, err)

	assert.Equal(t, "Available", paged.Items[0].Status)
	assert.Equal(t, time.Date(2025, 7, 11, 16, 0, 0, 0, time.UTC), paged.StatusCheckTime)
}

func TestListRooms_PagingDefaults(t *testing.T) {
	store := &stubRoomReadStore{}
	q := queries.NewRoomQueries(store, fixedClock())

	paged, err := q.ListRooms(context.Background(), queries.ListRoomsParams{
		Filter: queries.RoomFilter{Page: -1, PageSize: 10_000},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, paged.Page)
	assert.Equal(t, 100, paged.PageSize)
}

func TestGetRoom(t *testing.T) {
	room := builder.NewRoomBuilder()
	store := &stubRoomReadStore{
		rows: []*queries.RoomRow{room.BuildRow()},
		issues: []queries.MaintenanceIssueView{
			{ID: uuid.New(), RoomID: room.ID, Description: "Flickering lamp"},
		},
	}
	q := queries.NewRoomQueries(store, fixedClock())

	t.Run("found", func(t *testing.T) {
		detail, err := q.GetRoom(context.Background(), room.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, room.ID, detail.ID)
		assert.Equal(t, "Available", detail.Status)
		assert.Len(t, detail.Issues, 1)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := q.GetRoom(context.Background(), uuid.New(), nil)
		assert.ErrorIs(t, err, errs.ErrRoomNotFound)
	})
}

func TestIsRoomAvailable(t *testing.T) {
	roomID := uuid.New()
	existingID := uuid.New()
	store := &stubRoomReadStore{spans: []queries.ReservationSpanRow{{
		ID:      existingID,
		StartAt: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
		Status:  "Pending",
	}}}
	q := queries.NewRoomQueries(store, fixedClock())

	t.Run("overlap is unavailable", func(t *testing.T) {
		ok, err := q.IsRoomAvailable(context.Background(), roomID,
			time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("back-to-back is available", func(t *testing.T) {
		ok, err := q.IsRoomAvailable(context.Background(), roomID,
			time.Date(2025, 7, 12, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), nil)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("excluding the overlapping reservation frees the range", func(t *testing.T) {
		ok, err := q.IsRoomAvailable(context.Background(), roomID,
			time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC), &existingID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := q.IsRoomAvailable(context.Background(), roomID,
			time.Date(2025, 7, 13, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidStayPeriod)
	})
}
