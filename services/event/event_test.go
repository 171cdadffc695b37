package event

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aceup/models"
	"aceup/services/availability"
)

type fakeEventRepo struct {
	events map[string]*models.CalendarEvent
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*models.CalendarEvent)}
}

func (r *fakeEventRepo) Insert(ctx context.Context, event *models.CalendarEvent) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) GetByID(ctx context.Context, eventID string) (*models.CalendarEvent, error) {
	return r.events[eventID], nil
}

func (r *fakeEventRepo) ListByGroup(ctx context.Context, groupID string) ([]models.CalendarEvent, error) {
	var out []models.CalendarEvent
	for _, ev := range r.events {
		if ev.GroupID == groupID {
			out = append(out, *ev)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, eventID string) error {
	delete(r.events, eventID)
	return nil
}

type fakeGroupRepo struct {
	groups map[string]*models.Group
}

func (r *fakeGroupRepo) Create(ctx context.Context, group *models.Group) error { return nil }
func (r *fakeGroupRepo) GetByID(ctx context.Context, groupID string) (*models.Group, error) {
	return r.groups[groupID], nil
}
func (r *fakeGroupRepo) ListByMember(ctx context.Context, memberID string) ([]models.Group, error) {
	return nil, nil
}
func (r *fakeGroupRepo) AddMember(ctx context.Context, groupID string, member models.GroupMember) error {
	return nil
}
func (r *fakeGroupRepo) RemoveMember(ctx context.Context, groupID, memberID string) error {
	return nil
}
func (r *fakeGroupRepo) Delete(ctx context.Context, groupID string) error { return nil }

type fakeRefresher struct {
	enqueued []string
}

func (f *fakeRefresher) EnqueueAvailabilityRefresh(ctx context.Context, groupID string) error {
	f.enqueued = append(f.enqueued, groupID)
	return nil
}

func newTestService() (*DefaultEventService, *fakeEventRepo, *fakeRefresher) {
	repo := newFakeEventRepo()
	refresher := &fakeRefresher{}
	svc := &DefaultEventService{
		Repo: repo,
		GroupRepo: &fakeGroupRepo{groups: map[string]*models.Group{
			"g1": {ID: "g1", Name: "Study Group", Members: []models.GroupMember{
				{MemberID: "alice"}, {MemberID: "bob"},
			}},
		}},
		Refresher: refresher,
	}
	return svc, repo, refresher
}

func TestCreateFromSlot(t *testing.T) {
	svc, repo, refresher := newTestService()

	created, err := svc.CreateFromSlot(context.Background(), CreateEventRequest{
		GroupID:      "g1",
		Title:        "Project sync",
		Date:         "2026-01-05",
		Start:        540,
		End:          600,
		AttendeeIDs:  []string{"alice", "bob"},
		SourceSlotID: "slot-1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "g1", created.GroupID)
	assert.NotNil(t, repo.events[created.ID])
	assert.Equal(t, []string{"g1"}, refresher.enqueued)
}

func TestCreateFromSlotUnknownGroup(t *testing.T) {
	svc, _, refresher := newTestService()

	_, err := svc.CreateFromSlot(context.Background(), CreateEventRequest{
		GroupID:     "missing",
		Title:       "Project sync",
		Date:        "2026-01-05",
		Start:       540,
		End:         600,
		AttendeeIDs: []string{"alice"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, availability.ErrGroupNotFound))
	assert.Empty(t, refresher.enqueued)
}

func TestCreateFromSlotInvalidInput(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name string
		req  CreateEventRequest
	}{
		{"bad date", CreateEventRequest{GroupID: "g1", Title: "x", Date: "05-01-2026", Start: 540, End: 600}},
		{"inverted window", CreateEventRequest{GroupID: "g1", Title: "x", Date: "2026-01-05", Start: 600, End: 540}},
		{"window past day frame", CreateEventRequest{GroupID: "g1", Title: "x", Date: "2026-01-05", Start: 1400, End: 1440}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateFromSlot(context.Background(), tc.req)
			assert.Error(t, err)
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	svc, repo, refresher := newTestService()
	created, err := svc.CreateFromSlot(context.Background(), CreateEventRequest{
		GroupID:     "g1",
		Title:       "Project sync",
		Date:        "2026-01-05",
		Start:       540,
		End:         600,
		AttendeeIDs: []string{"alice"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Nil(t, repo.events[created.ID])
	// One enqueue for the create, one for the delete.
	assert.Equal(t, []string{"g1", "g1"}, refresher.enqueued)
}

func TestDeleteEventUnknownID(t *testing.T) {
	svc, _, refresher := newTestService()
	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEventNotFound))
	assert.Empty(t, refresher.enqueued)
}

func TestRenderICS(t *testing.T) {
	svc, _, _ := newTestService()

	doc, err := svc.RenderICS(models.CalendarEvent{
		ID:          "ev-1",
		GroupID:     "g1",
		Title:       "Project sync",
		Description: "Weekly catch-up",
		Date:        "2026-01-05",
		Start:       540,
		End:         600,
		AttendeeIDs: []string{"alice", "bob"},
		CreatedAt:   time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(doc, "BEGIN:VCALENDAR"))
	assert.Contains(t, doc, "SUMMARY:Project sync")
	assert.Contains(t, doc, "DTSTART:20260105T090000Z")
	assert.Contains(t, doc, "DTEND:20260105T100000Z")
	assert.Contains(t, doc, "UID:ev-1")
	assert.Contains(t, doc, "END:VCALENDAR")
}

func TestRenderICSBadDate(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.RenderICS(models.CalendarEvent{ID: "ev-1", Date: "soon", Start: 540, End: 600})
	assert.Error(t, err)
}
