package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// env wires every service against one shared in-memory database, the
// same shape cmd/server builds against postgres.
type env struct {
	db       *memoryDB
	notifier *fakeNotifier

	users         *UserService
	clubs         *ClubService
	memberships   *MembershipService
	events        *EventService
	registrations *EventRegistrationService
}

func newEnv() *env {
	db := newMemoryDB()
	userStorage := &memoryUserStorage{db: db}
	clubStorage := &memoryClubStorage{db: db}
	membershipStorage := &memoryMembershipStorage{db: db}
	eventStorage := &memoryEventStorage{db: db}
	registrationStorage := &memoryRegistrationStorage{db: db}
	notifier := &fakeNotifier{}

	return &env{
		db:            db,
		notifier:      notifier,
		users:         NewUserService(userStorage, "test-secret", time.Hour),
		clubs:         NewClubService(clubStorage, clubStorage),
		memberships:   NewMembershipService(membershipStorage, clubStorage, userStorage, notifier),
		events:        NewEventService(eventStorage, clubStorage, registrationStorage, membershipStorage),
		registrations: NewEventRegistrationService(registrationStorage, eventStorage, clubStorage, membershipStorage),
	}
}

func (e *env) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()
	user, _, err := e.users.SignUp(context.Background(), email, "Jamie", "Rivera", "password1")
	require.NoError(t, err)
	return user
}

func (e *env) seedClub(t *testing.T, ownerID string, public bool) *entity.Club {
	t.Helper()
	club, err := e.clubs.Create(context.Background(), ownerID, entity.Club{
		Name:        fmt.Sprintf("Club %d", len(e.db.clubs)+1),
		Description: "Weekly group runs around the seawall",
		Rules:       "Show up on time, no drop rides",
		Category:    "running",
		Levels:      pq.StringArray{"beginner", "intermediate"},
		Public:      public,
	})
	require.NoError(t, err)
	return club
}

func (e *env) seedEvent(t *testing.T, clubID string, max int, waitlist bool) *entity.Event {
	t.Helper()
	club, err := e.clubs.Get(context.Background(), clubID)
	require.NoError(t, err)
	event, err := e.events.Create(context.Background(), club.OwnerID, entity.Event{
		ClubID:          clubID,
		Name:            "Sunday Long Run",
		Location:        "ChIJN1t_tDeuEmsRUsoyG83frY4",
		LocationName:    "Stanley Park",
		StartsAt:        time.Now().Add(24 * time.Hour),
		EndsAt:          time.Now().Add(26 * time.Hour),
		MaxParticipants: max,
		HasWaitlist:     waitlist,
	})
	require.NoError(t, err)
	return event
}

// seedMember inserts an active membership directly, bypassing the join
// flow.
func (e *env) seedMember(t *testing.T, userID, clubID string) *entity.Membership {
	t.Helper()
	storage := &memoryMembershipStorage{db: e.db}
	membership, err := storage.Create(context.Background(), &entity.Membership{
		UserID: userID,
		ClubID: clubID,
		Status: entity.MembershipActive,
		Role:   entity.RoleMember,
	})
	require.NoError(t, err)
	return membership
}
