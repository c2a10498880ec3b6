package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/dto"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

// memoryDB is an in-memory stand-in for postgres, shared by the fake
// storages the way the real ones share a *gorm.DB. A single mutex
// serializes every operation, which also gives Register the per-event
// atomicity the real storage gets from its row lock.
type memoryDB struct {
	mu            sync.Mutex
	users         map[string]entity.User
	clubs         map[string]entity.Club
	memberships   map[string]entity.Membership
	events        map[string]entity.Event
	registrations map[string]entity.EventRegistration
}

func newMemoryDB() *memoryDB {
	return &memoryDB{
		users:         make(map[string]entity.User),
		clubs:         make(map[string]entity.Club),
		memberships:   make(map[string]entity.Membership),
		events:        make(map[string]entity.Event),
		registrations: make(map[string]entity.EventRegistration),
	}
}

func (db *memoryDB) deleteClubLocked(id string) {
	for eventID, event := range db.events {
		if event.ClubID != id {
			continue
		}
		for regID, reg := range db.registrations {
			if reg.EventID == eventID {
				delete(db.registrations, regID)
			}
		}
		delete(db.events, eventID)
	}
	for memID, membership := range db.memberships {
		if membership.ClubID == id {
			delete(db.memberships, memID)
		}
	}
	delete(db.clubs, id)
}

type memoryUserStorage struct{ db *memoryDB }

func (s *memoryUserStorage) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.users {
		if existing.Email == user.Email {
			return nil, errorz.ErrEmailTaken
		}
	}
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	s.db.users[user.ID] = *user
	return user, nil
}

func (s *memoryUserStorage) Get(_ context.Context, id string) (*entity.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	user, ok := s.db.users[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	return &user, nil
}

func (s *memoryUserStorage) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, user := range s.db.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (s *memoryUserStorage) Update(_ context.Context, user *entity.User) (*entity.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.users[user.ID] = *user
	return user, nil
}

func (s *memoryUserStorage) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for clubID, club := range s.db.clubs {
		if club.OwnerID == id {
			s.db.deleteClubLocked(clubID)
		}
	}
	for regID, reg := range s.db.registrations {
		if reg.UserID == id {
			delete(s.db.registrations, regID)
		}
	}
	for memID, membership := range s.db.memberships {
		if membership.UserID == id {
			delete(s.db.memberships, memID)
		}
	}
	delete(s.db.users, id)
	return nil
}

func (s *memoryUserStorage) GetWithPagination(_ context.Context, limit, offset int, _ string) ([]entity.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var users []entity.User
	for _, user := range s.db.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return paginate(users, limit, offset), nil
}

func (s *memoryUserStorage) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.users)), nil
}

type memoryClubStorage struct{ db *memoryDB }

func (s *memoryClubStorage) Create(_ context.Context, club *entity.Club) (*entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	club.ID = uuid.New().String()
	club.CreatedAt = time.Now()
	s.db.clubs[club.ID] = *club
	return club, nil
}

func (s *memoryClubStorage) Get(_ context.Context, id string) (*entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	club, ok := s.db.clubs[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	return &club, nil
}

func (s *memoryClubStorage) Update(_ context.Context, club *entity.Club) (*entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.clubs[club.ID] = *club
	return club, nil
}

func (s *memoryClubStorage) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.deleteClubLocked(id)
	return nil
}

func (s *memoryClubStorage) GetByOwnerID(_ context.Context, ownerID string) ([]entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var clubs []entity.Club
	for _, club := range s.db.clubs {
		if club.OwnerID == ownerID {
			clubs = append(clubs, club)
		}
	}
	sortClubs(clubs)
	return clubs, nil
}

func (s *memoryClubStorage) Search(_ context.Context, filter entity.ClubFilter, limit, offset int) ([]entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var clubs []entity.Club
	for _, club := range s.db.clubs {
		if filter.PublicOnly && (!club.Public || !club.Active) {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(club.Name), strings.ToLower(filter.Query)) {
			continue
		}
		if filter.Category != "" && club.Category != filter.Category {
			continue
		}
		if filter.Level != "" && !club.HasLevel(filter.Level) {
			continue
		}
		clubs = append(clubs, club)
	}
	sortClubs(clubs)
	return paginate(clubs, limit, offset), nil
}

func (s *memoryClubStorage) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.clubs)), nil
}

func (s *memoryClubStorage) GetClubsByUserID(_ context.Context, userID string) ([]entity.Club, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var clubs []entity.Club
	for _, membership := range s.db.memberships {
		if membership.UserID != userID {
			continue
		}
		if club, ok := s.db.clubs[membership.ClubID]; ok {
			clubs = append(clubs, club)
		}
	}
	sortClubs(clubs)
	return clubs, nil
}

type memoryMembershipStorage struct{ db *memoryDB }

func (s *memoryMembershipStorage) Create(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, existing := range s.db.memberships {
		if existing.UserID == membership.UserID && existing.ClubID == membership.ClubID {
			return nil, errorz.ErrAlreadyMember
		}
	}
	membership.ID = uuid.New().String()
	membership.CreatedAt = time.Now()
	s.db.memberships[membership.ID] = *membership
	return membership, nil
}

func (s *memoryMembershipStorage) Get(_ context.Context, id string) (*entity.Membership, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	membership, ok := s.db.memberships[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	return &membership, nil
}

func (s *memoryMembershipStorage) GetByUserAndClub(_ context.Context, userID, clubID string) (*entity.Membership, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, membership := range s.db.memberships {
		if membership.UserID == userID && membership.ClubID == clubID {
			m := membership
			return &m, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (s *memoryMembershipStorage) Update(_ context.Context, membership *entity.Membership) (*entity.Membership, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.memberships[membership.ID] = *membership
	return membership, nil
}

func (s *memoryMembershipStorage) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.memberships, id)
	return nil
}

func (s *memoryMembershipStorage) GetMembersByClubID(_ context.Context, clubID string) ([]dto.ClubMember, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var members []dto.ClubMember
	for _, membership := range s.db.memberships {
		if membership.ClubID != clubID {
			continue
		}
		user := s.db.users[membership.UserID]
		members = append(members, dto.NewClubMember(membership, user))
	}
	sort.Slice(members, func(i, j int) bool { return members[i].JoinedAt.Before(members[j].JoinedAt) })
	return members, nil
}

func (s *memoryMembershipStorage) CountByClubIDAndStatus(_ context.Context, clubID string, status entity.MembershipStatus) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var count int64
	for _, membership := range s.db.memberships {
		if membership.ClubID == clubID && membership.Status == status {
			count++
		}
	}
	return count, nil
}

type memoryEventStorage struct{ db *memoryDB }

func (s *memoryEventStorage) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	event.ID = uuid.New().String()
	event.CreatedAt = time.Now()
	s.db.events[event.ID] = *event
	return event, nil
}

func (s *memoryEventStorage) Get(_ context.Context, id string) (*entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	event, ok := s.db.events[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	return &event, nil
}

func (s *memoryEventStorage) Update(_ context.Context, event *entity.Event) (*entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.events[event.ID] = *event
	return event, nil
}

func (s *memoryEventStorage) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for regID, reg := range s.db.registrations {
		if reg.EventID == id {
			delete(s.db.registrations, regID)
		}
	}
	delete(s.db.events, id)
	return nil
}

func (s *memoryEventStorage) GetByClubID(_ context.Context, clubID string) ([]entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []entity.Event
	for _, event := range s.db.events {
		if event.ClubID == clubID {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (s *memoryEventStorage) GetUpcomingByClubID(_ context.Context, clubID string, now time.Time) ([]entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []entity.Event
	for _, event := range s.db.events {
		if event.ClubID == clubID && event.StartsAt.After(now) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.Before(events[j].StartsAt) })
	return events, nil
}

func (s *memoryEventStorage) GetPastByClubID(_ context.Context, clubID string, now time.Time) ([]entity.Event, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var events []entity.Event
	for _, event := range s.db.events {
		if event.ClubID == clubID && !event.StartsAt.After(now) {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].StartsAt.After(events[j].StartsAt) })
	return events, nil
}

func (s *memoryEventStorage) Count(_ context.Context) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	return int64(len(s.db.events)), nil
}

type memoryRegistrationStorage struct{ db *memoryDB }

func (s *memoryRegistrationStorage) Register(_ context.Context, eventID, userID string) (*entity.EventRegistration, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	event, ok := s.db.events[eventID]
	if !ok {
		return nil, errorz.ErrNotFound
	}

	var confirmed int64
	for _, existing := range s.db.registrations {
		if existing.EventID != eventID {
			continue
		}
		if existing.UserID == userID {
			return nil, errorz.ErrAlreadyRegistered
		}
		if existing.Status == entity.RegistrationConfirmed {
			confirmed++
		}
	}

	status, err := entity.DecideRegistrationStatus(&event, confirmed)
	if err != nil {
		return nil, err
	}

	registration := entity.EventRegistration{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		EventID:   eventID,
		UserID:    userID,
		Status:    status,
	}
	s.db.registrations[registration.ID] = registration
	return &registration, nil
}

func (s *memoryRegistrationStorage) Get(_ context.Context, id string) (*entity.EventRegistration, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	registration, ok := s.db.registrations[id]
	if !ok {
		return nil, errorz.ErrNotFound
	}
	return &registration, nil
}

func (s *memoryRegistrationStorage) GetByUserAndEvent(_ context.Context, userID, eventID string) (*entity.EventRegistration, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	for _, registration := range s.db.registrations {
		if registration.UserID == userID && registration.EventID == eventID {
			r := registration
			return &r, nil
		}
	}
	return nil, errorz.ErrNotFound
}

func (s *memoryRegistrationStorage) Update(_ context.Context, registration *entity.EventRegistration) (*entity.EventRegistration, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	s.db.registrations[registration.ID] = *registration
	return registration, nil
}

func (s *memoryRegistrationStorage) Delete(_ context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	delete(s.db.registrations, id)
	return nil
}

func (s *memoryRegistrationStorage) GetRegistrantsByEventID(_ context.Context, eventID string) ([]dto.EventRegistrant, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var registrants []dto.EventRegistrant
	for _, registration := range s.db.registrations {
		if registration.EventID != eventID {
			continue
		}
		user := s.db.users[registration.UserID]
		registrants = append(registrants, dto.NewEventRegistrant(registration, user))
	}
	sort.Slice(registrants, func(i, j int) bool {
		if registrants[i].Status != registrants[j].Status {
			return registrants[i].Status == entity.RegistrationConfirmed
		}
		return registrants[i].RegisteredAt.Before(registrants[j].RegisteredAt)
	})
	return registrants, nil
}

func (s *memoryRegistrationStorage) CountByEventIDAndStatus(_ context.Context, eventID string, status entity.RegistrationStatus) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	var count int64
	for _, registration := range s.db.registrations {
		if registration.EventID == eventID && registration.Status == status {
			count++
		}
	}
	return count, nil
}

// fakeNotifier records approval notifications.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (n *fakeNotifier) SendMembershipApproved(to, _, _ string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to)
}

func (n *fakeNotifier) recipients() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

func sortClubs(clubs []entity.Club) {
	sort.Slice(clubs, func(i, j int) bool { return clubs[i].Name < clubs[j].Name })
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
