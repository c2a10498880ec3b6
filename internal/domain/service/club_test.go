package service

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/internal/domain/entity"
)

func TestClubCreate(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")

	club, err := e.clubs.Create(ctx, owner.ID, entity.Club{
		Name:        "Sea to Sky Riders",
		Description: "Road rides from Vancouver to Whistler",
		Rules:       "Helmets required",
		Category:    "cycling",
		Levels:      pq.StringArray{"intermediate"},
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, club.OwnerID)
	assert.True(t, club.Active)
	assert.False(t, club.Public)
}

func TestClubCreateValidation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")

	valid := entity.Club{
		Name:        "Riders",
		Description: "Road rides",
		Rules:       "Helmets required",
		Category:    "cycling",
		Levels:      pq.StringArray{"beginner"},
	}
	mutations := []struct {
		name   string
		mutate func(*entity.Club)
	}{
		{name: "missing name", mutate: func(c *entity.Club) { c.Name = "" }},
		{name: "missing description", mutate: func(c *entity.Club) { c.Description = "  " }},
		{name: "missing rules", mutate: func(c *entity.Club) { c.Rules = "" }},
		{name: "missing category", mutate: func(c *entity.Club) { c.Category = "" }},
		{name: "missing levels", mutate: func(c *entity.Club) { c.Levels = nil }},
	}
	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			club := valid
			tt.mutate(&club)
			_, err := e.clubs.Create(ctx, owner.ID, club)
			require.ErrorIs(t, err, errorz.ErrValidation)
		})
	}
}

func TestClubGetVisible(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	viewer := e.seedUser(t, "viewer@example.com")

	public := e.seedClub(t, owner.ID, true)
	private := e.seedClub(t, owner.ID, false)

	_, err := e.clubs.GetVisible(ctx, public.ID, "")
	require.NoError(t, err)

	_, err = e.clubs.GetVisible(ctx, private.ID, owner.ID)
	require.NoError(t, err)

	// Private clubs do not leak their existence.
	_, err = e.clubs.GetVisible(ctx, private.ID, viewer.ID)
	require.ErrorIs(t, err, errorz.ErrNotFound)

	// Disabled clubs vanish from the public path for everyone.
	_, err = e.clubs.Disable(ctx, owner.ID, public.ID)
	require.NoError(t, err)
	_, err = e.clubs.GetVisible(ctx, public.ID, owner.ID)
	require.ErrorIs(t, err, errorz.ErrNotFound)
}

func TestClubUpdateOwnerOnly(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	stranger := e.seedUser(t, "stranger@example.com")
	club := e.seedClub(t, owner.ID, true)

	club.Name = "Renamed"
	_, err := e.clubs.Update(ctx, stranger.ID, *club)
	require.ErrorIs(t, err, errorz.ErrForbidden)

	updated, err := e.clubs.Update(ctx, owner.ID, *club)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestClubEnableDisableIdempotent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	club := e.seedClub(t, owner.ID, true)

	disabled, err := e.clubs.Disable(ctx, owner.ID, club.ID)
	require.NoError(t, err)
	assert.False(t, disabled.Active)

	disabled, err = e.clubs.Disable(ctx, owner.ID, club.ID)
	require.NoError(t, err)
	assert.False(t, disabled.Active)

	enabled, err := e.clubs.Enable(ctx, owner.ID, club.ID)
	require.NoError(t, err)
	assert.True(t, enabled.Active)
}

func TestClubDisableLeavesMembershipsIntact(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	club := e.seedClub(t, owner.ID, true)
	user := e.seedUser(t, "user@example.com")
	e.seedMember(t, user.ID, club.ID)

	_, err := e.clubs.Disable(ctx, owner.ID, club.ID)
	require.NoError(t, err)

	active, err := e.memberships.IsActiveMember(ctx, user.ID, club.ID)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestClubSearchPublicOnly(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	public := e.seedClub(t, owner.ID, true)
	e.seedClub(t, owner.ID, false)
	hidden := e.seedClub(t, owner.ID, true)
	_, err := e.clubs.Disable(ctx, owner.ID, hidden.ID)
	require.NoError(t, err)

	clubs, err := e.clubs.Search(ctx, entity.ClubFilter{PublicOnly: true}, 50, 0)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, public.ID, clubs[0].ID)
}

func TestClubDeleteCascades(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	club := e.seedClub(t, owner.ID, true)
	event := e.seedEvent(t, club.ID, 5, false)

	member := e.seedUser(t, "member@example.com")
	e.seedMember(t, member.ID, club.ID)
	_, err := e.registrations.Register(ctx, member.ID, event.ID)
	require.NoError(t, err)

	err = e.clubs.Delete(ctx, member.ID, club.ID)
	require.ErrorIs(t, err, errorz.ErrForbidden)

	require.NoError(t, e.clubs.Delete(ctx, owner.ID, club.ID))

	_, err = e.clubs.Get(ctx, club.ID)
	require.ErrorIs(t, err, errorz.ErrNotFound)
	_, err = e.events.Get(ctx, event.ID)
	require.ErrorIs(t, err, errorz.ErrNotFound)
	status, err := e.registrations.StatusFor(ctx, member.ID, event.ID)
	require.NoError(t, err)
	assert.Nil(t, status)
	active, err := e.memberships.IsActiveMember(ctx, member.ID, club.ID)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestUserClubs(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner := e.seedUser(t, "owner@example.com")
	other := e.seedUser(t, "other@example.com")

	owned := e.seedClub(t, owner.ID, true)
	joined := e.seedClub(t, other.ID, true)
	e.seedMember(t, owner.ID, joined.ID)

	clubs, err := e.clubs.UserClubs(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, clubs.Owned, 1)
	assert.Equal(t, owned.ID, clubs.Owned[0].ID)
	require.Len(t, clubs.Member, 1)
	assert.Equal(t, joined.ID, clubs.Member[0].ID)
}
