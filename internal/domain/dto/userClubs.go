package dto

import "github.com/clubhub-app/clubhub/internal/domain/entity"

// UserClubs groups the clubs a user owns and the clubs they belong to.
type UserClubs struct {
	Owned  []entity.Club
	Member []entity.Club
}
