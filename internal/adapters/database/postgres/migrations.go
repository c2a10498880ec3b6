package postgres

import "github.com/clubhub-app/clubhub/internal/domain/entity"

// Migrations is a list of all gorm migrations for the database.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Club{},
	&entity.Membership{},
	&entity.Event{},
	&entity.EventRegistration{},
}
