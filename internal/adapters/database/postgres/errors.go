package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
)

// translate maps gorm lookup failures onto the domain sentinel.
// Duplicate-key violations are mapped per storage, since each unique
// index has its own domain meaning.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.ErrNotFound
	}
	return err
}
