// Package repositories is the data access layer: parameterized GORM queries
// only. Driver error types never cross this boundary; callers see one of the
// sentinel errors below while the underlying cause is logged here.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/logger"
)

var (
	// ErrNotFound signals a missing row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a uniqueness-constraint violation.
	ErrDuplicate = errors.New("duplicate record")
	// ErrStore signals any other store failure; the cause is logged, not returned.
	ErrStore = errors.New("store failure")
)

// wrap converts a gorm error into a sentinel and logs the original cause.
func wrap(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		logger.WithCtx(ctx).Error("database error", "op", op, "error", err.Error())
		return fmt.Errorf("%s: %w", op, ErrStore)
	}
}
