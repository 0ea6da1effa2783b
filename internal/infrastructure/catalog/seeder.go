package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/reminderly/reminderly/internal/domain/reminder"
	"github.com/reminderly/reminderly/internal/shared/logger"
)

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type SeedResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// Seeder writes catalog entries as reminder types. The whole catalog is
// applied in one transaction, so a bad entry leaves the store untouched.
type Seeder struct {
	types  reminder.ReminderTypeRepository
	tx     Transactor
	logger logger.Interface
}

func NewSeeder(types reminder.ReminderTypeRepository, tx Transactor, logger logger.Interface) *Seeder {
	return &Seeder{types: types, tx: tx, logger: logger}
}

// Seed creates missing types. Existing types (matched by name) are skipped
// unless overwrite is set, in which case they are replaced by the entry.
func (s *Seeder) Seed(ctx context.Context, c *Catalog, overwrite bool) (*SeedResult, error) {
	result := &SeedResult{}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, entry := range c.ReminderTypes {
			existing, err := s.types.GetByName(ctx, entry.Name)
			if err != nil && !errors.Is(err, reminder.ErrReminderTypeNotFound) {
				return fmt.Errorf("failed to look up %q: %w", entry.Name, err)
			}

			switch {
			case existing == nil:
				rt, err := entry.Build()
				if err != nil {
					return fmt.Errorf("catalog entry %q: %w", entry.Name, err)
				}
				if err := s.types.Create(ctx, rt); err != nil {
					return fmt.Errorf("failed to create %q: %w", entry.Name, err)
				}
				result.Created++
			case overwrite:
				if err := entry.Overwrite(existing); err != nil {
					return fmt.Errorf("catalog entry %q: %w", entry.Name, err)
				}
				if err := s.types.Update(ctx, existing); err != nil {
					return fmt.Errorf("failed to update %q: %w", entry.Name, err)
				}
				result.Updated++
			default:
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Errorw("catalog seed failed", "error", err)
		return nil, err
	}

	s.logger.Infow("catalog seeded",
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}
