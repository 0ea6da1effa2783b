package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/reminderly/reminderly/internal/shared/logger"
)

var migrationNamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Dialects that ship their own script directory.
var scriptDialects = []string{"mysql", "postgres", "sqlite"}

// Generator creates new goose SQL files, one per dialect directory.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a new migration generator rooted at scriptsPath
// (normally internal/infrastructure/migration/scripts).
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes <timestamp>_<name>.sql into every dialect directory
// and returns the created paths.
func (g *Generator) CreateMigration(name string) ([]string, error) {
	if !migrationNamePattern.MatchString(name) {
		return nil, fmt.Errorf("migration name %q must be lower snake case", name)
	}

	g.logger.Infow("creating new migration", "name", name)

	now := g.now()
	fileName := fmt.Sprintf("%s_%s.sql", now.Format("20060102150405"), name)
	content := g.template(name, now)

	created := make([]string, 0, len(scriptDialects))
	for _, dialect := range scriptDialects {
		dir := filepath.Join(g.scriptsPath, dialect)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("failed to create scripts directory: %w", err)
		}

		path := filepath.Join(dir, fileName)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", path, err)
		}
		created = append(created, path)
	}

	g.logger.Infow("migration files created successfully", "files", created)
	return created, nil
}

func (g *Generator) template(name string, now time.Time) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- +goose Up

-- +goose Down

`, name, now.Format("2006-01-02 15:04:05"))
}
