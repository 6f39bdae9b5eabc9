// Package registry loads the canonical World Heritage site registry
// (sites.json), the read-only reference data that site groups are matched
// against. The registry file is produced by an external preparation step and
// is treated as an upstream contract.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"

	"wdpacli/pkg/contracts/domain"
)

// Loader reads and validates the canonical site registry.
type Loader struct {
	logger   *slog.Logger
	validate *validator.Validate
}

// NewLoader creates a registry loader. A nil logger falls back to the
// default.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:   logger,
		validate: validator.New(),
	}
}

// Load reads the JSON array of canonical sites at path, preserving the file
// order (the matcher depends on it for tie-breaking within a heuristic
// tier). Entries missing an identifier or an English name fail the load with
// a positional error rather than surfacing later as silent mismatches.
func (l *Loader) Load(path string) ([]domain.CanonicalSite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("site registry not found at %s (run the site preparation step to generate it): %w", path, err)
		}
		return nil, fmt.Errorf("failed to read site registry %s: %w", path, err)
	}

	var sites []domain.CanonicalSite
	if err := json.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse site registry %s: %w", path, err)
	}

	for i, site := range sites {
		if err := l.validate.Struct(site); err != nil {
			return nil, fmt.Errorf("invalid registry entry at index %d: %w", i, err)
		}
		if site.EnglishName() == "" {
			return nil, fmt.Errorf("invalid registry entry at index %d (id %s): missing English name", i, site.IDNumber)
		}
	}

	l.logger.Info("Loaded site registry",
		slog.String("path", path),
		slog.Int("sites", len(sites)))

	return sites, nil
}
