package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/yigit/allizzwell/internal/app/models"
	"github.com/yigit/allizzwell/internal/pkg/apperrors"
	"github.com/yigit/allizzwell/internal/pkg/validation"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Options control how a seed is loaded
type Options struct {
	// Path of a YAML seed file; empty loads the embedded fixtures
	Path string
	// Strict rejects the whole seed when any student record is malformed
	Strict bool
}

// Load reads the initial dashboard state.
// In strict mode a malformed student record fails the load; otherwise it is logged and kept.
func Load(opts Options, lgr zerolog.Logger) (*models.Snapshot, error) {
	data := defaultFixtures
	source := "embedded"
	if opts.Path != "" {
		b, err := os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
		source = opts.Path
	}

	snap, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var finalErr error
	for _, s := range snap.Students {
		if err := validation.Student(s); err != nil {
			if opts.Strict {
				finalErr = errors.Join(finalErr, fmt.Errorf("student %s: %w", s.ID, err))
				continue
			}
			lgr.Warn().Err(err).Str("studentId", s.ID).Msg("Keeping malformed student record")
		}
	}
	if finalErr != nil {
		lgr.Error().Err(finalErr).Str("source", source).Msg("Seed rejected")
		return nil, finalErr
	}

	lgr.Info().
		Str("source", source).
		Int("students", len(snap.Students)).
		Int("counsellors", len(snap.Counsellors)).
		Int("posts", len(snap.AnonymousPosts)).
		Msg("Seed loaded")
	return snap, nil
}

// Parse decodes a YAML seed and checks that record ids are unique
func Parse(data []byte) (*models.Snapshot, error) {
	snap := &models.Snapshot{}
	if err := yaml.Unmarshal(data, snap); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}

	if err := checkUnique("student", len(snap.Students), func(i int) string { return snap.Students[i].ID }); err != nil {
		return nil, err
	}
	if err := checkUnique("counsellor", len(snap.Counsellors), func(i int) string { return snap.Counsellors[i].ID }); err != nil {
		return nil, err
	}
	if err := checkUnique("post", len(snap.AnonymousPosts), func(i int) string { return fmt.Sprint(snap.AnonymousPosts[i].ID) }); err != nil {
		return nil, err
	}

	return snap, nil
}

func checkUnique(kind string, n int, id func(int) string) error {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		key := id(i)
		if seen[key] {
			return apperrors.NewConflictError(fmt.Sprintf("duplicate %s id %q", kind, key))
		}
		seen[key] = true
	}
	return nil
}
