package entity

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidProfileName is returned for profile names outside [a-z0-9_-]{1,64}.
var ErrInvalidProfileName = errors.New("invalid profile name")

const maxProfileNameLength = 64

var profileNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// ZoomProfile is a named, persisted set of permitted zoom levels.
type ZoomProfile struct {
	Name      string
	Levels    []float64 // Image-space levels, normalized (sorted, deduplicated)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewZoomProfile validates the name and levels and returns a normalized profile.
func NewZoomProfile(name string, levels []float64) (*ZoomProfile, error) {
	if err := ValidateProfileName(name); err != nil {
		return nil, err
	}
	permitted, err := NewPermittedLevels(levels)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &ZoomProfile{
		Name:      name,
		Levels:    permitted.Values(),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PermittedLevels returns the profile's levels as a validated set.
func (p *ZoomProfile) PermittedLevels() (PermittedLevels, error) {
	return NewPermittedLevels(p.Levels)
}

// ValidateProfileName checks that a profile name is usable as a storage key.
func ValidateProfileName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidProfileName)
	}
	if len(name) > maxProfileNameLength {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidProfileName, name, maxProfileNameLength)
	}
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q must match [a-z0-9_-]", ErrInvalidProfileName, name)
	}
	return nil
}
