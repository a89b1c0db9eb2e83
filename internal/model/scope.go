package model

import (
	"errors"
	"fmt"
)

// Scope is the identity resolved for a request. The zero value is anonymous.
type Scope struct {
	UserID string
	Email  string
}

// Authenticated reports whether the request carried a valid identity.
func (s Scope) Authenticated() bool {
	return s.UserID != ""
}

// Programming experience levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Hardware backgrounds.
const (
	HardwareNone         = "none"
	HardwareHobbyist     = "hobbyist"
	HardwareProfessional = "professional"
)

// Learning goals.
const (
	GoalCareerTransition = "career_transition"
	GoalAcademic         = "academic"
	GoalPersonal         = "personal"
	GoalUpskilling       = "upskilling"
)

// UserProfile is the background a reader gives at sign-up, used to adapt chapters.
type UserProfile struct {
	ProgrammingLevel   string
	HardwareBackground string
	LearningGoals      []string
}

var ErrInvalidProfile = errors.New("invalid user profile")

// Validate checks every field against the known values. At least one
// learning goal is required and duplicates are rejected.
func (p UserProfile) Validate() error {
	switch p.ProgrammingLevel {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
	default:
		return fmt.Errorf("%w: programming_level %q", ErrInvalidProfile, p.ProgrammingLevel)
	}
	switch p.HardwareBackground {
	case HardwareNone, HardwareHobbyist, HardwareProfessional:
	default:
		return fmt.Errorf("%w: hardware_background %q", ErrInvalidProfile, p.HardwareBackground)
	}
	if len(p.LearningGoals) == 0 {
		return fmt.Errorf("%w: at least one learning goal is required", ErrInvalidProfile)
	}
	seen := make(map[string]bool, len(p.LearningGoals))
	for _, g := range p.LearningGoals {
		switch g {
		case GoalCareerTransition, GoalAcademic, GoalPersonal, GoalUpskilling:
		default:
			return fmt.Errorf("%w: learning goal %q", ErrInvalidProfile, g)
		}
		if seen[g] {
			return fmt.Errorf("%w: duplicate learning goal %q", ErrInvalidProfile, g)
		}
		seen[g] = true
	}
	return nil
}
