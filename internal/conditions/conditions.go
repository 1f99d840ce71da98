// Package conditions implements the status condition system: a closed set of
// condition kinds, per-creature active sets, duration and recurring-save
// handling at turn boundaries, and the net advantage computation conditions
// impose on attack rolls.
package conditions

import (
	"strings"

	"github.com/solo5e/combatsim/internal/entities"
	"github.com/solo5e/combatsim/internal/errors"
)

// Kind identifies a condition
type Kind string

// Condition kinds
const (
	Poisoned   Kind = "poisoned"
	Prone      Kind = "prone"
	Restrained Kind = "restrained"
	Grappled   Kind = "grappled"
)

// ParseKind parses a condition kind name from configs and content JSON
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "poisoned":
		return Poisoned, nil
	case "prone":
		return Prone, nil
	case "restrained":
		return Restrained, nil
	case "grappled":
		return Grappled, nil
	default:
		return "", errors.InvalidArgumentf("invalid condition: %q", s).
			WithMeta("field", "kind").WithMeta("value", s)
	}
}

// ParseKindList parses a comma-or-list form of condition names, rejecting
// unknown entries.
func ParseKindList(names []string) ([]Kind, error) {
	kinds := make([]Kind, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		k, err := ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Phase is a turn boundary at which a condition may expire
type Phase string

// Turn phases
const (
	PhaseNone        Phase = ""
	PhaseStartOfTurn Phase = "start_of_turn"
	PhaseEndOfTurn   Phase = "end_of_turn"
)

// SavingThrow holds the ability and difficulty class of a save
type SavingThrow struct {
	Ability entities.Ability `json:"ability"`
	DC      int              `json:"dc"`
}

// Duration describes how a condition lasts. A zero Duration means the
// condition persists until removed by some other effect.
type Duration struct {
	// Until, when set, expires the condition on the affected creature's
	// next occurrence of that phase.
	Until Phase `json:"until,omitempty"`

	// SaveEndsEachTurn lets the affected creature re-attempt the spec's
	// save at the end of each of its turns; success ends the condition.
	SaveEndsEachTurn bool `json:"save_ends_each_turn,omitempty"`
}

// Spec is a condition as authored in content: the kind, an optional
// application save, and the duration policy.
type Spec struct {
	Kind     Kind         `json:"kind"`
	Save     *SavingThrow `json:"save,omitempty"`
	Duration Duration     `json:"duration,omitempty"`
}

// Validate rejects unknown kinds, malformed phases, and a recurring save
// with no saving throw to recur.
func (s Spec) Validate() error {
	if _, err := ParseKind(string(s.Kind)); err != nil {
		return err
	}
	switch s.Duration.Until {
	case PhaseNone, PhaseStartOfTurn, PhaseEndOfTurn:
	default:
		return errors.InvalidArgumentf("invalid condition duration phase: %q", s.Duration.Until).
			WithMeta("field", "duration.until").WithMeta("value", string(s.Duration.Until))
	}
	if s.Duration.SaveEndsEachTurn && s.Save == nil {
		return errors.InvalidArgument("condition with save_ends_each_turn requires saving throw parameters").
			WithMeta("field", "duration.save_ends_each_turn")
	}
	return nil
}

// Active is a condition currently affecting a creature
type Active struct {
	Kind             Kind
	SaveEndsEachTurn bool
	EndPhase         Phase
	EndSave          *SavingThrow

	// pendingOneTurn makes a phase-bound duration expire exactly once.
	pendingOneTurn bool
}

// NewActive creates an indefinite condition of the given kind
func NewActive(kind Kind) Active {
	return Active{Kind: kind}
}

// FromSpec creates the active condition a spec applies
func FromSpec(spec Spec) Active {
	return Active{
		Kind:             spec.Kind,
		SaveEndsEachTurn: spec.Duration.SaveEndsEachTurn,
		EndPhase:         spec.Duration.Until,
		EndSave:          spec.Save,
		pendingOneTurn:   spec.Duration.Until != PhaseNone,
	}
}

// Set holds a creature's active conditions. At most one instance of a kind
// is active at a time: applying a kind again replaces the previous instance
// and its duration metadata.
type Set struct {
	items []Active
}

// Apply adds a condition, replacing any existing condition of the same kind
func (s *Set) Apply(a Active) {
	for i := range s.items {
		if s.items[i].Kind == a.Kind {
			s.items[i] = a
			return
		}
	}
	s.items = append(s.items, a)
}

// Has reports whether a condition of the given kind is active
func (s *Set) Has(kind Kind) bool {
	for i := range s.items {
		if s.items[i].Kind == kind {
			return true
		}
	}
	return false
}

// Remove drops the condition of the given kind, reporting whether it was
// present.
func (s *Set) Remove(kind Kind) bool {
	for i := range s.items {
		if s.items[i].Kind == kind {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Kinds lists the active condition kinds in application order
func (s *Set) Kinds() []Kind {
	kinds := make([]Kind, len(s.items))
	for i := range s.items {
		kinds[i] = s.items[i].Kind
	}
	return kinds
}

// Len returns the number of active conditions
func (s *Set) Len() int {
	return len(s.items)
}
