package domain

import (
	"errors"
	"strings"

	m "salvager.dev/pkg/salvager/internal/model"
)

// LowWaterMark is the destination item count at or below which structural
// disassembly may begin. Above it the actor is asked to empty their
// inventory first.
const LowWaterMark = 20

var (
	// ErrEmptyGroup is returned when a check or salvage receives no structures.
	ErrEmptyGroup = errors.New("structure group is empty")
	// ErrNoDestination is returned when salvage has no inventory to fill.
	ErrNoDestination = errors.New("destination inventory is required")
)

// CheckerConfig holds the limits enforced by the eligibility checker.
type CheckerConfig struct {
	Enabled      bool
	MaxDistance  float64
	MaxItemCount int
}

// Action is what salvage does with an item category.
type Action string

// Category actions.
const (
	ActionKeep    Action = "keep"
	ActionDiscard Action = "discard"
)

// Item categories discarded by default.
const (
	CategoryPhysicalGun     = "MyObjectBuilder_PhysicalGunObject"
	CategoryOxygenContainer = "MyObjectBuilder_OxygenContainerObject"
	CategoryGasContainer    = "MyObjectBuilder_GasContainerObject"
)

// CategoryPolicy maps item categories to actions. Categories are matched
// case-insensitively; categories not listed are kept.
type CategoryPolicy map[string]Action

// NewCategoryPolicy builds a policy from category/action pairs as they appear in configuration.
func NewCategoryPolicy(actions map[string]string) CategoryPolicy {
	p := make(CategoryPolicy, len(actions))
	for category, action := range actions {
		p[strings.ToLower(category)] = Action(strings.ToLower(strings.TrimSpace(action)))
	}

	return p
}

// DefaultCategoryPolicy discards hand tools and pressurized gas bottles.
func DefaultCategoryPolicy() CategoryPolicy {
	return NewCategoryPolicy(map[string]string{
		CategoryPhysicalGun:     string(ActionDiscard),
		CategoryOxygenContainer: string(ActionDiscard),
		CategoryGasContainer:    string(ActionDiscard),
	})
}

// Discards reports whether items of category are removed instead of transferred.
func (p CategoryPolicy) Discards(category string) bool {
	return p[strings.ToLower(category)] == ActionDiscard
}

// EngineConfig configures the salvage engine.
type EngineConfig struct {
	Budget     m.TransferBudget
	Categories CategoryPolicy
	PowerDown  bool
}

// DefaultBudget mirrors a character inventory: 65 slots, 50 kg and 10 L reserve.
func DefaultBudget() m.TransferBudget {
	return m.TransferBudget{
		MaxSlots:     65,
		MassMargin:   50,
		VolumeMargin: 10,
	}
}

// Settings bundles the configuration a workflow run needs.
type Settings struct {
	Checker CheckerConfig
	Engine  EngineConfig
}
