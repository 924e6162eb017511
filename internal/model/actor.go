// Package model defines the world, inventory and result types shared by the
// salvage core, its adapters and the command surface.
package model

// PromoteLevel is the permission rank of a player.
type PromoteLevel string

// Known promote levels, lowest to highest.
const (
	PromoteNone        PromoteLevel = "none"
	PromoteScripter    PromoteLevel = "scripter"
	PromoteModerator   PromoteLevel = "moderator"
	PromoteSpaceMaster PromoteLevel = "space_master"
	PromoteAdmin       PromoteLevel = "admin"
	PromoteOwner       PromoteLevel = "owner"
)

var promoteRanks = map[PromoteLevel]int{
	PromoteNone:        0,
	PromoteScripter:    1,
	PromoteModerator:   2,
	PromoteSpaceMaster: 3,
	PromoteAdmin:       4,
	PromoteOwner:       5,
}

// Rank returns the numeric rank of the level; unknown levels rank as none.
func (p PromoteLevel) Rank() int {
	return promoteRanks[p]
}

// AtLeast reports whether p ranks at or above other.
func (p PromoteLevel) AtLeast(other PromoteLevel) bool {
	return p.Rank() >= other.Rank()
}

// Actor is a player issuing a salvage request. A nil *Actor stands for an
// administrative (console) invocation.
type Actor struct {
	ID        string       `yaml:"id"`
	Name      string       `yaml:"name"`
	Privilege PromoteLevel `yaml:"privilege,omitempty"`
	Position  *Vector      `yaml:"position,omitempty"`

	// Selected is the name of the structure the player is looking at or seated on.
	Selected  string     `yaml:"selected,omitempty"`
	Inventory *Inventory `yaml:"inventory,omitempty"`
}
