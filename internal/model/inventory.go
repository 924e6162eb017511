package model

// ItemID identifies an item definition. Type is the item category
// (e.g. "MyObjectBuilder_Ore"), Subtype the concrete item (e.g. "Iron").
type ItemID struct {
	Type    string `yaml:"type"`
	Subtype string `yaml:"subtype"`
}

// String renders the id as "Type/Subtype".
func (id ItemID) String() string {
	return id.Type + "/" + id.Subtype
}

// Stack is an amount of a single item type held in an inventory.
type Stack struct {
	Item       ItemID  `yaml:"item"`
	Amount     int64   `yaml:"amount"`
	UnitMass   float64 `yaml:"unit_mass,omitempty"`
	UnitVolume float64 `yaml:"unit_volume,omitempty"`
}

// Mass returns the total mass of the stack.
func (s Stack) Mass() float64 {
	if s.Amount <= 0 {
		return 0
	}

	return float64(s.Amount) * s.UnitMass
}

// Volume returns the total volume of the stack.
func (s Stack) Volume() float64 {
	if s.Amount <= 0 {
		return 0
	}

	return float64(s.Amount) * s.UnitVolume
}

// Inventory is a bounded container of stacks. A zero MaxMass or MaxVolume
// means the corresponding dimension is unbounded.
//
// CurrentMass and CurrentVolume are cached bookkeeping; they are only
// recomputed by Refresh.
type Inventory struct {
	Name      string  `yaml:"name,omitempty"`
	MaxMass   float64 `yaml:"max_mass"`
	MaxVolume float64 `yaml:"max_volume"`
	Stacks    []Stack `yaml:"stacks,omitempty"`

	CurrentMass   float64 `yaml:"-"`
	CurrentVolume float64 `yaml:"-"`
}

// ItemCount returns the number of occupied item slots.
func (inv *Inventory) ItemCount() int {
	return len(inv.Stacks)
}

// Empty reports whether the inventory holds no positive stack.
func (inv *Inventory) Empty() bool {
	for _, stack := range inv.Stacks {
		if stack.Amount > 0 {
			return false
		}
	}

	return true
}

// Total returns the sum of all positive stack amounts.
func (inv *Inventory) Total() int64 {
	var total int64

	for _, stack := range inv.Stacks {
		if stack.Amount > 0 {
			total += stack.Amount
		}
	}

	return total
}

// IndexOf returns the slot holding item, or -1.
func (inv *Inventory) IndexOf(item ItemID) int {
	for i, stack := range inv.Stacks {
		if stack.Item == item {
			return i
		}
	}

	return -1
}

// Refresh drops empty slots and recomputes the cached mass and volume.
func (inv *Inventory) Refresh() {
	kept := inv.Stacks[:0]
	mass := 0.0
	volume := 0.0

	for _, stack := range inv.Stacks {
		if stack.Amount <= 0 {
			continue
		}

		kept = append(kept, stack)
		mass += stack.Mass()
		volume += stack.Volume()
	}

	inv.Stacks = kept
	inv.CurrentMass = mass
	inv.CurrentVolume = volume
}

// Clone returns a deep copy of the inventory.
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}

	out := *inv
	out.Stacks = append([]Stack(nil), inv.Stacks...)

	return &out
}

// TransferBudget is the per-pass ceiling a destination inventory may still
// accept. Margins reserve headroom below capacity so a pass stops short of
// the exact limit.
type TransferBudget struct {
	MaxSlots     int
	MassMargin   float64
	VolumeMargin float64
}
