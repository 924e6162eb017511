package domain

import (
	"math"

	m "salvager.dev/pkg/salvager/internal/model"
)

// ledger tracks the destination's running totals during a pass so headroom
// checks stay exact while the inventory's own bookkeeping is refreshed only
// once per phase.
type ledger struct {
	budget m.TransferBudget
	dest   *m.Inventory
	mass   float64
	volume float64
}

func newLedger(budget m.TransferBudget, dest *m.Inventory) *ledger {
	l := &ledger{budget: budget, dest: dest}

	for _, stack := range dest.Stacks {
		l.mass += stack.Mass()
		l.volume += stack.Volume()
	}

	return l
}

func (l *ledger) slots() int {
	return len(l.dest.Stacks)
}

// exhausted reports whether the destination is within the reserve margin of
// any limit.
func (l *ledger) exhausted() bool {
	if l.budget.MaxSlots > 0 && l.slots() >= l.budget.MaxSlots {
		return true
	}

	if l.dest.MaxMass > 0 && l.mass >= l.dest.MaxMass-l.budget.MassMargin {
		return true
	}

	if l.dest.MaxVolume > 0 && l.volume >= l.dest.MaxVolume-l.budget.VolumeMargin {
		return true
	}

	return false
}

// fit returns how many units of stack the destination can take without
// exceeding a hard limit.
func (l *ledger) fit(stack m.Stack) int64 {
	if stack.Amount <= 0 {
		return 0
	}

	if l.dest.IndexOf(stack.Item) < 0 && l.budget.MaxSlots > 0 && l.slots() >= l.budget.MaxSlots {
		return 0
	}

	unit, extraMass, extraVolume := l.merged(stack)

	n := stack.Amount
	n = clampUnits(n, l.dest.MaxMass, l.mass+extraMass, unit.UnitMass)
	n = clampUnits(n, l.dest.MaxVolume, l.volume+extraVolume, unit.UnitVolume)

	return n
}

// merged returns the per-unit values the destination slot for stack will
// carry, plus the mass and volume the existing slot gains when revalued at
// them. A merged slot keeps the larger unit mass and volume of the two.
func (l *ledger) merged(stack m.Stack) (m.Stack, float64, float64) {
	i := l.dest.IndexOf(stack.Item)
	if i < 0 {
		return stack, 0, 0
	}

	existing := l.dest.Stacks[i]
	unit := stack
	unit.UnitMass = math.Max(existing.UnitMass, stack.UnitMass)
	unit.UnitVolume = math.Max(existing.UnitVolume, stack.UnitVolume)

	extraMass := float64(existing.Amount) * (unit.UnitMass - existing.UnitMass)
	extraVolume := float64(existing.Amount) * (unit.UnitVolume - existing.UnitVolume)

	return unit, extraMass, extraVolume
}

func clampUnits(n int64, limit, current, unit float64) int64 {
	if limit <= 0 || unit <= 0 {
		return n
	}

	room := limit - current
	if room <= 0 {
		return 0
	}

	units := math.Floor(room / unit)
	if units < float64(n) {
		return int64(units)
	}

	return n
}

// deposit adds n units of stack to the destination, merging into an existing slot.
func (l *ledger) deposit(stack m.Stack, n int64) {
	if n <= 0 {
		return
	}

	unit, extraMass, extraVolume := l.merged(stack)

	if i := l.dest.IndexOf(stack.Item); i >= 0 {
		l.dest.Stacks[i].Amount += n
		l.dest.Stacks[i].UnitMass = unit.UnitMass
		l.dest.Stacks[i].UnitVolume = unit.UnitVolume
	} else {
		moved := stack
		moved.Amount = n
		l.dest.Stacks = append(l.dest.Stacks, moved)
	}

	l.mass += extraMass + float64(n)*unit.UnitMass
	l.volume += extraVolume + float64(n)*unit.UnitVolume
}

// transfer moves as much of stacks as fits and returns what is left behind
// together with the number of units moved.
func (l *ledger) transfer(stacks []m.Stack) ([]m.Stack, int64) {
	var (
		remaining []m.Stack
		moved     int64
	)

	for _, stack := range stacks {
		if stack.Amount <= 0 {
			continue
		}

		n := l.fit(stack)
		l.deposit(stack, n)
		moved += n

		if n < stack.Amount {
			stack.Amount -= n
			remaining = append(remaining, stack)
		}
	}

	return remaining, moved
}
