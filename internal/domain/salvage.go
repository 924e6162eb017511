package domain

import (
	"log/slog"

	m "salvager.dev/pkg/salvager/internal/model"
)

// Engine moves a structure group's contents into a bounded inventory and
// disassembles the structures once they are empty. A pass never overfills
// the destination; whatever does not fit stays in the source for the next
// pass.
type Engine struct {
	cfg EngineConfig
}

// NewEngine constructs an Engine.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Categories == nil {
		cfg.Categories = DefaultCategoryPolicy()
	}

	return &Engine{cfg: cfg}
}

// Salvage runs one transfer pass of group into dest. Both are mutated in place.
func (e *Engine) Salvage(group m.StructureGroup, dest *m.Inventory) (m.TransferSummary, error) {
	if len(group) == 0 {
		return m.TransferSummary{}, ErrEmptyGroup
	}

	if dest == nil {
		return m.TransferSummary{}, ErrNoDestination
	}

	summary := m.TransferSummary{
		StructureCount: len(group),
		PartCount:      group.PartCount(),
	}

	if e.cfg.PowerDown {
		summary.PoweredDown = powerDown(group)
	}

	l := newLedger(e.cfg.Budget, dest)

	summary.SourceFullyEmptied = e.extract(group, l, &summary)
	dest.Refresh()

	switch {
	case !summary.SourceFullyEmptied:
	case dest.ItemCount() <= LowWaterMark:
		e.disassemble(group, l, &summary)
		dest.Refresh()
	default:
		summary.DisassemblyDeferred = true
	}

	summary.ItemsMoved = summary.Moved > 0
	summary.StructureWasDisassembled = summary.PartsRemoved > 0
	summary.RemainingParts = group.PartCount()

	slog.Debug("salvage pass finished",
		"structures", summary.StructureCount,
		"moved", summary.Moved,
		"discarded", summary.Discarded,
		"emptied", summary.SourceFullyEmptied,
		"removed", summary.PartsRemoved,
		"remaining", summary.RemainingParts,
	)

	return summary, nil
}

// extract is the item phase. It reports whether every component inventory
// was already empty when the pass reached it.
func (e *Engine) extract(group m.StructureGroup, l *ledger, summary *m.TransferSummary) bool {
	emptied := true

	for _, s := range group {
		for _, part := range s.Parts {
			c := part.Component
			if c == nil {
				continue
			}

			summary.Discarded += e.discard(c)

			if l.exhausted() {
				if !c.Empty() {
					emptied = false
					summary.Stalled = true
				}

				continue
			}

			for _, inv := range c.Inventories {
				if inv.Empty() {
					continue
				}

				emptied = false

				remaining, moved := l.transfer(inv.Stacks)
				inv.Stacks = remaining
				inv.Refresh()

				summary.Moved += moved

				if len(remaining) > 0 {
					summary.Stalled = true
				}
			}
		}
	}

	return emptied
}

// discard removes every stack of a discarded category from c and returns
// the number of units removed.
func (e *Engine) discard(c *m.Component) int64 {
	var discarded int64

	for _, inv := range c.Inventories {
		dirty := false

		for i := range inv.Stacks {
			stack := &inv.Stacks[i]
			if stack.Amount <= 0 || !e.cfg.Categories.Discards(stack.Item.Type) {
				continue
			}

			discarded += stack.Amount
			stack.Amount = 0
			dirty = true
		}

		if dirty {
			inv.Refresh()
		}
	}

	return discarded
}

// disassemble is the structural phase. A part is removed only once its whole
// stockpile has been released into the destination.
func (e *Engine) disassemble(group m.StructureGroup, l *ledger, summary *m.TransferSummary) {
	for _, s := range group {
		parts := append([]*m.Part(nil), s.Parts...)

		for _, part := range parts {
			if l.exhausted() {
				summary.Stalled = true
				return
			}

			remaining, moved := l.transfer(part.Stockpile)
			part.Stockpile = remaining
			summary.Moved += moved

			if len(remaining) > 0 {
				summary.Stalled = true
				continue
			}

			if s.RemovePart(part.Min) {
				summary.PartsRemoved++
			}
		}
	}
}

// Scrap destroys group without yielding anything. It is used when no actor
// inventory is available to receive the salvage.
func (e *Engine) Scrap(group m.StructureGroup) (m.TransferSummary, error) {
	if len(group) == 0 {
		return m.TransferSummary{}, ErrEmptyGroup
	}

	summary := m.TransferSummary{
		StructureCount:     len(group),
		PartCount:          group.PartCount(),
		SourceFullyEmptied: true,
	}

	for _, s := range group {
		for _, part := range s.Parts {
			if part.Component != nil {
				for _, inv := range part.Component.Inventories {
					summary.Discarded += inv.Total()
				}
			}
		}

		summary.PartsRemoved += len(s.Parts)
		s.Parts = nil
	}

	summary.StructureWasDisassembled = summary.PartsRemoved > 0

	return summary, nil
}

// powerDown switches off every enabled functional component on physical
// structures and returns how many were switched off.
func powerDown(group m.StructureGroup) int {
	count := 0

	for _, s := range group {
		if s.Projected() {
			continue
		}

		for _, part := range s.Parts {
			if c := part.Component; c != nil && c.Functional && c.Enabled {
				c.Enabled = false
				count++
			}
		}
	}

	return count
}
