package domain

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/agnivade/levenshtein"

	"salvager.dev/pkg/salvager/internal/adapter"
	m "salvager.dev/pkg/salvager/internal/model"
)

// Target selects the group to check: by structure name, or, when Name is
// empty, the structure the actor has selected.
type Target struct {
	Name string
}

// Selected reports whether the target is the actor's current selection.
func (t Target) Selected() bool {
	return t.Name == ""
}

// Checker decides whether an actor may salvage a structure group. It never
// mutates anything it is given.
type Checker struct {
	cfg      CheckerConfig
	resolver adapter.GroupResolver
	zones    adapter.ZoneOracle
	owners   adapter.OwnershipOracle
	geometry adapter.Geometry
}

// NewChecker constructs a Checker backed by the provided capabilities.
func NewChecker(
	cfg CheckerConfig,
	resolver adapter.GroupResolver,
	zones adapter.ZoneOracle,
	owners adapter.OwnershipOracle,
	geometry adapter.Geometry,
) *Checker {
	return &Checker{
		cfg:      cfg,
		resolver: resolver,
		zones:    zones,
		owners:   owners,
		geometry: geometry,
	}
}

// Evaluate resolves target and runs the full check pipeline. The resolved
// group is returned whenever resolution succeeded.
func (c *Checker) Evaluate(actor *m.Actor, target Target, force bool) (m.Verdict, m.StructureGroup, error) {
	if !c.cfg.Enabled {
		return m.Verdict{Outcome: m.OutcomeOffline}, nil, nil
	}

	if target.Selected() && actor == nil {
		return m.Verdict{Outcome: m.OutcomeNoPlayer}, nil, nil
	}

	group, ok := c.resolve(actor, target)
	if !ok {
		return m.Verdict{Outcome: m.OutcomeGroupNotFound, Detail: c.notFoundDetail(target)}, nil, nil
	}

	verdict, err := c.checkGroup(actor, group, force)

	return verdict, group, err
}

// Check runs the pipeline on an already resolved group.
func (c *Checker) Check(actor *m.Actor, group m.StructureGroup, force bool) (m.Verdict, error) {
	if !c.cfg.Enabled {
		return m.Verdict{Outcome: m.OutcomeOffline}, nil
	}

	return c.checkGroup(actor, group, force)
}

func (c *Checker) resolve(actor *m.Actor, target Target) (m.StructureGroup, bool) {
	var (
		group m.StructureGroup
		ok    bool
	)

	if target.Selected() {
		group, ok = c.resolver.ResolveBySelection(actor)
	} else {
		group, ok = c.resolver.ResolveByName(target.Name)
	}

	return group, ok && len(group) > 0
}

func (c *Checker) checkGroup(actor *m.Actor, group m.StructureGroup, force bool) (m.Verdict, error) {
	if len(group) == 0 {
		return m.Verdict{}, ErrEmptyGroup
	}

	if !c.owners.HasElevatedPrivilege(actor) && !c.owners.OwnsAll(actor, group) {
		return m.Verdict{Outcome: m.OutcomeNotOwner}, nil
	}

	if verdict, rejected := c.checkStructures(actor, group); rejected {
		return verdict, nil
	}

	if len(group) > 1 && !force {
		return m.Verdict{Outcome: m.OutcomeTooManyStructures, Detail: "Multiple grids found:\n" + listNames(group)}, nil
	}

	if count := group.ItemCount(); count > c.cfg.MaxItemCount && !force {
		return m.Verdict{Outcome: m.OutcomeTooManyItems, Detail: fmt.Sprintf("Too many items: %d", count)}, nil
	}

	return m.Verdict{Outcome: m.OutcomeOK, Detail: listNames(group)}, nil
}

// checkStructures runs the per-structure checks and stops at the first violation.
func (c *Checker) checkStructures(actor *m.Actor, group m.StructureGroup) (m.Verdict, bool) {
	measure := actor != nil && actor.Position != nil

	var distance float64
	if measure {
		distance = c.geometry.Distance(c.geometry.Centroid(group), *actor.Position)
	}

	for _, s := range group {
		if !c.zones.IsOutsideAllProtectedZones(s.Position) {
			return m.Verdict{Outcome: m.OutcomeInSafeZone, Detail: s.Name}, true
		}

		if s.Projected() {
			return m.Verdict{Outcome: m.OutcomeProjected, Detail: s.Name}, true
		}

		if measure && distance > c.cfg.MaxDistance {
			slog.Debug("group out of reach", "structure", s.Name, "distance", distance, "max", c.cfg.MaxDistance)
			return m.Verdict{Outcome: m.OutcomeTooFar, Detail: s.Name}, true
		}
	}

	return m.Verdict{}, false
}

func (c *Checker) notFoundDetail(target Target) string {
	if target.Selected() {
		return ""
	}

	if suggestion := c.suggest(target.Name); suggestion != "" {
		return fmt.Sprintf("%s (did you mean %q?)", target.Name, suggestion)
	}

	return target.Name
}

// suggest returns the closest structure name within a third of the query's
// length, or "" when nothing is close enough.
func (c *Checker) suggest(name string) string {
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}

	best := ""
	bestDistance := limit + 1

	for _, candidate := range c.resolver.Names() {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return best
}

func listNames(group m.StructureGroup) string {
	var b strings.Builder

	for _, name := range group.Names() {
		fmt.Fprintf(&b, " + %s\n", name)
	}

	return b.String()
}
