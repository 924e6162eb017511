package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"salvager.dev/pkg/salvager/internal/adapter"
	"salvager.dev/pkg/salvager/internal/controller"
	m "salvager.dev/pkg/salvager/internal/model"
)

// ErrUnknownPlayer is returned when the requested player is not part of the world.
var ErrUnknownPlayer = errors.New("player not found in world")

// GrindArgs contains the arguments for a salvage run.
type GrindArgs struct {
	World  m.Path
	Player string
	Target string
	Force  bool
	Diff   bool
}

// CheckArgs contains the arguments for a dry-run eligibility check.
type CheckArgs struct {
	World   m.Path
	Player  string
	Target  string
	All     bool
	Force   bool
	Threads int
}

// ListArgs contains the arguments for listing structure groups.
type ListArgs struct {
	World m.Path
}

// ReportArgs contains the arguments for showing recorded salvage runs.
type ReportArgs struct {
	Limit int
}

// Workflow defines the salvage operations exposed to the command layer.
type Workflow interface {
	Grind(ctx context.Context, args GrindArgs) error
	Check(ctx context.Context, args CheckArgs) error
	List(ctx context.Context, args ListArgs) error
	Report(ctx context.Context, args ReportArgs) error
}

type workflow struct {
	adapter.WorldStore
	controller.UI

	telemetry adapter.TelemetryReporter
	refresher adapter.ViewRefresher
	settings  Settings
	now       func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	store adapter.WorldStore,
	telemetry adapter.TelemetryReporter,
	refresher adapter.ViewRefresher,
	ui controller.UI,
	settings Settings,
) Workflow {
	return &workflow{
		WorldStore: store,
		UI:         ui,
		telemetry:  telemetry,
		refresher:  refresher,
		settings:   settings,
		now:        time.Now,
	}
}

// Grind checks the target group and, when accepted, runs one salvage pass
// into the player's inventory. Without a player the group is scrapped.
func (w *workflow) Grind(ctx context.Context, args GrindArgs) error {
	world, actor, err := w.load(args.World, args.Player)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithGrindMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	index := adapter.NewWorldIndex(world)
	checker := w.newChecker(index)

	verdict, group, err := checker.Evaluate(actor, Target{Name: args.Target}, args.Force)
	if err != nil {
		return fmt.Errorf("check group: %w", err)
	}

	w.DisplayVerdict(ctx, verdict)

	if !verdict.Accepted() {
		w.Wait(ctx)
		return nil
	}

	summary, before, err := w.salvage(group, actor)
	if err != nil {
		slog.Error("Failed to salvage group", "group", group.Names(), "error", err)
		w.Wait(ctx)

		return fmt.Errorf("salvage: %w", err)
	}

	if err := w.Save(args.World, world); err != nil {
		slog.Error("Failed to save world", "path", args.World, "error", err)
		w.Wait(ctx)

		return fmt.Errorf("save world: %w", err)
	}

	if actor != nil {
		w.record(ctx, actor, summary)
		w.refresh(ctx, actor, summary)
	}

	w.DisplaySummary(ctx, summary)

	if args.Diff && actor != nil {
		if err := w.DisplayInventoryDiff(ctx, before, actor.Inventory); err != nil {
			w.Wait(ctx)

			return fmt.Errorf("display diff: %w", err)
		}
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) salvage(group m.StructureGroup, actor *m.Actor) (m.TransferSummary, *m.Inventory, error) {
	engine := NewEngine(w.settings.Engine)

	if actor == nil {
		summary, err := engine.Scrap(group)
		return summary, nil, err
	}

	if actor.Inventory == nil {
		return m.TransferSummary{}, nil, ErrNoDestination
	}

	before := actor.Inventory.Clone()
	summary, err := engine.Salvage(group, actor.Inventory)

	return summary, before, err
}

func (w *workflow) record(ctx context.Context, actor *m.Actor, summary m.TransferSummary) {
	w.telemetry.Report(ctx, m.TelemetryEvent{
		ID:             uuid.NewString(),
		ActorID:        actor.ID,
		ActorName:      actor.Name,
		ExecCount:      1,
		StructureCount: summary.StructureCount,
		PartCount:      summary.PartCount,
		At:             w.now(),
	})
}

func (w *workflow) refresh(ctx context.Context, actor *m.Actor, summary m.TransferSummary) {
	if !summary.ItemsMoved {
		return
	}

	if err := w.refresher.Refresh(ctx, actor); err != nil {
		slog.Warn("Failed to refresh client view", "player", actor.Name, "error", err)
	}
}

// Check runs the eligibility pipeline without mutating the world.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	world, actor, err := w.load(args.World, args.Player)
	if err != nil {
		return err
	}

	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	index := adapter.NewWorldIndex(world)
	checker := w.newChecker(index)

	var reports []m.CheckReport

	if args.All {
		reports, err = checkAll(ctx, checker, actor, index.Groups(), args.Force, args.Threads)
		if err != nil {
			return fmt.Errorf("check groups: %w", err)
		}
	} else {
		verdict, group, err := checker.Evaluate(actor, Target{Name: args.Target}, args.Force)
		if err != nil {
			return fmt.Errorf("check group: %w", err)
		}

		reports = []m.CheckReport{{Group: group.Names(), Verdict: verdict}}
	}

	if err := w.DisplayChecks(ctx, reports); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func checkAll(
	ctx context.Context,
	checker *Checker,
	actor *m.Actor,
	groups []m.StructureGroup,
	force bool,
	threads int,
) ([]m.CheckReport, error) {
	reports := make([]m.CheckReport, len(groups))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, structures := range groups {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			verdict, err := checker.Check(actor, structures, force)
			if err != nil {
				return fmt.Errorf("group %v: %w", structures.Names(), err)
			}

			reports[i] = m.CheckReport{Group: structures.Names(), Verdict: verdict}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// List shows every structure group in the world.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	world, err := w.Load(args.World)
	if err != nil {
		slog.Error("Failed to load world", "path", args.World, "error", err)
		return fmt.Errorf("load world: %w", err)
	}

	if err := w.Start(ctx, controller.WithListMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	index := adapter.NewWorldIndex(world)
	geometry := adapter.EuclideanGeometry{}

	groups := index.Groups()
	infos := make([]m.GroupInfo, 0, len(groups))

	for _, group := range groups {
		infos = append(infos, describeGroup(group, geometry))
	}

	if err := w.DisplayGroups(ctx, infos); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func describeGroup(group m.StructureGroup, geometry adapter.Geometry) m.GroupInfo {
	info := m.GroupInfo{
		Names:    group.Names(),
		Parts:    group.PartCount(),
		Items:    group.ItemCount(),
		Centroid: geometry.Centroid(group),
	}

	owners := map[string]bool{}

	for _, s := range group {
		if s.Projected() {
			info.Projected = true
		}

		for _, owner := range s.Owners {
			if !owners[owner] {
				owners[owner] = true
				info.Owners = append(info.Owners, owner)
			}
		}
	}

	sort.Strings(info.Owners)

	return info
}

// Report shows the most recent recorded salvage runs.
func (w *workflow) Report(ctx context.Context, args ReportArgs) error {
	events, err := w.telemetry.Recent(ctx, args.Limit)
	if err != nil {
		slog.Error("Failed to read telemetry", "error", err)
		return fmt.Errorf("read telemetry: %w", err)
	}

	if err := w.Start(ctx, controller.WithReportMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplayTelemetry(ctx, events); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	return nil
}

func (w *workflow) load(path m.Path, player string) (*m.World, *m.Actor, error) {
	world, err := w.Load(path)
	if err != nil {
		slog.Error("Failed to load world", "path", path, "error", err)
		return nil, nil, fmt.Errorf("load world: %w", err)
	}

	if player == "" {
		return world, nil, nil
	}

	actor := world.Player(player)
	if actor == nil {
		return nil, nil, fmt.Errorf("%q: %w", player, ErrUnknownPlayer)
	}

	return world, actor, nil
}

func (w *workflow) newChecker(index *adapter.WorldIndex) *Checker {
	return NewChecker(w.settings.Checker, index, index, index, adapter.EuclideanGeometry{})
}
