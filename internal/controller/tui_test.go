package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "salvager.dev/pkg/salvager/internal/model"
)

func manyEvents(n int) []m.TelemetryEvent {
	events := make([]m.TelemetryEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, m.TelemetryEvent{ID: fmt.Sprintf("run-%03d", i), ActorName: "Ripley"})
	}

	return events
}

func TestTUI_WaitPrintsShortOutputInline(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.run = func(tea.Model) error {
		t.Fatalf("pager should not run for short output")
		return nil
	}

	ctx := context.Background()
	if err := tui.Start(ctx, WithListMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := tui.DisplayGroups(ctx, []m.GroupInfo{{Names: []string{"Sulaco"}, Parts: 3}}); err != nil {
		t.Fatalf("DisplayGroups() error = %v", err)
	}

	tui.Wait(ctx)

	output := buf.String()
	if !strings.Contains(output, "Salvager - Structure groups") {
		t.Errorf("output missing title:\n%s", output)
	}

	if !strings.Contains(output, "Sulaco") {
		t.Errorf("output missing group:\n%s", output)
	}
}

func TestTUI_WaitPagesLongOutput(t *testing.T) {
	var (
		buf   bytes.Buffer
		paged pagerModel
	)

	tui := NewTUI(&buf)
	tui.run = func(model tea.Model) error {
		paged = model.(pagerModel)
		return nil
	}

	ctx := context.Background()
	_ = tui.Start(ctx, WithReportMode())

	if err := tui.DisplayTelemetry(ctx, manyEvents(inlineLineLimit+10)); err != nil {
		t.Fatalf("DisplayTelemetry() error = %v", err)
	}

	tui.Wait(ctx)

	if buf.Len() != 0 {
		t.Errorf("paged output should not be printed inline")
	}

	if !strings.Contains(paged.title, "Salvage runs") {
		t.Errorf("pager title = %q", paged.title)
	}

	if !strings.Contains(paged.content, "run-049") {
		t.Errorf("pager content missing last event")
	}
}

func TestTUI_WaitFallsBackWhenPagerFails(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	tui.run = func(tea.Model) error {
		return errors.New("could not open a new TTY")
	}

	ctx := context.Background()
	_ = tui.Start(ctx, WithReportMode())
	_ = tui.DisplayTelemetry(ctx, manyEvents(inlineLineLimit+10))

	tui.Wait(ctx)

	if !strings.Contains(buf.String(), "run-000") {
		t.Errorf("fallback should print the content inline")
	}
}

func TestTUI_GrindSession(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	ctx := context.Background()

	_ = tui.Start(ctx, WithGrindMode())
	tui.DisplayVerdict(ctx, m.Verdict{Outcome: m.OutcomeOK, Detail: " + Sulaco\n"})
	tui.DisplaySummary(ctx, m.TransferSummary{Moved: 12, ItemsMoved: true, RemainingParts: 2})

	before := &m.Inventory{}
	after := &m.Inventory{Stacks: []m.Stack{oreStack("Iron", 12)}}

	if err := tui.DisplayInventoryDiff(ctx, before, after); err != nil {
		t.Fatalf("DisplayInventoryDiff() error = %v", err)
	}

	tui.Wait(ctx)

	output := buf.String()
	for _, want := range []string{"Salvager - Grind", "OK", "Grid accepted.", "+ Sulaco", "Items moved", "+MyObjectBuilder_Ore/Iron x12"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTUI_StartResetsCollectedOutput(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	ctx := context.Background()

	_ = tui.Start(ctx, WithConfigMode())
	_ = tui.DisplaySettings(ctx, []m.Setting{{Key: "stale.key", Value: "1"}})
	tui.Close(ctx)

	_ = tui.Start(ctx, WithCheckMode())
	_ = tui.DisplayChecks(ctx, []m.CheckReport{{Group: []string{"Rover"}, Verdict: m.Verdict{Outcome: m.OutcomeOK}}})
	tui.Wait(ctx)

	output := buf.String()
	if strings.Contains(output, "stale.key") {
		t.Errorf("output from a closed session leaked:\n%s", output)
	}

	if !strings.Contains(output, "Eligibility check") || !strings.Contains(output, "Rover") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestTUI_CancelledContext(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tui.Start(ctx); err == nil {
		t.Errorf("Start() should fail on a cancelled context")
	}

	if err := tui.DisplayTelemetry(ctx, nil); err == nil {
		t.Errorf("DisplayTelemetry() should fail on a cancelled context")
	}

	tui.Wait(ctx)

	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

func longContent(lines int) string {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	return b.String()
}

func TestPagerModel(t *testing.T) {
	t.Run("loading until sized", func(t *testing.T) {
		pm := newPagerModel("title", longContent(5))

		if pm.Init() != nil {
			t.Errorf("Init() should not return a command")
		}

		if !strings.Contains(pm.View(), "loading...") {
			t.Errorf("View() before sizing = %q", pm.View())
		}
	})

	t.Run("scrolls to the bottom and back", func(t *testing.T) {
		var model tea.Model = newPagerModel("title", longContent(60))

		model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 13})
		if view := model.View(); !strings.Contains(view, "line 0") || !strings.Contains(view, "  0%") {
			t.Fatalf("initial view:\n%s", view)
		}

		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
		if view := model.View(); !strings.Contains(view, "line 59") || !strings.Contains(view, "100%") {
			t.Fatalf("view after G:\n%s", view)
		}

		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
		if view := model.View(); !strings.Contains(view, "line 0") {
			t.Fatalf("view after g:\n%s", view)
		}
	})

	t.Run("resizes", func(t *testing.T) {
		var model tea.Model = newPagerModel("title", longContent(60))

		model, _ = model.Update(tea.WindowSizeMsg{Width: 80, Height: 13})
		model, _ = model.Update(tea.WindowSizeMsg{Width: 40, Height: 2})

		pm := model.(pagerModel)
		if pm.viewport.Width != 40 || pm.viewport.Height != 1 {
			t.Errorf("viewport = %dx%d, want 40x1", pm.viewport.Width, pm.viewport.Height)
		}
	})

	t.Run("quit keys", func(t *testing.T) {
		for _, key := range []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'q'}},
			{Type: tea.KeyEsc},
			{Type: tea.KeyCtrlC},
		} {
			pm := newPagerModel("title", "body")

			model, cmd := pm.Update(key)
			if cmd == nil {
				t.Errorf("key %q should return a quit command", key.String())
			}

			if model.View() != "" {
				t.Errorf("view after %q should be empty", key.String())
			}
		}
	})
}
