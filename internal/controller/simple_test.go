package controller

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	m "salvager.dev/pkg/salvager/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func oreStack(subtype string, amount int64) m.Stack {
	return m.Stack{Item: m.ItemID{Type: "MyObjectBuilder_Ore", Subtype: subtype}, Amount: amount}
}

func TestSimpleUI_DisplayVerdict(t *testing.T) {
	tests := []struct {
		name    string
		verdict m.Verdict
		want    string
	}{
		{
			name:    "accepted lists the structures",
			verdict: m.Verdict{Outcome: m.OutcomeOK, Detail: " + Hull\n"},
			want:    "[OK] Grid accepted.\n + Hull\n",
		},
		{
			name:    "rejection without detail",
			verdict: m.Verdict{Outcome: m.OutcomeOffline},
			want:    "[OFFLINE] Plugin is offline\n",
		},
		{
			name:    "rejection names the structure",
			verdict: m.Verdict{Outcome: m.OutcomeTooFar, Detail: "Hull"},
			want:    "[TOO_FAR] Grid is too far from you!\nHull\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI()

			ui.DisplayVerdict(context.Background(), tt.verdict)

			if got := buf.String(); got != tt.want {
				t.Errorf("DisplayVerdict() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplaySummary(context.Background(), m.TransferSummary{
		ItemsMoved:     true,
		StructureCount: 2,
		PartCount:      40,
		Moved:          1500,
		Discarded:      3,
		RemainingParts: 40,
		PoweredDown:    4,
	})

	output := buf.String()
	for _, want := range []string{"Items moved", "1,500", "Powered down", "Source emptied", m.ProgressContinue.Message()} {
		if !strings.Contains(output, want) {
			t.Errorf("summary missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySummaryHidesPowerDownWhenZero(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplaySummary(context.Background(), m.TransferSummary{SourceFullyEmptied: true, StructureWasDisassembled: true})

	output := buf.String()
	if strings.Contains(output, "Powered down") {
		t.Errorf("summary should omit powered down row:\n%s", output)
	}

	if !strings.Contains(output, m.ProgressComplete.Message()) {
		t.Errorf("summary missing completion message:\n%s", output)
	}
}

func TestSimpleUI_DisplayInventoryDiff(t *testing.T) {
	t.Run("changed inventory", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		before := &m.Inventory{Stacks: []m.Stack{oreStack("Iron", 10)}}
		after := &m.Inventory{Stacks: []m.Stack{oreStack("Iron", 25), oreStack("Gold", 3)}}

		if err := ui.DisplayInventoryDiff(context.Background(), before, after); err != nil {
			t.Fatalf("DisplayInventoryDiff() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"--- inventory (before)",
			"+++ inventory (after)",
			"-MyObjectBuilder_Ore/Iron x10",
			"+MyObjectBuilder_Ore/Iron x25",
			"+MyObjectBuilder_Ore/Gold x3",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("diff missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("unchanged inventory", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		inv := &m.Inventory{Stacks: []m.Stack{oreStack("Iron", 10)}}

		if err := ui.DisplayInventoryDiff(context.Background(), inv, inv.Clone()); err != nil {
			t.Fatalf("DisplayInventoryDiff() error = %v", err)
		}

		if !strings.Contains(buf.String(), "inventory unchanged") {
			t.Errorf("expected unchanged message, got %q", buf.String())
		}
	})
}

func TestSimpleUI_DisplayGroups(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayGroups(context.Background(), []m.GroupInfo{
		{Names: []string{"Sulaco", "Tug"}, Owners: []string{"1"}, Parts: 1200, Items: 4, Centroid: m.Vector{X: 1234.56, Z: -5}},
		{Names: []string{"Preview"}, Projected: true},
	})
	if err != nil {
		t.Fatalf("DisplayGroups() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Sulaco, Tug", "1,200", "1,234.6, 0, -5", "Preview", "yes"} {
		if !strings.Contains(output, want) {
			t.Errorf("groups missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayChecks(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplayChecks(context.Background(), []m.CheckReport{
		{Group: []string{"Hull"}, Verdict: m.Verdict{Outcome: m.OutcomeTooFar, Detail: "Hull"}},
		{Group: []string{"Rover"}, Verdict: m.Verdict{Outcome: m.OutcomeOK, Detail: " + Rover\n"}},
	})
	if err != nil {
		t.Fatalf("DisplayChecks() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"TOO_FAR", "Grid is too far from you! Hull", "Rover", "OK"} {
		if !strings.Contains(output, want) {
			t.Errorf("checks missing %q:\n%s", want, output)
		}
	}

	if strings.Contains(output, "+ Rover") {
		t.Errorf("accepted rows should not repeat the structure list:\n%s", output)
	}
}

func TestSimpleUI_DisplayTelemetry(t *testing.T) {
	t.Run("no events", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		if err := ui.DisplayTelemetry(context.Background(), nil); err != nil {
			t.Fatalf("DisplayTelemetry() error = %v", err)
		}

		if buf.String() != "no salvage runs recorded\n" {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("events", func(t *testing.T) {
		ui, buf := newTestSimpleUI()
		events := []m.TelemetryEvent{{
			ID:             "0f8fad5b-d9cb-469f-a165-70867728950e",
			ActorName:      "Ripley",
			StructureCount: 2,
			PartCount:      3400,
			At:             time.Now().Add(-2 * time.Hour),
		}}

		if err := ui.DisplayTelemetry(context.Background(), events); err != nil {
			t.Fatalf("DisplayTelemetry() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"Ripley", "3,400", "0f8fad5b", "2 hours ago"} {
			if !strings.Contains(output, want) {
				t.Errorf("telemetry missing %q:\n%s", want, output)
			}
		}

		if strings.Contains(output, "469f") {
			t.Errorf("run id should be shortened:\n%s", output)
		}
	})
}

func TestSimpleUI_DisplaySettings(t *testing.T) {
	ui, buf := newTestSimpleUI()

	err := ui.DisplaySettings(context.Background(), []m.Setting{{Key: "grinder.max_distance", Value: "1000"}})
	if err != nil {
		t.Fatalf("DisplaySettings() error = %v", err)
	}

	if !strings.Contains(buf.String(), "grinder.max_distance") || !strings.Contains(buf.String(), "1000") {
		t.Errorf("settings output = %q", buf.String())
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, buf := newTestSimpleUI()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := ui.Start(ctx, WithGrindMode()); err == nil {
		t.Errorf("Start() should fail on a cancelled context")
	}

	ui.DisplayVerdict(ctx, m.Verdict{Outcome: m.OutcomeOK})

	if err := ui.DisplayGroups(ctx, nil); err == nil {
		t.Errorf("DisplayGroups() should fail on a cancelled context")
	}

	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Errorf("NewUI(false) should return a SimpleUI")
	}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Errorf("NewUI(true) should return a TUI")
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(nil) {
		t.Errorf("IsTTY(nil) = true")
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	if IsTTY(f) {
		t.Errorf("a regular file is not a terminal")
	}
}

func TestStartMode_Title(t *testing.T) {
	for mode := ModeGrind; mode <= ModeConfig; mode++ {
		if mode.Title() == "" {
			t.Errorf("mode %d has no title", mode)
		}
	}

	if cfg := newStartConfig(WithReportMode()); cfg.mode != ModeReport {
		t.Errorf("newStartConfig() mode = %d, want %d", cfg.mode, ModeReport)
	}
}
