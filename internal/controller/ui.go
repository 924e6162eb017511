// Package controller provides output adapters for displaying salvage results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "salvager.dev/pkg/salvager/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeGrind StartMode = iota
	ModeCheck
	ModeList
	ModeReport
	ModeConfig
)

var modeTitles = map[StartMode]string{
	ModeGrind:  "Grind",
	ModeCheck:  "Eligibility check",
	ModeList:   "Structure groups",
	ModeReport: "Salvage runs",
	ModeConfig: "Configuration",
}

// Title returns the heading shown for the mode.
func (s StartMode) Title() string {
	return modeTitles[s]
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithGrindMode sets the UI to salvage mode.
func WithGrindMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGrind
	}
}

// WithCheckMode sets the UI to dry-run check mode.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithListMode sets the UI to group listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithReportMode sets the UI to telemetry report mode.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithConfigMode sets the UI to configuration listing mode.
func WithConfigMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeConfig
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting salvage results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayVerdict(ctx context.Context, verdict m.Verdict)
	DisplaySummary(ctx context.Context, summary m.TransferSummary)
	DisplayInventoryDiff(ctx context.Context, before, after *m.Inventory) error
	DisplayGroups(ctx context.Context, groups []m.GroupInfo) error
	DisplayChecks(ctx context.Context, reports []m.CheckReport) error
	DisplayTelemetry(ctx context.Context, events []m.TelemetryEvent) error
	DisplaySettings(ctx context.Context, settings []m.Setting) error
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain text UI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
