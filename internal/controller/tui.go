package controller

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "salvager.dev/pkg/salvager/internal/model"
)

// inlineLineLimit is the longest output printed directly; anything longer opens the pager.
const inlineLineLimit = 40

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")).Padding(0, 1)
	acceptedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	rejectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display. Output is
// collected while the workflow runs and shown when Wait is called.
type TUI struct {
	output io.Writer
	mode   StartMode
	body   strings.Builder

	// run executes the pager program; replaced in tests.
	run func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram

	return t
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	_, err := program.Run()

	return err
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	t.mode = cfg.mode
	t.body.Reset()

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.body.Reset()
}

// Wait shows the collected output, paging it when it does not fit inline.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	content := t.body.String()
	title := titleStyle.Render("Salvager - " + t.mode.Title())

	if strings.Count(content, "\n") <= inlineLineLimit {
		_, _ = fmt.Fprintf(t.output, "%s\n\n%s", title, content)
		return
	}

	if err := t.run(newPagerModel(title, content)); err != nil {
		_, _ = fmt.Fprintf(t.output, "%s\n\n%s", title, content)
	}
}

// DisplayVerdict records the check outcome.
func (t *TUI) DisplayVerdict(ctx context.Context, verdict m.Verdict) {
	if err := ctx.Err(); err != nil {
		return
	}

	style := rejectedStyle
	if verdict.Accepted() {
		style = acceptedStyle
	}

	t.body.WriteString(style.Render(verdict.Outcome.String()))
	t.body.WriteString(" ")
	t.body.WriteString(verdict.Outcome.Message())
	t.body.WriteString("\n")

	if detail := strings.TrimRight(verdict.Detail, "\n"); detail != "" {
		t.body.WriteString(detail)
		t.body.WriteString("\n")
	}
}

// DisplaySummary records what a salvage pass did.
func (t *TUI) DisplaySummary(ctx context.Context, summary m.TransferSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.body.WriteString("\n")
	t.body.WriteString(renderSummary(summary))
}

// DisplayInventoryDiff records a unified diff of the inventory.
func (t *TUI) DisplayInventoryDiff(ctx context.Context, before, after *m.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderInventoryDiff(before, after)
	if err != nil {
		return err
	}

	t.body.WriteString("\n")
	t.body.WriteString(diff)

	return nil
}

// DisplayGroups records a table of structure groups.
func (t *TUI) DisplayGroups(ctx context.Context, groups []m.GroupInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.body.WriteString(renderGroups(groups))

	return nil
}

// DisplayChecks records a table of check verdicts.
func (t *TUI) DisplayChecks(ctx context.Context, reports []m.CheckReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.body.WriteString(renderChecks(reports))

	return nil
}

// DisplayTelemetry records a table of salvage runs.
func (t *TUI) DisplayTelemetry(ctx context.Context, events []m.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.body.WriteString(renderTelemetry(events))

	return nil
}

// DisplaySettings records the resolved configuration.
func (t *TUI) DisplaySettings(ctx context.Context, settings []m.Setting) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.body.WriteString(renderSettings(settings))

	return nil
}

// pagerModel is the Bubble Tea model scrolling long output.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

// chrome is the number of lines used by the title and footer.
const chrome = 3

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - chrome
		if height < 1 {
			height = 1
		}

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:exhaustive // only quit keys are handled by type
func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "g", "home":
		pm.viewport.GotoTop()
		return pm, nil

	case "G", "end":
		pm.viewport.GotoBottom()
		return pm, nil
	}

	if !pm.ready {
		return pm, nil
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return pm.title + "\n\n  loading..."
	}

	footer := helpStyle.Render(fmt.Sprintf(
		"  %3.0f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100,
	))

	return pm.title + "\n" + pm.viewport.View() + "\n" + footer
}
