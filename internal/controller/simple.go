package controller

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "salvager.dev/pkg/salvager/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayVerdict prints the check outcome and its diagnostic text.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, verdict m.Verdict) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s", renderVerdict(verdict))
}

// DisplaySummary prints what a salvage pass did.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.TransferSummary) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("\n%s", renderSummary(summary))
}

// DisplayInventoryDiff prints a unified diff of the inventory before and after salvage.
func (s *SimpleUI) DisplayInventoryDiff(ctx context.Context, before, after *m.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderInventoryDiff(before, after)
	if err != nil {
		return err
	}

	s.printf("\n%s", diff)

	return nil
}

// DisplayGroups prints a table of structure groups.
func (s *SimpleUI) DisplayGroups(ctx context.Context, groups []m.GroupInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderGroups(groups))

	return nil
}

// DisplayChecks prints a table of check verdicts.
func (s *SimpleUI) DisplayChecks(ctx context.Context, reports []m.CheckReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderChecks(reports))

	return nil
}

// DisplayTelemetry prints recorded salvage runs.
func (s *SimpleUI) DisplayTelemetry(ctx context.Context, events []m.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderTelemetry(events))

	return nil
}

// DisplaySettings prints resolved configuration values.
func (s *SimpleUI) DisplaySettings(ctx context.Context, settings []m.Setting) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderSettings(settings))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderVerdict(verdict m.Verdict) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s\n", verdict.Outcome, verdict.Outcome.Message())

	if detail := strings.TrimRight(verdict.Detail, "\n"); detail != "" {
		fmt.Fprintf(&b, "%s\n", detail)
	}

	return b.String()
}

func renderSummary(summary m.TransferSummary) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Salvage", "Value"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Structures", humanize.Comma(int64(summary.StructureCount))})
	table.Append([]string{"Parts", humanize.Comma(int64(summary.PartCount))})
	table.Append([]string{"Items moved", humanize.Comma(summary.Moved)})
	table.Append([]string{"Items discarded", humanize.Comma(summary.Discarded)})
	table.Append([]string{"Parts removed", humanize.Comma(int64(summary.PartsRemoved))})
	table.Append([]string{"Parts remaining", humanize.Comma(int64(summary.RemainingParts))})

	if summary.PoweredDown > 0 {
		table.Append([]string{"Powered down", humanize.Comma(int64(summary.PoweredDown))})
	}

	table.Append([]string{"Source emptied", yesNo(summary.SourceFullyEmptied)})
	table.Append([]string{"Disassembled", yesNo(summary.StructureWasDisassembled)})

	table.Render()

	return tableBuffer.String() + summary.Progress().Message() + "\n"
}

func renderInventoryDiff(before, after *m.Inventory) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(inventoryListing(before)),
		B:        difflib.SplitLines(inventoryListing(after)),
		FromFile: "inventory (before)",
		ToFile:   "inventory (after)",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff inventory: %w", err)
	}

	if text == "" {
		return "inventory unchanged\n", nil
	}

	return text, nil
}

func inventoryListing(inv *m.Inventory) string {
	if inv == nil {
		return ""
	}

	var b strings.Builder

	for _, stack := range inv.Stacks {
		if stack.Amount <= 0 {
			continue
		}

		fmt.Fprintf(&b, "%s x%s\n", stack.Item, humanize.Comma(stack.Amount))
	}

	return b.String()
}

func renderGroups(groups []m.GroupInfo) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Structures", "Owners", "Parts", "Items", "Position", "Projected"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER,
	})

	parts := 0

	for _, group := range groups {
		table.Append([]string{
			strings.Join(group.Names, ", "),
			strings.Join(group.Owners, ", "),
			humanize.Comma(int64(group.Parts)),
			humanize.Comma(int64(group.Items)),
			formatVector(group.Centroid),
			yesNo(group.Projected),
		})

		parts += group.Parts
	}

	table.SetFooter([]string{fmt.Sprintf("Total Groups %d", len(groups)), "", humanize.Comma(int64(parts)), "", "", ""})
	table.Render()

	return tableBuffer.String()
}

func renderChecks(reports []m.CheckReport) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Structures", "Outcome", "Detail"})
	table.SetAutoWrapText(false)

	accepted := 0

	for _, report := range reports {
		detail := strings.TrimSpace(report.Verdict.Detail)
		if !report.Verdict.Accepted() {
			detail = strings.TrimSpace(report.Verdict.Outcome.Message() + " " + firstLine(detail))
		} else {
			accepted++
			detail = ""
		}

		table.Append([]string{strings.Join(report.Group, ", "), report.Verdict.Outcome.String(), detail})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(reports)), fmt.Sprintf("%d OK", accepted), ""})
	table.Render()

	return tableBuffer.String()
}

func renderTelemetry(events []m.TelemetryEvent) string {
	if len(events) == 0 {
		return "no salvage runs recorded\n"
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"When", "Player", "Structures", "Parts", "Run"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, event := range events {
		id := event.ID
		if len(id) > 8 {
			id = id[:8]
		}

		table.Append([]string{
			humanize.Time(event.At),
			event.ActorName,
			humanize.Comma(int64(event.StructureCount)),
			humanize.Comma(int64(event.PartCount)),
			id,
		})
	}

	table.Render()

	return tableBuffer.String()
}

func renderSettings(settings []m.Setting) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Key", "Value"})

	for _, setting := range settings {
		table.Append([]string{setting.Key, setting.Value})
	}

	table.Render()

	return tableBuffer.String()
}

func newTable(buffer *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	return table
}

func formatVector(v m.Vector) string {
	return fmt.Sprintf("%s, %s, %s", humanize.Commaf(round(v.X)), humanize.Commaf(round(v.Y)), humanize.Commaf(round(v.Z)))
}

func round(f float64) float64 {
	return math.Round(f*10) / 10
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
