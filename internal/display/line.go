// Package display formats session snapshots as single terminal lines.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"breathwork/internal/core/model"
	"breathwork/internal/core/session"
)

const barWidth = 20

var (
	patternStyle = lipgloss.NewStyle().Bold(true)
	phaseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(8)
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))
	pausedStyle  = lipgloss.NewStyle().Faint(true)
)

// Line renders a snapshot as one status line.
func Line(snapshot session.Snapshot) string {
	if snapshot.PatternID == "" {
		return pausedStyle.Render("no pattern selected")
	}

	status := fmt.Sprintf("%s %s %s %2ds %3d%%  cycle %d (%d/%ds)",
		patternStyle.Render(snapshot.PatternName),
		phaseStyle.Render(snapshot.PhaseLabel),
		barStyle.Render(Bar(snapshot.Progress, barWidth)),
		snapshot.Remaining,
		snapshot.Percent(),
		snapshot.Cycles+1,
		snapshot.CycleElapsed,
		snapshot.CycleSeconds,
	)
	if !snapshot.Running {
		return pausedStyle.Render(status + "  (paused)")
	}
	return status
}

// Bar draws a progress bar of width cells for progress in [0, 1].
func Bar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// PatternList renders one line per pattern: id, name and the phase
// durations in seconds.
func PatternList(patterns []model.Pattern) string {
	var builder strings.Builder
	for _, pattern := range patterns {
		durations := make([]string, 0, pattern.PhaseCount())
		for _, phase := range pattern.Phases {
			durations = append(durations, strconv.Itoa(phase.Duration))
		}
		builder.WriteString(patternStyle.Render(fmt.Sprintf("%-16s", pattern.ID)))
		fmt.Fprintf(&builder, " %-24s %s\n", pattern.Name, strings.Join(durations, "-"))
	}
	return builder.String()
}
