package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"timekeeper/internal/domain"
	"timekeeper/internal/theme"
)

func (m Model) View() string {
	switch m.mode {
	case modePickTag:
		return m.tagPicker.View()
	case modeNewTag:
		return m.newTagForm.View()
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("timekeeper"))
	b.WriteString("\n")

	if m.overview == nil {
		if m.loadErr != nil {
			b.WriteString(theme.ErrorStyle.Render("Error: " + m.loadErr.Error()))
		} else {
			b.WriteString(theme.MutedStyle.Render("Loading..."))
		}
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
		return b.String()
	}

	b.WriteString(m.renderStopwatch())
	b.WriteString("\n\n")
	b.WriteString(m.renderGoal("Today", m.overview.Today.Total, m.overview.DailyGoal))
	b.WriteString("\n")
	b.WriteString(m.renderGoal("Week ", m.overview.WeekTotal, m.overview.WeeklyGoal))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.view == viewToday {
		b.WriteString(m.renderToday())
	} else {
		b.WriteString(m.renderWeek())
	}

	if line := m.renderStatusLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(line)
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderStopwatch() string {
	current := m.overview.Current
	if current == nil {
		return theme.StoppedStyle.Render("■ Stopped")
	}

	line := theme.RunningStyle.Render("● Running") + " " +
		theme.ElapsedStyle.Render(domain.FormatDuration(current.Duration())) + " " +
		theme.LabelStyle.Render("since "+current.Start.Format(m.config.TimeFormat))
	if name := current.TagName(); name != "" {
		line += " " + theme.SubtitleStyle.Render("["+name+"]")
	}
	return line
}

func (m Model) renderGoal(label string, total time.Duration, goal domain.GoalState) string {
	line := theme.LabelStyle.Render(label) + "  " +
		theme.ElapsedStyle.Render(fmt.Sprintf("%-8s", domain.FormatDuration(total)))

	switch goal.Kind {
	case domain.GoalZero:
		return line + "  " + theme.MutedStyle.Render(goal.Describe())
	case domain.GoalReached:
		return line + "  " + m.progress.ViewAs(1) + "  " + theme.GoalReachedStyle.Render(goal.Describe())
	}

	line += "  " + m.progress.ViewAs(goal.Fraction()) + "  " + theme.GoalPendingStyle.Render(goal.Describe())
	if at, ok := goal.FinishesAt(m.now(), m.running()); ok {
		line += theme.MutedStyle.Render(" (at " + at.Format(m.config.TimeFormat) + ")")
	}
	return line
}

func (m Model) renderTabs() string {
	today, week := theme.TabStyle, theme.TabStyle
	if m.view == viewToday {
		today = theme.SelectedTabStyle
	} else {
		week = theme.SelectedTabStyle
	}
	return today.Render("Today") + "   " + week.Render("Week")
}

func (m Model) renderToday() string {
	blocks := m.overview.Today.Blocks
	if len(blocks) == 0 {
		return theme.MutedStyle.Render("No blocks yet today")
	}

	rows := make([]string, 0, len(blocks)+1)
	rows = append(rows, theme.TableHeaderStyle.Render(fmt.Sprintf("%-6s %-8s %-8s %-10s %s", "ID", "START", "END", "DURATION", "TAG")))
	for _, block := range blocks {
		end := block.End.Format(m.config.TimeFormat)
		if block.Running {
			end = "now"
		}
		rows = append(rows, theme.TableCellStyle.Render(fmt.Sprintf("%-6d %-8s %-8s %-10s %s",
			block.ID,
			block.Start.Format(m.config.TimeFormat),
			end,
			domain.FormatDuration(block.Duration()),
			block.TagName())))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderWeek() string {
	today := domain.StartOfDay(m.now())

	rows := make([]string, 0, len(m.overview.Week)+1)
	rows = append(rows, theme.TableHeaderStyle.Render(fmt.Sprintf("%-4s %-10s %-7s %s", "DAY", "DATE", "BLOCKS", "TOTAL")))
	for _, day := range m.overview.Week {
		style := theme.TableCellStyle
		if day.Day.Equal(today) {
			style = theme.TodayRowStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%-4s %-10s %-7d %s",
			day.Day.Weekday().String()[:3],
			day.Day.Format(m.config.DateFormat),
			len(day.Blocks),
			domain.FormatDuration(day.Total))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderStatusLine() string {
	var parts []string
	if m.config.InMemory {
		parts = append(parts, theme.WarningStyle.Render("Store unavailable: saving disabled"))
	}
	switch {
	case m.err != nil:
		parts = append(parts, theme.ErrorStyle.Render("Error: "+m.err.Error()))
	case m.loadErr != nil:
		parts = append(parts, theme.ErrorStyle.Render("Refresh failed: "+m.loadErr.Error()))
	case m.status != "":
		parts = append(parts, theme.InfoStyle.Render(m.status))
	}

	line := strings.Join(parts, "  ")
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}
