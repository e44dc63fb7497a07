package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fitick/internal/domain"
	"fitick/internal/services"
	"fitick/internal/theme"
)

type historyUIState int

const (
	historyStateList historyUIState = iota
	historyStateConfirmingDelete
	historyStateConfirmingClear
)

// HistoryModel is the interactive workout history browser
type HistoryModel struct {
	recorder *services.Recorder
	keys     HistoryKeyMap

	records  []domain.WorkoutRecord
	selected int
	loadErr  error

	state         historyUIState
	confirmForm   *huh.Form
	confirmAnswer *bool
}

func NewHistoryModel(recorder *services.Recorder) *HistoryModel {
	return &HistoryModel{
		recorder: recorder,
		keys:     NewHistoryKeyMap(),
	}
}

func (m *HistoryModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m *HistoryModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.recorder.History(context.Background())
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if loaded, ok := msg.(historyLoadedMsg); ok {
		m.records = loaded.records
		m.loadErr = loaded.err
		if m.selected >= len(m.records) {
			m.selected = max(len(m.records)-1, 0)
		}
		return m, nil
	}

	switch m.state {
	case historyStateList:
		return m.updateList(msg)
	default:
		return m.updateConfirming(msg)
	}
}

func (m *HistoryModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit, m.keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.selected < len(m.records)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Delete):
		if len(m.records) == 0 {
			return m, nil
		}
		record := m.records[m.selected]
		m.openConfirm(historyStateConfirmingDelete,
			fmt.Sprintf("Delete record %s?", record.Title),
			"Removes this workout from the history.",
			"Delete")
		return m, m.confirmForm.Init()

	case key.Matches(keyMsg, m.keys.Clear):
		if len(m.records) == 0 {
			return m, nil
		}
		m.openConfirm(historyStateConfirmingClear,
			"Clear the whole history?",
			fmt.Sprintf("All %d records will be removed.", len(m.records)),
			"Clear")
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m *HistoryModel) openConfirm(state historyUIState, title, description, affirmative string) {
	m.confirmAnswer = new(bool)
	m.confirmForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(m.confirmAnswer).
				Affirmative(affirmative).
				Negative("Cancel"),
		),
	)
	m.state = state
}

func (m *HistoryModel) updateConfirming(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit, m.keys.ForceQuit) {
			m.closeConfirm()
			return m, nil
		}
	}

	if m.confirmForm == nil {
		m.closeConfirm()
		return m, nil
	}

	updated, cmd := m.confirmForm.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.confirmForm = form
		if form.State == huh.StateCompleted {
			confirmed := *m.confirmAnswer
			state := m.state
			m.closeConfirm()
			if !confirmed {
				return m, nil
			}
			if state == historyStateConfirmingClear {
				return m, m.clearCmd()
			}
			return m, m.deleteCmd(m.records[m.selected].ID)
		}
	}
	return m, cmd
}

func (m *HistoryModel) closeConfirm() {
	m.confirmForm = nil
	m.confirmAnswer = nil
	m.state = historyStateList
}

func (m *HistoryModel) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.recorder.Delete(context.Background(), id); err != nil {
			return historyLoadedMsg{err: err}
		}
		records, err := m.recorder.History(context.Background())
		return historyLoadedMsg{records: records, err: err}
	}
}

func (m *HistoryModel) clearCmd() tea.Cmd {
	return func() tea.Msg {
		err := m.recorder.Clear(context.Background())
		return historyLoadedMsg{records: nil, err: err}
	}
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("Workout History"))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(theme.ErrorStyle.Render("Error: " + m.loadErr.Error()))
		b.WriteString("\n")
	}

	stats := domain.TotalStats(m.records)
	b.WriteString(theme.StatsHeaderStyle.Render(
		fmt.Sprintf("%d workouts  •  %s total", stats.TotalWorkouts, domain.FormatLong(stats.TotalTimeSeconds))))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(theme.SubtleStyle.Render("No workouts recorded yet."))
		b.WriteString("\n")
	}

	for i, record := range m.records {
		cursor := "  "
		if i == m.selected {
			cursor = theme.SetCurrentStyle.Render("> ")
		}
		date := domain.FormatDateLabel(time.UnixMilli(record.Timestamp), time.Now())
		b.WriteString(cursor + theme.RecordTitleStyle.Render(record.Title))
		b.WriteString("\n   ")
		b.WriteString(theme.RecordMetaStyle.Render(
			fmt.Sprintf("%s  •  %s", date, domain.FormatCompact(record.DurationSeconds))))
		b.WriteString("\n")
	}

	if m.state != historyStateList && m.confirmForm != nil {
		b.WriteString("\n" + m.confirmForm.View())
		return b.String()
	}

	b.WriteString(renderHelp(m.keys.Up, m.keys.Down, m.keys.Delete, m.keys.Clear, m.keys.Quit))
	return b.String()
}
