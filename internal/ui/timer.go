package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"fitick/internal/domain"
	"fitick/internal/logging"
	"fitick/internal/services"
	"fitick/internal/theme"
)

type timerUIState int

const (
	stateCounting timerUIState = iota
	stateConfirmingReset
	stateDone
)

const maxProgressWidth = 60

// TimerModel runs one countdown session. The bubbletea tick is the clock:
// every tickMsg advances the engine by exactly one second and the resulting
// events fan out through the dispatcher. The model itself never sleeps.
type TimerModel struct {
	cfg   domain.SessionConfig
	timer domain.TimerState

	dispatcher *services.Dispatcher
	recorder   *services.Recorder

	keys     TimerKeyMap
	progress progress.Model
	state    timerUIState
	width    int

	startedAt   time.Time
	wasPaused   bool // paused flag before the reset dialog opened
	resetForm   *huh.Form
	resetAnswer *bool

	record  domain.WorkoutRecord
	saveErr error
	saved   bool
}

func NewTimerModel(cfg domain.SessionConfig, dispatcher *services.Dispatcher, recorder *services.Recorder) *TimerModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxProgressWidth

	return &TimerModel{
		cfg:        cfg,
		timer:      domain.Start(cfg),
		dispatcher: dispatcher,
		recorder:   recorder,
		keys:       NewTimerKeyMap(),
		progress:   bar,
		state:      stateCounting,
		startedAt:  time.Now(),
	}
}

func (m *TimerModel) Init() tea.Cmd {
	m.dispatcher.Dispatch([]domain.Event{
		{Kind: domain.EventPhaseStarted, Phase: domain.PhaseWork},
	})
	return tickCmd()
}

// tickCmd schedules the next one-second heartbeat
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *TimerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.progress.Width = min(sizeMsg.Width-4, maxProgressWidth)
		return m, nil
	}

	switch m.state {
	case stateCounting:
		return m.updateCounting(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	case stateDone:
		return m.updateDone(msg)
	}
	return m, nil
}

func (m *TimerModel) updateCounting(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		next, events := domain.Tick(m.timer, m.cfg)
		m.timer = next
		m.dispatcher.Dispatch(events)
		if m.timer.Finished() {
			m.state = stateDone
			return m, m.saveRecordCmd()
		}
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit, m.keys.ForceQuit):
			m.dispatcher.StopAudio()
			return m, tea.Quit

		case key.Matches(msg, m.keys.PauseResume):
			if m.timer.Paused {
				m.timer = domain.Resume(m.timer)
			} else {
				m.timer = domain.Pause(m.timer)
			}
			return m, nil

		case key.Matches(msg, m.keys.Skip):
			next, events := domain.Skip(m.timer, m.cfg)
			m.timer = next
			m.dispatcher.Dispatch(events)
			if m.timer.Finished() {
				m.state = stateDone
				return m, m.saveRecordCmd()
			}
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.wasPaused = m.timer.Paused
			m.timer = domain.Pause(m.timer)
			m.resetAnswer = new(bool)
			m.resetForm = huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Reset workout?").
						Description("The countdown returns to the first work set.").
						Value(m.resetAnswer).
						Affirmative("Reset").
						Negative("Keep going"),
				),
			)
			m.state = stateConfirmingReset
			return m, m.resetForm.Init()
		}
	}
	return m, nil
}

func (m *TimerModel) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, m.keys.Quit, m.keys.ForceQuit) {
			return m.closeResetDialog(false)
		}
	}

	if m.resetForm == nil {
		m.state = stateCounting
		return m, nil
	}

	updated, cmd := m.resetForm.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.resetForm = form
		if form.State == huh.StateCompleted {
			return m.closeResetDialog(*m.resetAnswer)
		}
	}

	// Keep ticking in the background so the dialog doesn't freeze the loop;
	// the engine no-ops while paused
	if _, isTick := msg.(tickMsg); isTick {
		return m, tickCmd()
	}
	return m, cmd
}

// closeResetDialog leaves the confirm state, resetting the timer when asked
func (m *TimerModel) closeResetDialog(reset bool) (tea.Model, tea.Cmd) {
	m.resetForm = nil
	m.resetAnswer = nil
	m.state = stateCounting

	if reset {
		logging.Logger.Info("Workout reset to first set")
		m.timer = domain.Reset(m.cfg)
		m.startedAt = time.Now()
		m.dispatcher.Dispatch([]domain.Event{
			{Kind: domain.EventPhaseStarted, Phase: domain.PhaseWork},
		})
		return m, nil
	}

	m.timer.Paused = m.wasPaused
	return m, nil
}

func (m *TimerModel) updateDone(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordSavedMsg:
		m.saved = true
		m.record = msg.record
		m.saveErr = msg.err
		if msg.err != nil {
			logging.Logger.Error("Failed to save workout record", "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.dispatcher.StopAudio()
			history := NewHistoryModel(m.recorder)
			return history, history.Init()
		case "q", "esc", "ctrl+c":
			m.dispatcher.StopAudio()
			return m, tea.Quit
		}
	}
	return m, nil
}

// saveRecordCmd persists the finished workout off the update loop. The
// recorded duration is wall-clock time including pauses.
func (m *TimerModel) saveRecordCmd() tea.Cmd {
	cfg := m.cfg
	elapsed := time.Since(m.startedAt)
	return func() tea.Msg {
		record, err := m.recorder.RecordCompletion(context.Background(), cfg, elapsed)
		return recordSavedMsg{record: record, err: err}
	}
}

func (m *TimerModel) View() string {
	switch m.state {
	case stateDone:
		return m.viewDone()
	case stateConfirmingReset:
		return m.viewCounting() + "\n" + m.resetForm.View()
	default:
		return m.viewCounting() + renderHelp(
			m.keys.PauseResume, m.keys.Skip, m.keys.Reset, m.keys.Quit,
		)
	}
}

func (m *TimerModel) viewCounting() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(m.cfg.Title))
	b.WriteString("\n")

	clockStyle := theme.WorkClockStyle
	phaseLabel := "WORK"
	if m.timer.Phase == domain.PhaseRest {
		clockStyle = theme.RestClockStyle
		phaseLabel = "REST"
	}
	if m.timer.TimeRemaining <= 3 && m.timer.TimeRemaining > 0 {
		clockStyle = theme.ClosingClockStyle
	}

	b.WriteString(theme.PhaseLabelStyle.Render(phaseLabel))
	b.WriteString(theme.SubtleStyle.Render(fmt.Sprintf("  set %d of %d", m.timer.CurrentSet, m.cfg.TotalSets)))
	if m.timer.Paused {
		b.WriteString("  " + theme.PausedStyle.Render("PAUSED"))
	}
	b.WriteString("\n\n")

	b.WriteString(clockStyle.Render(domain.FormatClock(m.timer.TimeRemaining)))
	b.WriteString("\n\n")

	total := domain.PhaseDuration(m.timer, m.cfg)
	percent := 0.0
	if total > 0 {
		percent = float64(total-m.timer.TimeRemaining) / float64(total)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	b.WriteString(m.setDots())
	b.WriteString("\n")

	return b.String()
}

// setDots renders one dot per set: done, current, pending
func (m *TimerModel) setDots() string {
	var b strings.Builder
	for set := 1; set <= m.cfg.TotalSets; set++ {
		switch {
		case set < m.timer.CurrentSet:
			b.WriteString(theme.SetDoneStyle.Render("●"))
		case set == m.timer.CurrentSet:
			b.WriteString(theme.SetCurrentStyle.Render("◉"))
		default:
			b.WriteString(theme.SetPendingStyle.Render("○"))
		}
		if set < m.cfg.TotalSets {
			b.WriteString(" ")
		}
	}
	return b.String()
}

func (m *TimerModel) viewDone() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render(m.cfg.Title))
	b.WriteString("\n")
	b.WriteString(theme.FinishedStyle.Render("Workout complete!"))
	b.WriteString("\n\n")

	elapsed := int(time.Since(m.startedAt).Seconds())
	if m.saved && m.saveErr == nil {
		elapsed = m.record.DurationSeconds
	}

	b.WriteString(theme.NormalStyle.Render(fmt.Sprintf("Sets      %d", m.cfg.TotalSets)))
	b.WriteString("\n")
	b.WriteString(theme.NormalStyle.Render("Duration  " + domain.FormatLong(elapsed)))
	b.WriteString("\n")

	switch {
	case m.saveErr != nil:
		b.WriteString("\n" + theme.ErrorStyle.Render("Could not save record: "+m.saveErr.Error()))
	case m.saved:
		b.WriteString("\n" + theme.SubtleStyle.Render("Saved to history."))
	}

	b.WriteString(theme.HelpStyle.Render("enter: history  •  q: quit"))
	return b.String()
}
