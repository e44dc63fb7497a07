package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"fitick/internal/adapters/haptics"
	"fitick/internal/adapters/storage"
	"fitick/internal/config"
	"fitick/internal/logging"
	"fitick/internal/ports"
	"fitick/internal/services"
	"fitick/internal/ui"
)

// remoteCaps adapts a capability provider for an SSH session: sound and
// speech would play on the host, not the client terminal, so the audio
// path is reported absent. Bell pulses travel over the wire, so haptics
// stay available.
type remoteCaps struct {
	ports.CapabilityProvider
}

func (remoteCaps) HasAudioCapability() bool   { return false }
func (remoteCaps) HasHapticsCapability() bool { return true }

// sessionModel wraps the session's UI model to release per-session
// resources on quit. The inner model is the timer at first and may switch
// to the history browser after completion.
type sessionModel struct {
	inner      tea.Model
	sessionID  string
	startTime  time.Time
	store      *storage.SQLiteKVStore
	dispatcher *services.Dispatcher
}

func (s *sessionModel) Init() tea.Cmd {
	return s.inner.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		duration := time.Since(s.startTime)

		if err := s.dispatcher.Close(); err != nil {
			logging.Logger.Error("Failed to drain effects for SSH session",
				"error", err,
				"session_id", s.sessionID)
		}
		if err := s.store.Close(); err != nil {
			logging.Logger.Error("Failed to close store for SSH session",
				"error", err,
				"session_id", s.sessionID,
				"duration", duration.String())
		}

		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", duration.String())
	}

	updatedModel, cmd := s.inner.Update(msg)
	s.inner = updatedModel
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.inner.View()
}

// teaHandler creates a timer model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	store, err := storage.NewSQLiteKVStore(config.GetDBPath(s.settings))
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	settingsPath, err := config.SettingsPath()
	if err != nil {
		logging.Logger.Error("Failed to resolve settings path for SSH session",
			"error", err,
			"session_id", sessionID)
		return errorModel{err}, nil
	}

	sessionCfg := config.NewSessionConfig(s.settings)
	if err := sessionCfg.Validate(); err != nil {
		return errorModel{err}, nil
	}

	caps := remoteCaps{services.NewCapabilityService(settingsPath)}
	dispatcher := services.NewDispatcher(
		caps,
		nil, // no audio path to the client
		nil,
		haptics.NewDriverForWriter(sess),
	)
	recorder := services.NewRecorder(store, s.settings.EffectiveMaxRecords())

	wrappedModel := &sessionModel{
		inner:      ui.NewTimerModel(sessionCfg, dispatcher, recorder),
		sessionID:  sessionID,
		startTime:  time.Now(),
		store:      store,
		dispatcher: dispatcher,
	}

	return wrappedModel, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// errorModel is a simple model that displays an error
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
