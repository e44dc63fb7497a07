package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitick/internal/domain"
	"fitick/internal/ports"
	"fitick/internal/services"
)

// silentCaps disables every effect so tests run without audio backends
type silentCaps struct{}

func (silentCaps) SoundEnabled() bool         { return false }
func (silentCaps) VoiceEnabled() bool         { return false }
func (silentCaps) VibrationEnabled() bool     { return false }
func (silentCaps) Volume() int                { return 0 }
func (silentCaps) HasAudioCapability() bool   { return false }
func (silentCaps) HasHapticsCapability() bool { return false }

type noopSound struct{}

func (noopSound) PlaySound() error             { return nil }
func (noopSound) PlaySoundForCue(string) error { return nil }
func (noopSound) Stop() error                  { return nil }

type noopSpeech struct{}

func (noopSpeech) Speak(string, int) error { return nil }
func (noopSpeech) Stop() error             { return nil }

type noopHaptics struct{}

func (noopHaptics) Pulse(ports.HapticIntensity) error { return nil }

type mapStore struct {
	data map[string]string
}

func (s *mapStore) Get(_ context.Context, key string) (string, bool, error) {
	value, found := s.data[key]
	return value, found, nil
}

func (s *mapStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}

func (s *mapStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

func (s *mapStore) Close() error { return nil }

func newTestTimer(cfg domain.SessionConfig) (*TimerModel, *mapStore) {
	store := &mapStore{data: make(map[string]string)}
	dispatcher := services.NewDispatcher(silentCaps{}, noopSound{}, noopSpeech{}, noopHaptics{})
	recorder := services.NewRecorder(store, 4)
	return NewTimerModel(cfg, dispatcher, recorder), store
}

func shortConfig() domain.SessionConfig {
	return domain.SessionConfig{
		WorkSeconds: 3,
		RestSeconds: 2,
		TotalSets:   2,
		Title:       "Work",
	}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestTimerModel_TickAdvancesCountdown(t *testing.T) {
	model, _ := newTestTimer(shortConfig())

	updated, _ := model.Update(tickMsg(time.Now()))
	model = updated.(*TimerModel)

	assert.Equal(t, 2, model.timer.TimeRemaining)
	assert.Equal(t, domain.PhaseWork, model.timer.Phase)
}

func TestTimerModel_PauseStopsTicking(t *testing.T) {
	model, _ := newTestTimer(shortConfig())

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model = updated.(*TimerModel)
	require.True(t, model.timer.Paused)

	updated, _ = model.Update(tickMsg(time.Now()))
	model = updated.(*TimerModel)
	assert.Equal(t, 3, model.timer.TimeRemaining)

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	model = updated.(*TimerModel)
	assert.False(t, model.timer.Paused)
}

func TestTimerModel_SkipThroughWholeWorkout(t *testing.T) {
	model, _ := newTestTimer(shortConfig())

	// 2 sets means 3 segments: work, rest, work
	for i := 0; i < 2; i++ {
		updated, _ := model.Update(keyPress('s'))
		model = updated.(*TimerModel)
		require.False(t, model.timer.Finished())
	}

	updated, cmd := model.Update(keyPress('s'))
	model = updated.(*TimerModel)

	assert.True(t, model.timer.Finished())
	assert.Equal(t, stateDone, model.state)
	require.NotNil(t, cmd)

	// Run the save command and feed its result back
	saved, ok := cmd().(recordSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.Equal(t, 2, saved.record.Sets)

	updated, _ = model.Update(saved)
	model = updated.(*TimerModel)
	assert.True(t, model.saved)
}

func TestTimerModel_FinishPersistsRecord(t *testing.T) {
	model, store := newTestTimer(shortConfig())

	// Walk the clock through the full session: 3+2+3 ticks
	var cmd tea.Cmd
	for i := 0; i < 8; i++ {
		var updated tea.Model
		updated, cmd = model.Update(tickMsg(time.Now()))
		model = updated.(*TimerModel)
	}

	require.True(t, model.timer.Finished())
	require.NotNil(t, cmd)

	saved, ok := cmd().(recordSavedMsg)
	require.True(t, ok)
	require.NoError(t, saved.err)
	assert.NotEmpty(t, store.data["workout_records"])
}

func TestTimerModel_ResetDialogRestoresPauseState(t *testing.T) {
	model, _ := newTestTimer(shortConfig())

	// Burn one second, then open the reset dialog
	updated, _ := model.Update(tickMsg(time.Now()))
	model = updated.(*TimerModel)
	updated, _ = model.Update(keyPress('r'))
	model = updated.(*TimerModel)

	require.Equal(t, stateConfirmingReset, model.state)
	assert.True(t, model.timer.Paused)

	// Cancel with esc: countdown resumes where it was
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(*TimerModel)

	assert.Equal(t, stateCounting, model.state)
	assert.False(t, model.timer.Paused)
	assert.Equal(t, 2, model.timer.TimeRemaining)
}
