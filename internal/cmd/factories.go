package cmd

import (
	adapterhaptics "fitick/internal/adapters/haptics"
	adapterkeepawake "fitick/internal/adapters/keepawake"
	adaptersound "fitick/internal/adapters/sound"
	adapterspeech "fitick/internal/adapters/speech"
	adapterstorage "fitick/internal/adapters/storage"
	"fitick/internal/config"
	"fitick/internal/ports"
	"fitick/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Capabilities *services.CapabilityService
	Recorder     *services.Recorder

	// Effect ports
	Haptics ports.HapticDriver
	Sound   ports.SoundPlayer
	Speech  ports.SpeechSynthesizer
	Waker   ports.SessionWaker

	// Internal - for cleanup only
	store *adapterstorage.SQLiteKVStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	store, err := adapterstorage.NewSQLiteKVStore(config.GetDBPath(settings))
	if err != nil {
		return nil, err
	}

	settingsPath, err := config.SettingsPath()
	if err != nil {
		store.Close()
		return nil, err
	}

	return &Container{
		Capabilities: services.NewCapabilityService(settingsPath),
		Recorder:     services.NewRecorder(store, settings.EffectiveMaxRecords()),
		Haptics:      adapterhaptics.NewDriver(),
		Sound:        adaptersound.NewPlayer(),
		Speech:       adapterspeech.NewSpeaker(),
		Waker:        adapterkeepawake.NewWaker(),
		store:        store,
	}, nil
}

// NewDispatcher builds an effect dispatcher over the container's ports
func (c *Container) NewDispatcher() *services.Dispatcher {
	return services.NewDispatcher(c.Capabilities, c.Sound, c.Speech, c.Haptics)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
