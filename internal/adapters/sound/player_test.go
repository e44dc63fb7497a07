package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayback struct {
	stopped bool
}

func (f *fakePlayback) stop() error {
	f.stopped = true
	return nil
}

func newFakePlayer() (*Player, *[]string, *[]*fakePlayback) {
	cues := &[]string{}
	playbacks := &[]*fakePlayback{}
	player := &Player{
		play: func(cue string) (playback, error) {
			pb := &fakePlayback{}
			*cues = append(*cues, cue)
			*playbacks = append(*playbacks, pb)
			return pb, nil
		},
	}
	return player, cues, playbacks
}

func TestPlaySoundForCue_StopsPreviousPlayback(t *testing.T) {
	player, cues, playbacks := newFakePlayer()

	require.NoError(t, player.PlaySoundForCue("work"))
	require.NoError(t, player.PlaySoundForCue("rest"))

	assert.Equal(t, []string{"work", "rest"}, *cues)
	require.Len(t, *playbacks, 2)
	assert.True(t, (*playbacks)[0].stopped, "starting a new cue should stop the previous one")
	assert.False(t, (*playbacks)[1].stopped)
}

func TestStop_HaltsCurrentPlaybackOnce(t *testing.T) {
	player, _, playbacks := newFakePlayer()

	require.NoError(t, player.PlaySoundForCue("finish"))
	require.NoError(t, player.Stop())

	require.Len(t, *playbacks, 1)
	assert.True(t, (*playbacks)[0].stopped)

	// Stop with nothing playing is a no-op
	require.NoError(t, player.Stop())
}
