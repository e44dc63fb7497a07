package cmd

import "fitick/internal/ports"

// PlaySoundCmd plays a notification cue
type PlaySoundCmd struct {
	Cue string `help:"Cue to play" enum:"work,rest,finish,tick" default:"finish"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	switch p.Cue {
	case ports.CueWork, ports.CueRest, ports.CueFinish, ports.CueTick:
		return cli.Container.Sound.PlaySoundForCue(p.Cue)
	default:
		return cli.Container.Sound.PlaySound()
	}
}
