package cmd

import (
	"fitick/internal/server"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	Host string `help:"Host address to bind to" default:"0.0.0.0"`
	Port string `help:"Port to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	sshServer, err := server.NewServer(s.Host, s.Port, cli.settings)
	if err != nil {
		return err
	}
	return sshServer.Start()
}
