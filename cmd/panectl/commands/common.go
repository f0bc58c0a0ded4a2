package commands

import (
	"os"

	"github.com/panectl/panectl/internal/config"
	"github.com/panectl/panectl/internal/errors"
	"github.com/panectl/panectl/internal/paths"
	"github.com/panectl/panectl/internal/tmux"
)

// loadConfig resolves the effective configuration. An explicit path wins;
// otherwise ~/.panectl/config.yaml is used when present, else defaults.
func loadConfig(path string) *config.Config {
	if path != "" {
		return config.LoadOrDefault(path)
	}

	defaultPath := paths.NewPathManager().ConfigPath()
	if _, err := os.Stat(defaultPath); err == nil {
		return config.LoadOrDefault(defaultPath)
	}

	return config.DefaultConfig()
}

// ensureTmux fails early with guidance when the tmux binary is missing.
func ensureTmux() error {
	if !tmux.IsTmuxAvailable() {
		return errors.TmuxNotAvailable()
	}
	return nil
}

// resolveSession returns the session named in args, or the first running
// session when args carry none.
func resolveSession(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}

	sessions, err := tmux.ListSessionsUsing(cfg.Tmux.Command)
	if err != nil {
		return "", err
	}
	if len(sessions) == 0 {
		return "", errors.NoSessionsFound()
	}

	return sessions[0], nil
}

// connect builds a controller for the session and verifies it exists.
func connect(sessionName string, cfg *config.Config) (*tmux.Controller, error) {
	ctrl := tmux.NewControllerWithCommand(sessionName, cfg.Tmux.Command)
	if !ctrl.SessionExists() {
		return nil, errors.SessionNotFound(sessionName)
	}
	return ctrl, nil
}
