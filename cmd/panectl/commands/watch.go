package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/panectl/panectl/internal/paths"
	"github.com/panectl/panectl/internal/watch"
)

// CmdWatch implements the 'watch' subcommand
func CmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	interval := fs.Duration("interval", 0, "How often to re-capture the pane (default from config)")
	lines := fs.Int("lines", 0, "Pane lines kept on screen (default from config)")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl watch [options] [session-name]\n\n")
		fmt.Fprintf(os.Stderr, "Live, read-only view of a session's pane content.\n")
		fmt.Fprintf(os.Stderr, "Without a session name, the first running session is used.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ensureTmux(); err != nil {
		return err
	}

	cfg := loadConfig(*configPath)
	if *interval <= 0 {
		*interval = cfg.Watch.Interval
	}
	if *interval < 100*time.Millisecond {
		*interval = 100 * time.Millisecond
	}
	if *lines <= 0 {
		*lines = cfg.Watch.Lines
	}

	sessionName, err := resolveSession(fs.Args(), cfg)
	if err != nil {
		return err
	}

	if _, err := connect(sessionName, cfg); err != nil {
		return err
	}

	pathMgr := paths.NewPathManager()
	if err := pathMgr.EnsureDirectories(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watch.Run(ctx, watch.Config{
		Session:     sessionName,
		TmuxCommand: cfg.Tmux.Command,
		Interval:    *interval,
		Lines:       *lines,
		LogPath:     pathMgr.LogPath(sessionName),
	})
}
