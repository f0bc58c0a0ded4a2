package commands

import (
	"flag"
	"fmt"
	"os"
)

// CmdAttach implements the 'attach' subcommand
func CmdAttach(args []string) error {
	fs := flag.NewFlagSet("attach", flag.ExitOnError)
	readOnly := fs.Bool("read-only", false, "Attach without the ability to type")
	detachKeys := fs.String("detach-keys", "", "Override the detach key binding")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl attach [options] [session-name]\n\n")
		fmt.Fprintf(os.Stderr, "Attach the current terminal to a tmux session.\n")
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
	sessionName, err := resolveSession(fs.Args(), cfg)
	if err != nil {
		return err
	}

	ctrl, err := connect(sessionName, cfg)
	if err != nil {
		return err
	}

	if *readOnly {
		return ctrl.AttachReadOnly(*detachKeys)
	}
	return ctrl.Attach(*detachKeys)
}
