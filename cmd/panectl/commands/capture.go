package commands

import (
	"flag"
	"fmt"
	"os"

	paneerrors "github.com/panectl/panectl/internal/errors"
)

// CmdCapture implements the 'capture' subcommand
func CmdCapture(args []string) error {
	fs := flag.NewFlagSet("capture", flag.ExitOnError)
	lines := fs.Int("lines", 0, "Number of trailing pane lines to capture (default from config)")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl capture [options] [session-name]\n\n")
		fmt.Fprintf(os.Stderr, "Print the tail of a session's pane content, including history.\n")
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
	if *lines <= 0 {
		*lines = cfg.Tmux.CaptureLines
	}

	sessionName, err := resolveSession(fs.Args(), cfg)
	if err != nil {
		return err
	}

	ctrl, err := connect(sessionName, cfg)
	if err != nil {
		return err
	}

	content, err := ctrl.CaptureTail(*lines)
	if err != nil {
		return paneerrors.CaptureFailed(sessionName, err)
	}

	fmt.Println(content)
	return nil
}
