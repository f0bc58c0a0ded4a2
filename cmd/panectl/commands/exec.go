package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/panectl/panectl/internal/styles"
)

// CmdExec implements the 'exec' subcommand
func CmdExec(args []string) error {
	fs := flag.NewFlagSet("exec", flag.ExitOnError)
	wait := fs.Duration("wait", 0, "How long to wait before capturing output (default from config)")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl exec [options] <session-name> <command...>\n\n")
		fmt.Fprintf(os.Stderr, "Run a shell command in a session's pane and capture its output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return fmt.Errorf("exec requires a session name and a command")
	}

	if err := ensureTmux(); err != nil {
		return err
	}

	cfg := loadConfig(*configPath)
	if *wait <= 0 {
		*wait = cfg.Tmux.DefaultWait
	}

	ctrl, err := connect(rest[0], cfg)
	if err != nil {
		return err
	}

	command := strings.Join(rest[1:], " ")
	result, err := ctrl.ExecuteAndCapture(command, *wait)
	if err != nil {
		return err
	}

	fmt.Println(result.Output)
	fmt.Fprintln(os.Stderr, styles.Dim.Render(
		fmt.Sprintf("[%s] completed in %s", result.ID, result.Duration.Round(time.Millisecond))))

	return nil
}
