package commands

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// CmdSend implements the 'send' subcommand
func CmdSend(args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl send [options] <session-name> <command...>\n\n")
		fmt.Fprintf(os.Stderr, "Send a shell command to a session's pane without capturing output.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return fmt.Errorf("send requires a session name and a command")
	}

	if err := ensureTmux(); err != nil {
		return err
	}

	ctrl, err := connect(rest[0], loadConfig(*configPath))
	if err != nil {
		return err
	}

	return ctrl.SendCommand(strings.Join(rest[1:], " "))
}
