package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/panectl/panectl/internal/styles"
	"github.com/panectl/panectl/internal/tmux"
)

// CmdList implements the 'list' subcommand
func CmdList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	quiet := fs.Bool("quiet", false, "Only show session names")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl list [options]\n\n")
		fmt.Fprintf(os.Stderr, "List all running tmux sessions.\n\n")
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
	sessions, err := tmux.ListSessionInfo(cfg.Tmux.Command)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions found")
		return nil
	}

	if *quiet {
		// Quiet mode: only show names
		for _, session := range sessions {
			fmt.Println(session.Name)
		}
		return nil
	}

	// Full mode: show table with details
	fmt.Printf("%s%s%s\n",
		styles.PadRight("NAME", 24),
		styles.PadRight("WINDOWS", 10),
		"ATTACHED")

	for _, session := range sessions {
		attached := "no"
		if session.Attached {
			attached = "yes"
		}
		fmt.Printf("%s%s%s\n",
			styles.PadRight(session.Name, 24),
			styles.PadRight(fmt.Sprintf("%d", session.Windows), 10),
			attached)
	}

	return nil
}
