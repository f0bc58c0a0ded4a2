package commands

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/panectl/panectl/internal/styles"
)

// CmdInfo implements the 'info' subcommand
func CmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl info [options] [session-name]\n\n")
		fmt.Fprintf(os.Stderr, "Show metadata for a session's active pane.\n")
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

	info, err := ctrl.GetPaneInfo()
	if err != nil {
		return err
	}

	fmt.Println(styles.Header.Render(fmt.Sprintf("Pane info for '%s'", sessionName)))

	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("  %s%s\n", styles.Label.Render(styles.PadRight(k, 24)), info[k])
	}

	return nil
}
