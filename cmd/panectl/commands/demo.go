package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/panectl/panectl/internal/demo"
)

// CmdDemo implements the 'demo' subcommand
func CmdDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	interactive := fs.Bool("interactive", false, "Run the interactive control demo")
	configPath := fs.String("config", "", "Path to config file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: panectl demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Run the demonstration routines against the first running session.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	runner := demo.NewRunner(loadConfig(*configPath))

	if *interactive {
		return runner.RunInteractive()
	}
	return runner.RunBasic()
}

// RunDemoFallback preserves the original script surface for invocations
// without a subcommand: "--interactive" as the first argument runs the
// interactive demo, anything else runs the basic demo.
func RunDemoFallback(args []string) error {
	runner := demo.NewRunner(loadConfig(""))

	if DemoMode(args) == "interactive" {
		return runner.RunInteractive()
	}
	return runner.RunBasic()
}

// DemoMode selects which demo routine an argument list asks for.
func DemoMode(args []string) string {
	if len(args) > 0 && args[0] == "--interactive" {
		return "interactive"
	}
	return "basic"
}
