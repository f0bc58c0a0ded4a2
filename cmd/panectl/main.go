package main

import (
	"fmt"
	"os"

	"github.com/panectl/panectl/cmd/panectl/commands"
)

func main() {
	// Check if subcommand is used
	if len(os.Args) >= 2 {
		subcommand := os.Args[1]
		knownCommands := []string{"demo", "list", "info", "exec", "send", "capture", "watch", "attach", "help", "version"}

		if contains(knownCommands, subcommand) {
			executeSubcommand(subcommand, os.Args[2:])
			return
		}
	}

	// No subcommand: run the demonstration. A bare "--interactive" first
	// argument selects the interactive routine; anything else runs the
	// basic demo.
	if err := commands.RunDemoFallback(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// executeSubcommand dispatches to the appropriate subcommand handler
func executeSubcommand(subcommand string, args []string) {
	var err error

	switch subcommand {
	case "demo":
		err = commands.CmdDemo(args)

	case "list":
		err = commands.CmdList(args)

	case "info":
		err = commands.CmdInfo(args)

	case "exec":
		err = commands.CmdExec(args)

	case "send":
		err = commands.CmdSend(args)

	case "capture":
		err = commands.CmdCapture(args)

	case "watch":
		err = commands.CmdWatch(args)

	case "attach":
		err = commands.CmdAttach(args)

	case "help":
		printHelp()

	case "version":
		printVersion()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		fmt.Fprintf(os.Stderr, "Run 'panectl help' for usage.\n")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printHelp shows usage information
func printHelp() {
	fmt.Println("panectl - Control tmux sessions from the command line")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  panectl <command> [options] [session-name]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  demo       Run the demonstration routines")
	fmt.Println("  list       List running tmux sessions")
	fmt.Println("  info       Show pane metadata for a session")
	fmt.Println("  exec       Run a command in a session and capture its output")
	fmt.Println("  send       Send a command to a session without capturing")
	fmt.Println("  capture    Print the tail of a session's pane content")
	fmt.Println("  watch      Live view of a session's pane content")
	fmt.Println("  attach     Attach the terminal to a session")
	fmt.Println("  help       Show this help message")
	fmt.Println("  version    Show version information")
	fmt.Println()
	fmt.Println("Script Usage (backward compatible):")
	fmt.Println("  panectl                  Run the basic demo")
	fmt.Println("  panectl --interactive    Run the interactive demo")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  panectl list")
	fmt.Println("  panectl exec mysession 'ls -la' --wait 500ms")
	fmt.Println("  panectl capture mysession --lines 50")
	fmt.Println("  panectl watch mysession --interval 2s")
	fmt.Println()
	fmt.Println("For more information on a specific command:")
	fmt.Println("  panectl <command> --help")
}

// printVersion shows version information
func printVersion() {
	fmt.Println("panectl")
	fmt.Println("Version: 1.0.0")
}
