// Package demo exercises a tmux session end to end: listing sessions,
// connecting, reading pane metadata, running commands, and capturing output.
package demo

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/panectl/panectl/internal/config"
	"github.com/panectl/panectl/internal/styles"
	"github.com/panectl/panectl/internal/tmux"
)

// SessionController is the per-session control surface the demos drive.
// *tmux.Controller satisfies it; tests substitute fakes.
type SessionController interface {
	SessionExists() bool
	GetPaneInfo() (map[string]string, error)
	ExecuteAndCapture(command string, wait time.Duration) (*tmux.CommandResult, error)
	CapturePane(startLine int) (string, error)
	SendCommand(command string) error
}

// Runner holds the collaborators for the demonstration routines.
type Runner struct {
	Out             io.Writer
	ListSessions    func() ([]string, error)
	Connect         func(sessionName string) SessionController
	CommandInterval time.Duration
	CaptureTail     int
}

// NewRunner wires a Runner to the real tmux controller using the given
// configuration.
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		Out: os.Stdout,
		ListSessions: func() ([]string, error) {
			return tmux.ListSessionsUsing(cfg.Tmux.Command)
		},
		Connect: func(sessionName string) SessionController {
			return tmux.NewControllerWithCommand(sessionName, cfg.Tmux.Command)
		},
		CommandInterval: cfg.Demo.CommandInterval,
		CaptureTail:     cfg.Demo.CaptureTail,
	}
}

// RunBasic demonstrates the basic control operations against the first
// available session.
func (r *Runner) RunBasic() error {
	fmt.Fprintln(r.Out, styles.Header.Render("=== Available Sessions ==="))

	sessions, err := r.ListSessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(r.Out, styles.Warn.Render("No sessions found. Create one with: tmux new-session -d -s mysession"))
		return nil
	}

	for _, s := range sessions {
		fmt.Fprintf(r.Out, "  - %s\n", s)
	}

	// Connect to first session
	session := sessions[0]
	fmt.Fprintf(r.Out, "\n%s\n", styles.Header.Render(fmt.Sprintf("=== Connecting to '%s' ===", session)))

	ctrl := r.Connect(session)

	if !ctrl.SessionExists() {
		fmt.Fprintln(r.Out, styles.Warn.Render(fmt.Sprintf("Session '%s' not found!", session)))
		return nil
	}

	fmt.Fprintf(r.Out, "\n%s\n", styles.Header.Render("=== Pane Info ==="))
	info, err := ctrl.GetPaneInfo()
	if err != nil {
		return fmt.Errorf("failed to read pane info: %w", err)
	}
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(r.Out, "  %s: %s\n", styles.Label.Render(k), info[k])
	}

	fmt.Fprintf(r.Out, "\n%s\n", styles.Header.Render("=== Execute 'pwd' ==="))
	result, err := ctrl.ExecuteAndCapture("pwd", 300*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to execute 'pwd': %w", err)
	}
	fmt.Fprintf(r.Out, "Output: %s\n", result.Output)

	fmt.Fprintf(r.Out, "\n%s\n", styles.Header.Render("=== Execute 'ls -la' ==="))
	result, err = ctrl.ExecuteAndCapture("ls -la", 500*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to execute 'ls -la': %w", err)
	}
	fmt.Fprintf(r.Out, "Output:\n%s\n", result.Output)

	tail := r.CaptureTail
	if tail <= 0 {
		tail = 10
	}
	fmt.Fprintf(r.Out, "\n%s\n", styles.Header.Render(fmt.Sprintf("=== Current Pane Content (last %d lines) ===", tail)))
	content, err := ctrl.CapturePane(-tail)
	if err != nil {
		return fmt.Errorf("failed to capture pane: %w", err)
	}
	fmt.Fprintln(r.Out, content)

	return nil
}

// interactiveCommands is the scripted sequence sent by RunInteractive.
var interactiveCommands = []string{
	"echo 'Starting task...'",
	"date",
	"hostname",
	"echo 'Task complete!'",
}

// RunInteractive demonstrates the fire-and-forget control pattern: a series
// of commands sent to the first session with a fixed pause between sends.
func (r *Runner) RunInteractive() error {
	sessions, err := r.ListSessions()
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(r.Out, styles.Warn.Render("No sessions available"))
		return nil
	}

	ctrl := r.Connect(sessions[0])

	for _, cmd := range interactiveCommands {
		fmt.Fprintf(r.Out, "Sending: %s\n", cmd)
		if err := ctrl.SendCommand(cmd); err != nil {
			return fmt.Errorf("failed to send %q: %w", cmd, err)
		}
		time.Sleep(r.CommandInterval)
	}

	return nil
}
