package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultCommand is the tmux binary used when no override is configured.
const DefaultCommand = "tmux"

// Controller drives a single tmux session through the tmux binary.
// Every invocation is built as an argv vector; no shell is interposed.
type Controller struct {
	sessionName string
	tmuxCommand string
}

// NewController creates a controller bound to the given session.
func NewController(sessionName string) *Controller {
	return NewControllerWithCommand(sessionName, DefaultCommand)
}

// NewControllerWithCommand creates a controller that invokes a specific
// tmux binary (e.g. from configuration).
func NewControllerWithCommand(sessionName, tmuxCommand string) *Controller {
	if tmuxCommand == "" {
		tmuxCommand = DefaultCommand
	}
	return &Controller{
		sessionName: sessionName,
		tmuxCommand: tmuxCommand,
	}
}

// SessionName returns the session this controller is bound to.
func (c *Controller) SessionName() string {
	return c.sessionName
}

// IsTmuxAvailable checks if the tmux command is available
func IsTmuxAvailable() bool {
	_, err := exec.LookPath(DefaultCommand)
	return err == nil
}

// ListSessions returns the names of all running tmux sessions.
func ListSessions() ([]string, error) {
	return ListSessionsUsing(DefaultCommand)
}

// ListSessionsUsing lists sessions through a specific tmux binary.
func ListSessionsUsing(tmuxCommand string) ([]string, error) {
	if tmuxCommand == "" {
		tmuxCommand = DefaultCommand
	}
	cmd := exec.Command(tmuxCommand, "list-sessions", "-F", "#{session_name}")
	output, err := cmd.Output()
	if err != nil {
		// tmux returns an error when no server is running, which is not a real error
		return nil, nil
	}

	var sessions []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			sessions = append(sessions, line)
		}
	}

	return sessions, nil
}

// SessionInfo describes one running session for listings.
type SessionInfo struct {
	Name     string
	Windows  int
	Attached bool
}

// ListSessionInfo returns session listings with window and attachment details.
func ListSessionInfo(tmuxCommand string) ([]SessionInfo, error) {
	if tmuxCommand == "" {
		tmuxCommand = DefaultCommand
	}
	cmd := exec.Command(tmuxCommand, "list-sessions", "-F", "#{session_name}\t#{session_windows}\t#{session_attached}")
	output, err := cmd.Output()
	if err != nil {
		return nil, nil
	}
	return parseSessionInfo(string(output)), nil
}

func parseSessionInfo(output string) []SessionInfo {
	var infos []SessionInfo
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			continue
		}

		windows, _ := strconv.Atoi(parts[1])
		attached, _ := strconv.Atoi(parts[2])

		infos = append(infos, SessionInfo{
			Name:     parts[0],
			Windows:  windows,
			Attached: attached > 0,
		})
	}
	return infos
}

// SessionExists checks if the bound tmux session exists.
func (c *Controller) SessionExists() bool {
	cmd := exec.Command(c.tmuxCommand, "has-session", "-t", c.sessionName)
	return cmd.Run() == nil
}

// CreateSession creates the bound session detached.
func (c *Controller) CreateSession() error {
	cmd := exec.Command(c.tmuxCommand, "new-session", "-d", "-s", c.sessionName)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to create tmux session: %w", err)
	}
	return nil
}

// KillSession kills the bound session.
func (c *Controller) KillSession() error {
	cmd := exec.Command(c.tmuxCommand, "kill-session", "-t", c.sessionName)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to kill tmux session: %w", err)
	}
	return nil
}

// Attach attaches the current terminal to the session.
func (c *Controller) Attach(detachKeys string) error {
	args := []string{"attach-session", "-t", c.sessionName}

	if detachKeys != "" {
		args = append(args, "-d", detachKeys)
	}

	cmd := exec.Command(c.tmuxCommand, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// AttachReadOnly attaches to the session in read-only mode.
func (c *Controller) AttachReadOnly(detachKeys string) error {
	args := []string{"attach-session", "-t", c.sessionName, "-r"}

	if detachKeys != "" {
		args = append(args, "-d", detachKeys)
	}

	cmd := exec.Command(c.tmuxCommand, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// paneInfoFields are the attributes reported by GetPaneInfo, in the order
// they are requested from tmux.
var paneInfoFields = []string{
	"pane_id",
	"pane_index",
	"pane_width",
	"pane_height",
	"pane_pid",
	"pane_current_command",
	"pane_current_path",
	"pane_title",
}

// GetPaneInfo returns metadata for the session's active pane as a
// field-name to value mapping.
func (c *Controller) GetPaneInfo() (map[string]string, error) {
	format := make([]string, len(paneInfoFields))
	for i, field := range paneInfoFields {
		format[i] = "#{" + field + "}"
	}

	cmd := exec.Command(c.tmuxCommand, "display-message", "-p", "-t", c.sessionName, strings.Join(format, "\t"))
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to read pane info: %w", err)
	}

	return parsePaneInfo(string(output)), nil
}

func parsePaneInfo(output string) map[string]string {
	values := strings.Split(strings.TrimRight(output, "\n"), "\t")
	info := make(map[string]string, len(paneInfoFields))
	for i, field := range paneInfoFields {
		if i < len(values) {
			info[field] = values[i]
		}
	}
	return info
}

// PaneInfo represents information about a tmux pane
type PaneInfo struct {
	ID     string
	Index  int
	Active bool
}

// ListPanes returns the panes of the bound session.
func (c *Controller) ListPanes() ([]PaneInfo, error) {
	cmd := exec.Command(c.tmuxCommand, "list-panes", "-t", c.sessionName, "-F", "#{pane_id}:#{pane_index}:#{pane_active}")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list panes: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(output)), "\n")
	panes := make([]PaneInfo, 0, len(lines))

	for _, line := range lines {
		if line == "" {
			continue
		}
		parts := strings.Split(line, ":")
		if len(parts) != 3 {
			continue
		}

		index, _ := strconv.Atoi(parts[1])

		panes = append(panes, PaneInfo{
			ID:     parts[0],
			Index:  index,
			Active: parts[2] == "1",
		})
	}

	return panes, nil
}

// SendCommand types a shell command into the session's active pane and
// presses Enter. Commands containing newlines are rejected: a newline in
// send-keys input would inject a second command.
func (c *Controller) SendCommand(command string) error {
	if strings.ContainsAny(command, "\n\r") {
		return fmt.Errorf("command must not contain newline characters")
	}

	cmd := exec.Command(c.tmuxCommand, "send-keys", "-t", c.sessionName, command, "C-m")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to send command to session %s: %w", c.sessionName, err)
	}
	return nil
}

// SendKeys sends raw key tokens (e.g. "C-c", "Escape") without an
// implicit Enter.
func (c *Controller) SendKeys(keys ...string) error {
	args := append([]string{"send-keys", "-t", c.sessionName}, keys...)
	cmd := exec.Command(c.tmuxCommand, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to send keys to session %s: %w", c.sessionName, err)
	}
	return nil
}

// CapturePane reads the pane's text content starting at the given history
// line. Negative startLine selects the last N lines including scrollback.
func (c *Controller) CapturePane(startLine int) (string, error) {
	cmd := exec.Command(c.tmuxCommand, "capture-pane", "-p", "-t", c.sessionName, "-S", strconv.Itoa(startLine))
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to capture pane: %w", err)
	}
	return strings.TrimRight(string(output), "\n"), nil
}

// CommandResult holds the outcome of ExecuteAndCapture.
type CommandResult struct {
	ID       string
	Command  string
	Output   string
	Duration time.Duration
}

// ExecuteAndCapture sends a command, waits the given fixed duration for it
// to run, then captures the pane and returns the output that appeared after
// the send. There is no acknowledgment from the pane; the wait is the only
// synchronization.
func (c *Controller) ExecuteAndCapture(command string, wait time.Duration) (*CommandResult, error) {
	started := time.Now()

	before, err := c.CapturePane(-LinesFullContext)
	if err != nil {
		return nil, err
	}

	if err := c.SendCommand(command); err != nil {
		return nil, err
	}

	time.Sleep(wait)

	after, err := c.CapturePane(-LinesFullContext)
	if err != nil {
		return nil, err
	}

	return &CommandResult{
		ID:       uuid.NewString(),
		Command:  command,
		Output:   extractCommandOutput(before, after, command),
		Duration: time.Since(started),
	}, nil
}

// extractCommandOutput reduces a post-send capture to the text the command
// produced: the lines beyond the pre-send content, minus the echoed command
// line and the fresh prompt.
func extractCommandOutput(before, after, command string) string {
	beforeLines := splitCapture(before)
	afterLines := splitCapture(after)

	i := 0
	for i < len(beforeLines) && i < len(afterLines) && beforeLines[i] == afterLines[i] {
		i++
	}
	lines := afterLines[i:]

	// Drop the echoed command line (the old prompt line with the command appended).
	if len(lines) > 0 && strings.Contains(lines[0], command) {
		lines = lines[1:]
	}

	// Drop the fresh prompt if it matches the prompt we saw before sending.
	if len(lines) > 0 && len(beforeLines) > 0 && lines[len(lines)-1] == beforeLines[len(beforeLines)-1] {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func splitCapture(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
