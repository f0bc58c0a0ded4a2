package errors

import "fmt"

// UserFriendlyError provides an error with helpful hints for the user
type UserFriendlyError struct {
	Message string   // The primary error message
	Hints   []string // Actionable suggestions for the user
	Cause   error    // The underlying error (if any)
}

// Error implements the error interface
func (e *UserFriendlyError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	if len(e.Hints) > 0 {
		msg += "\n\nSuggested actions:"
		for _, hint := range e.Hints {
			msg += fmt.Sprintf("\n  → %s", hint)
		}
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As compatibility
func (e *UserFriendlyError) Unwrap() error {
	return e.Cause
}

// NoSessionsFound creates an error for when no tmux sessions are running
func NoSessionsFound() *UserFriendlyError {
	return &UserFriendlyError{
		Message: "No tmux sessions found",
		Hints: []string{
			"Create one: tmux new-session -d -s mysession",
			"Check the tmux server: tmux ls",
		},
	}
}

// SessionNotFound creates an error for when a tmux session doesn't exist
func SessionNotFound(sessionName string) *UserFriendlyError {
	return &UserFriendlyError{
		Message: fmt.Sprintf("Session '%s' is not running", sessionName),
		Hints: []string{
			"List all sessions: panectl list",
			fmt.Sprintf("Create it: tmux new-session -d -s %s", sessionName),
		},
	}
}

// TmuxNotAvailable creates an error when tmux is not installed or not in PATH
func TmuxNotAvailable() *UserFriendlyError {
	return &UserFriendlyError{
		Message: "tmux is not available on this system",
		Hints: []string{
			"Install tmux: brew install tmux (macOS) or apt-get install tmux (Linux)",
			"Ensure tmux is in your PATH",
			"Verify installation: which tmux",
		},
	}
}

// CaptureFailed creates an error for failed pane captures
func CaptureFailed(sessionName string, cause error) *UserFriendlyError {
	return &UserFriendlyError{
		Message: fmt.Sprintf("Failed to capture pane content from session '%s'", sessionName),
		Cause:   cause,
		Hints: []string{
			fmt.Sprintf("Check session status: panectl info %s", sessionName),
			"Verify session exists: tmux ls",
		},
	}
}

// ConfigurationError creates an error for configuration file issues
func ConfigurationError(configPath string, cause error) *UserFriendlyError {
	return &UserFriendlyError{
		Message: fmt.Sprintf("Failed to load configuration from %s", configPath),
		Cause:   cause,
		Hints: []string{
			"Check YAML syntax: yamllint " + configPath,
			"Verify file permissions: ls -l " + configPath,
		},
	}
}
