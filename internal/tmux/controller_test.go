package tmux

import (
	"strings"
	"testing"
	"time"
)

func TestNewControllerDefaults(t *testing.T) {
	ctrl := NewController("test-session")

	if ctrl.SessionName() != "test-session" {
		t.Errorf("SessionName() = %v, want %v", ctrl.SessionName(), "test-session")
	}
	if ctrl.tmuxCommand != "tmux" {
		t.Errorf("tmuxCommand = %v, want %v", ctrl.tmuxCommand, "tmux")
	}
}

func TestNewControllerWithCommand_EmptyFallsBack(t *testing.T) {
	ctrl := NewControllerWithCommand("test-session", "")

	if ctrl.tmuxCommand != "tmux" {
		t.Errorf("tmuxCommand = %v, want default %v", ctrl.tmuxCommand, "tmux")
	}
}

func TestSendCommand_RejectsNewlines(t *testing.T) {
	ctrl := NewController("test-session")

	if err := ctrl.SendCommand("echo hi\nrm -rf /"); err == nil {
		t.Error("SendCommand() accepted a command containing a newline")
	}
	if err := ctrl.SendCommand("echo hi\rwhoami"); err == nil {
		t.Error("SendCommand() accepted a command containing a carriage return")
	}
}

func TestExtractCommandOutput(t *testing.T) {
	tests := []struct {
		name     string
		before   string
		after    string
		command  string
		expected string
	}{
		{
			name:     "single line output",
			before:   "user@host:~$",
			after:    "user@host:~$ pwd\n/home/user\nuser@host:~$",
			command:  "pwd",
			expected: "/home/user",
		},
		{
			name:     "output after existing history",
			before:   "$ ls\nfile.txt\n$",
			after:    "$ ls\nfile.txt\n$ pwd\n/tmp\n$",
			command:  "pwd",
			expected: "/tmp",
		},
		{
			name:     "multi line output",
			before:   "$",
			after:    "$ ls -la\ntotal 8\ndrwxr-xr-x  2 u u 4096 .\n$",
			command:  "ls -la",
			expected: "total 8\ndrwxr-xr-x  2 u u 4096 .",
		},
		{
			name:     "empty pre-send capture keeps trailing prompt",
			before:   "",
			after:    "$ pwd\n/tmp\n$",
			command:  "pwd",
			expected: "/tmp\n$",
		},
		{
			name:     "no new content",
			before:   "$",
			after:    "$",
			command:  "true",
			expected: "",
		},
		{
			name:     "trailing blank lines trimmed",
			before:   "$\n\n\n",
			after:    "$ hostname\nbox\n$\n\n\n",
			command:  "hostname",
			expected: "box",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCommandOutput(tt.before, tt.after, tt.command)
			if got != tt.expected {
				t.Errorf("extractCommandOutput() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParsePaneInfo(t *testing.T) {
	output := "%0\t0\t80\t24\t12345\tbash\t/home/user\tmy-title\n"

	info := parsePaneInfo(output)

	want := map[string]string{
		"pane_id":              "%0",
		"pane_index":           "0",
		"pane_width":           "80",
		"pane_height":          "24",
		"pane_pid":             "12345",
		"pane_current_command": "bash",
		"pane_current_path":    "/home/user",
		"pane_title":           "my-title",
	}

	for k, v := range want {
		if info[k] != v {
			t.Errorf("info[%q] = %q, want %q", k, info[k], v)
		}
	}
}

func TestParsePaneInfo_ShortOutput(t *testing.T) {
	info := parsePaneInfo("%1\t2\n")

	if info["pane_id"] != "%1" {
		t.Errorf("pane_id = %q, want %%1", info["pane_id"])
	}
	if info["pane_index"] != "2" {
		t.Errorf("pane_index = %q, want 2", info["pane_index"])
	}
	if _, ok := info["pane_width"]; ok {
		t.Error("pane_width should be absent when tmux reports fewer fields")
	}
}

func TestParseSessionInfo(t *testing.T) {
	output := "main\t3\t1\nscratch\t1\t0\n\nbroken-line\n"

	infos := parseSessionInfo(output)

	if len(infos) != 2 {
		t.Fatalf("parseSessionInfo() returned %d sessions, want 2", len(infos))
	}

	if infos[0].Name != "main" || infos[0].Windows != 3 || !infos[0].Attached {
		t.Errorf("infos[0] = %+v, want {main 3 true}", infos[0])
	}
	if infos[1].Name != "scratch" || infos[1].Windows != 1 || infos[1].Attached {
		t.Errorf("infos[1] = %+v, want {scratch 1 false}", infos[1])
	}
}

func TestSplitCapture(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "single line", content: "hello", expected: 1},
		{name: "trailing blanks trimmed", content: "a\nb\n\n  \n", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCapture(tt.content)
			if len(got) != tt.expected {
				t.Errorf("splitCapture(%q) returned %d lines, want %d", tt.content, len(got), tt.expected)
			}
		})
	}
}

// Integration tests below require a working tmux install.

func isTmuxAvailable() bool {
	return IsTmuxAvailable()
}

func createTestSession(t *testing.T, sessionName string) *Controller {
	t.Helper()
	ctrl := NewController(sessionName)
	if err := ctrl.CreateSession(); err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return ctrl
}

func TestSessionLifecycle(t *testing.T) {
	if !isTmuxAvailable() {
		t.Skip("tmux not available")
	}

	sessionName := "panectl-test-" + time.Now().Format("20060102150405")
	ctrl := createTestSession(t, sessionName)
	defer ctrl.KillSession()

	if !ctrl.SessionExists() {
		t.Fatal("SessionExists() = false for a session that was just created")
	}

	sessions, err := ListSessions()
	if err != nil {
		t.Fatalf("ListSessions() error: %v", err)
	}
	found := false
	for _, s := range sessions {
		if s == sessionName {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("ListSessions() = %v, missing %s", sessions, sessionName)
	}

	info, err := ctrl.GetPaneInfo()
	if err != nil {
		t.Fatalf("GetPaneInfo() error: %v", err)
	}
	if info["pane_id"] == "" {
		t.Error("GetPaneInfo() returned empty pane_id")
	}

	panes, err := ctrl.ListPanes()
	if err != nil {
		t.Fatalf("ListPanes() error: %v", err)
	}
	if len(panes) == 0 {
		t.Error("ListPanes() returned no panes for a fresh session")
	}
}

func TestExecuteAndCapture_Echo(t *testing.T) {
	if !isTmuxAvailable() {
		t.Skip("tmux not available")
	}

	sessionName := "panectl-exec-" + time.Now().Format("20060102150405")
	ctrl := createTestSession(t, sessionName)
	defer ctrl.KillSession()

	// Give the shell a moment to print its first prompt
	time.Sleep(500 * time.Millisecond)

	result, err := ctrl.ExecuteAndCapture("echo panectl-marker", time.Second)
	if err != nil {
		t.Fatalf("ExecuteAndCapture() error: %v", err)
	}

	if result.ID == "" {
		t.Error("CommandResult.ID is empty")
	}
	if result.Command != "echo panectl-marker" {
		t.Errorf("CommandResult.Command = %q", result.Command)
	}
	if !strings.Contains(result.Output, "panectl-marker") {
		t.Errorf("CommandResult.Output = %q, want it to contain %q", result.Output, "panectl-marker")
	}
}

func TestSessionExists_Nonexistent(t *testing.T) {
	if !isTmuxAvailable() {
		t.Skip("tmux not available")
	}

	ctrl := NewController("panectl-nonexistent-" + time.Now().Format("20060102150405"))
	if ctrl.SessionExists() {
		t.Error("SessionExists() = true for a session that does not exist")
	}
}
