package demo

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/panectl/panectl/internal/tmux"
)

// fakeController records calls so the demo control flow can be verified
// without a running tmux server.
type fakeController struct {
	exists   bool
	info     map[string]string
	sent     []string
	executed []string
	captures []int
}

func (f *fakeController) SessionExists() bool {
	return f.exists
}

func (f *fakeController) GetPaneInfo() (map[string]string, error) {
	return f.info, nil
}

func (f *fakeController) ExecuteAndCapture(command string, wait time.Duration) (*tmux.CommandResult, error) {
	f.executed = append(f.executed, command)
	return &tmux.CommandResult{
		ID:      "test-id",
		Command: command,
		Output:  "/home/demo",
	}, nil
}

func (f *fakeController) CapturePane(startLine int) (string, error) {
	f.captures = append(f.captures, startLine)
	return "pane content", nil
}

func (f *fakeController) SendCommand(command string) error {
	f.sent = append(f.sent, command)
	return nil
}

func newTestRunner(sessions []string, fake *fakeController) (*Runner, *bytes.Buffer, *[]string) {
	out := &bytes.Buffer{}
	connected := []string{}
	runner := &Runner{
		Out:          out,
		ListSessions: func() ([]string, error) { return sessions, nil },
		Connect: func(sessionName string) SessionController {
			connected = append(connected, sessionName)
			return fake
		},
		CaptureTail: 10,
	}
	return runner, out, &connected
}

func TestRunBasic_NoSessions(t *testing.T) {
	fake := &fakeController{exists: true}
	runner, out, connected := newTestRunner(nil, fake)

	if err := runner.RunBasic(); err != nil {
		t.Fatalf("RunBasic() error: %v", err)
	}

	if !strings.Contains(out.String(), "No sessions found") {
		t.Errorf("output missing no-sessions message, got:\n%s", out.String())
	}
	if len(*connected) != 0 {
		t.Errorf("RunBasic() connected to %v despite empty session list", *connected)
	}
}

func TestRunBasic_ConnectsFirstSession(t *testing.T) {
	fake := &fakeController{
		exists: true,
		info:   map[string]string{"pane_id": "%0", "pane_width": "80"},
	}
	runner, out, connected := newTestRunner([]string{"alpha", "beta"}, fake)

	if err := runner.RunBasic(); err != nil {
		t.Fatalf("RunBasic() error: %v", err)
	}

	if len(*connected) != 1 || (*connected)[0] != "alpha" {
		t.Errorf("connected sessions = %v, want [alpha]", *connected)
	}
	if !strings.Contains(out.String(), "Connecting to 'alpha'") {
		t.Errorf("output missing connect banner, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "pane_id") {
		t.Errorf("output missing pane info, got:\n%s", out.String())
	}
}

func TestRunBasic_RunsScriptedCommands(t *testing.T) {
	fake := &fakeController{exists: true, info: map[string]string{}}
	runner, _, _ := newTestRunner([]string{"alpha"}, fake)

	if err := runner.RunBasic(); err != nil {
		t.Fatalf("RunBasic() error: %v", err)
	}

	want := []string{"pwd", "ls -la"}
	if len(fake.executed) != len(want) {
		t.Fatalf("executed %v, want %v", fake.executed, want)
	}
	for i, cmd := range want {
		if fake.executed[i] != cmd {
			t.Errorf("executed[%d] = %q, want %q", i, fake.executed[i], cmd)
		}
	}

	// Final pane capture requests the last 10 lines
	if len(fake.captures) != 1 || fake.captures[0] != -10 {
		t.Errorf("captures = %v, want [-10]", fake.captures)
	}
}

func TestRunBasic_SessionVanished(t *testing.T) {
	fake := &fakeController{exists: false}
	runner, out, _ := newTestRunner([]string{"alpha"}, fake)

	if err := runner.RunBasic(); err != nil {
		t.Fatalf("RunBasic() error: %v", err)
	}

	if !strings.Contains(out.String(), "not found") {
		t.Errorf("output missing not-found message, got:\n%s", out.String())
	}
	if len(fake.executed) != 0 {
		t.Errorf("RunBasic() executed commands %v against a vanished session", fake.executed)
	}
}

func TestRunInteractive_NoSessions(t *testing.T) {
	fake := &fakeController{exists: true}
	runner, out, connected := newTestRunner(nil, fake)

	if err := runner.RunInteractive(); err != nil {
		t.Fatalf("RunInteractive() error: %v", err)
	}

	if !strings.Contains(out.String(), "No sessions available") {
		t.Errorf("output missing no-sessions message, got:\n%s", out.String())
	}
	if len(*connected) != 0 {
		t.Errorf("RunInteractive() connected to %v despite empty session list", *connected)
	}
	if len(fake.sent) != 0 {
		t.Errorf("RunInteractive() sent %v despite empty session list", fake.sent)
	}
}

func TestRunInteractive_SendsScriptedCommands(t *testing.T) {
	fake := &fakeController{exists: true}
	runner, out, connected := newTestRunner([]string{"alpha", "beta"}, fake)

	if err := runner.RunInteractive(); err != nil {
		t.Fatalf("RunInteractive() error: %v", err)
	}

	if len(*connected) != 1 || (*connected)[0] != "alpha" {
		t.Errorf("connected sessions = %v, want [alpha]", *connected)
	}

	want := []string{
		"echo 'Starting task...'",
		"date",
		"hostname",
		"echo 'Task complete!'",
	}
	if len(fake.sent) != len(want) {
		t.Fatalf("sent %d commands, want %d: %v", len(fake.sent), len(want), fake.sent)
	}
	for i, cmd := range want {
		if fake.sent[i] != cmd {
			t.Errorf("sent[%d] = %q, want %q", i, fake.sent[i], cmd)
		}
	}

	for _, cmd := range want {
		if !strings.Contains(out.String(), "Sending: "+cmd) {
			t.Errorf("output missing send line for %q", cmd)
		}
	}
}
