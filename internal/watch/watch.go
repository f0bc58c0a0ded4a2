// Package watch renders a live, read-only view of a tmux pane by polling
// capture-pane on an interval.
package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/panectl/panectl/internal/styles"
	"github.com/panectl/panectl/internal/tmux"
)

// Config describes runtime settings for the viewer.
type Config struct {
	Session     string
	TmuxCommand string
	Interval    time.Duration
	Lines       int
	LogPath     string
}

type tickMsg time.Time

type captureMsg struct {
	content string
	err     error
	at      time.Time
}

type model struct {
	ctrl     *tmux.Controller
	session  string
	interval time.Duration
	lines    int

	width    int
	height   int
	content  string
	captured time.Time
	err      error
}

func newModel(cfg Config) *model {
	return &model{
		ctrl:     tmux.NewControllerWithCommand(cfg.Session, cfg.TmuxCommand),
		session:  cfg.Session,
		interval: cfg.Interval,
		lines:    cfg.Lines,
	}
}

// Init starts the first capture
func (m *model) Init() tea.Cmd {
	return m.capture()
}

// Update handles messages and drives the capture cycle
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			// Manual refresh without waiting for the next tick
			return m, m.capture()
		}
		return m, nil

	case tickMsg:
		return m, m.capture()

	case captureMsg:
		if msg.err != nil {
			m.err = msg.err
			log.Printf("Capture failed for session %s: %v", m.session, msg.err)
		} else {
			m.err = nil
			m.content = msg.content
			m.captured = msg.at
		}
		return m, m.scheduleNext()

	default:
		return m, nil
	}
}

// View renders the pane tail with a status header
func (m *model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Watching %s", m.session)
	b.WriteString(styles.Header.Render(header))
	if !m.captured.IsZero() {
		b.WriteString("  ")
		b.WriteString(styles.Dim.Render(fmt.Sprintf("captured %s", m.captured.Format("15:04:05"))))
	}
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("q: quit  r: refresh"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.Warn.Render(fmt.Sprintf("capture error: %v", m.err)))
		b.WriteString("\n")
		return b.String()
	}

	lines := strings.Split(m.content, "\n")
	visible := m.height - 4
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	return b.String()
}

func (m *model) capture() tea.Cmd {
	return func() tea.Msg {
		content, err := m.ctrl.CaptureTail(m.lines)
		return captureMsg{content: content, err: err, at: time.Now()}
	}
}

func (m *model) scheduleNext() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the viewer and blocks until it exits or the context is
// cancelled. Log output is redirected to a file so it does not corrupt
// the alternate screen.
func Run(ctx context.Context, cfg Config) error {
	if cfg.LogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		logFile, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	if cfg.Lines <= 0 {
		cfg.Lines = tmux.LinesHealthCheck
	}

	program := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
	)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			log.Printf("Context cancelled, shutting down watch viewer: %v", ctx.Err())
			program.Quit()
		case <-done:
		}
	}()

	_, err := program.Run()
	close(done)

	if err != nil {
		return fmt.Errorf("watch viewer run: %w", err)
	}

	return nil
}
