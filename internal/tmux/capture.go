package tmux

// Capture line budgets. Larger captures are noticeably more expensive, so
// callers pick the smallest tier that answers their question.
const (
	// LinesStatusDetection is the default for quick state checks.
	LinesStatusDetection = 20

	// LinesHealthCheck is the default for error and health analysis.
	LinesHealthCheck = 50

	// LinesFullContext is the default for comprehensive output capture.
	LinesFullContext = 500
)

// CaptureTail returns the last n lines of the pane, including history.
func (c *Controller) CaptureTail(n int) (string, error) {
	if n <= 0 {
		n = LinesStatusDetection
	}
	return c.CapturePane(-n)
}
