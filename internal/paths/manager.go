package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathManager manages panectl's per-user file paths
type PathManager struct {
	baseDir string
}

// NewPathManager creates a new path manager rooted at ~/.panectl
func NewPathManager() *PathManager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to temp dir if home dir is not available
		homeDir = os.TempDir()
	}

	return &PathManager{
		baseDir: filepath.Join(homeDir, ".panectl"),
	}
}

// BaseDir returns the base directory for all panectl files
func (p *PathManager) BaseDir() string {
	return p.baseDir
}

// ConfigPath returns the default configuration file path
func (p *PathManager) ConfigPath() string {
	return filepath.Join(p.baseDir, "config.yaml")
}

// LogPath returns the log file path for a session's watch viewer
func (p *PathManager) LogPath(sessionName string) string {
	return filepath.Join(p.baseDir, "logs", sessionName+".log")
}

// EnsureDirectories ensures all necessary directories exist
func (p *PathManager) EnsureDirectories() error {
	dirs := []string{
		p.baseDir,
		filepath.Join(p.baseDir, "logs"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
