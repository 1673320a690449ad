package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is how many log files are kept when nothing else is configured
const DefaultMaxLogFiles = 1000

// Logger is shared by every package. It discards records until Initialize
// turns debug logging on.
var Logger = discardLogger()

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// options are the logging inputs after environment overrides
type options struct {
	debug       bool
	debugFile   string
	inherited   bool
	maxLogFiles int
}

// resolveOptions applies TIMEKEEPER_DEBUG, TIMEKEEPER_DEBUG_FILE and
// TIMEKEEPER_MAX_LOG_FILES. The env vars let a child process log to the same place.
func resolveOptions(debug bool, debugFile string, maxLogFiles int) options {
	opts := options{debug: debug, debugFile: debugFile, maxLogFiles: maxLogFiles}

	if os.Getenv("TIMEKEEPER_DEBUG") == "1" {
		opts.debug = true
		opts.inherited = true
	}
	if opts.debugFile == "" {
		opts.debugFile = os.Getenv("TIMEKEEPER_DEBUG_FILE")
	}
	if opts.maxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("TIMEKEEPER_MAX_LOG_FILES")); err == nil {
			opts.maxLogFiles = n
		}
	}
	return opts
}

// Initialize configures Logger and returns the log file path, or "" when
// logging stays discarded.
func Initialize(debug bool, debugFile string, maxLogFiles int) (string, error) {
	opts := resolveOptions(debug, debugFile, maxLogFiles)
	if !opts.debug && opts.debugFile == "" {
		Logger = discardLogger()
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if !opts.inherited {
		Logger.Info("Debug logging initialized", "log_file", path)
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

// logFilePath returns the pinned debug file, or a fresh <uuid>.log in the log
// directory after rotating old files out.
func logFilePath(opts options) (string, error) {
	if opts.debugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.debugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.debugFile, nil
	}

	dir, err := GetLogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.maxLogFiles > 0 {
		if err := rotateLogs(dir, opts.maxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs deletes the oldest .log files in dir so that one more file still
// fits under maxLogFiles.
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var files []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), path: filepath.Join(dir, entry.Name())})
	}

	excess := len(files) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return cmp.Compare(a.modTime.UnixNano(), b.modTime.UnixNano())
	})
	for _, f := range files[:excess] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

// GetLogDir returns the per-OS directory for log files
func GetLogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "timekeeper"), nil
	case "linux":
		return filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state")), "timekeeper"), nil
	case "windows":
		return filepath.Join(envOr("LOCALAPPDATA", filepath.Join(home, "AppData", "Local")), "timekeeper", "logs"), nil
	default:
		return filepath.Join(home, ".timekeeper", "logs"), nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
