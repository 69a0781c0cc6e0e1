package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_WritesMarker(t *testing.T) {
	logPath := setupTestLogger(t)

	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("log file should contain the initialization marker")
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	logPath := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != logPath {
		t.Errorf("Path() = %q, want %q after second Init", Path(), logPath)
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	if err == nil {
		t.Fatal("expected error for unopenable path")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-%d", 1)
	Info("visible-info-%d", 2)
	Warn("visible-warn")
	Error("visible-error")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-1") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"visible-info-2", "visible-warn", "visible-error"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}
}

func TestSetDebug(t *testing.T) {
	logPath := setupTestLogger(t)

	SetDebug(true)
	Debug("now-visible")
	SetDebug(false)
	Debug("hidden-again")

	content := readLog(t, logPath)
	if !strings.Contains(content, "now-visible") {
		t.Error("debug message should be written after SetDebug(true)")
	}
	if strings.Contains(content, "hidden-again") {
		t.Error("debug message should be filtered after SetDebug(false)")
	}
}

func TestWithComponent(t *testing.T) {
	logPath := setupTestLogger(t)

	WithComponent("controller").Info("rerender", "selected", "inbox")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=controller") {
		t.Errorf("expected component attribute, got:\n%s", content)
	}
	if !strings.Contains(content, "selected=inbox") {
		t.Errorf("expected selected attribute, got:\n%s", content)
	}
}

func TestWithList(t *testing.T) {
	logPath := setupTestLogger(t)

	WithList("waiting").Info("toggled")

	if !strings.Contains(readLog(t, logPath), "list=waiting") {
		t.Error("expected list attribute")
	}
}

func TestClose_StopsWriting(t *testing.T) {
	logPath := setupTestLogger(t)

	Close()
	Info("after-close")

	if strings.Contains(readLog(t, logPath), "after-close") {
		t.Error("nothing should be written after Close")
	}
}

func TestLog_Concurrent(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	Reset()
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()
	logPath2 := filepath.Join(tmpDir, "log2.log")
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")
	Reset()

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 has wrong content:\n%s", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 has wrong content:\n%s", content2)
	}
}

func TestFilePath(t *testing.T) {
	Reset()
	defer Reset()
	if got := FilePath(); got != DefaultLogPath {
		t.Errorf("FilePath() before Init = %q, want %q", got, DefaultLogPath)
	}

	logPath := setupTestLogger(t)
	if got := FilePath(); got != logPath {
		t.Errorf("FilePath() = %q, want %q", got, logPath)
	}
}

func TestClearLogs_RemovesActiveFile(t *testing.T) {
	logPath := setupTestLogger(t)
	Info("something")

	n, err := ClearLogs()
	if err != nil {
		t.Fatalf("ClearLogs() error = %v", err)
	}
	if n != 1 {
		t.Errorf("ClearLogs() = %d, want 1", n)
	}
	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("log file should be gone, stat error = %v", err)
	}

	n, err = ClearLogs()
	if err != nil || n != 0 {
		t.Errorf("second ClearLogs() = %d, %v; want 0, nil", n, err)
	}
}
