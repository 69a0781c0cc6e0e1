// Package clipboard copies task names to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/taches/internal/logger"
)

// Indirection for tests; headless CI has no clipboard.
var (
	initFn  = clipboard.Init
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
)

var (
	mu          sync.Mutex
	initialized bool
)

// initLocked initializes the platform clipboard once. A failed attempt is
// retried on the next call. Must be called with mu held.
func initLocked() error {
	if initialized {
		return nil
	}
	if err := initFn(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("initialized")
	return nil
}

// WriteText writes text to the clipboard
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

