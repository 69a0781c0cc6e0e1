// Package notification sends desktop notifications through beeep.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/zhubert/taches/internal/logger"
)

// Title is used for every notification taches sends
const Title = "Tâches"

type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the platform notifier. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep as the notifier
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification. Icon is left to the platform default.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// ListCleared announces that the last pending task of a list was done
func ListCleared(listName string) error {
	return Send(Title, listName+" is clear")
}
