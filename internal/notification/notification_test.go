package notification

import (
	"errors"
	"testing"
)

type call struct {
	title   string
	message string
	icon    any
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []call
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, call{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{name: "successful notification", title: "Title", message: "Message"},
		{name: "notification error", title: "Title", message: "Message", mockErr: errors.New("no dbus"), expectError: true},
		{name: "empty message", title: "Title", message: ""},
		{name: "unicode content", title: "Tâches", message: "Café ☕ is clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v", mock.calls[0])
			}
		})
	}
}

func TestListCleared(t *testing.T) {
	tests := []struct {
		listName string
		want     string
	}{
		{"Inbox", "Inbox is clear"},
		{"Waiting on others", "Waiting on others is clear"},
		{"", " is clear"},
	}

	for _, tt := range tests {
		t.Run(tt.listName, func(t *testing.T) {
			mock := &mockNotification{}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			if err := ListCleared(tt.listName); err != nil {
				t.Fatalf("ListCleared() error = %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != Title {
				t.Errorf("title = %q, want %q", mock.calls[0].title, Title)
			}
			if mock.calls[0].message != tt.want {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.want)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	if notifier == nil {
		t.Fatal("ResetNotifier left no notifier")
	}
}
