package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

const defaultAutoDismiss = 6 * time.Second

// Notification is the single transient message slot shown to the user.
type Notification struct {
	Open     bool
	Message  string
	Severity Severity
}

// Notifier holds one notification at a time. Publishing overwrites the
// current message unconditionally; there is no queueing or stacking. A
// message dismisses itself after the configured duration unless the user
// dismisses it first.
type Notifier struct {
	mu          sync.Mutex
	current     Notification
	epoch       uint64
	autoDismiss time.Duration
	logger      *zap.Logger
}

// NewNotifier builds a Notifier with the given auto-dismiss duration.
func NewNotifier(autoDismiss time.Duration, logger *zap.Logger) *Notifier {
	if autoDismiss <= 0 {
		autoDismiss = defaultAutoDismiss
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{autoDismiss: autoDismiss, logger: logger}
}

// Publish replaces the current notification and re-arms the dismiss timer.
func (n *Notifier) Publish(message string, severity Severity) {
	n.mu.Lock()
	n.current = Notification{Open: true, Message: message, Severity: severity}
	n.epoch++
	epoch := n.epoch
	n.mu.Unlock()

	n.logger.Debug("notification published",
		zap.String("message", message),
		zap.String("severity", string(severity)),
	)

	// The epoch guard keeps a stale timer from dismissing a newer message.
	time.AfterFunc(n.autoDismiss, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if n.epoch == epoch {
			n.current.Open = false
		}
	})
}

// Success publishes a success message.
func (n *Notifier) Success(message string) {
	n.Publish(message, SeveritySuccess)
}

// Failure publishes an error message.
func (n *Notifier) Failure(message string) {
	n.Publish(message, SeverityError)
}

// Dismiss closes the current notification without clearing its text.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current.Open = false
}

// Current returns a snapshot of the notification slot.
func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
