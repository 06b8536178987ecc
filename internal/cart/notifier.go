package cart

import "log/slog"

// Notifier receives fire-and-forget confirmations for cart changes.
// Confirmations are unrelated to the notification panel.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(message string)

// Notify calls f(message)
func (f NotifierFunc) Notify(message string) { f(message) }

// LogNotifier writes confirmations to a structured logger
type LogNotifier struct {
	Logger *slog.Logger
	Attrs  []any
}

// Notify logs message at info level with Attrs appended
func (n LogNotifier) Notify(message string) {
	n.Logger.Info("cart confirmation", append([]any{"message", message}, n.Attrs...)...)
}

// Recorder keeps confirmations in memory until drained
type Recorder struct {
	messages []string
}

// Notify appends message to the recorded confirmations
func (r *Recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}

// Drain returns recorded confirmations and resets the recorder
func (r *Recorder) Drain() []string {
	msgs := r.messages
	r.messages = nil
	return msgs
}

// Tee fans a confirmation out to several notifiers in order
type Tee []Notifier

// Notify forwards message to every notifier in t
func (t Tee) Notify(message string) {
	for _, n := range t {
		n.Notify(message)
	}
}

type discard struct{}

func (discard) Notify(string) {}
