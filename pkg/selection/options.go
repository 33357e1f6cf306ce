package selection

import "log/slog"

// JoinStats summarizes one Data call.
type JoinStats struct {
	// Groups is the number of groups joined.
	Groups int

	// Values is the number of data values.
	Values int

	// Update is the number of nodes that received a datum.
	Update int

	// Enter is the number of placeholders created.
	Enter int

	// Exit is the number of nodes that lost their datum.
	Exit int
}

// Observer is notified after every Data call.
type Observer interface {
	ObserveJoin(stats JoinStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats JoinStats)

// ObserveJoin implements Observer.
func (f ObserverFunc) ObserveJoin(stats JoinStats) { f(stats) }

// config is shared by a root selection and everything derived from it.
type config struct {
	logger    *slog.Logger
	observers []Observer
}

// Option configures a root selection.
type Option func(*config)

// WithLogger sets the logger used for join diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithObserver registers an observer for join statistics.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o != nil {
			c.observers = append(c.observers, o)
		}
	}
}

func newConfig(opts []Option) *config {
	c := &config{
		logger: slog.Default().With("component", "selection"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
