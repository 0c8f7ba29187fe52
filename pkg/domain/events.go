package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluateStart EventType = "evaluate_start"
	EventTransition    EventType = "transition"
	EventEvaluateEnd   EventType = "evaluate_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine"`
}

// EvaluateEvent marks the start of an evaluation.
type EvaluateEvent struct {
	EventBase
	Length int `json:"length"`
}

// TransitionEvent is emitted once per consumed symbol.
type TransitionEvent struct {
	EventBase
	Position int    `json:"position"`
	From     State  `json:"from"`
	Symbol   Symbol `json:"symbol"`
	To       State  `json:"to"`
}

// ResultEvent marks the end of an evaluation, successful or not.
type ResultEvent struct {
	EventBase
	Length   int           `json:"length"`
	Final    State         `json:"final,omitempty"`
	Output   int           `json:"output"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any hook may be nil.
type LifecycleHooks struct {
	OnEvaluateStart func(context.Context, *EvaluateEvent)
	OnTransition    func(context.Context, *TransitionEvent)
	OnEvaluateEnd   func(context.Context, *ResultEvent)
}

// Merge returns hooks that invoke h first and then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnEvaluateStart: chain(h.OnEvaluateStart, other.OnEvaluateStart),
		OnTransition:    chain(h.OnTransition, other.OnTransition),
		OnEvaluateEnd:   chain(h.OnEvaluateEnd, other.OnEvaluateEnd),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
