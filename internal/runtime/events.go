package runtime

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/modthree/pkg/domain"
)

func (e *Engine) base(t domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      t,
		Machine:   e.machine.Name(),
	}
}

func (e *Engine) emitEvaluateStart(ctx context.Context, length int) {
	if e.hooks.OnEvaluateStart == nil {
		return
	}
	e.hooks.OnEvaluateStart(ctx, &domain.EvaluateEvent{
		EventBase: e.base(domain.EventEvaluateStart),
		Length:    length,
	})
}

func (e *Engine) emitTransition(ctx context.Context, pos int, from domain.State, sym domain.Symbol, to domain.State) {
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase: e.base(domain.EventTransition),
		Position:  pos,
		From:      from,
		Symbol:    sym,
		To:        to,
	})
}

func (e *Engine) emitEvaluateEnd(ctx context.Context, length int, run *domain.Run, err error, elapsed time.Duration) {
	if e.hooks.OnEvaluateEnd == nil {
		return
	}
	evt := &domain.ResultEvent{
		EventBase: e.base(domain.EventEvaluateEnd),
		Length:    length,
		Err:       err,
		Duration:  elapsed,
	}
	if run != nil {
		evt.Final = run.Final
		evt.Output = run.Output
	}
	e.hooks.OnEvaluateEnd(ctx, evt)
}

// logOutcome reports configuration bugs loudly; user-input rejections stay at debug level.
func (e *Engine) logOutcome(ctx context.Context, length int, run *domain.Run, err error) {
	switch {
	case err == nil:
		e.logger.DebugContext(ctx, "evaluation finished",
			"machine", e.machine.Name(),
			"length", length,
			"final", run.Final,
			"output", run.Output)
	case errors.Is(err, domain.ErrInvalidMachine):
		e.logger.ErrorContext(ctx, "machine configuration error",
			"machine", e.machine.Name(),
			"length", length,
			"error", err)
	default:
		e.logger.DebugContext(ctx, "evaluation rejected",
			"machine", e.machine.Name(),
			"length", length,
			"error", err)
	}
}
