package runtime

import (
	"context"

	"github.com/aretw0/modthree/pkg/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/aretw0/modthree"

// SpanName is the name of the span recorded for each evaluation.
const SpanName = "modthree.evaluate"

func (e *Engine) startSpan(ctx context.Context, length int) (context.Context, trace.Span) {
	return e.tracer.Start(ctx, SpanName,
		trace.WithAttributes(
			attribute.String("machine.name", e.machine.Name()),
			attribute.Int("input.length", length),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func endSpan(span trace.Span, run *domain.Run, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return
	}
	span.SetAttributes(
		attribute.String("result.state", string(run.Final)),
		attribute.Int("result.output", run.Output),
	)
	span.SetStatus(codes.Ok, "")
	span.End()
}
