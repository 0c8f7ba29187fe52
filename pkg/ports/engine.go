package ports

import (
	"context"

	"github.com/aretw0/modthree/pkg/domain"
)

// Evaluator is the single operation boundary of the core: a symbol sequence in,
// a classification value (or error) out.
type Evaluator interface {
	// Evaluate runs the input from the initial state and returns the final state's output.
	Evaluate(ctx context.Context, input []domain.Symbol) (int, error)

	// Trace is like Evaluate but also returns the visited path.
	Trace(ctx context.Context, input []domain.Symbol) (*domain.Run, error)

	// Machine returns the configuration the evaluator is bound to.
	Machine() *domain.Machine
}
