package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/modthree/pkg/domain"
)

// Severity classifies a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single issue discovered while crawling a machine.
type Finding struct {
	Severity Severity     `json:"severity"`
	State    domain.State `json:"state"`
	Message  string       `json:"message"`
	Err      error        `json:"-"`
}

// Report is the outcome of ValidateMachine.
type Report struct {
	Machine   string         `json:"machine"`
	Reachable []domain.State `json:"reachable"`
	Findings  []Finding      `json:"findings,omitempty"`
}

// Errors returns the findings that make evaluation fail for some input.
func (r *Report) Errors() []Finding { return r.filter(SeverityError) }

// Warnings returns the findings that never affect evaluation.
func (r *Report) Warnings() []Finding { return r.filter(SeverityWarning) }

// Complete reports whether every input over the alphabet evaluates without a configuration error.
func (r *Report) Complete() bool { return len(r.Errors()) == 0 }

// Err summarises the error findings, or returns nil when the machine is complete.
func (r *Report) Err() error {
	errs := r.Errors()
	if len(errs) == 0 {
		return nil
	}
	lines := make([]string, 0, len(errs))
	for _, f := range errs {
		lines = append(lines, f.Message)
	}
	return fmt.Errorf("found %d errors:\n- %s", len(errs), strings.Join(lines, "\n- "))
}

func (r *Report) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// ValidateMachine crawls the machine breadth-first from its initial state and reports:
//   - (state, symbol) pairs without a transition, for every reachable state (error)
//   - reachable states without an output (error)
//   - states that can never be reached (warning)
func ValidateMachine(m *domain.Machine) *Report {
	report := &Report{Machine: m.Name()}
	alphabet := m.Alphabet()

	visited := map[domain.State]bool{m.Initial(): true}
	queue := []domain.State{m.Initial()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		report.Reachable = append(report.Reachable, current)

		if _, ok := m.Output(current); !ok {
			err := &domain.UndefinedOutputError{State: current}
			report.Findings = append(report.Findings, Finding{
				Severity: SeverityError,
				State:    current,
				Message:  err.Error(),
				Err:      err,
			})
		}

		for _, sym := range alphabet {
			next, ok := m.Next(current, sym)
			if !ok {
				err := &domain.MissingTransitionError{State: current, Symbol: sym, Position: -1}
				report.Findings = append(report.Findings, Finding{
					Severity: SeverityError,
					State:    current,
					Message:  fmt.Sprintf("no transition defined for state %s with input %q", current, string(sym)),
					Err:      err,
				})
				continue
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for _, s := range m.States() {
		if !visited[s] {
			report.Findings = append(report.Findings, Finding{
				Severity: SeverityWarning,
				State:    s,
				Message:  fmt.Sprintf("state %s is unreachable from %s", s, m.Initial()),
			})
		}
	}

	return report
}
