package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/aretw0/modthree"
	"github.com/aretw0/modthree/internal/presentation/tui"
	"github.com/aretw0/modthree/pkg/domain"
	"github.com/aretw0/modthree/pkg/machines"
	"github.com/aretw0/modthree/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNotModThree is returned by SelfTest for machines the reference cases do not apply to.
var ErrNotModThree = errors.New("machine does not compute binary mod 3")

// Case is one reference evaluation.
type Case struct {
	Input   string
	Want    int
	WantErr error
}

// ModThreeCases returns the reference cases for the mod-3 machine. The
// expectation for the empty string follows the machine's policy.
func ModThreeCases(policy domain.EmptyInputPolicy) []Case {
	cases := []Case{
		{Input: "110", Want: 0},
		{Input: "1010", Want: 1},
		{Input: "1011", Want: 2},
		{Input: "1111", Want: 0},
		{Input: "1", Want: 1},
		{Input: "10", Want: 2},
		{Input: "1011011", Want: 1},
	}
	if policy == domain.EmptyInputError {
		return append(cases, Case{Input: "", WantErr: domain.ErrEmptyInput})
	}
	return append(cases, Case{Input: "", Want: 0})
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	Case
	Got  int
	Err  error
	Pass bool
}

// SelfTestReport aggregates the results of RunSelfTest.
type SelfTestReport struct {
	Machine string
	Results []CaseResult
	Passed  int
	Failed  int
}

// RunSelfTest evaluates every case against the engine.
func RunSelfTest(ctx context.Context, engine *modthree.Engine, cases []Case) *SelfTestReport {
	report := &SelfTestReport{Machine: engine.Name}
	for _, c := range cases {
		got, err := engine.EvaluateString(ctx, c.Input)

		res := CaseResult{Case: c, Got: got, Err: err}
		if c.WantErr != nil {
			res.Pass = errors.Is(err, c.WantErr)
		} else {
			res.Pass = err == nil && got == c.Want
		}

		if res.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// SelfTest runs the reference cases against the selected machine, prints
// PASS/FAIL per case and, when showMetrics is set, the evaluation counters.
func SelfTest(ctx context.Context, opts Options, showMetrics bool, streams Streams) error {
	m, err := LoadMachine(opts.Source)
	if err != nil {
		return err
	}
	if !behavesLikeModThree(m) {
		return fmt.Errorf("%w: %s", ErrNotModThree, m.Name())
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return err
	}
	engine, err := createEngine(m, createLogger(opts.Debug), opts.Debug, metrics.Hooks())
	if err != nil {
		return err
	}

	report := RunSelfTest(ctx, engine, ModThreeCases(m.EmptyInput()))
	printReport(streams.Out, report)

	if showMetrics {
		if err := printCounters(streams.Out, reg); err != nil {
			return err
		}
	}

	if report.Failed > 0 {
		return fmt.Errorf("self-test failed: %d of %d cases", report.Failed, len(report.Results))
	}
	return nil
}

func printReport(w io.Writer, report *SelfTestReport) {
	palette := tui.NewPalette(w)
	for _, r := range report.Results {
		marker := palette.Pass("PASS")
		if !r.Pass {
			marker = palette.Fail("FAIL")
		}

		input := r.Input
		if input == "" {
			input = `""`
		}
		want := fmt.Sprint(r.Want)
		if r.WantErr != nil {
			want = r.WantErr.Error()
		}
		got := fmt.Sprint(r.Got)
		if r.Err != nil {
			got = r.Err.Error()
		}
		fmt.Fprintf(w, "%s %-9s want %-12s got %s\n", marker, input, want, got)
	}
	fmt.Fprintf(w, "%s: %d passed, %d failed\n", report.Machine, report.Passed, report.Failed)
}

// printCounters writes every counter in reg as "name{labels} value", sorted.
func printCounters(w io.Writer, reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			if metric.GetCounter() == nil {
				continue
			}
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

// behavesLikeModThree walks m in lockstep with the mod3 preset and reports
// whether both produce the same output for every binary input. State names
// and the empty-input policy may differ.
func behavesLikeModThree(m *domain.Machine) bool {
	ref := machines.ModThree()

	alphabet, want := m.Alphabet(), ref.Alphabet()
	slices.Sort(alphabet)
	slices.Sort(want)
	if !slices.Equal(alphabet, want) {
		return false
	}

	type pair struct{ got, ref domain.State }
	start := pair{m.Initial(), ref.Initial()}
	seen := map[pair]bool{start: true}
	queue := []pair{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		got, ok := m.Output(p.got)
		if expected, _ := ref.Output(p.ref); !ok || got != expected {
			return false
		}
		for _, sym := range want {
			next, ok := m.Next(p.got, sym)
			if !ok {
				return false
			}
			refNext, _ := ref.Next(p.ref, sym)
			if n := (pair{next, refNext}); !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return true
}
