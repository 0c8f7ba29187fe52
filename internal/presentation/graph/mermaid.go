package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/modthree/pkg/domain"
)

// GraphOverlay contains dynamic run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.State
	CurrentState  domain.State
}

// OverlayFromRun builds an overlay highlighting the path of a traced evaluation.
func OverlayFromRun(run *domain.Run) *GraphOverlay {
	if run == nil {
		return nil
	}
	return &GraphOverlay{
		VisitedStates: run.Path,
		CurrentState:  run.Final,
	}
}

// GenerateMermaid produces a Mermaid flowchart syntax string for a machine.
// It applies semantic styling:
// - Final: (((Double Circle)))
// - Initial: ((Circle))
// - Default: [Rectangle]
// Labels carry the state's output ("S1 / 1"). Parallel transitions between the
// same pair of states are merged into one edge labelled with every symbol.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(m *domain.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	if m.Initial() != "" {
		sb.WriteString(fmt.Sprintf("    __start__(( )) --> %s\n", sanitizeMermaidID(string(m.Initial()))))
	}

	for _, s := range m.States() {
		safeID := sanitizeMermaidID(string(s))

		opener, closer := "[", "]"
		switch {
		case m.IsFinal(s):
			opener, closer = "(((", ")))"
		case s == m.Initial():
			opener, closer = "((", "))"
		}

		label := string(s)
		if out, ok := m.Output(s); ok {
			label = fmt.Sprintf("%s / %d", s, out)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeLabel(label), closer))
	}

	for _, e := range mergeEdges(m.Edges()) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n",
			sanitizeMermaidID(string(e.from)),
			escapeLabel(strings.Join(e.symbols, ",")),
			sanitizeMermaidID(string(e.to))))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			if !m.HasState(s) {
				continue
			}
			safeID := sanitizeMermaidID(string(s))
			if !visitedSet[safeID] {
				visitedSet[safeID] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", safeID))
			}
		}

		if overlay.CurrentState != "" && m.HasState(overlay.CurrentState) {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(string(overlay.CurrentState))))
		}
	}

	return sb.String()
}

type mergedEdge struct {
	from, to domain.State
	symbols  []string
}

// mergeEdges keeps the first-seen order of (from, to) pairs.
func mergeEdges(edges []domain.Transition) []mergedEdge {
	var out []mergedEdge
	index := make(map[[2]domain.State]int)
	for _, e := range edges {
		key := [2]domain.State{e.From, e.To}
		if i, ok := index[key]; ok {
			out[i].symbols = append(out[i].symbols, string(e.Symbol))
			continue
		}
		index[key] = len(out)
		out = append(out, mergedEdge{from: e.From, to: e.To, symbols: []string{string(e.Symbol)}})
	}
	return out
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
