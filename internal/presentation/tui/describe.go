package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/modthree/pkg/domain"
)

// DescribeMachine renders a machine as a markdown document: a summary list
// followed by the transition table, one row per state and one column per symbol.
func DescribeMachine(m *domain.Machine) string {
	var sb strings.Builder

	name := m.Name()
	if name == "" {
		name = "(unnamed)"
	}
	fmt.Fprintf(&sb, "# Machine `%s`\n\n", name)

	alphabet := m.Alphabet()
	symbols := make([]string, len(alphabet))
	for i, s := range alphabet {
		symbols[i] = fmt.Sprintf("`%s`", s)
	}
	finals := m.Finals()
	finalNames := make([]string, len(finals))
	for i, s := range finals {
		finalNames[i] = string(s)
	}

	fmt.Fprintf(&sb, "- **States:** %d\n", len(m.States()))
	fmt.Fprintf(&sb, "- **Alphabet:** %s\n", strings.Join(symbols, ", "))
	fmt.Fprintf(&sb, "- **Initial:** %s\n", m.Initial())
	fmt.Fprintf(&sb, "- **Finals:** %s\n", strings.Join(finalNames, ", "))
	fmt.Fprintf(&sb, "- **Empty input:** %s\n\n", m.EmptyInput())

	sb.WriteString("| State |")
	for _, sym := range alphabet {
		fmt.Fprintf(&sb, " on `%s` |", sym)
	}
	sb.WriteString(" Output |\n|---|")
	for range alphabet {
		sb.WriteString("---|")
	}
	sb.WriteString("---|\n")

	for _, s := range m.States() {
		label := string(s)
		if s == m.Initial() {
			label = "→ " + label
		}
		fmt.Fprintf(&sb, "| %s |", label)
		for _, sym := range alphabet {
			if next, ok := m.Next(s, sym); ok {
				fmt.Fprintf(&sb, " %s |", next)
			} else {
				sb.WriteString(" – |")
			}
		}
		if out, ok := m.Output(s); ok {
			fmt.Fprintf(&sb, " %d |\n", out)
		} else {
			sb.WriteString(" – |\n")
		}
	}

	return sb.String()
}
