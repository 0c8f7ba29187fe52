package cli

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/aretw0/modthree/pkg/domain"
)

const binaryInputMessage = "Please enter a valid binary number (only 1s and 0s)."

// InvalidInputError reports raw input that does not spell a word over the machine's alphabet.
type InvalidInputError struct {
	Input    string
	Char     string
	Position int
	binary   bool
	allowed  []domain.Symbol
}

func (e *InvalidInputError) Error() string {
	if e.binary {
		return binaryInputMessage
	}
	allowed := make([]string, len(e.allowed))
	for i, s := range e.allowed {
		allowed[i] = fmt.Sprintf("%q", string(s))
	}
	return fmt.Sprintf("invalid character %q at position %d (allowed: %s)", e.Char, e.Position, strings.Join(allowed, ", "))
}

// Unwrap exposes the engine-level error so callers can treat both layers alike.
func (e *InvalidInputError) Unwrap() error {
	return &domain.InvalidSymbolError{Symbol: domain.Symbol(e.Char), Position: e.Position}
}

// ParseInput trims raw and splits it into symbols of m's alphabet.
// Empty input is returned as an empty slice so the machine's policy decides.
func ParseInput(m *domain.Machine, raw string) ([]domain.Symbol, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return []domain.Symbol{}, nil
	}

	tok := tokenizerFor(m)
	if tok.whole.MatchString(text) {
		if symbols, ok := tok.split(text); ok {
			return symbols, nil
		}
	}

	char, pos := tok.firstInvalid(text)
	return nil, &InvalidInputError{
		Input:    text,
		Char:     char,
		Position: pos,
		binary:   tok.binary,
		allowed:  m.Alphabet(),
	}
}

// tokenizers caches one tokenizer per machine; machines are immutable.
var tokenizers sync.Map

type tokenizer struct {
	symbols []domain.Symbol // longest first
	whole   *regexp.Regexp
	binary  bool
}

func tokenizerFor(m *domain.Machine) *tokenizer {
	if tok, ok := tokenizers.Load(m); ok {
		return tok.(*tokenizer)
	}

	alphabet := m.Alphabet()
	sorted := slices.Clone(alphabet)
	slices.SortStableFunc(sorted, func(a, b domain.Symbol) int {
		return cmp.Compare(len(b), len(a))
	})
	parts := make([]string, len(sorted))
	for i, s := range sorted {
		parts[i] = regexp.QuoteMeta(string(s))
	}

	tok := &tokenizer{
		symbols: sorted,
		whole:   regexp.MustCompile(`^(?:` + strings.Join(parts, "|") + `)+$`),
		binary:  isBinary(alphabet),
	}
	actual, _ := tokenizers.LoadOrStore(m, tok)
	return actual.(*tokenizer)
}

// segment records, for every byte offset of text reachable by a sequence of
// symbols, the offset it was reached from and how many symbols that took.
func (t *tokenizer) segment(text string) (prev, count []int) {
	prev = make([]int, len(text)+1)
	count = make([]int, len(text)+1)
	for i := range prev {
		prev[i] = -1
	}
	prev[0] = 0

	for i := 0; i < len(text); i++ {
		if prev[i] < 0 {
			continue
		}
		for _, s := range t.symbols {
			end := i + len(s)
			if end > len(text) || prev[end] >= 0 {
				continue
			}
			if strings.HasPrefix(text[i:], string(s)) {
				prev[end] = i
				count[end] = count[i] + 1
			}
		}
	}
	return prev, count
}

// split returns the symbols spelling text, backtracking over ambiguous prefixes.
func (t *tokenizer) split(text string) ([]domain.Symbol, bool) {
	prev, count := t.segment(text)
	if prev[len(text)] < 0 {
		return nil, false
	}

	symbols := make([]domain.Symbol, count[len(text)])
	for end, i := len(text), len(symbols)-1; end > 0; i-- {
		start := prev[end]
		symbols[i] = domain.Symbol(text[start:end])
		end = start
	}
	return symbols, true
}

// firstInvalid returns the character after the longest prefix that spells a word,
// together with its 0-based position in symbols.
func (t *tokenizer) firstInvalid(text string) (string, int) {
	prev, count := t.segment(text)
	last := 0
	for i := len(text); i > 0; i-- {
		if prev[i] >= 0 {
			last = i
			break
		}
	}
	if last == len(text) {
		return "", count[last]
	}
	r, _ := utf8.DecodeRuneInString(text[last:])
	return string(r), count[last]
}

func isBinary(alphabet []domain.Symbol) bool {
	if len(alphabet) != 2 {
		return false
	}
	return slices.Contains(alphabet, "0") && slices.Contains(alphabet, "1")
}
