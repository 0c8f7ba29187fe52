package dto

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// MachineMetadata represents a machine definition as found in files and frontmatter.
// It uses "mapstructure" tags so raw maps from YAML, JSON or Loam decode into it.
type MachineMetadata struct {
	ID          string                       `json:"id" mapstructure:"id"`
	Name        string                       `json:"name" mapstructure:"name"`
	States      []string                     `json:"states" mapstructure:"states"`
	Alphabet    []string                     `json:"alphabet" mapstructure:"alphabet"`
	Initial     string                       `json:"initial" mapstructure:"initial"`
	Finals      []string                     `json:"finals" mapstructure:"finals"`
	EmptyInput  string                       `json:"empty_input" mapstructure:"empty_input"`
	Outputs     map[string]int               `json:"outputs" mapstructure:"outputs"`
	Transitions map[string]map[string]string `json:"transitions" mapstructure:"transitions"`
}

// Decode converts a raw metadata map into MachineMetadata.
// Input is weakly typed: json.Number outputs and integral floats decode into
// ints, and unquoted single-digit symbols ("0:", [0, 1]) are accepted. Other
// unquoted symbols are rejected because YAML has already rewritten their text
// (01 and 010 arrive as 1 and 8).
func Decode(raw map[string]any) (MachineMetadata, error) {
	var meta MachineMetadata
	if err := checkSymbols(raw); err != nil {
		return meta, fmt.Errorf("failed to decode machine metadata: %w", err)
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &meta,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
		DecodeHook:       jsonNumberHook,
	})
	if err != nil {
		return meta, err
	}
	if err := decoder.Decode(normalizeKeys(raw)); err != nil {
		return meta, fmt.Errorf("failed to decode machine metadata: %w", err)
	}
	return meta, nil
}

// ToSpec converts the metadata into a domain spec. fallbackName is used when the
// document carries neither a name nor an id (typically the file name).
func (m MachineMetadata) ToSpec(fallbackName string) domain.MachineSpec {
	name := m.Name
	if name == "" {
		name = m.ID
	}
	if name == "" {
		name = fallbackName
	}

	spec := domain.MachineSpec{
		Name:       name,
		Initial:    domain.State(m.Initial),
		EmptyInput: domain.EmptyInputPolicy(m.EmptyInput),
	}
	for _, s := range m.States {
		spec.States = append(spec.States, domain.State(s))
	}
	for _, s := range m.Alphabet {
		spec.Alphabet = append(spec.Alphabet, domain.Symbol(s))
	}
	for _, s := range m.Finals {
		spec.Finals = append(spec.Finals, domain.State(s))
	}
	if m.Transitions != nil {
		spec.Transitions = make(domain.TransitionTable, len(m.Transitions))
		for from, row := range m.Transitions {
			r := make(map[domain.Symbol]domain.State, len(row))
			for sym, to := range row {
				r[domain.Symbol(sym)] = domain.State(to)
			}
			spec.Transitions[domain.State(from)] = r
		}
	}
	if m.Outputs != nil {
		spec.Outputs = make(domain.OutputTable, len(m.Outputs))
		for s, v := range m.Outputs {
			spec.Outputs[domain.State(s)] = v
		}
	}
	return spec
}

// FromSpec is the inverse of ToSpec, used when exporting machines.
func FromSpec(spec domain.MachineSpec) MachineMetadata {
	meta := MachineMetadata{
		Name:        spec.Name,
		Initial:     string(spec.Initial),
		EmptyInput:  string(spec.EmptyInput),
		Outputs:     make(map[string]int, len(spec.Outputs)),
		Transitions: make(map[string]map[string]string, len(spec.Transitions)),
	}
	for _, s := range spec.States {
		meta.States = append(meta.States, string(s))
	}
	for _, s := range spec.Alphabet {
		meta.Alphabet = append(meta.Alphabet, string(s))
	}
	for _, s := range spec.Finals {
		meta.Finals = append(meta.Finals, string(s))
	}
	for s, v := range spec.Outputs {
		meta.Outputs[string(s)] = v
	}
	for from, row := range spec.Transitions {
		r := make(map[string]string, len(row))
		for sym, to := range row {
			r[string(sym)] = string(to)
		}
		meta.Transitions[string(from)] = r
	}
	return meta
}

// jsonNumberHook lets strict-mode sources (which surface numbers as json.Number)
// and float-typed numbers decode into ints. Fractions are rejected, not truncated.
func jsonNumberHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.String:
		if n, ok := data.(json.Number); ok {
			return n.String(), nil
		}
		return data, nil
	case reflect.Int, reflect.Int64, reflect.Int32:
		switch n := data.(type) {
		case json.Number:
			if i, err := n.Int64(); err == nil {
				return i, nil
			}
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", n.String())
			}
			return integral(f)
		case float64:
			return integral(n)
		case float32:
			return integral(float64(n))
		}
	}
	return data, nil
}

func integral(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	return int64(f), nil
}

// checkSymbols rejects alphabet entries and transition symbols whose source
// text cannot be recovered.
func checkSymbols(raw map[string]any) error {
	if list, ok := raw["alphabet"].([]any); ok {
		for _, v := range list {
			if _, err := symbolText(v); err != nil {
				return fmt.Errorf("alphabet: %w", err)
			}
		}
	}
	return eachEntry(raw["transitions"], func(from, row any) error {
		return eachEntry(row, func(sym, _ any) error {
			if _, err := symbolText(sym); err != nil {
				return fmt.Errorf("transitions from %s: %w", keyString(from), err)
			}
			return nil
		})
	})
}

func eachEntry(v any, fn func(key, val any) error) error {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			if err := fn(k, val); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, val := range t {
			if err := fn(k, val); err != nil {
				return err
			}
		}
	}
	return nil
}

// symbolText returns the symbol spelled by a decoded YAML/JSON scalar.
func symbolText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		if t >= 0 && t <= 9 {
			return strconv.Itoa(t), nil
		}
	case int64:
		if t >= 0 && t <= 9 {
			return strconv.FormatInt(t, 10), nil
		}
	case uint64:
		if t <= 9 {
			return strconv.FormatUint(t, 10), nil
		}
	case json.Number:
		if len(t) == 1 && t[0] >= '0' && t[0] <= '9' {
			return t.String(), nil
		}
	}
	return "", fmt.Errorf("symbol %v must be a quoted string", v)
}

// normalizeKeys turns map[any]any (and non-string keys) into map[string]any recursively,
// so that "0:" in YAML reaches mapstructure as the symbol "0".
func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[keyString(k)] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeKeys(val)
		}
		return out
	}
	return v
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case json.Number:
		return t.String()
	}
	return fmt.Sprint(k)
}
