package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/modthree/internal/dto"
	"github.com/aretw0/modthree/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Extensions lists the definition file formats, in lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// LoadMachine reads a machine definition file (YAML or JSON, chosen by extension).
// A definition without a name is named after the file.
func LoadMachine(path string) (*domain.Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, path)
		}
		return nil, fmt.Errorf("failed to read machine definition: %w", err)
	}

	m, err := ParseMachine(data, filepath.Ext(path), baseName(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseMachine decodes a definition in the format named by ext (".json", ".yaml", ".yml").
func ParseMachine(data []byte, ext, fallbackName string) (*domain.Machine, error) {
	var raw map[string]any

	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse json: %w", err)
		}
	case ".yaml", ".yml", "":
		// Default to YAML
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		quoteSymbols(&node)
		if err := node.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported machine file extension: %s", ext)
	}

	meta, err := dto.Decode(raw)
	if err != nil {
		return nil, err
	}
	return domain.NewMachine(meta.ToSpec(fallbackName))
}

// EncodeMachine renders m as a definition document in the given format ("yaml" or "json").
func EncodeMachine(m *domain.Machine, format string) ([]byte, error) {
	meta := dto.FromSpec(m.Spec())
	doc := document{
		Name:        meta.Name,
		States:      meta.States,
		Alphabet:    meta.Alphabet,
		Initial:     meta.Initial,
		Finals:      meta.Finals,
		EmptyInput:  meta.EmptyInput,
		Transitions: meta.Transitions,
		Outputs:     meta.Outputs,
	}

	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	case "yaml", "yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// document fixes the field order of exported definitions.
type document struct {
	Name        string                       `yaml:"name" json:"name"`
	States      []string                     `yaml:"states" json:"states"`
	Alphabet    []string                     `yaml:"alphabet" json:"alphabet"`
	Initial     string                       `yaml:"initial" json:"initial"`
	Finals      []string                     `yaml:"finals,omitempty" json:"finals,omitempty"`
	EmptyInput  string                       `yaml:"empty_input,omitempty" json:"empty_input,omitempty"`
	Transitions map[string]map[string]string `yaml:"transitions" json:"transitions"`
	Outputs     map[string]int               `yaml:"outputs" json:"outputs"`
}

// Loader implements ports.MachineLoader over a directory of definition files.
// The machine ID is the file name without extension.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

// GetMachine loads <dir>/<id>.{yaml,yml,json}, whichever exists first.
func (l *Loader) GetMachine(id string) (*domain.Machine, error) {
	for _, ext := range Extensions {
		path := filepath.Join(l.Dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return LoadMachine(path)
		}
	}
	return nil, fmt.Errorf("%w: %s in %s", domain.ErrMachineNotFound, id, l.Dir)
}

// ListMachines returns the IDs of all definition files in the directory.
func (l *Loader) ListMachines() ([]string, error) {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !slices.Contains(Extensions, filepath.Ext(e.Name())) {
			continue
		}
		id := baseName(e.Name())
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// quoteSymbols retags unquoted alphabet entries and transition symbols as
// strings so that 01 stays "01" instead of resolving to the integer 1.
func quoteSymbols(node *yaml.Node) {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "alphabet":
			if val.Kind == yaml.SequenceNode {
				for _, sym := range val.Content {
					asString(sym)
				}
			}
		case "transitions":
			if val.Kind != yaml.MappingNode {
				continue
			}
			for j := 1; j < len(val.Content); j += 2 {
				row := val.Content[j]
				if row.Kind != yaml.MappingNode {
					continue
				}
				for k := 0; k < len(row.Content); k += 2 {
					asString(row.Content[k])
				}
			}
		}
	}
}

func asString(n *yaml.Node) {
	if n.Kind != yaml.ScalarNode {
		return
	}
	switch n.ShortTag() {
	case "!!int", "!!float", "!!bool":
		n.Tag = "!!str"
	}
}
