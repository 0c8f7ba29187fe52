package loam

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/loam"
	"github.com/aretw0/modthree/internal/dto"
	"github.com/aretw0/modthree/pkg/domain"
)

// Loader adapts a Loam repository of machine documents to ports.MachineLoader.
// Each document (Markdown frontmatter, YAML or JSON) describes one machine; the
// markdown body, if any, is free-form documentation and is ignored.
type Loader struct {
	Repo *loam.TypedRepository[dto.MachineMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[dto.MachineMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric types consistent (json.Number) across adapters;
	// read-only mode prevents Loam from creating its dev sandbox.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}

	return New(loam.NewTypedRepository[dto.MachineMetadata](repo)), nil
}

// GetMachine retrieves and validates the machine with the given ID. IDs follow
// ListMachines: the document's "id" field when present, its file ID otherwise.
func (l *Loader) GetMachine(id string) (*domain.Machine, error) {
	ctx := context.Background()

	docs, err := l.index(ctx)
	if err != nil {
		return nil, err
	}
	docID, ok := docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, id)
	}

	doc, err := l.Repo.Get(ctx, docID)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrMachineNotFound, id, err)
		}
		return nil, fmt.Errorf("loam get failed for %s: %w", id, err)
	}

	spec := doc.Data.ToSpec(id)
	m, err := domain.NewMachine(spec)
	if err != nil {
		return nil, fmt.Errorf("machine %s: %w", id, err)
	}
	return m, nil
}

// ListMachines lists all machine documents in the repository.
func (l *Loader) ListMachines() ([]string, error) {
	docs, err := l.index(context.Background())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// index maps machine IDs to the document IDs that define them.
func (l *Loader) index(ctx context.Context) (map[string]string, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	index := make(map[string]string, len(docs))
	for _, doc := range docs {
		// Use the ID from metadata if available, otherwise filename ID
		rawID := doc.Data.ID
		if rawID == "" {
			rawID = doc.ID
		}
		id := trimExtension(rawID)

		// Collision Detection
		if existingPath, ok := index[id]; ok {
			return nil, fmt.Errorf("collision detected: ID '%s' is defined in both '%s' and '%s'", id, existingPath, doc.ID)
		}
		index[id] = doc.ID
	}
	return index, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext != "" {
		return filepath.ToSlash(strings.TrimSuffix(id, ext))
	}
	return filepath.ToSlash(id)
}
