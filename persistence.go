package modmap

import (
	"github.com/docforge/modmap/internal/treeio"
	"github.com/docforge/modmap/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Persistence = (*mapper)(nil)

// Persistence handles tree persistence operations.
type Persistence interface {
	// Save writes the mapped tree to path as a nested tree document
	Save(path string) error
}

// Save writes the mapped tree to path. The document format follows the
// file extension, YAML for .yaml and .yml, JSON otherwise.
func (m *mapper) Save(path string) error {
	m.mu.RLock()
	project := m.project
	m.mu.RUnlock()

	if project == nil {
		return &errors.ValidationError{
			Field:   "project",
			Message: "no mapped tree to save, run the mapper first",
		}
	}

	return treeio.Save(path, project)
}
