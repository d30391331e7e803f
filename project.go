package webshell

import (
	"github.com/goliatone/go-webshell/pkg/config"
	"github.com/goliatone/go-webshell/pkg/project"
)

// NewProjectStore constructs a project file store.
func NewProjectStore(options ...project.Option) *project.Store {
	return project.NewStore(options...)
}

// LoadProject reads and validates a YAML or JSON project file.
func LoadProject(path string) (Configuration, error) {
	return project.NewStore().Load(path)
}

// SaveProject validates cfg and writes it to path; the extension picks the
// encoding.
func SaveProject(path string, cfg config.Configuration) error {
	return project.NewStore().Save(path, cfg)
}
