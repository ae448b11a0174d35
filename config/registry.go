package config

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/config/store/file"
)

// Registry enumerates every configuration file below a Root.
// Nothing is cached; each call walks the directory again.
type Registry struct {
	root *Root
}

// NewRegistry creates a Registry over root.
func NewRegistry(root *Root) *Registry {
	return &Registry{root: root}
}

// Root returns the Root the registry walks.
func (r *Registry) Root() *Root {
	return r.root
}

// All opens one Entry per regular file below the root, descending into
// subdirectories and following symbolic links.
func (r *Registry) All() ([]*Entry, error) {
	paths, err := file.List(r.root.dir)
	if err != nil {
		return nil, fmt.Errorf("walking root: %w", err)
	}

	entries := make([]*Entry, 0, len(paths))

	for _, fpath := range paths {
		entry, err := openEntry(r.root, fpath)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

// Get returns the first entry, in walk order, whose base name is fileName.
// When several files share a base name in different directories, which one
// is returned is not specified.
func (r *Registry) Get(fileName string) (*Entry, bool, error) {
	entries, err := r.All()
	if err != nil {
		return nil, false, err
	}

	for _, entry := range entries {
		if entry.FileName() == fileName {
			return entry, true, nil
		}
	}

	return nil, false, nil
}
