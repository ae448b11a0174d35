package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/markup"
)

// Root is the shared context of a set of configuration files: the directory
// they live in, the bundled defaults they are seeded from, and where their
// diagnostics go. Entries and registries are always created from a Root.
type Root struct {
	dir       string
	bundle    fs.FS
	parser    Parser
	sink      Sink
	translate markup.Translator
}

// Option configures a Root.
type Option func(*Root)

// WithBundle sets the bundled defaults. A file missing from the bundle has no default.
func WithBundle(bundle fs.FS) Option {
	return func(r *Root) {
		r.bundle = bundle
	}
}

// WithParser replaces the YAML parser.
func WithParser(parser Parser) Option {
	return func(r *Root) {
		r.parser = parser
	}
}

// WithSink sets where diagnostics are sent.
func WithSink(sink Sink) Option {
	return func(r *Root) {
		r.sink = sink
	}
}

// WithTranslator sets the markup translation applied to string values.
func WithTranslator(translate markup.Translator) Option {
	return func(r *Root) {
		r.translate = translate
	}
}

// NewRoot creates a Root for dir. The directory does not have to exist yet;
// it is created when the first entry is seeded.
func NewRoot(dir string, opts ...Option) (*Root, error) {
	if dir == "" {
		return nil, ErrEmptyRoot
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", dir, err)
	}

	root := &Root{dir: abs}

	for _, opt := range opts {
		opt(root)
	}

	root.SetDefaults()

	return root, nil
}

// SetDefaults fills in the parser, sink and translator left unset by options.
func (r *Root) SetDefaults() {
	if r.parser == nil {
		r.parser = YAML()
	}

	if r.sink == nil {
		r.sink = NewSlogSink(nil)
	}

	if r.translate == nil {
		r.translate = markup.Legacy
	}
}

// Dir returns the absolute root directory.
func (r *Root) Dir() string {
	return r.dir
}

// Entry opens the entry for name, a slash-separated path relative to the root.
// See NewEntry.
func (r *Root) Entry(name string) (*Entry, error) {
	return NewEntry(r, name)
}

func (r *Root) bundled(name string) ([]byte, bool, error) {
	if r.bundle == nil {
		return nil, false, nil
	}

	data, err := fs.ReadFile(r.bundle, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("reading bundled default %q: %w", name, err)
	}

	return data, true, nil
}
