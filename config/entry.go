package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/0xalexb/hjarta-config/config/store/file"
)

// Entry is one configuration file below a Root together with its parsed Document.
//
// After Reload the bundled default of the file, if any, is kept as a read-only
// overlay: reads fall back to it for paths the file does not set. The overlay
// is never written to disk.
type Entry struct {
	root     *Root
	name     string
	store    *file.Store
	document Document
	defaults Document
}

// NewEntry opens the file name, a slash-separated path relative to root.
//
// A missing file is seeded first: with a byte-identical copy of the bundled
// default of the same name when there is one, as an empty file otherwise.
// Intermediate directories are created as needed. The file is then loaded.
func NewEntry(root *Root, name string) (*Entry, error) {
	entry, err := newEntry(root, name)
	if err != nil {
		return nil, err
	}

	err = entry.seed()
	if err != nil {
		return nil, fmt.Errorf("seeding %q: %w", entry.name, err)
	}

	err = entry.load()
	if errors.Is(err, ErrMalformedFile) {
		slog.Warn("config file not parsable, using empty document",
			slog.String("path", entry.store.Path()),
			slog.String("error", err.Error()),
		)

		doc, emptyErr := root.parser.Parse(nil)
		if emptyErr != nil {
			return nil, err
		}

		entry.document = doc

		return entry, nil
	}

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// openEntry loads an existing file found below the root. A file that does not
// parse is logged and opened with an empty Document.
func openEntry(root *Root, fpath string) (*Entry, error) {
	rel, err := filepath.Rel(root.dir, fpath)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", fpath, err)
	}

	entry, err := newEntry(root, rel)
	if err != nil {
		return nil, err
	}

	err = entry.load()
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func newEntry(root *Root, name string) (*Entry, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	clean := path.Clean(filepath.ToSlash(name))
	if !fs.ValidPath(clean) || clean == "." {
		return nil, fmt.Errorf("%w: %q", ErrOutsideRoot, name)
	}

	return &Entry{
		root:  root,
		name:  clean,
		store: file.NewStore(filepath.Join(root.dir, filepath.FromSlash(clean))),
	}, nil
}

func (e *Entry) seed() error {
	exists, err := e.store.Exists()
	if err != nil {
		return err //nolint:wrapcheck // store errors carry the path
	}

	if exists {
		return nil
	}

	data, ok, err := e.root.bundled(e.name)
	if err != nil {
		return err
	}

	if !ok {
		slog.Info("creating empty config file", slog.String("path", e.store.Path()))

		return e.store.Create() //nolint:wrapcheck // store errors carry the path
	}

	slog.Info("copying bundled default", slog.String("name", e.name), slog.String("path", e.store.Path()))

	return e.store.Write(data) //nolint:wrapcheck // store errors carry the path
}

func (e *Entry) load() error {
	data, err := e.store.Read()
	if err != nil {
		return fmt.Errorf("loading %q: %w", e.name, err)
	}

	doc, err := e.root.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %q: %w: %w", e.store.Path(), ErrMalformedFile, err)
	}

	e.document = doc
	e.defaults = nil

	return nil
}

// Save writes the whole Document back to the file, replacing its contents.
func (e *Entry) Save() error {
	data, err := e.document.Marshal()
	if err != nil {
		return fmt.Errorf("serializing %q: %w", e.name, err)
	}

	err = e.store.Write(data)
	if err != nil {
		return fmt.Errorf("saving %q: %w", e.name, err)
	}

	return nil
}

// Reload re-reads the file from disk, discarding unsaved changes, and installs
// the bundled default of the same name as the fallback overlay.
func (e *Entry) Reload() error {
	err := e.load()
	if err != nil {
		return err
	}

	data, ok, err := e.root.bundled(e.name)
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	defaults, err := e.root.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing bundled default %q: %w", e.name, err)
	}

	e.defaults = defaults

	slog.Debug("bundled default installed as overlay", slog.String("name", e.name))

	return nil
}

// Name returns the slash-separated path of the file relative to the root.
func (e *Entry) Name() string {
	return e.name
}

// FileName returns the base name of the file, as shown in diagnostics.
func (e *Entry) FileName() string {
	return path.Base(e.name)
}

// Path returns the absolute path of the file.
func (e *Entry) Path() string {
	return e.store.Path()
}

// Document returns the live Document. Changes made through it are persisted by Save.
func (e *Entry) Document() Document {
	return e.document
}

// IsSet reports whether path resolves to a non-null node in the file or the overlay.
func (e *Entry) IsSet(path string) bool {
	_, ok := e.source(path)

	return ok
}

// Value returns the plain value at path, falling back to the overlay.
func (e *Entry) Value(path string) (any, bool) {
	src, ok := e.source(path)
	if !ok {
		return nil, false
	}

	return src.Get(path)
}

// Set stores value at path in the live Document. A nil value removes the key.
func (e *Entry) Set(path string, value any) {
	e.document.Set(path, value)
}

// Keys lists the child keys of the mapping at path, file keys first followed
// by overlay keys the file does not have. An empty path lists the top level.
func (e *Entry) Keys(path string) ([]string, bool) {
	keys, ok := e.document.Keys(path)

	if e.defaults == nil {
		return keys, ok
	}

	overlay, overlayOK := e.defaults.Keys(path)
	if !overlayOK {
		return keys, ok
	}

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		seen[key] = struct{}{}
	}

	for _, key := range overlay {
		if _, dup := seen[key]; !dup {
			keys = append(keys, key)
		}
	}

	return keys, true
}

func (e *Entry) source(path string) (Document, bool) {
	if e.document.IsSet(path) {
		return e.document, true
	}

	if e.defaults != nil && e.defaults.IsSet(path) {
		return e.defaults, true
	}

	return nil, false
}

func (e *Entry) report(err *PathError) {
	e.root.sink.Emit(Diagnose(e.FileName(), err))
}
