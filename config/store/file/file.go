package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the store path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store reads and writes one configuration file.
// Writes go straight to the target path; there is no temporary file or backup.
type Store struct {
	filepath string
}

// NewStore creates a Store for the given path. Nothing is touched on disk.
func NewStore(fpath string) *Store {
	return &Store{filepath: filepath.Clean(fpath)}
}

// Path returns the cleaned file path.
func (s *Store) Path() string {
	return s.filepath
}

// Exists reports whether the file exists.
// A directory at the path is reported as ErrPathIsDirectory.
func (s *Store) Exists() (bool, error) {
	stat, err := os.Stat(s.filepath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("stat file %q: %w", s.filepath, err)
	}

	if stat.IsDir() {
		return false, fmt.Errorf("path %q: %w", s.filepath, ErrPathIsDirectory)
	}

	return true, nil
}

// Read returns the file contents.
func (s *Store) Read() ([]byte, error) {
	stat, err := os.Stat(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", s.filepath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", s.filepath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(s.filepath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", s.filepath, err)
	}

	return data, nil
}

// Write replaces the file contents, creating parent directories as needed.
func (s *Store) Write(data []byte) error {
	err := os.MkdirAll(filepath.Dir(s.filepath), dirPerm)
	if err != nil {
		return fmt.Errorf("creating directory for %q: %w", s.filepath, err)
	}

	err = os.WriteFile(s.filepath, data, filePerm) // #nosec G306 -- config files are meant to be user readable
	if err != nil {
		return fmt.Errorf("writing file %q: %w", s.filepath, err)
	}

	return nil
}

// Create creates an empty file, creating parent directories as needed.
func (s *Store) Create() error {
	return s.Write([]byte{})
}

// List walks dir recursively and returns the paths of all regular files below it.
// Directories are descended into, never listed. Symbolic links are followed.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing directory %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))

	for _, entry := range entries {
		fpath := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()

		if entry.Type()&fs.ModeSymlink != 0 {
			stat, statErr := os.Stat(fpath)
			if statErr != nil {
				return nil, fmt.Errorf("stat file %q: %w", fpath, statErr)
			}

			isDir = stat.IsDir()
		}

		if !isDir {
			files = append(files, fpath)

			continue
		}

		nested, err := List(fpath)
		if err != nil {
			return nil, err
		}

		files = append(files, nested...)
	}

	return files, nil
}
