// Package file provides file-system storage for configuration entries.
//
// A Store is bound to one path and performs direct, blocking reads and writes
// on the calling goroutine. Nothing is cached: every Read goes to disk.
//
// Usage:
//
//	store := file.NewStore("/etc/app/settings/deep.yml")
//	exists, err := store.Exists()
//	if !exists {
//	    err = store.Create() // creates settings/ as well
//	}
//	data, err := store.Read()
//
// Error Handling:
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Write is not atomic; a crash mid-write can leave a partial file
package file
