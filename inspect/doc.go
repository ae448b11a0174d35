// Package inspect serves a read-only JSON view of the configuration files
// below a config.Root.
//
// Endpoints:
//
//	GET /entries                       every file: name, file name and absolute path
//	GET /entries/{file}/keys?path=...  child keys of the mapping at path
//	GET /entries/{file}/value?path=... plain value at path
//
// {file} is a base name as accepted by config.Registry.Get. An empty path
// addresses the top level of the file. Every request walks the root again, so
// the view always matches what is on disk.
package inspect
