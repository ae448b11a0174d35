// Package config reads and writes YAML configuration files through dot-separated
// paths with typed getters.
//
// A Root names the directory holding the files, the bundled defaults they are
// seeded from, and the Sink that receives diagnostics. An Entry is one file
// below the Root:
//
//	root, err := config.NewRoot("plugins/shop", config.WithBundle(defaults))
//	entry, err := root.Entry("settings/messages.yml")
//	greeting, ok := entry.GetString("messages.greeting")
//
// Getters do not return errors for bad values. They report a multi-line
// diagnostic naming the file, the path and what was expected to the Sink, and
// return an absent result. Each family has its own failure contract:
//
//   - GetString, GetInt, GetDouble and GetNumber return (value, false).
//   - GetStringList returns an empty slice.
//   - GetLong returns LongSentinel.
//   - GetFloat never fails; missing values read as 0.
//   - GetBoolean writes a missing value back to the file as false.
//
// Silent variants skip the diagnostic but keep the same results.
//
// A Registry walks the Root directory and opens every file it finds.
package config
