package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	hjarta "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/config"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/inspect"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/spf13/cobra"
)

const appName = "hjarta-config"

// Diagnostic outputs accepted by --diagnostics.
const (
	diagnosticsConsole = "console"
	diagnosticsLog     = "log"
)

var (
	errValueUnavailable   = errors.New("value unavailable")
	errUnknownType        = errors.New("unknown value type")
	errUnknownDiagnostics = errors.New("unknown diagnostics output")
)

// globalFlags are shared by every command.
type globalFlags struct {
	root        string
	defaults    string
	logLevel    string
	diagnostics string
}

type cli struct {
	flags  globalFlags
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Typed access to YAML configuration roots",
		Long: `Reads, edits and serves the YAML configuration files below a root directory.

Paths address nested keys with dots, as in "database.pool.size". Missing files
are seeded from --defaults when it holds a file of the same relative name.`,
		Version:       hjarta.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.logger = logging.NewLogger(logging.LoggerConfig{
				Level:  c.flags.logLevel,
				Format: logging.FormatText,
			}, c.stderr)
			slog.SetDefault(c.logger)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.flags.root, "root", ".", "configuration root directory")
	flags.StringVar(&c.flags.defaults, "defaults", "", "directory holding bundled default files")
	flags.StringVar(&c.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&c.flags.diagnostics, "diagnostics", diagnosticsConsole, "where configuration errors go (console, log)")

	rootCmd.AddCommand(
		c.getCmd(),
		c.setCmd(),
		c.keysCmd(),
		c.listCmd(),
		c.serveCmd(),
		c.versionCmd(),
	)

	return rootCmd
}

func (c *cli) rootOptions() []config.Option {
	var opts []config.Option

	if c.flags.defaults != "" {
		opts = append(opts, config.WithBundle(os.DirFS(c.flags.defaults)))
	}

	return opts
}

func (c *cli) sink() (config.Sink, error) {
	switch c.flags.diagnostics {
	case diagnosticsConsole:
		return config.NewConsoleSink(c.stderr, appName), nil
	case diagnosticsLog:
		return config.NewLogrSink(logging.NewLogr(c.logger)), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownDiagnostics, c.flags.diagnostics)
	}
}

func (c *cli) openRoot() (*config.Root, error) {
	sink, err := c.sink()
	if err != nil {
		return nil, err
	}

	return config.NewRoot(c.flags.root, append(c.rootOptions(), config.WithSink(sink))...) //nolint:wrapcheck
}

func (c *cli) openEntry(name string) (*config.Entry, error) {
	root, err := c.openRoot()
	if err != nil {
		return nil, err
	}

	return root.Entry(name) //nolint:wrapcheck // entry errors name the file
}

func (c *cli) getCmd() *cobra.Command {
	var valueType string

	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print the value at PATH",
		Long: `Print the value at PATH in FILE, read as the type given by --type.

Types: string, list, bool, int, long, float, double, number.
Reading a missing bool writes false to the file.`,
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			entry, err := c.openEntry(args[0])
			if err != nil {
				return err
			}

			return c.printValue(entry, args[1], valueType)
		},
	}

	cmd.Flags().StringVarP(&valueType, "type", "t", "string", "value type")

	return cmd
}

//nolint:cyclop // one case per value type
func (c *cli) printValue(entry *config.Entry, path, valueType string) error {
	var (
		text string
		ok   = true
	)

	switch valueType {
	case "string":
		text, ok = entry.GetString(path)
	case "list":
		lines := entry.GetStringList(path)
		if len(lines) == 0 {
			return errValueUnavailable
		}

		for _, line := range lines {
			_, _ = fmt.Fprintln(c.stdout, line)
		}

		return nil
	case "bool":
		value, err := entry.GetBoolean(path)
		if err != nil {
			return err //nolint:wrapcheck
		}

		text = strconv.FormatBool(value)
	case "int":
		var value int

		value, ok = entry.GetInt(path)
		text = strconv.Itoa(value)
	case "long":
		text = strconv.FormatInt(entry.GetLong(path), 10)
	case "float":
		text = strconv.FormatFloat(float64(entry.GetFloat(path)), 'g', -1, 32)
	case "double":
		var value float64

		value, ok = entry.GetDouble(path)
		text = strconv.FormatFloat(value, 'g', -1, 64)
	case "number":
		var value config.Number

		value, ok = entry.GetNumber(path)
		text = value.String()
	default:
		return fmt.Errorf("%w: %q", errUnknownType, valueType)
	}

	if !ok {
		return errValueUnavailable
	}

	_, _ = fmt.Fprintln(c.stdout, text)

	return nil
}

func (c *cli) setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE PATH VALUE",
		Short: "Write VALUE at PATH and save the file",
		Long: `Write VALUE at PATH in FILE and save it. VALUE is read as a YAML scalar,
so 10 is stored as a whole number, 10.0 as a decimal and true as a boolean.
Quote it ('10') to store text. The literal ~ removes the key.`,
		Args: cobra.ExactArgs(3), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			entry, err := c.openEntry(args[0])
			if err != nil {
				return err
			}

			value, err := yamlparser.ParseScalar(args[2])
			if err != nil {
				return fmt.Errorf("parsing value: %w", err)
			}

			entry.Set(args[1], value)

			return entry.Save() //nolint:wrapcheck
		},
	}
}

func (c *cli) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE [PATH]",
		Short: "List the keys of the section at PATH",
		Args:  cobra.RangeArgs(1, 2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			entry, err := c.openEntry(args[0])
			if err != nil {
				return err
			}

			var path string
			if len(args) > 1 {
				path = args[1]
			}

			keys, ok := entry.Keys(path)
			if !ok {
				return fmt.Errorf("%w: no section at %q", errValueUnavailable, path)
			}

			for _, key := range keys {
				_, _ = fmt.Fprintln(c.stdout, key)
			}

			return nil
		},
	}
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration file below the root",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			root, err := c.openRoot()
			if err != nil {
				return err
			}

			entries, err := config.NewRegistry(root).All()
			if err != nil {
				return err //nolint:wrapcheck
			}

			for _, entry := range entries {
				_, _ = fmt.Fprintln(c.stdout, entry.Name())
			}

			return nil
		},
	}
}

func (c *cli) serveCmd() *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a read-only JSON view of the root over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app := hjarta.NewApp(
				hjarta.WithLogLevel(c.flags.logLevel),
				hjarta.WithLogFormat(logging.FormatText),
				hjarta.WithConfigRoot(c.flags.root, c.rootOptions()...),
				hjarta.WithInspector(inspect.WithAddress(address)),
			)

			err := app.Err()
			if err != nil {
				return err //nolint:wrapcheck
			}

			app.Run()

			return nil
		},
	}

	cmd.Flags().StringVar(&address, "address", inspect.DefaultAddress, "listen address")

	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(c.stdout, "%s %s (commit: %s, built: %s)\n",
				appName, hjarta.Version, hjarta.Commit, hjarta.CompiledAt)
		},
	}
}
