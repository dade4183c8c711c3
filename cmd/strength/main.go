package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muliwe/hero-strength/internal/app"
	"github.com/muliwe/hero-strength/internal/config"
	"github.com/muliwe/hero-strength/internal/logger"
)

const version = "0.5.0"

type options struct {
	configPath string
	logDir     string
	verbose    bool
	noLog      bool
	noColor    bool
}

func main() {
	if err := execute(newRootCmd(os.Stdout), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "strength",
		Short:        "Classify hero strength values",
		Version:      version,
		SilenceUsage: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to YAML config file")
	flags.StringVar(&opts.logDir, "log-dir", "", "directory for the classification log")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.noLog, "no-log", false, "do not write the classification log")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable coloured labels")

	root.AddCommand(newClassifyCmd(opts), newHeroesCmd(opts))
	return root
}

func newClassifyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <value>...",
		Short: "Print \"<value> (<label>)\" for each value",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				return a.ClassifyArgs(args)
			})
		},
	}
	// flags must precede values, so "classify 5 -3" reads -3 as a value
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newHeroesCmd(opts *options) *cobra.Command {
	var (
		file string
		id   int
	)
	cmd := &cobra.Command{
		Use:   "heroes",
		Short: "List heroes from a roster file with their strength labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				if cmd.Flags().Changed("id") {
					return a.ShowHero(file, id)
				}
				return a.ShowRoster(file)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "heroes.yaml", "roster YAML file")
	cmd.Flags().IntVar(&id, "id", 0, "show only the hero with this id")
	return cmd
}

func execute(root *cobra.Command, args []string) error {
	root.SetArgs(escapeNegativeValues(root, args))
	return root.Execute()
}

// escapeNegativeValues inserts "--" ahead of the first negative number
// given to classify, so pflag does not parse it as a shorthand flag.
func escapeNegativeValues(root *cobra.Command, args []string) []string {
	sub := -1
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if strings.HasPrefix(a, "-") {
			if takesValue(root, a) {
				i++
			}
			continue
		}
		if a == "classify" {
			sub = i
		}
		break
	}
	if sub < 0 {
		return args
	}

	for i := sub + 1; i < len(args); i++ {
		a := args[i]
		if a == "--" || !strings.HasPrefix(a, "-") {
			return args
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
		if takesValue(root, a) {
			i++
		}
	}
	return args
}

// takesValue reports whether arg is a persistent flag that consumes the next token
func takesValue(root *cobra.Command, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = root.PersistentFlags().Lookup(name)
	} else if len(arg) == 2 {
		f = root.PersistentFlags().ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

func withApp(cmd *cobra.Command, opts *options, fn func(*app.App) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	console, err := logger.NewConsole(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = console.Sync() }()

	cfg.Logger.EchoTo = cmd.ErrOrStderr()
	a, err := app.New(*cfg, cmd.OutOrStdout(), console)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			console.Warn("failed to close result log", zap.Error(err))
		}
	}()

	return fn(a)
}

func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if opts.logDir != "" {
		cfg.Logger.LogDir = opts.logDir
	}
	if opts.verbose {
		cfg.Debug = true
	}
	if opts.noLog {
		cfg.LogResults = false
	}
	if opts.noColor {
		cfg.Color = false
	}
	return cfg, nil
}
