package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"protofield-generator/internal/analyze"
	"protofield-generator/internal/config"
	"protofield-generator/internal/gen"
	"protofield-generator/internal/logger"
	"protofield-generator/internal/plan"
)

// errStale is returned by check when generated files need regenerating.
var errStale = errors.New("generated files are out of date")

// options holds the persistent flags.
type options struct {
	configPath string
	logLevel   string
	logJSON    bool
	tagKey     string
	suffix     string
	include    []string
	exclude    []string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to the config file (default "+config.DefaultFile+" if present)")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&o.logJSON, "log-json", false, "log as JSON")
	fs.StringVar(&o.tagKey, "tag-key", "", "struct tag key holding field annotations")
	fs.StringVar(&o.suffix, "suffix", "", "file name suffix of generated files")
	fs.StringSliceVar(&o.include, "include", nil, "glob patterns of message type names to generate")
	fs.StringSliceVar(&o.exclude, "exclude", nil, "glob patterns of message type names to skip")
}

// load builds the effective configuration: file, then flags, then arguments.
func (o *options) load(fs *pflag.FlagSet, args []string) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if err := cfg.Merge(&config.Config{Packages: args}); err != nil {
		return nil, fmt.Errorf("failed to apply arguments: %w", err)
	}

	// Changed flags are assigned directly so zero values still win over the file.
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}

	if fs.Changed("log-json") {
		cfg.Log.JSON = o.logJSON
	}

	if fs.Changed("tag-key") {
		cfg.TagKey = o.tagKey
	}

	if fs.Changed("suffix") {
		cfg.Suffix = o.suffix
	}

	if fs.Changed("include") {
		cfg.Include = o.include
	}

	if fs.Changed("exclude") {
		cfg.Exclude = o.exclude
	}

	if len(cfg.Packages) == 0 {
		cfg.Packages = []string{"."}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "protofield-generator",
		Short:         "Generate wire encoding methods for annotated message fields",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.register(root.PersistentFlags())

	root.AddCommand(
		newGenCmd(opts),
		newCheckCmd(opts),
		newPlanCmd(opts),
	)

	return root
}

func newGenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages...]",
		Short: "Generate *_proto.go files",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			files, err := generate(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(files); err != nil {
				return report(cmd, err)
			}

			logger.FromContext(ctx).Info("generation complete", "files", len(files))

			return nil
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages...]",
		Short: "Report generated files that are missing or out of date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			files, err := generate(ctx, cmd, cfg)
			if err != nil {
				return err
			}

			stale, err := gen.Check(files)
			if err != nil {
				return report(cmd, err)
			}

			for _, s := range stale {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", s.Path, s.Reason)
			}

			if len(stale) > 0 {
				return report(cmd, fmt.Errorf("%w: %d file(s)", errStale, len(stale)))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d generated file(s) up to date\n", len(files))

			return nil
		},
	}
}

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [packages...]",
		Short: "Dump the resolved field plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, opts, args)
			if err != nil {
				return err
			}

			p, err := resolve(ctx, cfg)
			if err != nil {
				return report(cmd, err)
			}

			printDiagnostics(cmd.ErrOrStderr(), p)
			dumpPlan(cmd.OutOrStdout(), p)

			return nil
		},
	}
}

// setup loads the configuration and attaches the configured logger to the
// command context.
func setup(cmd *cobra.Command, opts *options, args []string) (context.Context, *config.Config, error) {
	cfg, err := opts.load(cmd.Flags(), args)
	if err != nil {
		return nil, nil, report(cmd, err)
	}

	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()

	log := logger.NewLogger(logCfg)
	ctx := logger.ContextWithLogger(cmd.Context(), log)

	log.Debug("configuration loaded", "packages", cfg.Packages, "tag_key", cfg.TagKey, "suffix", cfg.Suffix)

	return ctx, cfg, nil
}

func resolve(ctx context.Context, cfg *config.Config) (*plan.Plan, error) {
	graph, err := analyze.NewAnalyzer().LoadPackages(cfg.Packages...)
	if err != nil {
		return nil, err
	}

	return plan.NewResolver(graph, cfg.PlanConfig()).Resolve(ctx)
}

// generate runs the whole pipeline short of writing files. Resolution errors
// abort generation.
func generate(ctx context.Context, cmd *cobra.Command, cfg *config.Config) ([]gen.GeneratedFile, error) {
	p, err := resolve(ctx, cfg)
	if err != nil {
		return nil, report(cmd, err)
	}

	printDiagnostics(cmd.ErrOrStderr(), p)

	if p.Diagnostics.HasErrors() {
		return nil, report(cmd, fmt.Errorf("resolution failed with %d error(s)", len(p.Diagnostics.Errors)))
	}

	files, err := gen.NewGenerator(cfg.GeneratorConfig()).Generate(ctx, p)
	if err != nil {
		return nil, report(cmd, err)
	}

	return files, nil
}

func printDiagnostics(w io.Writer, p *plan.Plan) {
	for _, d := range p.Diagnostics.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}

// report prints err to the command's error stream and returns it.
func report(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	return err
}
