// Command wireprotoc is the external build-time entry point: it resolves
// and compiles .proto sources and writes generated Go source to the
// requested output directory (spec §6 "Driver glue").
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wireproto/wireproto/compiler"
	"github.com/wireproto/wireproto/resolver"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		protoSources []string
		importPaths  []string
		out          string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "wireprotoc",
		Short: "Compile .proto sources into generated Go code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(protoSources) == 0 {
				return fmt.Errorf("at least one --proto_sources is required")
			}
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			return run(cmd, protoSources, importPaths, out, verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&protoSources, "proto_sources", nil, "Proto source file to compile (repeatable)")
	flags.StringArrayVar(&importPaths, "import_path", nil, "Directory to search for imports (repeatable)")
	flags.StringVar(&out, "out", "", "Output directory for generated Go source")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, protoSources, importPaths []string, out string, verbose bool) error {
	logger, err := newLogger(verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	c := &compiler.Compiler{
		Resolver: &resolver.SourceResolver{ImportPaths: importPaths},
		Logger:   logger,
	}

	files, err := c.Generate(cmd.Context(), protoSources...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	for name, content := range files {
		dest := filepath.Join(out, name)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(dest, content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
		logger.Info("wrote generated file", zap.String("path", dest))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	return cfg.Build()
}
