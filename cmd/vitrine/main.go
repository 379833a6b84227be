package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	vitrine "github.com/3-lines-studio/vitrine"
	"github.com/3-lines-studio/vitrine/internal/adapters/cli"
	"github.com/3-lines-studio/vitrine/internal/adapters/config"
	"github.com/3-lines-studio/vitrine/internal/adapters/env"
	adapterfs "github.com/3-lines-studio/vitrine/internal/adapters/fs"
	"github.com/3-lines-studio/vitrine/internal/adapters/markdown"
	"github.com/3-lines-studio/vitrine/internal/core"
	"github.com/3-lines-studio/vitrine/internal/usecase"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "vitrine",
		Short:        "Content pipeline for framework landing pages",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to vitrine.yaml")

	root.AddCommand(
		newCheckCmd(&configPath),
		newBuildCmd(&configPath),
		newServeCmd(&configPath),
	)
	return root
}

func newCheckCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "check [content]",
		Short: "Load content records and report validation findings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			contentPath := cfg.Content
			if len(args) == 1 {
				contentPath = args[0]
			}

			output := cli.NewOutput()
			output.PrintHeader("Vitrine Check")

			renderer := markdown.NewRenderer(cfg.HighlightStyle)
			loader := usecase.NewLoadService(adapterfs.NewOSFileSystem(), renderer)

			load := loader.Load(cmd.Context(), usecase.LoadInput{
				Path:   contentPath,
				Colors: colorSet(cfg),
			})
			if load.Error != nil {
				output.PrintError("%v", load.Error)
				return fmt.Errorf("load failed")
			}

			output.PrintSuccess("%d panels, %d steps loaded",
				len(load.Document.Panels), len(load.Document.Steps))

			if len(load.Violations) == 0 {
				output.PrintDone("No validation findings")
				return nil
			}

			for _, violation := range load.Violations {
				output.PrintWarning("%s", violation.Error())
			}
			return fmt.Errorf("%d validation findings", len(load.Violations))
		},
	}
}

func newBuildCmd(configPath *string) *cobra.Command {
	var outDir string
	var strict bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the rendered page and highlight stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Out
			}

			output := cli.NewOutput()
			osfs := adapterfs.NewOSFileSystem()
			renderer := markdown.NewRenderer(cfg.HighlightStyle)
			loader := usecase.NewLoadService(osfs, renderer)
			pages := usecase.NewPageService(renderer)
			exporter := usecase.NewExportService(loader, pages, renderer, osfs, output)

			result := exporter.Export(cmd.Context(), usecase.ExportInput{
				ContentPath: cfg.Content,
				OutDir:      outDir,
				Title:       cfg.Title,
				Colors:      colorSet(cfg),
				Strict:      strict,
			})
			return result.Error
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (defaults to the configured out dir)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail the build on validation findings")
	return cmd
}

func newServeCmd(configPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendered page, live-reloading in dev mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr
			}

			isDev := env.DetectMode() == core.ModeDev
			logger, err := newLogger(isDev)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			app, err := vitrine.New(
				vitrine.WithContent(cfg.Content),
				vitrine.WithTitle(cfg.Title),
				vitrine.WithColors(cfg.Colors...),
				vitrine.WithHighlightStyle(cfg.HighlightStyle),
				vitrine.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			if isDev {
				stop, err := app.Watch()
				if err != nil {
					logger.Warn("content watching disabled", zap.Error(err))
				} else {
					defer func() { _ = stop() }()
				}
			}

			api := chi.NewRouter()
			api.Use(requestLogger(logger))

			logger.Info("serving landing page",
				zap.String("addr", addr),
				zap.String("content", cfg.Content),
				zap.Bool("dev", isDev),
			)
			return http.ListenAndServe(addr, app.Wrap(api))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to the configured addr)")
	return cmd
}

func newLogger(isDev bool) (*zap.Logger, error) {
	if isDev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debug("request",
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
	}
}

func colorSet(cfg config.Config) core.ColorSet {
	if len(cfg.Colors) == 0 {
		return core.DefaultColors()
	}
	return core.NewColorSet(cfg.Colors...)
}
