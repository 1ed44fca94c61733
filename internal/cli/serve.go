package cli

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/AmirF00/GraphQL-Converter/pkg/errors"
	"github.com/AmirF00/GraphQL-Converter/pkg/observability"
	"github.com/AmirF00/GraphQL-Converter/pkg/pipeline"
)

// serveFlags holds the command-line flags for the serve command.
type serveFlags struct {
	file      string // introspection JSON input path
	addr      string // listen address
	maxFields int    // field rows shown per diagram node
	rankdir   string // diagram direction
	title     string // HTML page title
	config    string // TOML settings file
}

// serveCommand creates the serve command for previewing artifacts locally.
func (c *CLI) serveCommand() *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview a converted schema in the browser",
		Long: `Convert an introspection JSON document in memory and serve the results
on localhost.

Routes:
  /                the HTML page embedding the diagram
  /schema.svg      the diagram alone
  /schema.graphql  the emitted SDL text
  /graph.json      the serialized diagram graph

Nothing is written to disk and no outbound requests are made. Stop the
server with Ctrl+C.

Examples:
  gqlconv serve -f introspection.json
  gqlconv serve -f introspection.json --addr 127.0.0.1:9000 --rankdir LR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), &flags, cmd.Flags().Changed)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "introspection JSON input path")
	cmd.Flags().StringVar(&flags.addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().IntVar(&flags.maxFields, "max-fields", 0, "max field rows per diagram node (default 10)")
	cmd.Flags().StringVar(&flags.rankdir, "rankdir", "", "diagram direction: TB (default), LR, BT, RL")
	cmd.Flags().StringVar(&flags.title, "title", "", "HTML page title")
	cmd.Flags().StringVar(&flags.config, "config", "", "TOML settings file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// runServe converts once and serves the artifacts until the context ends.
func (c *CLI) runServe(ctx context.Context, flags *serveFlags, changed func(string) bool) error {
	opts := pipeline.Options{
		Source:    flags.file,
		Visual:    true,
		Formats:   []string{pipeline.FormatSVG, pipeline.FormatHTML, pipeline.FormatJSON},
		MaxFields: flags.maxFields,
		Rankdir:   flags.rankdir,
		Title:     flags.title,
		Logger:    c.Logger,
	}
	if err := applyConfig(flags.config, &opts, changed); err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Converting schema...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			return ctx.Err()
		}
		spinner.StopWithError("Conversion failed")
		return err
	}
	spinner.Stop()

	srv := &http.Server{
		Addr:              flags.addr,
		Handler:           previewRouter(c.Logger, result),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	printSuccess("Preview ready")
	fmt.Println("  " + StyleLink.Render("http://"+flags.addr+"/"))
	printDetail("Ctrl+C to stop")
	printNewline()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		c.Logger.Info("shutting down preview server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return errors.Wrap(errors.ErrCodeInternal, err, "preview server")
		}
		return nil
	}
}

// previewRouter builds the routes serving a conversion result from memory.
func previewRouter(logger *log.Logger, result *pipeline.Result) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", artifactHandler(result.Artifacts[pipeline.FormatHTML], "text/html; charset=utf-8"))
	r.Get("/schema.svg", artifactHandler(result.Artifacts[pipeline.FormatSVG], "image/svg+xml"))
	r.Get("/schema.graphql", artifactHandler([]byte(result.SDL), "text/plain; charset=utf-8"))
	r.Get("/graph.json", artifactHandler(result.Artifacts[pipeline.FormatJSON], "application/json"))

	return r
}

// artifactHandler serves a fixed in-memory artifact.
func artifactHandler(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(data) == 0 {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(data)
	}
}

// requestLogger logs each request with status, duration, and size, and
// forwards the events to the registered server hooks.
func requestLogger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

			defer func() {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration", time.Since(start),
					"bytes", ww.BytesWritten(),
				)
				observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path,
					ww.Status(), time.Since(start))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
