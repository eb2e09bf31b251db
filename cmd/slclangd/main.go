// Command slclangd launches the grep-backed LSP server on stdin/stdout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/slclangd/internal/config"
	"github.com/standardbeagle/slclangd/internal/handlers"
	"github.com/standardbeagle/slclangd/internal/session"
	"github.com/standardbeagle/slclangd/internal/trace"
)

const version = "0.1.0"

func main() {
	exitCode := 0

	app := &cli.App{
		Name:    "slclangd",
		Usage:   "tiny LSP server for C/C++, backed entirely by grep",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "files",
				Usage: "restrict search to this explicit list of files (repeatable)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "write server logs/trace to this file (falls back to $CLANGD_TRACE as a path)",
			},
		},
		Action: func(c *cli.Context) error {
			exitCode = run(c)
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func run(c *cli.Context) int {
	files := normalizeFiles(c.StringSlice("files"))

	logFile := c.String("log-file")
	if logFile == "" {
		if p := os.Getenv("CLANGD_TRACE"); p != "" {
			logFile = p
		}
	}

	logSink := os.Stderr
	if logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			defer f.Close()
			tr := trace.NewFromEnv(f)
			return serve(files, tr)
		}
	}
	return serve(files, trace.NewFromEnv(logSink))
}

func serve(files []string, tr *trace.Logger) int {
	// Initialize (handlers.Context.Initialize) reloads .slclangd.toml once
	// the workspace root is known; Defaults() covers file-list mode and the
	// window before initialize arrives.
	ctx := handlers.NewContext(config.Defaults(), files)
	engine := session.New(os.Stdin, os.Stdout, ctx, tr)
	return engine.Run()
}

// normalizeFiles makes every --files entry absolute and lexically clean,
// matching the original CLI's normalizePath (§4/§9 CLI supplement).
func normalizeFiles(files []string) []string {
	if len(files) == 0 {
		return nil
	}
	out := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			out = append(out, f)
			continue
		}
		out = append(out, filepath.Clean(abs))
	}
	return out
}
