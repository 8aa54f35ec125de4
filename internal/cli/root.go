// Package cli provides the pagesim command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/bietkhonhungvandi212/pagesim/internal/config"
	"github.com/bietkhonhungvandi212/pagesim/internal/log"
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	"github.com/bietkhonhungvandi212/pagesim/internal/sim"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/buffer"
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/file"
	"github.com/bietkhonhungvandi212/pagesim/internal/trace"
)

const usage = "pagesim <algorithm_code> <memory_size> <access_file>"

// App holds the collaborators of one command invocation.
type App struct {
	Console *log.Console
	Filer   file.Filer
	Stdout  io.Writer
	Stderr  io.Writer
	EnvFile string
}

// NewApp wires the default console and file manager.
func NewApp() *App {
	return &App{
		Console: log.NewConsole(),
		Filer:   file.NewFileManager(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

// NewRootCmd builds the root command.
func (a *App) NewRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()
	var noColor bool

	cmd := &cobra.Command{
		Use:   usage,
		Short: "Simulate FIFO, Second-Chance and LRU page replacement.",
		Long: `pagesim replays a sequence of page accesses against a fixed number of memory ` +
			`frames and reports, for every access, which pages are resident. ` +
			`Algorithm codes: 0 = FIFO, 1 = Second-Chance, 2 = LRU.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				a.Console.Error("Insufficient arguments or wrong usage.")
				fmt.Fprintln(a.Stdout, usage)
				return fmt.Errorf("expected 3 arguments, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Console.Color = a.Console.Color && !noColor
			flags := cmd.Flags()

			env := *cfg
			if err := env.LoadEnv(a.EnvFile); err != nil {
				a.Console.Warning("%v", err)
			}
			// flags given on the command line win over the environment
			if !flags.Changed("log-level") {
				cfg.LogLevel = env.LogLevel
			}
			if !flags.Changed("trace-db") {
				cfg.TraceDB = env.TraceDB
			}
			if !flags.Changed("quiet") {
				cfg.Quiet = env.Quiet
			}
			cfg.OutputDir = env.OutputDir

			return a.run(cmd.Context(), cfg, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Output, "output", "o", "", "report file (default <input>.<algorithm><ext> next to the input)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: DEBUG, INFO, WARN, ERROR")
	flags.StringVar(&cfg.TraceDB, "trace-db", "", "write every step to this SQLite database")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "do not print the report to stdout")
	flags.BoolVar(&noColor, "no-color", false, "disable ANSI colors")

	return cmd
}

func (a *App) run(ctx context.Context, cfg *config.Config, args []string) error {
	if runtime.GOOS == "windows" && a.Console.Color {
		a.Console.Warning("ANSI color may not work on Windows Command Prompt. " +
			"You may see meta-escaping characters instead of color output.")
	}

	policy, err := buffer.ParsePolicy(args[0])
	if err != nil {
		a.Console.Error("Invalid algorithm code %q. Please use 0, 1, or 2.", args[0])
		return err
	}
	frames, err := config.ParseFrames(args[1])
	if err != nil {
		a.Console.Error("Invalid memory size %q. Please use a positive integer.", args[1])
		return err
	}
	cfg.Policy, cfg.Frames, cfg.Input = policy, frames, args[2]
	if err := cfg.Validate(); err != nil {
		a.Console.Error("%v", err)
		return err
	}

	logger := log.NewLogger(a.Stderr, cfg.LogLevel)

	accesses, err := a.Filer.ReadAccesses(cfg.Input)
	if err != nil {
		a.Console.Error("%v", err)
		return err
	}

	hooks := []sim.Hook{sim.NewStepLogger(logger)}
	if cfg.TraceDB != "" {
		tracer := trace.NewSQLiteTracer(cfg.TraceDB)
		if err := tracer.Init(); err != nil {
			a.Console.Error("%v", err)
			return err
		}
		defer func() {
			if err := tracer.Close(); err != nil {
				logger.Warn("trace not fully written", "path", tracer.Path(), "error", err)
			}
		}()
		hooks = append(hooks, tracer)
	}

	result, err := sim.Run(ctx, sim.Params{
		Capacity: cfg.Frames,
		Policy:   cfg.Policy,
		Logger:   logger,
		Hooks:    hooks,
	}, accesses)
	if err != nil {
		a.Console.Error("%v", err)
		return err
	}

	output := report.Render(result)
	if !cfg.Quiet {
		fmt.Fprintln(a.Stdout, output)
	}

	outPath := a.outputPath(cfg)
	if err := a.Filer.WriteReport(outPath, output); err != nil {
		a.Console.Error("%v", err)
		return err
	}
	logger.Info("report written",
		slog.String("run", result.RunID),
		slog.String("policy", policy.Title()),
		slog.Int("faults", result.Faults()),
		slog.Int("accesses", result.Accesses()),
		slog.String("path", outPath))
	return nil
}

func (a *App) outputPath(cfg *config.Config) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	input := cfg.Input
	if abs, err := filepath.Abs(input); err == nil {
		input = abs
	}
	out := file.OutputPath(input, cfg.Policy.String())
	if cfg.OutputDir != "" {
		out = filepath.Join(cfg.OutputDir, filepath.Base(out))
	}
	return out
}

// Execute runs the root command and exits the process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	if err := NewApp().NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		atexit.Exit(1)
	}
	stop()
	atexit.Exit(0)
}
