package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/caseflow/caseflow/internal/config"
	"github.com/caseflow/caseflow/internal/engine"
	"github.com/caseflow/caseflow/internal/events"
	"github.com/caseflow/caseflow/internal/handler"
	"github.com/caseflow/caseflow/internal/logger"
	"github.com/caseflow/caseflow/internal/tui"
)

type runOptions struct {
	SuitePath      string
	Mode           string
	Parallel       int
	Watch          bool
	Verbose        bool
	NonInteractive bool
}

var runCmdRunner = runSuite

func newRunCmd(root *rootFlags, registry *handler.Registry) *cobra.Command {
	opts := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a suite of test cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Verbose = root.verbose
			opts.NonInteractive = !term.IsTerminal(int(os.Stdout.Fd()))
			return runCmdRunner(opts, registry)
		},
	}

	cmd.Flags().StringVarP(&opts.SuitePath, "suite", "s", "", "Path to suite file")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "Execution mode (sequential or parallel)")
	cmd.Flags().IntVarP(&opts.Parallel, "parallel", "p", 0, "Maximum cases in flight in parallel mode")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Watch the run live in the terminal")
	cmd.MarkFlagRequired("suite") //nolint:errcheck

	return cmd
}

func runSuite(opts runOptions, registry *handler.Registry) error {
	suite, err := config.LoadSuite(opts.SuitePath)
	if err != nil {
		return err
	}

	cfg := suite.Settings
	if opts.Mode != "" {
		cfg.Mode = config.Mode(opts.Mode)
	}
	if opts.Parallel > 0 {
		cfg.MaxParallelTests = opts.Parallel
	}

	level := "info"
	if opts.Verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	bus := events.NewBus(0)
	defer bus.Close()

	orchestrator, err := engine.New(engine.Config{
		Registry: registry,
		Bus:      bus,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watch := opts.Watch && !opts.NonInteractive

	var program *tea.Program
	var programErr error
	done := make(chan struct{})
	if watch {
		sub := bus.Subscribe("")
		model := tui.NewModel(suite.Name, sub)
		program = tea.NewProgram(model)
		go func() {
			defer close(done)
			defer sub.Unsubscribe()
			_, programErr = program.Run()
		}()
	}

	run, execErr := orchestrator.ExecuteSuite(ctx, suite.TestCases(), cfg)

	if watch {
		<-done
		if programErr != nil {
			return programErr
		}
	} else {
		printRunSummary(os.Stdout, suite.Name, run)
	}

	if execErr != nil {
		return execErr
	}
	if run.Status() != engine.RunCompleted {
		return fmt.Errorf("run %s finished with status %s", run.ID, run.Status())
	}
	return nil
}

func printRunSummary(out *os.File, suiteName string, run *engine.RunState) {
	counts := run.Counts()
	fmt.Fprintf(out, "%s: %s\n", suiteName, run.Status())
	fmt.Fprintf(out, "  %d passed, %d failed, %d skipped of %d (%s)\n",
		counts.Passed, counts.Failed, counts.Skipped, counts.Total,
		run.Duration().Truncate(time.Millisecond))
	for _, res := range run.Results() {
		if res.Failed() {
			fmt.Fprintf(out, "  FAIL %s: %s\n", res.CaseName, res.ErrorMessage)
		}
	}
	if msg := run.ErrorMessage(); msg != "" {
		fmt.Fprintf(out, "  error: %s\n", msg)
	}
}
