package main

import (
	"fmt"
	"os"

	"github.com/caseflow/caseflow/internal/handler"
	actionhandler "github.com/caseflow/caseflow/internal/handlers/action"
	cleanuphandler "github.com/caseflow/caseflow/internal/handlers/cleanup"
	navigationhandler "github.com/caseflow/caseflow/internal/handlers/navigation"
	setuphandler "github.com/caseflow/caseflow/internal/handlers/setup"
	verificationhandler "github.com/caseflow/caseflow/internal/handlers/verification"
)

func main() {
	registry := handler.NewRegistry()
	if err := registerBuiltins(registry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to register handlers: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(registry).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registerBuiltins(registry *handler.Registry) error {
	builtins := []handler.Handler{
		actionhandler.New(),
		verificationhandler.New(),
		setuphandler.New(),
		cleanuphandler.New(),
		navigationhandler.New(),
	}
	for _, h := range builtins {
		if err := registry.Register(h); err != nil {
			return err
		}
	}
	return nil
}
