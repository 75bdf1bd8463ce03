package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"traveler-service/internal/domain"
	"traveler-service/internal/ports"
	"traveler-service/internal/services"
)

// Dependencies wires runtime services.
type Dependencies struct {
	Resolver *services.Resolver
	Version  string
}

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// usageError marks input the user can fix; it exits with code 2.
func usageError(err error) error {
	return &exitError{code: 2, err: err}
}

// Execute runs the CLI with injected dependencies and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout io.Writer, stderr io.Writer) int {
	cmd := NewRootCommand(deps)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	code := 1
	var controlled *exitError
	switch {
	case errors.As(err, &controlled):
		code = controlled.code
	case errors.Is(err, domain.ErrInvalidCoordinate),
		errors.Is(err, services.ErrInvalidBearing),
		errors.Is(err, services.ErrInvalidDistance),
		errors.Is(err, ports.ErrPlaceNotFound):
		code = 2
	}

	if msg := err.Error(); msg != "" {
		_, _ = fmt.Fprintln(stderr, "Error: "+msg)
	}
	return code
}
