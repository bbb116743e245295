package ports

import "context"

// Command is an external process invocation.
type Command struct {
	// Args holds the executable followed by its arguments.
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// CommandRunner runs external processes.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes the command and waits for it.
	// It returns domain.ErrCommandFailed on a non-zero exit and domain.ErrCommandTimeout when the
	// configured time budget is exceeded.
	Run(ctx context.Context, cmd Command) error
}
