package executor

import (
	"github.com/cnosuke/mcp-shell-exec/config"
	"github.com/cnosuke/mcp-shell-exec/types"
)

// CommandExecutor is the main interface for command execution
type CommandExecutor interface {
	// Execute runs the command through the native command interpreter.
	// It always returns a well-formed result: failures are reported
	// through the result's Success flag and Message, never as an error.
	Execute(command string, options Options) types.ExecutionResult

	// DefaultWorkingDir returns the working directory used when a
	// request does not name one.
	DefaultWorkingDir() string
}

// Options are per-request options for command execution
type Options struct {
	// WorkingDir is the working directory for this request only
	WorkingDir string

	// Env are additional environment variables for this request
	Env map[string]string
}

// NewCommandExecutor creates a new instance of CommandExecutor
func NewCommandExecutor(cfg *config.Config) (CommandExecutor, error) {
	return newCommandExecutor(cfg)
}
