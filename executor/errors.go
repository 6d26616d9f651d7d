package executor

import "github.com/cockroachdb/errors"

// Failure classes the pipeline reports. All are terminal for the request
// and end up in the result record, never as propagated errors.
var (
	// ErrInvalidWorkingDir - the working directory does not exist or is
	// not a directory; detected before any process is spawned.
	ErrInvalidWorkingDir = errors.New("invalid working directory")

	// ErrInterpreterNotFound - the command interpreter is missing from
	// the search path.
	ErrInterpreterNotFound = errors.New("command interpreter not found")

	// ErrSpawn - process creation failed for OS reasons (permissions,
	// resource limits).
	ErrSpawn = errors.New("failed to spawn command interpreter")
)
