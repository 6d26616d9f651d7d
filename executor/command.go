package executor

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cnosuke/mcp-shell-exec/config"
	"github.com/cnosuke/mcp-shell-exec/decoder"
	"github.com/cnosuke/mcp-shell-exec/types"
)

// preflightExitCode marks results for requests that never ran a child
// process (invalid working directory, spawn failure).
const preflightExitCode = -1

const (
	successMarker = "success"
	failureMarker = "failure"
)

// rawCompletion is the undecoded outcome of one child process.
type rawCompletion struct {
	stdout   []byte
	stderr   []byte
	exitCode int
}

// spawnFunc runs the interpreter argv and blocks until the child exits.
// Swappable in tests so preflight behavior can be verified without
// spawning real processes.
type spawnFunc func(argv []string, dir string, env []string) (rawCompletion, error)

// commandExecutor implements the CommandExecutor interface
type commandExecutor struct {
	defaultWorkingDir string
	encodings         *decoder.Set
	environment       map[string]string
	spawn             spawnFunc
}

// newCommandExecutor creates a new instance of commandExecutor
func newCommandExecutor(cfg *config.Config) (*commandExecutor, error) {
	workingDir := cfg.CommandExec.DefaultWorkingDir
	if workingDir == "" {
		// Use the HOME environment variable or a default value
		if home := os.Getenv("HOME"); home != "" {
			workingDir = home
		} else {
			workingDir = fallbackWorkingDir
		}
	}

	// Advisory only: each request still validates its own resolved
	// working directory.
	if stat, err := os.Stat(workingDir); err != nil || !stat.IsDir() {
		zap.S().Warnw("default working directory does not exist, falling back",
			"original_dir", workingDir,
			"fallback_dir", fallbackWorkingDir)
		workingDir = fallbackWorkingDir
	}

	zap.S().Infow("creating new command executor",
		"default_working_dir", workingDir,
		"console_encoding", cfg.CommandExec.ConsoleEncoding)

	return &commandExecutor{
		defaultWorkingDir: workingDir,
		encodings:         decoder.NewSet(cfg.CommandExec.ConsoleEncoding, cfg.CommandExec.NetworkCommands),
		environment:       cfg.CommandExec.Environment,
		spawn:             runInterpreter,
	}, nil
}

// Execute runs the command through the native interpreter and classifies
// the outcome into a result record. Every branch, including all failure
// branches, produces a well-formed result.
func (e *commandExecutor) Execute(command string, options Options) types.ExecutionResult {
	runID := uuid.New().String()

	if strings.TrimSpace(command) == "" {
		zap.S().Warnw("empty command", "run_id", runID)
		return errorResult(errors.New("empty command"))
	}

	workingDir := options.WorkingDir
	if workingDir == "" {
		workingDir = e.defaultWorkingDir
	}

	zap.S().Infow("executing command",
		"run_id", runID,
		"command", command,
		"working_dir", workingDir)

	// Preflight: no process is spawned for an unusable directory.
	if stat, err := os.Stat(workingDir); err != nil || !stat.IsDir() {
		zap.S().Warnw("invalid working directory",
			"run_id", runID,
			"working_dir", workingDir)
		return errorResult(errors.Wrapf(ErrInvalidWorkingDir, "%s", workingDir))
	}

	raw, err := e.spawn(interpreterArgv(command), workingDir, e.buildEnvironment(options.Env))
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			zap.S().Errorw("command interpreter not found",
				"run_id", runID,
				"interpreter", interpreterName)
			return errorResult(errors.Wrapf(ErrInterpreterNotFound,
				"%q is not on PATH, check the PATH environment variable", interpreterName))
		}
		zap.S().Errorw("failed to spawn command interpreter",
			"run_id", runID,
			"error", err)
		return errorResult(errors.Mark(err, ErrSpawn))
	}

	result := e.assemble(command, raw)

	zap.S().Infow("command finished",
		"run_id", runID,
		"status", result.StatusLine())
	zap.S().Debugw("command output",
		"run_id", runID,
		"exit_code", result.ExitCode,
		"stdout", result.Stdout,
		"stderr", result.Stderr)

	return result
}

// DefaultWorkingDir returns the working directory used when a request
// does not name one.
func (e *commandExecutor) DefaultWorkingDir() string {
	return e.defaultWorkingDir
}

// assemble decodes the raw byte streams and builds the result record.
// stdout ordering depends on the command shape; stderr is always decoded
// console-encoding-first.
func (e *commandExecutor) assemble(command string, raw rawCompletion) types.ExecutionResult {
	stdout := decoder.Decode(raw.stdout, e.encodings.ForStdout(command))
	stderr := decoder.Decode(raw.stderr, e.encodings.ForStderr())

	result := types.ExecutionResult{
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: raw.exitCode,
	}

	if raw.exitCode == 0 {
		result.Success = true
		result.Message = buildMessage(successMarker, stdout)
		return result
	}

	// The failure message surfaces stderr; stdout only fills in when the
	// child wrote its diagnostics there.
	detail := stderr
	if detail == "" {
		detail = stdout
	}
	result.Message = buildMessage(failureMarker, detail)
	return result
}

// buildMessage joins the status marker with the normalized single-line
// form of the detail text.
func buildMessage(marker, detail string) string {
	if normalized := decoder.NormalizeMessage(detail); normalized != "" {
		return marker + " " + normalized
	}
	return marker
}

// errorResult renders a pre-flight or spawn failure. No child process
// ran, so there is no output to decode and the exit code is synthetic.
func errorResult(err error) types.ExecutionResult {
	return types.ExecutionResult{
		Success:  false,
		Message:  buildMessage(failureMarker, err.Error()),
		Stderr:   err.Error(),
		ExitCode: preflightExitCode,
	}
}

// buildEnvironment merges the process environment, the configured
// environment map and the per-request overrides, in that order.
func (e *commandExecutor) buildEnvironment(additionalEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			envMap[parts[0]] = parts[1]
		}
	}
	for k, v := range e.environment {
		envMap[k] = v
	}
	for k, v := range additionalEnv {
		envMap[k] = v
	}

	env := make([]string, 0, len(envMap))
	for k, v := range envMap {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	return env
}

// runInterpreter spawns the interpreter and blocks until the child exits.
// cmd.Run releases process handles and pipes on every path. There is no
// timeout: a hung child hangs the request.
func runInterpreter(argv []string, dir string, env []string) (rawCompletion, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	raw := rawCompletion{
		stdout: stdout.Bytes(),
		stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A non-zero exit is data, not an error.
			raw.exitCode = exitErr.ExitCode()
			return raw, nil
		}
		return rawCompletion{}, err
	}

	return raw, nil
}
