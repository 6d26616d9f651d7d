//go:build !windows

package executor

// interpreterName appears in interpreter-not-found hints.
const interpreterName = "sh"

// fallbackWorkingDir is used when neither configuration nor HOME yields a
// usable default working directory.
const fallbackWorkingDir = "/tmp"

// interpreterArgv hands the whole command line to the shell in
// run-and-exit mode. The shell does all parsing; nothing is tokenized
// here, so pipes, redirection and built-ins work.
func interpreterArgv(command string) []string {
	return []string{"sh", "-c", command}
}
