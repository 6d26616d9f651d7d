//go:build windows

package executor

// interpreterName appears in interpreter-not-found hints.
const interpreterName = "cmd"

// fallbackWorkingDir is used when neither configuration nor HOME yields a
// usable default working directory.
const fallbackWorkingDir = `C:\`

// interpreterArgv hands the whole command line to cmd.exe in run-and-exit
// mode (/C). cmd does all parsing; nothing is tokenized here.
func interpreterArgv(command string) []string {
	return []string{"cmd", "/C", command}
}
