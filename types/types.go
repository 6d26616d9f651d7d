package types

import "fmt"

// ExecutionResult - Structure for command execution results
type ExecutionResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"returncode"`
}

// StatusLine renders the reduced message/log form used for the operational
// log. Both values are quoted so embedded quotes and newlines survive.
func (r ExecutionResult) StatusLine() string {
	log := fmt.Sprintf("exit_code=%d stdout=%s stderr=%s", r.ExitCode, r.Stdout, r.Stderr)
	return fmt.Sprintf("message=%q log=%q", r.Message, log)
}
