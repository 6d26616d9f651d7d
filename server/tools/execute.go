package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/cnosuke/mcp-shell-exec/executor"
	"github.com/cnosuke/mcp-shell-exec/types"
)

// CommandExecutor defines the interface for command execution
type CommandExecutor interface {
	Execute(command string, options executor.Options) types.ExecutionResult
	DefaultWorkingDir() string
}

// RegisterExecuteTool - Register the execute tool
func RegisterExecuteTool(mcpServer *server.MCPServer, cmdExecutor CommandExecutor) error {
	zap.S().Debugw("registering execute tool")

	description := fmt.Sprint(
		"Execute a shell command through the native command interpreter and return a structured result. ",
		"The command string is handed to the interpreter verbatim, so pipes, redirection and shell built-ins work. ",
		"Default working directory: ",
		cmdExecutor.DefaultWorkingDir())

	executeTool := mcp.NewTool("execute",
		mcp.WithDescription(description),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The command line to execute"),
		),
		mcp.WithString("cwd",
			mcp.Description("Optional working directory for this command only"),
		),
		mcp.WithObject("env",
			mcp.Description("Optional environment variables for this command only"),
		),
	)

	mcpServer.AddTool(executeTool, func(ctx context.Context, request mcp.CallToolRequest) (res *mcp.CallToolResult, retErr error) {
		// The pipeline never surfaces a protocol fault: anything
		// unexpected becomes a failure-shaped result.
		defer func() {
			if r := recover(); r != nil {
				zap.S().Errorw("unexpected error while executing command", "panic", r)
				res = resultText(types.ExecutionResult{
					Success:  false,
					Message:  "failure unexpected internal error",
					ExitCode: -1,
				})
				retErr = nil
			}
		}()

		command := request.GetString("command", "")
		cwd := request.GetString("cwd", "")
		env := stringMap(request.GetArguments()["env"])

		zap.S().Debugw("executing execute tool",
			"command", command,
			"cwd", cwd)

		if command == "" {
			zap.S().Warnw("empty command provided")
			return mcp.NewToolResultError("empty command provided"), nil
		}

		result := cmdExecutor.Execute(command, executor.Options{
			WorkingDir: cwd,
			Env:        env,
		})

		return resultText(result), nil
	})

	return nil
}

// stringMap extracts the string-valued entries of a JSON object argument.
func stringMap(v any) map[string]string {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	m := make(map[string]string, len(raw))
	for k, val := range raw {
		if s, ok := val.(string); ok {
			m[k] = s
		}
	}
	return m
}

// resultText marshals the canonical result for the caller. Marshaling a
// flat struct of strings cannot realistically fail; the fallback keeps
// the handler total anyway.
func resultText(result types.ExecutionResult) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		zap.S().Errorw("failed to marshal result to JSON", "error", err)
		return mcp.NewToolResultText(result.StatusLine())
	}
	return mcp.NewToolResultText(string(jsonBytes))
}
