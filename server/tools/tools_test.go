package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/cnosuke/mcp-shell-exec/executor"
	"github.com/cnosuke/mcp-shell-exec/types"
)

// MockCommandExecutor - mock CommandExecutor
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) Execute(command string, options executor.Options) types.ExecutionResult {
	args := m.Called(command, options)
	return args.Get(0).(types.ExecutionResult)
}

func (m *MockCommandExecutor) DefaultWorkingDir() string {
	args := m.Called()
	return args.String(0)
}

func TestRegisterAllTools(t *testing.T) {
	zap.ReplaceGlobals(zaptest.NewLogger(t))

	mcpServer := server.NewMCPServer("test-server", "0.0.1")

	mockExecutor := new(MockCommandExecutor)
	mockExecutor.On("DefaultWorkingDir").Return("/tmp")

	err := RegisterAllTools(mcpServer, mockExecutor)
	assert.NoError(t, err)
}

// callExecuteTool drives a tools/call request through the registered
// server and returns the tool result.
func callExecuteTool(t *testing.T, mcpServer *server.MCPServer, arguments map[string]any) toolCallResult {
	t.Helper()

	request, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "tools/call",
		"params": map[string]any{
			"name":      "execute",
			"arguments": arguments,
		},
	})
	require.NoError(t, err)

	response := mcpServer.HandleMessage(context.Background(), request)
	require.NotNil(t, response)

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	var parsed struct {
		Result toolCallResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return parsed.Result
}

type toolCallResult struct {
	IsError bool `json:"isError"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func registeredServer(t *testing.T, mockExecutor *MockCommandExecutor) *server.MCPServer {
	t.Helper()
	zap.ReplaceGlobals(zaptest.NewLogger(t))

	mcpServer := server.NewMCPServer("test-server", "0.0.1")
	mockExecutor.On("DefaultWorkingDir").Return("/tmp")
	require.NoError(t, RegisterAllTools(mcpServer, mockExecutor))
	return mcpServer
}

func TestExecuteHandler_ReturnsExecutorResult(t *testing.T) {
	mockExecutor := new(MockCommandExecutor)
	mockExecutor.On("Execute", "echo hello", mock.Anything).Return(types.ExecutionResult{
		Success:  true,
		Message:  "success hello",
		Stdout:   "hello\n",
		ExitCode: 0,
	})
	mcpServer := registeredServer(t, mockExecutor)

	result := callExecuteTool(t, mcpServer, map[string]any{"command": "echo hello"})

	require.Len(t, result.Content, 1)
	var parsed types.ExecutionResult
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &parsed))
	assert.True(t, parsed.Success)
	assert.Equal(t, "success hello", parsed.Message)
	assert.Equal(t, 0, parsed.ExitCode)
}

func TestExecuteHandler_EmptyCommandIsToolError(t *testing.T) {
	mockExecutor := new(MockCommandExecutor)
	mcpServer := registeredServer(t, mockExecutor)

	result := callExecuteTool(t, mcpServer, map[string]any{"command": ""})

	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	assert.Contains(t, result.Content[0].Text, "empty command provided")
	mockExecutor.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestExecuteHandler_PanicYieldsFailureResult(t *testing.T) {
	mockExecutor := new(MockCommandExecutor)
	mockExecutor.On("Execute", "boom", mock.Anything).Panic("induced executor failure")
	mcpServer := registeredServer(t, mockExecutor)

	result := callExecuteTool(t, mcpServer, map[string]any{"command": "boom"})

	require.Len(t, result.Content, 1)
	var parsed types.ExecutionResult
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), &parsed))
	assert.False(t, parsed.Success)
	assert.Equal(t, -1, parsed.ExitCode)
	assert.Contains(t, parsed.Message, "failure")
}

func TestResultText_MarshalsCanonicalShape(t *testing.T) {
	zap.ReplaceGlobals(zaptest.NewLogger(t))

	res := resultText(types.ExecutionResult{
		Success:  true,
		Message:  "success hello",
		Stdout:   "hello\n",
		ExitCode: 0,
	})

	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, tc.Text, `"success":true`)
	assert.Contains(t, tc.Text, `"returncode":0`)
}

func TestStringMap(t *testing.T) {
	assert.Nil(t, stringMap(nil))
	assert.Nil(t, stringMap("not a map"))

	got := stringMap(map[string]any{"A": "1", "B": 2, "C": "3"})
	assert.Equal(t, map[string]string{"A": "1", "C": "3"}, got)
}
