package tools

import (
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAllTools - Register all tools with the server
func RegisterAllTools(mcpServer *server.MCPServer, cmdExecutor CommandExecutor) error {
	// Register execute tool
	if err := RegisterExecuteTool(mcpServer, cmdExecutor); err != nil {
		return err
	}

	return nil
}
