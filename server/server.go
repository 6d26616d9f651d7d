package server

import (
	"github.com/cockroachdb/errors"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/cnosuke/mcp-shell-exec/config"
	"github.com/cnosuke/mcp-shell-exec/executor"
	"github.com/cnosuke/mcp-shell-exec/server/tools"
)

// Run - Execute the MCP server
func Run(cfg *config.Config, name string, version string) error {
	zap.S().Infow("starting MCP shell exec server")

	cmdExecutor, err := executor.NewCommandExecutor(cfg)
	if err != nil {
		zap.S().Errorw("failed to create command executor", "error", err)
		return errors.Wrap(err, "failed to create command executor")
	}

	mcpServer := mcpserver.NewMCPServer(name, version)

	// Register all tools
	zap.S().Debugw("registering tools")
	if err := tools.RegisterAllTools(mcpServer, cmdExecutor); err != nil {
		zap.S().Errorw("failed to register tools", "error", err)
		return errors.Wrap(err, "failed to register tools")
	}

	zap.S().Infow("serving on stdio",
		"default_working_dir", cmdExecutor.DefaultWorkingDir())
	if err := mcpserver.ServeStdio(mcpServer); err != nil {
		return errors.Wrap(err, "server terminated")
	}

	zap.S().Infow("server shut down")
	return nil
}
