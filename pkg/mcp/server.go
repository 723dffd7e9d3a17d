package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/nexicon/nexicon-cli/pkg/auth"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

const (
	// ServerName is the name of the MCP server.
	ServerName = "nexicon-mcp"
	// ServerVersion is the version of the MCP server.
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with Nexicon-specific functionality.
type Server struct {
	mcpServer *server.MCPServer
	handlers  *Handlers
}

// NewServer creates a new Nexicon MCP server around an injected store.
func NewServer(st *store.Store, authMgr *auth.Manager) *Server {
	handlers := NewHandlers(st, authMgr)

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcpServer: mcpServer,
		handlers:  handlers,
	}

	s.registerTools()

	return s
}

// registerTools registers all Nexicon tools with the MCP server.
func (s *Server) registerTools() {
	tools := ToolDefinitions()

	for _, tool := range tools {
		switch tool.Name {
		// Session
		case "nexicon_login":
			s.mcpServer.AddTool(tool, s.handlers.HandleLogin)
		case "nexicon_signup":
			s.mcpServer.AddTool(tool, s.handlers.HandleSignup)
		case "nexicon_status":
			s.mcpServer.AddTool(tool, s.handlers.HandleStatus)
		case "nexicon_logout":
			s.mcpServer.AddTool(tool, s.handlers.HandleLogout)

		// Reading
		case "nexicon_feed":
			s.mcpServer.AddTool(tool, s.handlers.HandleFeed)
		case "nexicon_user":
			s.mcpServer.AddTool(tool, s.handlers.HandleUser)
		case "nexicon_search":
			s.mcpServer.AddTool(tool, s.handlers.HandleSearch)
		case "nexicon_trending":
			s.mcpServer.AddTool(tool, s.handlers.HandleTrending)
		case "nexicon_suggested":
			s.mcpServer.AddTool(tool, s.handlers.HandleSuggested)
		case "nexicon_stories":
			s.mcpServer.AddTool(tool, s.handlers.HandleStories)
		case "nexicon_notifications":
			s.mcpServer.AddTool(tool, s.handlers.HandleNotifications)

		// Writing
		case "nexicon_post":
			s.mcpServer.AddTool(tool, s.handlers.HandlePost)
		case "nexicon_comment":
			s.mcpServer.AddTool(tool, s.handlers.HandleComment)
		case "nexicon_reply":
			s.mcpServer.AddTool(tool, s.handlers.HandleReply)

		// Social
		case "nexicon_follow":
			s.mcpServer.AddTool(tool, s.handlers.HandleFollow)
		case "nexicon_unfollow":
			s.mcpServer.AddTool(tool, s.handlers.HandleUnfollow)
		case "nexicon_like":
			s.mcpServer.AddTool(tool, s.handlers.HandleLike)
		case "nexicon_react":
			s.mcpServer.AddTool(tool, s.handlers.HandleReact)
		case "nexicon_save":
			s.mcpServer.AddTool(tool, s.handlers.HandleSave)
		case "nexicon_view_story":
			s.mcpServer.AddTool(tool, s.handlers.HandleViewStory)

		// Messaging
		case "nexicon_chats":
			s.mcpServer.AddTool(tool, s.handlers.HandleChats)
		case "nexicon_chat":
			s.mcpServer.AddTool(tool, s.handlers.HandleChat)
		case "nexicon_send":
			s.mcpServer.AddTool(tool, s.handlers.HandleSend)
		}
	}
}

// Serve starts the MCP server on stdio.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeContext starts the MCP server on stdio with a context.
func (s *Server) ServeContext(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// GetMCPServer returns the underlying MCP server for testing.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// GetHandlers returns the tool handlers for testing.
func (s *Server) GetHandlers() *Handlers {
	return s.handlers
}
