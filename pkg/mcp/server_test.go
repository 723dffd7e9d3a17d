package mcp

import (
	"testing"

	"github.com/nexicon/nexicon-cli/pkg/auth"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st := store.New(store.Seed(), nil)
	return NewServer(st, auth.New(st, t.TempDir()))
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
	if server.mcpServer == nil {
		t.Error("server.mcpServer is nil")
	}
	if server.handlers == nil {
		t.Error("server.handlers is nil")
	}
}

func TestServer_GetMCPServer(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	if server.GetMCPServer() == nil {
		t.Error("GetMCPServer() returned nil")
	}
	if server.GetMCPServer() != server.mcpServer {
		t.Error("GetMCPServer() returned a different instance")
	}
}

func TestServer_GetHandlers(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	if server.GetHandlers() == nil {
		t.Error("GetHandlers() returned nil")
	}
	if server.GetHandlers().store == nil {
		t.Error("handlers missing their store")
	}
}
