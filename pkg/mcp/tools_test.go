package mcp

import (
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
)

func TestToolDefinitions(t *testing.T) {
	t.Parallel()

	tools := ToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("ToolDefinitions() returned empty slice")
	}

	expectedTools := []string{
		"nexicon_login",
		"nexicon_signup",
		"nexicon_status",
		"nexicon_logout",
		"nexicon_feed",
		"nexicon_user",
		"nexicon_search",
		"nexicon_trending",
		"nexicon_suggested",
		"nexicon_stories",
		"nexicon_notifications",
		"nexicon_post",
		"nexicon_comment",
		"nexicon_reply",
		"nexicon_follow",
		"nexicon_unfollow",
		"nexicon_like",
		"nexicon_react",
		"nexicon_save",
		"nexicon_view_story",
		"nexicon_chats",
		"nexicon_chat",
		"nexicon_send",
	}

	if len(tools) != len(expectedTools) {
		t.Errorf("ToolDefinitions() returned %d tools, want %d", len(tools), len(expectedTools))
	}

	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("missing expected tool: %s", name)
		}
	}
}

func TestToolDefinitions_ToolProperties(t *testing.T) {
	t.Parallel()

	tools := ToolDefinitions()
	toolMap := make(map[string]mcplib.Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, tool := range tools {
		if tool.Description == "" {
			t.Errorf("tool %s has no description", tool.Name)
		}
	}

	// Spot-check required arguments.
	requiredArgs := map[string][]string{
		"nexicon_login":  {"handle", "password"},
		"nexicon_signup": {"name", "handle", "password"},
		"nexicon_post":   {"content"},
		"nexicon_react":  {"post_id", "kind"},
		"nexicon_send":   {"chat_id", "content"},
	}

	for name, wantRequired := range requiredArgs {
		tool, ok := toolMap[name]
		if !ok {
			t.Errorf("tool %s not found", name)
			continue
		}
		got := make(map[string]bool)
		for _, r := range tool.InputSchema.Required {
			got[r] = true
		}
		for _, want := range wantRequired {
			if !got[want] {
				t.Errorf("tool %s missing required argument %s", name, want)
			}
		}
	}
}
