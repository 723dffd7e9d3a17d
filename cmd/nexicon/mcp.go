package main

import (
	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/mcp"
)

func init() {
	rootCmd.AddCommand(mcpCmd)
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run MCP (Model Context Protocol) server",
	Long: `Run an MCP server that exposes Nexicon functionality to AI assistants.

The server communicates over stdio using the Model Context Protocol.
It shares the same storage slot as the CLI, so changes made by an
assistant show up in your feed and vice versa.

Available tools:
  Session:
    nexicon_login          - Log in by handle and password
    nexicon_signup         - Create an account
    nexicon_status         - Check session status
    nexicon_logout         - End the session

  Reading:
    nexicon_feed           - Get posts from the feed
    nexicon_user           - Get a user profile and posts
    nexicon_search         - Search posts or users
    nexicon_trending       - Trending hashtags
    nexicon_suggested      - Users to follow
    nexicon_stories        - List stories
    nexicon_notifications  - Activity feed

  Writing:
    nexicon_post           - Create a new post
    nexicon_comment        - Comment on a post
    nexicon_reply          - Reply to a comment

  Social:
    nexicon_follow         - Follow a user
    nexicon_unfollow       - Unfollow a user
    nexicon_like           - Toggle a like
    nexicon_react          - Typed reaction
    nexicon_save           - Toggle a bookmark
    nexicon_view_story     - View a story

  Messaging:
    nexicon_chats          - List conversations
    nexicon_chat           - Open a conversation
    nexicon_send           - Send a message

Environment variables:
  NEXICON_CONFIG_DIR     - Custom data directory (default: ~/.nexicon)

Example MCP configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "nexicon": {
        "command": "nexicon",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcp.NewServer(getStore(), getAuth())
		return srv.Serve()
	},
}
