package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolDefinitions returns all tool definitions for the Nexicon MCP server.
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		// Session tools
		toolLogin(),
		toolSignup(),
		toolStatus(),
		toolLogout(),

		// Reading tools
		toolFeed(),
		toolUser(),
		toolSearch(),
		toolTrending(),
		toolSuggested(),
		toolStories(),
		toolNotifications(),

		// Writing tools
		toolPost(),
		toolComment(),
		toolReply(),

		// Social tools
		toolFollow(),
		toolUnfollow(),
		toolLike(),
		toolReact(),
		toolSave(),
		toolViewStory(),

		// Messaging tools
		toolChats(),
		toolChat(),
		toolSend(),
	}
}

// === Session Tools ===

func toolLogin() mcp.Tool {
	return mcp.NewTool("nexicon_login",
		mcp.WithDescription("Log in to Nexicon. Required before posting, commenting, following, or messaging."),
		mcp.WithString("handle",
			mcp.Description("Your Nexicon handle (without @)"),
			mcp.Required(),
		),
		mcp.WithString("password",
			mcp.Description("Account password (at least 6 characters)"),
			mcp.Required(),
		),
	)
}

func toolSignup() mcp.Tool {
	return mcp.NewTool("nexicon_signup",
		mcp.WithDescription("Create a new Nexicon account and log in as it."),
		mcp.WithString("name",
			mcp.Description("Display name"),
			mcp.Required(),
		),
		mcp.WithString("handle",
			mcp.Description("Desired handle (without @, at least 3 characters)"),
			mcp.Required(),
		),
		mcp.WithString("password",
			mcp.Description("Account password (at least 6 characters)"),
			mcp.Required(),
		),
	)
}

func toolStatus() mcp.Tool {
	return mcp.NewTool("nexicon_status",
		mcp.WithDescription("Check session status and unread counters"),
	)
}

func toolLogout() mcp.Tool {
	return mcp.NewTool("nexicon_logout",
		mcp.WithDescription("End the current session. Feed data is kept."),
	)
}

// === Reading Tools ===

func toolFeed() mcp.Tool {
	return mcp.NewTool("nexicon_feed",
		mcp.WithDescription("Get the latest posts from the feed, newest first"),
		mcp.WithNumber("limit",
			mcp.Description("Number of posts (default 20, max 100)"),
		),
	)
}

func toolUser() mcp.Tool {
	return mcp.NewTool("nexicon_user",
		mcp.WithDescription("Get a user profile and their posts"),
		mcp.WithString("handle",
			mcp.Description("User handle (without @)"),
			mcp.Required(),
		),
		mcp.WithBoolean("include_posts",
			mcp.Description("Include the user's recent posts (default: true)"),
		),
	)
}

func toolSearch() mcp.Tool {
	return mcp.NewTool("nexicon_search",
		mcp.WithDescription("Search posts or users"),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithString("type",
			mcp.Description("Search type: posts or users (default: posts)"),
			mcp.Enum("posts", "users"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results (default 20, max 100)"),
		),
	)
}

func toolTrending() mcp.Tool {
	return mcp.NewTool("nexicon_trending",
		mcp.WithDescription("Get trending hashtags ranked by post count"),
		mcp.WithNumber("limit",
			mcp.Description("Number of topics (default 5)"),
		),
	)
}

func toolSuggested() mcp.Tool {
	return mcp.NewTool("nexicon_suggested",
		mcp.WithDescription("Get suggested users to follow, ranked by follower count"),
		mcp.WithNumber("limit",
			mcp.Description("Number of users (default 5)"),
		),
	)
}

func toolStories() mcp.Tool {
	return mcp.NewTool("nexicon_stories",
		mcp.WithDescription("List stories"),
		mcp.WithBoolean("unseen_only",
			mcp.Description("Only stories not yet viewed (default: false)"),
		),
	)
}

func toolNotifications() mcp.Tool {
	return mcp.NewTool("nexicon_notifications",
		mcp.WithDescription("List activity notifications, newest first"),
		mcp.WithBoolean("unread_only",
			mcp.Description("Only unread notifications (default: false)"),
		),
		mcp.WithBoolean("mark_read",
			mcp.Description("Mark all notifications read after listing (default: false)"),
		),
	)
}

// === Writing Tools ===

func toolPost() mcp.Tool {
	return mcp.NewTool("nexicon_post",
		mcp.WithDescription("Create a new post (requires login). The post is prepended to the feed."),
		mcp.WithString("content",
			mcp.Description("Post content"),
			mcp.Required(),
		),
		mcp.WithString("location",
			mcp.Description("Optional location tag"),
		),
	)
}

func toolComment() mcp.Tool {
	return mcp.NewTool("nexicon_comment",
		mcp.WithDescription("Comment on a post (requires login)"),
		mcp.WithString("post_id",
			mcp.Description("ID of the post to comment on"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Comment text"),
			mcp.Required(),
		),
	)
}

func toolReply() mcp.Tool {
	return mcp.NewTool("nexicon_reply",
		mcp.WithDescription("Reply to a top-level comment (requires login). Replies nest one level only."),
		mcp.WithString("comment_id",
			mcp.Description("ID of the comment to reply to"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Reply text"),
			mcp.Required(),
		),
	)
}

// === Social Tools ===

func toolFollow() mcp.Tool {
	return mcp.NewTool("nexicon_follow",
		mcp.WithDescription("Follow a user (requires login)"),
		mcp.WithString("handle",
			mcp.Description("Handle of the user to follow (without @)"),
			mcp.Required(),
		),
	)
}

func toolUnfollow() mcp.Tool {
	return mcp.NewTool("nexicon_unfollow",
		mcp.WithDescription("Unfollow a user (requires login)"),
		mcp.WithString("handle",
			mcp.Description("Handle of the user to unfollow (without @)"),
			mcp.Required(),
		),
	)
}

func toolLike() mcp.Tool {
	return mcp.NewTool("nexicon_like",
		mcp.WithDescription("Toggle the like on a post (requires login)"),
		mcp.WithString("post_id",
			mcp.Description("ID of the post"),
			mcp.Required(),
		),
	)
}

func toolReact() mcp.Tool {
	return mcp.NewTool("nexicon_react",
		mcp.WithDescription("React to a post with a typed reaction (requires login)"),
		mcp.WithString("post_id",
			mcp.Description("ID of the post"),
			mcp.Required(),
		),
		mcp.WithString("kind",
			mcp.Description("Reaction kind"),
			mcp.Enum("like", "love", "haha", "wow", "sad", "angry"),
			mcp.Required(),
		),
	)
}

func toolSave() mcp.Tool {
	return mcp.NewTool("nexicon_save",
		mcp.WithDescription("Toggle the saved bookmark on a post (requires login)"),
		mcp.WithString("post_id",
			mcp.Description("ID of the post"),
			mcp.Required(),
		),
	)
}

func toolViewStory() mcp.Tool {
	return mcp.NewTool("nexicon_view_story",
		mcp.WithDescription("View a story and mark it seen"),
		mcp.WithString("story_id",
			mcp.Description("ID of the story"),
			mcp.Required(),
		),
	)
}

// === Messaging Tools ===

func toolChats() mcp.Tool {
	return mcp.NewTool("nexicon_chats",
		mcp.WithDescription("List direct-message conversations with unread counts"),
	)
}

func toolChat() mcp.Tool {
	return mcp.NewTool("nexicon_chat",
		mcp.WithDescription("Open a conversation and show its messages. Opening resets the unread counter."),
		mcp.WithString("chat_id",
			mcp.Description("ID of the chat"),
			mcp.Required(),
		),
	)
}

func toolSend() mcp.Tool {
	return mcp.NewTool("nexicon_send",
		mcp.WithDescription("Send a direct message in a conversation (requires login)"),
		mcp.WithString("chat_id",
			mcp.Description("ID of the chat"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("Message text"),
			mcp.Required(),
		),
	)
}
