package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nexicon/nexicon-cli/pkg/auth"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

// freshTimestamp labels content created in this session.
const freshTimestamp = "Just now"

// Handlers contains all tool handlers for the Nexicon MCP server.
type Handlers struct {
	store *store.Store
	auth  *auth.Manager
}

// NewHandlers creates a new Handlers instance around an injected store.
func NewHandlers(st *store.Store, authMgr *auth.Manager) *Handlers {
	return &Handlers{store: st, auth: authMgr}
}

// currentUser returns the session user, or nil when logged out.
func (h *Handlers) currentUser() *models.User {
	return h.store.CurrentUser()
}

// === Session Handlers ===

// HandleLogin handles the nexicon_login tool.
func (h *Handlers) HandleLogin(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError("handle is required"), nil
	}
	password, err := req.RequireString("password")
	if err != nil {
		return mcp.NewToolResultError("password is required"), nil
	}

	user, err := h.auth.Login(strings.TrimPrefix(handle, "@"), password)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Login failed", err), nil
	}

	text := fmt.Sprintf("Logged in as @%s\nUser ID: %s\nSession active.", user.Handle, user.ID)
	return mcp.NewToolResultText(text), nil
}

// HandleSignup handles the nexicon_signup tool.
func (h *Handlers) HandleSignup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError("handle is required"), nil
	}
	password, err := req.RequireString("password")
	if err != nil {
		return mcp.NewToolResultError("password is required"), nil
	}

	user, err := h.auth.Signup(name, strings.TrimPrefix(handle, "@"), password)
	if err != nil {
		return mcp.NewToolResultErrorFromErr("Signup failed", err), nil
	}

	text := fmt.Sprintf("Account created.\nLogged in as @%s\nUser ID: %s", user.Handle, user.ID)
	return mcp.NewToolResultText(text), nil
}

// HandleStatus handles the nexicon_status tool.
func (h *Handlers) HandleStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user := h.currentUser()
	if user == nil {
		return mcp.NewToolResultText("Not logged in. Use nexicon_login to authenticate."), nil
	}

	text := fmt.Sprintf("Logged in as @%s\nUser ID: %s\nUnread messages: %d\nUnread notifications: %d",
		user.Handle, user.ID, h.store.UnreadMessages(), h.store.UnreadNotifications())
	return mcp.NewToolResultText(text), nil
}

// HandleLogout handles the nexicon_logout tool.
func (h *Handlers) HandleLogout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultText("Not logged in."), nil
	}

	h.auth.Logout()
	return mcp.NewToolResultText("Logged out. Feed data is kept."), nil
}

// === Reading Handlers ===

// HandleFeed handles the nexicon_feed tool.
func (h *Handlers) HandleFeed(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	posts := h.store.Posts()
	if len(posts) > limit {
		posts = posts[:limit]
	}

	return mcp.NewToolResultText(FormatFeed(posts)), nil
}

// HandleUser handles the nexicon_user tool.
func (h *Handlers) HandleUser(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError("handle is required"), nil
	}
	handle = strings.TrimPrefix(handle, "@")

	includePosts := req.GetBool("include_posts", true)

	user, ok := h.store.UserByHandle(handle)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("user @%s not found", handle)), nil
	}

	text := FormatUser(&user)

	if includePosts {
		posts := h.store.PostsByAuthor(user.ID)
		if len(posts) > 5 {
			posts = posts[:5]
		}
		if len(posts) > 0 {
			text += "\n\n=== Recent Posts ===\n"
			for i := range posts {
				text += fmt.Sprintf("\n--- Post %d ---\n", i+1)
				text += FormatPost(&posts[i])
			}
		}
	}

	return mcp.NewToolResultText(text), nil
}

// HandleSearch handles the nexicon_search tool.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	searchType := req.GetString("type", "posts")
	limit := req.GetInt("limit", 20)
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	var lines []string
	switch searchType {
	case "users":
		users := h.store.SearchUsers(query)
		if len(users) > limit {
			users = users[:limit]
		}
		if len(users) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No users matching %q.", query)), nil
		}
		lines = append(lines, fmt.Sprintf("=== Users matching %q ===", query))
		for i := range users {
			lines = append(lines, FormatUserCompact(&users[i]))
		}
	default:
		posts := h.store.SearchPosts(query)
		if len(posts) > limit {
			posts = posts[:limit]
		}
		if len(posts) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No posts matching %q.", query)), nil
		}
		lines = append(lines, fmt.Sprintf("=== Posts matching %q ===", query))
		for i := range posts {
			lines = append(lines, fmt.Sprintf("(%s) %s", posts[i].ID, FormatPostCompact(&posts[i])))
		}
	}

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// HandleTrending handles the nexicon_trending tool.
func (h *Handlers) HandleTrending(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 5)
	if limit < 1 {
		limit = 5
	}

	return mcp.NewToolResultText(FormatTrending(h.store.TrendingTopics(limit))), nil
}

// HandleSuggested handles the nexicon_suggested tool.
func (h *Handlers) HandleSuggested(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 5)
	if limit < 1 {
		limit = 5
	}

	users := h.store.SuggestedUsers(limit)
	if len(users) == 0 {
		return mcp.NewToolResultText("No suggestions available."), nil
	}

	var lines []string
	lines = append(lines, "=== Suggested Users ===")
	for i := range users {
		lines = append(lines, FormatUserCompact(&users[i]))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// HandleStories handles the nexicon_stories tool.
func (h *Handlers) HandleStories(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	unseenOnly := req.GetBool("unseen_only", false)

	var stories []models.Story
	if unseenOnly {
		stories = h.store.UnseenStories()
	} else {
		stories = h.store.Stories()
	}

	if len(stories) == 0 {
		return mcp.NewToolResultText("No stories."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Stories (%d) ===\n", len(stories)))
	for i := range stories {
		sb.WriteString("\n")
		sb.WriteString(FormatStory(&stories[i]))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleNotifications handles the nexicon_notifications tool.
func (h *Handlers) HandleNotifications(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	unreadOnly := req.GetBool("unread_only", false)
	markRead := req.GetBool("mark_read", false)

	notifications := h.store.Notifications()
	if unreadOnly {
		var unread []models.Notification
		for _, n := range notifications {
			if !n.Read {
				unread = append(unread, n)
			}
		}
		notifications = unread
	}

	if len(notifications) == 0 {
		return mcp.NewToolResultText("No notifications."), nil
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Activity (%d) ===", len(notifications)))
	for i := range notifications {
		lines = append(lines, FormatNotification(&notifications[i]))
	}

	if markRead {
		h.store.MarkNotificationsRead()
		lines = append(lines, "", "All notifications marked read.")
	}

	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// === Writing Handlers ===

// HandlePost handles the nexicon_post tool.
func (h *Handlers) HandlePost(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user := h.currentUser()
	if user == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("content must not be empty"), nil
	}

	post := models.Post{
		ID:        store.NewID(),
		Author:    models.AuthorSnapshot(user),
		Content:   content,
		Timestamp: freshTimestamp,
		Location:  req.GetString("location", ""),
	}
	h.store.AddPost(post)

	text := fmt.Sprintf("Post created.\nID: %s\n\n%s", post.ID, FormatPost(&post))
	return mcp.NewToolResultText(text), nil
}

// HandleComment handles the nexicon_comment tool.
func (h *Handlers) HandleComment(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user := h.currentUser()
	if user == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	postID, err := req.RequireString("post_id")
	if err != nil {
		return mcp.NewToolResultError("post_id is required"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	if _, ok := h.store.Post(postID); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", postID)), nil
	}

	comment := models.Comment{
		ID:        store.NewID(),
		PostID:    postID,
		Author:    models.AuthorSnapshot(user),
		Content:   content,
		Timestamp: freshTimestamp,
	}
	h.store.AddComment(comment)

	text := fmt.Sprintf("Comment added to post %s.\nID: %s", postID, comment.ID)
	return mcp.NewToolResultText(text), nil
}

// HandleReply handles the nexicon_reply tool.
func (h *Handlers) HandleReply(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	user := h.currentUser()
	if user == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	commentID, err := req.RequireString("comment_id")
	if err != nil {
		return mcp.NewToolResultError("comment_id is required"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	var parent *models.Comment
	for _, c := range h.store.Comments() {
		if c.ID == commentID {
			parent = &c
			break
		}
	}
	if parent == nil {
		return mcp.NewToolResultError(fmt.Sprintf("comment %s not found", commentID)), nil
	}

	reply := models.Comment{
		ID:        store.NewID(),
		PostID:    parent.PostID,
		Author:    models.AuthorSnapshot(user),
		Content:   content,
		Timestamp: freshTimestamp,
	}
	h.store.ReplyToComment(commentID, reply)

	text := fmt.Sprintf("Reply added to comment %s.\nID: %s", commentID, reply.ID)
	return mcp.NewToolResultText(text), nil
}

// === Social Handlers ===

// HandleFollow handles the nexicon_follow tool.
func (h *Handlers) HandleFollow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError("handle is required"), nil
	}
	handle = strings.TrimPrefix(handle, "@")

	target, ok := h.store.UserByHandle(handle)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("user @%s not found", handle)), nil
	}

	h.store.FollowUser(target.ID)

	updated, _ := h.store.User(target.ID)
	text := fmt.Sprintf("Now following @%s (%d followers).", updated.Handle, updated.Followers)
	return mcp.NewToolResultText(text), nil
}

// HandleUnfollow handles the nexicon_unfollow tool.
func (h *Handlers) HandleUnfollow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	handle, err := req.RequireString("handle")
	if err != nil {
		return mcp.NewToolResultError("handle is required"), nil
	}
	handle = strings.TrimPrefix(handle, "@")

	target, ok := h.store.UserByHandle(handle)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("user @%s not found", handle)), nil
	}

	h.store.UnfollowUser(target.ID)

	updated, _ := h.store.User(target.ID)
	text := fmt.Sprintf("Unfollowed @%s (%d followers).", updated.Handle, updated.Followers)
	return mcp.NewToolResultText(text), nil
}

// HandleLike handles the nexicon_like tool.
func (h *Handlers) HandleLike(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	postID, err := req.RequireString("post_id")
	if err != nil {
		return mcp.NewToolResultError("post_id is required"), nil
	}

	if _, ok := h.store.Post(postID); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", postID)), nil
	}

	h.store.LikePost(postID)

	post, _ := h.store.Post(postID)
	verb := "Unliked"
	if post.Liked {
		verb = "Liked"
	}
	text := fmt.Sprintf("%s post %s (%d likes).", verb, post.ID, post.Likes)
	return mcp.NewToolResultText(text), nil
}

// HandleReact handles the nexicon_react tool.
func (h *Handlers) HandleReact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	postID, err := req.RequireString("post_id")
	if err != nil {
		return mcp.NewToolResultError("post_id is required"), nil
	}
	kind, err := req.RequireString("kind")
	if err != nil {
		return mcp.NewToolResultError("kind is required"), nil
	}
	if !models.ValidReaction(models.ReactionKind(kind)) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown reaction kind %q", kind)), nil
	}

	if _, ok := h.store.Post(postID); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", postID)), nil
	}

	h.store.ReactToPost(postID, models.ReactionKind(kind))

	post, _ := h.store.Post(postID)
	text := fmt.Sprintf("Reacted %s to post %s.\n\n%s", kind, postID, FormatPost(&post))
	return mcp.NewToolResultText(text), nil
}

// HandleSave handles the nexicon_save tool.
func (h *Handlers) HandleSave(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	postID, err := req.RequireString("post_id")
	if err != nil {
		return mcp.NewToolResultError("post_id is required"), nil
	}

	if _, ok := h.store.Post(postID); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("post %s not found", postID)), nil
	}

	h.store.SavePost(postID)

	post, _ := h.store.Post(postID)
	verb := "Removed bookmark from"
	if post.Saved {
		verb = "Saved"
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s post %s.", verb, post.ID)), nil
}

// HandleViewStory handles the nexicon_view_story tool.
func (h *Handlers) HandleViewStory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	storyID, err := req.RequireString("story_id")
	if err != nil {
		return mcp.NewToolResultError("story_id is required"), nil
	}

	if _, ok := h.store.Story(storyID); !ok {
		return mcp.NewToolResultError(fmt.Sprintf("story %s not found", storyID)), nil
	}

	h.store.ViewStory(storyID)

	st, _ := h.store.Story(storyID)
	return mcp.NewToolResultText(FormatStory(&st)), nil
}

// === Messaging Handlers ===

// HandleChats handles the nexicon_chats tool.
func (h *Handlers) HandleChats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chats := h.store.Chats()
	if len(chats) == 0 {
		return mcp.NewToolResultText("No conversations."), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Conversations (%d, %d unread) ===\n", len(chats), h.store.UnreadMessages()))
	for i := range chats {
		sb.WriteString("\n")
		sb.WriteString(FormatChat(&chats[i]))
		sb.WriteString("\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// HandleChat handles the nexicon_chat tool.
func (h *Handlers) HandleChat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID, err := req.RequireString("chat_id")
	if err != nil {
		return mcp.NewToolResultError("chat_id is required"), nil
	}

	chat, ok := h.store.Chat(chatID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("chat %s not found", chatID)), nil
	}

	h.store.OpenChat(chatID)

	var lines []string
	lines = append(lines, fmt.Sprintf("=== Chat with @%s ===", chat.Contact.Handle))
	for i := range chat.Messages {
		lines = append(lines, FormatMessage(&chat.Messages[i]))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// HandleSend handles the nexicon_send tool.
func (h *Handlers) HandleSend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.currentUser() == nil {
		return mcp.NewToolResultError("Not logged in. Use nexicon_login first."), nil
	}

	chatID, err := req.RequireString("chat_id")
	if err != nil {
		return mcp.NewToolResultError("chat_id is required"), nil
	}
	content, err := req.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError("content is required"), nil
	}

	chat, ok := h.store.Chat(chatID)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("chat %s not found", chatID)), nil
	}

	msg := models.Message{
		ID:        store.NewID(),
		Content:   content,
		Sender:    models.SenderSelf,
		Timestamp: freshTimestamp,
		Status:    models.StatusSent,
	}
	h.store.AddMessage(chatID, msg)

	text := fmt.Sprintf("Sent to @%s.\nMessage ID: %s", chat.Contact.Handle, msg.ID)
	return mcp.NewToolResultText(text), nil
}
