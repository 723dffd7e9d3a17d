package mcp

import (
	"context"
	"fmt"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"

	"github.com/nexicon/nexicon-cli/pkg/auth"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

// mockRequest creates a CallToolRequest with the given arguments.
func mockRequest(name string, args map[string]any) mcplib.CallToolRequest {
	return mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

// newTestHandlers wires handlers around a seeded in-memory store.
func newTestHandlers(t *testing.T) (*Handlers, *store.Store) {
	t.Helper()
	st := store.New(store.Seed(), nil)
	return NewHandlers(st, auth.New(st, t.TempDir())), st
}

// loginAs sets the session user directly.
func loginAs(t *testing.T, st *store.Store, userID string) {
	t.Helper()
	user, ok := st.User(userID)
	if !ok {
		t.Fatalf("user %s not found", userID)
	}
	st.SetCurrentUser(&user)
}

func TestNewHandlers(t *testing.T) {
	t.Parallel()

	handlers, st := newTestHandlers(t)
	if handlers == nil {
		t.Fatal("NewHandlers returned nil")
	}
	if handlers.store != st {
		t.Error("handlers.store not set correctly")
	}
}

func TestHandleStatus(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("not logged in", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandleStatus(ctx, mockRequest("nexicon_status", nil))
		if err != nil {
			t.Fatalf("HandleStatus() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Not logged in") {
			t.Errorf("expected 'Not logged in', got %q", text)
		}
	})

	t.Run("logged in", func(t *testing.T) {
		t.Parallel()
		handlers, st := newTestHandlers(t)
		loginAs(t, st, "user1")

		result, err := handlers.HandleStatus(ctx, mockRequest("nexicon_status", nil))
		if err != nil {
			t.Fatalf("HandleStatus() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "@rohanmehta") {
			t.Errorf("expected handle in status, got %q", text)
		}
		if !strings.Contains(text, "Unread messages: 1") {
			t.Errorf("expected unread counter, got %q", text)
		}
	})
}

func TestHandleLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		handlers, st := newTestHandlers(t)

		result, err := handlers.HandleLogin(ctx, mockRequest("nexicon_login", map[string]any{
			"handle":   "rohanmehta",
			"password": "whatever6",
		}))
		if err != nil {
			t.Fatalf("HandleLogin() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Logged in as @rohanmehta") {
			t.Errorf("unexpected login text: %q", text)
		}
		if st.CurrentUser() == nil {
			t.Error("session user not set")
		}
	})

	t.Run("missing handle", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandleLogin(ctx, mockRequest("nexicon_login", map[string]any{
			"password": "whatever6",
		}))
		if err != nil {
			t.Fatalf("HandleLogin() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for missing handle")
		}
	})

	t.Run("unknown handle", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandleLogin(ctx, mockRequest("nexicon_login", map[string]any{
			"handle":   "ghost",
			"password": "whatever6",
		}))
		if err != nil {
			t.Fatalf("HandleLogin() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for unknown handle")
		}
	})
}

func TestHandleSignup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)

	result, err := handlers.HandleSignup(ctx, mockRequest("nexicon_signup", map[string]any{
		"name":     "New Person",
		"handle":   "newperson",
		"password": "secret99",
	}))
	if err != nil {
		t.Fatalf("HandleSignup() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "@newperson") {
		t.Errorf("unexpected signup text: %q", text)
	}
	if _, ok := st.UserByHandle("newperson"); !ok {
		t.Error("signed-up user missing from the store")
	}

	// Taken handle surfaces as an error result.
	result, err = handlers.HandleSignup(ctx, mockRequest("nexicon_signup", map[string]any{
		"name":     "Impostor",
		"handle":   "newperson",
		"password": "secret99",
	}))
	if err != nil {
		t.Fatalf("HandleSignup() error = %v", err)
	}
	if !isErrorResult(result) {
		t.Error("expected error result for duplicate handle")
	}
}

func TestHandleFeed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, _ := newTestHandlers(t)

	result, err := handlers.HandleFeed(ctx, mockRequest("nexicon_feed", map[string]any{
		"limit": float64(2),
	}))
	if err != nil {
		t.Fatalf("HandleFeed() error = %v", err)
	}

	text := getResultText(t, result)
	if !strings.Contains(text, "Feed (2 posts)") {
		t.Errorf("expected 2 posts, got %q", text)
	}
	if !strings.Contains(text, "@rohanmehta") {
		t.Errorf("expected newest post first, got %q", text)
	}
}

func TestHandleUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("with posts", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandleUser(ctx, mockRequest("nexicon_user", map[string]any{
			"handle": "@ananyatravels",
		}))
		if err != nil {
			t.Fatalf("HandleUser() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "@ananyatravels") {
			t.Errorf("expected handle, got %q", text)
		}
		if !strings.Contains(text, "Recent Posts") {
			t.Errorf("expected recent posts section, got %q", text)
		}
		if !strings.Contains(text, "Ladakh") {
			t.Errorf("expected the user's post content, got %q", text)
		}
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandleUser(ctx, mockRequest("nexicon_user", map[string]any{
			"handle": "ghost",
		}))
		if err != nil {
			t.Fatalf("HandleUser() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for unknown user")
		}
	})
}

func TestHandleSearch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, _ := newTestHandlers(t)

	t.Run("posts", func(t *testing.T) {
		result, err := handlers.HandleSearch(ctx, mockRequest("nexicon_search", map[string]any{
			"query": "ladakh",
		}))
		if err != nil {
			t.Fatalf("HandleSearch() error = %v", err)
		}
		text := getResultText(t, result)
		if !strings.Contains(text, "@ananyatravels") {
			t.Errorf("expected matching post, got %q", text)
		}
	})

	t.Run("users", func(t *testing.T) {
		result, err := handlers.HandleSearch(ctx, mockRequest("nexicon_search", map[string]any{
			"query": "fitness",
			"type":  "users",
		}))
		if err != nil {
			t.Fatalf("HandleSearch() error = %v", err)
		}
		text := getResultText(t, result)
		if !strings.Contains(text, "@aryanfit") {
			t.Errorf("expected matching user, got %q", text)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := handlers.HandleSearch(ctx, mockRequest("nexicon_search", map[string]any{
			"query": "zzzz",
		}))
		if err != nil {
			t.Fatalf("HandleSearch() error = %v", err)
		}
		if !strings.Contains(getResultText(t, result), "No posts matching") {
			t.Error("expected no-match message")
		}
	})
}

func TestHandleTrending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, _ := newTestHandlers(t)

	result, err := handlers.HandleTrending(ctx, mockRequest("nexicon_trending", nil))
	if err != nil {
		t.Fatalf("HandleTrending() error = %v", err)
	}
	text := getResultText(t, result)
	if !strings.Contains(text, "Trending") {
		t.Errorf("expected trending header, got %q", text)
	}
	if !strings.Contains(text, "#AI") {
		t.Errorf("expected a seeded hashtag, got %q", text)
	}
}

func TestHandlePost(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("requires login", func(t *testing.T) {
		t.Parallel()
		handlers, _ := newTestHandlers(t)

		result, err := handlers.HandlePost(ctx, mockRequest("nexicon_post", map[string]any{
			"content": "hello world",
		}))
		if err != nil {
			t.Fatalf("HandlePost() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result when logged out")
		}
	})

	t.Run("creates and prepends", func(t *testing.T) {
		t.Parallel()
		handlers, st := newTestHandlers(t)
		loginAs(t, st, "user1")

		result, err := handlers.HandlePost(ctx, mockRequest("nexicon_post", map[string]any{
			"content":  "hello world",
			"location": "Pune, India",
		}))
		if err != nil {
			t.Fatalf("HandlePost() error = %v", err)
		}

		text := getResultText(t, result)
		if !strings.Contains(text, "Post created") {
			t.Errorf("unexpected text: %q", text)
		}

		posts := st.Posts()
		if posts[0].Content != "hello world" {
			t.Errorf("feed head = %q, want the new post", posts[0].Content)
		}
		if posts[0].Location != "Pune, India" {
			t.Errorf("location = %q", posts[0].Location)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		handlers, st := newTestHandlers(t)
		loginAs(t, st, "user1")

		result, err := handlers.HandlePost(ctx, mockRequest("nexicon_post", map[string]any{
			"content": "   ",
		}))
		if err != nil {
			t.Fatalf("HandlePost() error = %v", err)
		}
		if !isErrorResult(result) {
			t.Error("expected error result for blank content")
		}
	})
}

func TestHandleCommentAndReply(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)
	loginAs(t, st, "user1")

	before, _ := st.Post("1")

	result, err := handlers.HandleComment(ctx, mockRequest("nexicon_comment", map[string]any{
		"post_id": "1",
		"content": "great take",
	}))
	if err != nil {
		t.Fatalf("HandleComment() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Comment added") {
		t.Error("expected confirmation text")
	}

	after, _ := st.Post("1")
	if after.Comments != before.Comments+1 {
		t.Errorf("comment counter = %d, want %d", after.Comments, before.Comments+1)
	}

	result, err = handlers.HandleReply(ctx, mockRequest("nexicon_reply", map[string]any{
		"comment_id": "c1",
		"content":    "same",
	}))
	if err != nil {
		t.Fatalf("HandleReply() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Reply added") {
		t.Error("expected confirmation text")
	}

	comments := st.CommentsForPost("1")
	if len(comments[0].Replies) != 2 {
		t.Errorf("replies = %d, want 2", len(comments[0].Replies))
	}

	// Unknown parent comment.
	result, err = handlers.HandleReply(ctx, mockRequest("nexicon_reply", map[string]any{
		"comment_id": "nope",
		"content":    "void",
	}))
	if err != nil {
		t.Fatalf("HandleReply() error = %v", err)
	}
	if !isErrorResult(result) {
		t.Error("expected error result for unknown comment")
	}
}

func TestHandleFollowUnfollow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)
	loginAs(t, st, "user1")

	result, err := handlers.HandleFollow(ctx, mockRequest("nexicon_follow", map[string]any{
		"handle": "priyastyles",
	}))
	if err != nil {
		t.Fatalf("HandleFollow() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "45601 followers") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}

	result, err = handlers.HandleUnfollow(ctx, mockRequest("nexicon_unfollow", map[string]any{
		"handle": "priyastyles",
	}))
	if err != nil {
		t.Fatalf("HandleUnfollow() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "45600 followers") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}
}

func TestHandleLikeAndReact(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)
	loginAs(t, st, "user1")

	result, err := handlers.HandleLike(ctx, mockRequest("nexicon_like", map[string]any{
		"post_id": "1",
	}))
	if err != nil {
		t.Fatalf("HandleLike() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Liked post 1 (246 likes)") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}

	result, err = handlers.HandleReact(ctx, mockRequest("nexicon_react", map[string]any{
		"post_id": "2",
		"kind":    "haha",
	}))
	if err != nil {
		t.Fatalf("HandleReact() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Reacted haha") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}
	post, _ := st.Post("2")
	if !post.Liked || post.Likes != 533 {
		t.Errorf("post 2 = {%d, %v}, want {533, true}", post.Likes, post.Liked)
	}

	// Invalid kind.
	result, err = handlers.HandleReact(ctx, mockRequest("nexicon_react", map[string]any{
		"post_id": "2",
		"kind":    "sparkle",
	}))
	if err != nil {
		t.Fatalf("HandleReact() error = %v", err)
	}
	if !isErrorResult(result) {
		t.Error("expected error result for invalid kind")
	}
}

func TestHandleStories(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)

	result, err := handlers.HandleStories(ctx, mockRequest("nexicon_stories", map[string]any{
		"unseen_only": true,
	}))
	if err != nil {
		t.Fatalf("HandleStories() error = %v", err)
	}
	text := getResultText(t, result)
	if !strings.Contains(text, "Stories (3)") {
		t.Errorf("expected 3 unseen stories, got %q", text)
	}

	result, err = handlers.HandleViewStory(ctx, mockRequest("nexicon_view_story", map[string]any{
		"story_id": "story2",
	}))
	if err != nil {
		t.Fatalf("HandleViewStory() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Seen") {
		t.Error("expected story marked seen")
	}
	if got := len(st.UnseenStories()); got != 2 {
		t.Errorf("unseen = %d, want 2", got)
	}
}

func TestHandleChats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)
	loginAs(t, st, "user1")

	result, err := handlers.HandleChats(ctx, mockRequest("nexicon_chats", nil))
	if err != nil {
		t.Fatalf("HandleChats() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Conversations (2, 1 unread)") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}

	// Opening resets unread.
	result, err = handlers.HandleChat(ctx, mockRequest("nexicon_chat", map[string]any{
		"chat_id": "chat1",
	}))
	if err != nil {
		t.Fatalf("HandleChat() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "@priyastyles") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}
	chat, _ := st.Chat("chat1")
	if chat.Unread != 0 {
		t.Errorf("unread = %d, want 0", chat.Unread)
	}

	// Sending appends without bumping unread.
	result, err = handlers.HandleSend(ctx, mockRequest("nexicon_send", map[string]any{
		"chat_id": "chat1",
		"content": "on my way",
	}))
	if err != nil {
		t.Fatalf("HandleSend() error = %v", err)
	}
	if !strings.Contains(getResultText(t, result), "Sent to @priyastyles") {
		t.Errorf("unexpected text: %q", getResultText(t, result))
	}
	chat, _ = st.Chat("chat1")
	if len(chat.Messages) != 4 {
		t.Errorf("messages = %d, want 4", len(chat.Messages))
	}
	if chat.Unread != 0 {
		t.Errorf("unread = %d, want 0 after own message", chat.Unread)
	}
	last := chat.Messages[len(chat.Messages)-1]
	if last.Sender != models.SenderSelf || last.Status != models.StatusSent {
		t.Errorf("last message = {%s, %s}, want {user, sent}", last.Sender, last.Status)
	}
}

func TestHandleNotifications(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	handlers, st := newTestHandlers(t)
	st.AddNotification(models.Notification{
		ID:      "n1",
		Type:    models.NotifyLike,
		Actor:   models.Author{Handle: "priyastyles"},
		Content: "liked your post",
	})

	result, err := handlers.HandleNotifications(ctx, mockRequest("nexicon_notifications", map[string]any{
		"mark_read": true,
	}))
	if err != nil {
		t.Fatalf("HandleNotifications() error = %v", err)
	}
	text := getResultText(t, result)
	if !strings.Contains(text, "liked your post") {
		t.Errorf("expected the notification, got %q", text)
	}
	if got := st.UnreadNotifications(); got != 0 {
		t.Errorf("unread = %d, want 0 after mark_read", got)
	}
}

func getResultText(t *testing.T, result *mcplib.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("result is nil")
	}

	for _, content := range result.Content {
		if text, ok := content.(mcplib.TextContent); ok {
			return text.Text
		}
	}

	return fmt.Sprintf("unexpected content type: %T", result.Content)
}

func isErrorResult(result *mcplib.CallToolResult) bool {
	if result == nil {
		return false
	}
	return result.IsError
}
