package mcp

import (
	"fmt"
	"strings"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

// FormatPost formats a post for text display.
func FormatPost(post *models.Post) string {
	if post == nil {
		return "[Post not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("@%s (%s)", post.Author.Handle, post.ID))

	if post.Content != "" {
		lines = append(lines, post.Content)
	} else {
		lines = append(lines, "[No content]")
	}

	if post.Location != "" {
		lines = append(lines, fmt.Sprintf("Location: %s", post.Location))
	}

	stats := fmt.Sprintf("Likes: %d | Comments: %d | Shares: %d", post.Likes, post.Comments, post.Shares)
	if post.Liked {
		stats += " | liked"
	}
	if post.Saved {
		stats += " | saved"
	}
	lines = append(lines, stats)

	if len(post.Reactions) > 0 {
		var parts []string
		for _, r := range post.Reactions {
			parts = append(parts, fmt.Sprintf("%s:%d", r.Kind, r.Count))
		}
		lines = append(lines, fmt.Sprintf("Reactions: %s", strings.Join(parts, " ")))
	}

	if post.Timestamp != "" {
		lines = append(lines, fmt.Sprintf("Posted: %s", post.Timestamp))
	}

	return strings.Join(lines, "\n")
}

// FormatPostCompact formats a post in a compact single-line format.
func FormatPostCompact(post *models.Post) string {
	if post == nil {
		return "[Post not found]"
	}

	content := post.Content
	if len(content) > 80 {
		content = content[:77] + "..."
	}
	content = strings.ReplaceAll(content, "\n", " ")

	return fmt.Sprintf("@%s: %s", post.Author.Handle, content)
}

// FormatUser formats a user profile for text display.
func FormatUser(user *models.User) string {
	if user == nil {
		return "[User not found]"
	}

	var lines []string

	handle := fmt.Sprintf("@%s", user.Handle)
	if user.Verified {
		handle += " [verified]"
	}
	lines = append(lines, handle)

	if user.Name != "" {
		lines = append(lines, fmt.Sprintf("Name: %s", user.Name))
	}
	if user.Bio != "" {
		lines = append(lines, fmt.Sprintf("Bio: %s", user.Bio))
	}
	if user.Location != "" {
		lines = append(lines, fmt.Sprintf("Location: %s", user.Location))
	}
	if user.Website != "" {
		lines = append(lines, fmt.Sprintf("Website: %s", user.Website))
	}

	lines = append(lines, fmt.Sprintf("Followers: %d | Following: %d | Posts: %d",
		user.Followers, user.Following, user.Posts))
	lines = append(lines, fmt.Sprintf("ID: %s", user.ID))

	if user.JoinedAt != "" {
		lines = append(lines, fmt.Sprintf("Joined: %s", user.JoinedAt))
	}

	return strings.Join(lines, "\n")
}

// FormatUserCompact formats a user in a compact single-line format.
func FormatUserCompact(user *models.User) string {
	if user == nil {
		return "[User not found]"
	}

	if user.Name != "" {
		return fmt.Sprintf("@%s (%s) - %d followers", user.Handle, user.Name, user.Followers)
	}
	return fmt.Sprintf("@%s - %d followers", user.Handle, user.Followers)
}

// FormatComment formats a comment and its replies for text display.
func FormatComment(c *models.Comment) string {
	if c == nil {
		return "[Comment not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("@%s (%s): %s", c.Author.Handle, c.ID, c.Content))
	lines = append(lines, fmt.Sprintf("Likes: %d", c.Likes))

	for _, reply := range c.Replies {
		lines = append(lines, fmt.Sprintf("  > @%s (%s): %s", reply.Author.Handle, reply.ID, reply.Content))
	}

	return strings.Join(lines, "\n")
}

// FormatStory formats a story for text display.
func FormatStory(st *models.Story) string {
	if st == nil {
		return "[Story not found]"
	}

	var lines []string

	lines = append(lines, fmt.Sprintf("@%s (%s)", st.Author.Handle, st.ID))

	if st.Caption != "" {
		lines = append(lines, st.Caption)
	}

	lines = append(lines, fmt.Sprintf("Frames: %d | Views: %d | Likes: %d", len(st.Media), st.ViewCount, st.Likes))

	if st.Seen {
		lines = append(lines, "Seen")
	} else {
		lines = append(lines, "Unseen")
	}

	return strings.Join(lines, "\n")
}

// FormatChat formats a conversation summary for text display.
func FormatChat(ch *models.Chat) string {
	if ch == nil {
		return "[Chat not found]"
	}

	var lines []string

	presence := "offline"
	if ch.Contact.Online {
		presence = "online"
	}
	lines = append(lines, fmt.Sprintf("@%s (%s) - %s", ch.Contact.Handle, ch.ID, presence))
	lines = append(lines, fmt.Sprintf("Messages: %d | Unread: %d", len(ch.Messages), ch.Unread))

	if len(ch.Messages) > 0 {
		last := ch.Messages[len(ch.Messages)-1]
		lines = append(lines, fmt.Sprintf("Last: %s", FormatMessage(&last)))
	}

	return strings.Join(lines, "\n")
}

// FormatMessage formats a single chat message.
func FormatMessage(msg *models.Message) string {
	if msg == nil {
		return "[Message not found]"
	}

	who := "them"
	if msg.Sender == models.SenderSelf {
		who = "you"
	}

	text := fmt.Sprintf("[%s] %s", who, msg.Content)
	if msg.Sender == models.SenderSelf && msg.Status != "" {
		text += fmt.Sprintf(" (%s)", msg.Status)
	}
	return text
}

// FormatNotification formats one activity entry.
func FormatNotification(n *models.Notification) string {
	if n == nil {
		return "[Notification not found]"
	}

	marker := "*"
	if n.Read {
		marker = " "
	}
	return fmt.Sprintf("%s [%s] @%s %s", marker, n.Type, n.Actor.Handle, n.Content)
}

// FormatFeed formats a list of posts as a feed.
func FormatFeed(posts []models.Post) string {
	if len(posts) == 0 {
		return "Feed is empty."
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== Feed (%d posts) ===\n", len(posts)))
	for i := range posts {
		sb.WriteString(fmt.Sprintf("\n--- Post %d ---\n", i+1))
		sb.WriteString(FormatPost(&posts[i]))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatTrending formats the trending topic list.
func FormatTrending(topics []models.TrendingTopic) string {
	if len(topics) == 0 {
		return "Nothing is trending right now."
	}

	var lines []string
	lines = append(lines, "=== Trending ===")
	for i, t := range topics {
		lines = append(lines, fmt.Sprintf("%d. %s (%d posts)", i+1, t.Topic, t.Posts))
	}
	return strings.Join(lines, "\n")
}
