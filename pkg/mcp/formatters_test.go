package mcp

import (
	"strings"
	"testing"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

func TestFormatPost(t *testing.T) {
	t.Parallel()

	t.Run("nil post", func(t *testing.T) {
		t.Parallel()
		if got := FormatPost(nil); got != "[Post not found]" {
			t.Errorf("FormatPost(nil) = %q", got)
		}
	})

	t.Run("full post", func(t *testing.T) {
		t.Parallel()
		post := &models.Post{
			ID:        "p1",
			Author:    models.Author{Handle: "rohanmehta"},
			Content:   "hello world",
			Likes:     10,
			Comments:  3,
			Shares:    1,
			Timestamp: "2h ago",
			Location:  "Mumbai, India",
			Liked:     true,
			Saved:     true,
			Reactions: []models.Reaction{{Kind: models.ReactionLove, Count: 4}},
		}

		text := FormatPost(post)
		for _, want := range []string{
			"@rohanmehta (p1)",
			"hello world",
			"Location: Mumbai, India",
			"Likes: 10 | Comments: 3 | Shares: 1",
			"liked",
			"saved",
			"love:4",
			"Posted: 2h ago",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("FormatPost() missing %q in:\n%s", want, text)
			}
		}
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		post := &models.Post{ID: "p1", Author: models.Author{Handle: "x"}}
		if !strings.Contains(FormatPost(post), "[No content]") {
			t.Error("expected [No content] placeholder")
		}
	})
}

func TestFormatPostCompact(t *testing.T) {
	t.Parallel()

	t.Run("long content is truncated", func(t *testing.T) {
		t.Parallel()
		post := &models.Post{
			Author:  models.Author{Handle: "x"},
			Content: strings.Repeat("a", 120),
		}
		got := FormatPostCompact(post)
		if len(got) > 90 {
			t.Errorf("compact output too long: %d chars", len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis, got %q", got)
		}
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		t.Parallel()
		post := &models.Post{
			Author:  models.Author{Handle: "x"},
			Content: "line one\nline two",
		}
		if got := FormatPostCompact(post); strings.Contains(got, "\n") {
			t.Errorf("expected single line, got %q", got)
		}
	})
}

func TestFormatUser(t *testing.T) {
	t.Parallel()

	user := &models.User{
		ID:        "u1",
		Name:      "Rohan Mehta",
		Handle:    "rohanmehta",
		Verified:  true,
		Bio:       "Exploring AI",
		Location:  "Mumbai, India",
		Website:   "rohanmehta.com",
		JoinedAt:  "January 2020",
		Followers: 12500,
		Following: 350,
		Posts:     248,
	}

	text := FormatUser(user)
	for _, want := range []string{
		"@rohanmehta [verified]",
		"Name: Rohan Mehta",
		"Bio: Exploring AI",
		"Followers: 12500 | Following: 350 | Posts: 248",
		"Joined: January 2020",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatUser() missing %q in:\n%s", want, text)
		}
	}

	if got := FormatUser(nil); got != "[User not found]" {
		t.Errorf("FormatUser(nil) = %q", got)
	}
}

func TestFormatUserCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{
			"with name",
			&models.User{Handle: "x", Name: "X Person", Followers: 5},
			"@x (X Person) - 5 followers",
		},
		{
			"without name",
			&models.User{Handle: "x", Followers: 5},
			"@x - 5 followers",
		},
		{"nil", nil, "[User not found]"},
	}

	for _, tt := range tests {
		if got := FormatUserCompact(tt.user); got != tt.want {
			t.Errorf("%s: FormatUserCompact() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatStory(t *testing.T) {
	t.Parallel()

	story := &models.Story{
		ID:        "s1",
		Author:    models.Author{Handle: "priyastyles"},
		Caption:   "launch day",
		Media:     []models.StoryMedia{{Type: models.MediaImage, URL: "u"}},
		ViewCount: 100,
		Likes:     20,
	}

	text := FormatStory(story)
	for _, want := range []string{"@priyastyles (s1)", "launch day", "Frames: 1 | Views: 100 | Likes: 20", "Unseen"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatStory() missing %q in:\n%s", want, text)
		}
	}

	story.Seen = true
	if got := FormatStory(story); !strings.HasSuffix(got, "Seen") || strings.HasSuffix(got, "Unseen") {
		t.Errorf("expected Seen suffix, got %q", got)
	}
}

func TestFormatChatAndMessage(t *testing.T) {
	t.Parallel()

	chat := &models.Chat{
		ID:      "c1",
		Contact: models.Contact{Handle: "priyastyles", Online: true},
		Messages: []models.Message{
			{Content: "hey", Sender: models.SenderContact},
			{Content: "hi", Sender: models.SenderSelf, Status: models.StatusRead},
		},
		Unread: 1,
	}

	text := FormatChat(chat)
	for _, want := range []string{"@priyastyles (c1) - online", "Messages: 2 | Unread: 1", "Last: [you] hi (read)"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatChat() missing %q in:\n%s", want, text)
		}
	}

	msg := &models.Message{Content: "hey", Sender: models.SenderContact}
	if got := FormatMessage(msg); got != "[them] hey" {
		t.Errorf("FormatMessage() = %q", got)
	}
}

func TestFormatNotification(t *testing.T) {
	t.Parallel()

	n := &models.Notification{
		Type:    models.NotifyLike,
		Actor:   models.Author{Handle: "priyastyles"},
		Content: "liked your post",
	}
	if got := FormatNotification(n); got != "* [like] @priyastyles liked your post" {
		t.Errorf("FormatNotification() = %q", got)
	}

	n.Read = true
	if got := FormatNotification(n); !strings.HasPrefix(got, "  [like]") {
		t.Errorf("read marker wrong: %q", got)
	}
}

func TestFormatTrending(t *testing.T) {
	t.Parallel()

	topics := []models.TrendingTopic{
		{Topic: "#fitness", Posts: 3},
		{Topic: "#health", Posts: 2},
	}
	text := FormatTrending(topics)
	for _, want := range []string{"1. #fitness (3 posts)", "2. #health (2 posts)"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatTrending() missing %q in:\n%s", want, text)
		}
	}

	if got := FormatTrending(nil); !strings.Contains(got, "Nothing is trending") {
		t.Errorf("FormatTrending(nil) = %q", got)
	}
}
