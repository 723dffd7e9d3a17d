package store

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

// Derived read helpers. These never mutate state; views compose them into
// screens (explore, story bar, activity badge) instead of keeping their own
// domain data.

var hashtagRe = regexp.MustCompile(`#\w+`)

// SearchUsers returns users whose handle, name or bio contains query,
// case-insensitively. An empty query matches nothing.
func (s *Store) SearchUsers(query string) []models.User {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.User
	for i := range s.state.Users {
		u := &s.state.Users[i]
		if strings.Contains(strings.ToLower(u.Handle), query) ||
			strings.Contains(strings.ToLower(u.Name), query) ||
			strings.Contains(strings.ToLower(u.Bio), query) {
			out = append(out, *cloneUserPtr(u))
		}
	}
	return out
}

// SearchPosts returns posts whose content, location or author matches query,
// case-insensitively, in feed order.
func (s *Store) SearchPosts(query string) []models.Post {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Post
	for i := range s.state.Posts {
		p := &s.state.Posts[i]
		if strings.Contains(strings.ToLower(p.Content), query) ||
			strings.Contains(strings.ToLower(p.Location), query) ||
			strings.Contains(strings.ToLower(p.Author.Name), query) ||
			strings.Contains(strings.ToLower(p.Author.Handle), query) {
			out = append(out, *clonePostPtr(p))
		}
	}
	return out
}

// PostsByAuthor returns the posts authored by the given user, in feed order.
func (s *Store) PostsByAuthor(userID string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Post
	for i := range s.state.Posts {
		if s.state.Posts[i].Author.ID == userID {
			out = append(out, *clonePostPtr(&s.state.Posts[i]))
		}
	}
	return out
}

// TrendingTopics tallies hashtags across all post contents and returns the
// top `limit` topics, busiest first, ties broken alphabetically.
func (s *Store) TrendingTopics(limit int) []models.TrendingTopic {
	s.mu.RLock()
	counts := make(map[string]int)
	for i := range s.state.Posts {
		for _, tag := range hashtagRe.FindAllString(s.state.Posts[i].Content, -1) {
			counts[tag]++
		}
	}
	s.mu.RUnlock()

	out := make([]models.TrendingTopic, 0, len(counts))
	for topic, n := range counts {
		out = append(out, models.TrendingTopic{Topic: topic, Posts: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Posts != out[j].Posts {
			return out[i].Posts > out[j].Posts
		}
		return out[i].Topic < out[j].Topic
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SuggestedUsers returns up to `limit` accounts to follow: everyone except
// the session user, most followed first.
func (s *Store) SuggestedUsers(limit int) []models.User {
	s.mu.RLock()
	var out []models.User
	for i := range s.state.Users {
		if s.state.CurrentUser != nil && s.state.Users[i].ID == s.state.CurrentUser.ID {
			continue
		}
		out = append(out, *cloneUserPtr(&s.state.Users[i]))
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Followers > out[j].Followers
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// UnseenStories returns stories not yet marked seen, in collection order.
func (s *Store) UnseenStories() []models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Story
	for i := range s.state.Stories {
		if !s.state.Stories[i].Seen {
			out = append(out, *cloneStoryPtr(&s.state.Stories[i]))
		}
	}
	return out
}

// UnreadMessages returns the total unread counter across all chats.
func (s *Store) UnreadMessages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for i := range s.state.Chats {
		total += s.state.Chats[i].Unread
	}
	return total
}

// UnreadNotifications returns how many activity entries are unread.
func (s *Store) UnreadNotifications() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := range s.state.Notifications {
		if !s.state.Notifications[i].Read {
			n++
		}
	}
	return n
}
