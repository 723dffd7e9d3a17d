// Package store holds all domain state and is the only place allowed to mutate it.
//
// Every operation is atomic: readers never observe a partially-applied
// update. Operations called with an id that matches nothing are silent
// no-ops, never errors. After each mutation the full snapshot is mirrored to
// the configured persister and subscribers are notified.
package store

import (
	"strings"
	"sync"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

// Snapshot is the complete serializable state of the store.
type Snapshot struct {
	ThemePreference string                `json:"theme_preference,omitempty"`
	CurrentUser     *models.User          `json:"current_user,omitempty"`
	SearchQuery     string                `json:"search_query,omitempty"`
	Users           []models.User         `json:"users"`
	Posts           []models.Post         `json:"posts"`
	Comments        []models.Comment      `json:"comments"`
	Stories         []models.Story        `json:"stories"`
	Chats           []models.Chat         `json:"chats"`
	Notifications   []models.Notification `json:"notifications,omitempty"`
}

// Persister mirrors snapshots to durable storage. A failed mirror is
// swallowed: persistence is best-effort and never fails an operation.
type Persister interface {
	Save(snap *Snapshot) error
}

// Store is the single source of truth for all domain entities and the session.
type Store struct {
	mu        sync.RWMutex
	state     Snapshot
	persist   Persister
	listeners map[int]func()
	nextSub   int
}

// New creates a store seeded from initial. A nil initial starts empty.
// persist may be nil for an in-memory-only store.
func New(initial *Snapshot, persist Persister) *Store {
	s := &Store{
		persist:   persist,
		listeners: make(map[int]func()),
	}
	if initial != nil {
		s.state = *cloneSnapshot(initial)
	}
	return s
}

// Subscribe registers fn to run after every mutation. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// afterUpdate mirrors the snapshot and notifies subscribers. Called without
// the lock held.
func (s *Store) afterUpdate(snap *Snapshot, fns []func()) {
	if s.persist != nil {
		_ = s.persist.Save(snap)
	}
	for _, fn := range fns {
		fn()
	}
}

// update runs mutate under the write lock, then mirrors and notifies.
func (s *Store) update(mutate func(st *Snapshot)) {
	s.mu.Lock()
	mutate(&s.state)
	snap := cloneSnapshot(&s.state)
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	s.afterUpdate(snap, fns)
}

// === Session ===

// SetThemePreference records the session theme choice.
func (s *Store) SetThemePreference(theme string) {
	s.update(func(st *Snapshot) {
		st.ThemePreference = theme
	})
}

// ThemePreference returns the session theme choice, empty if unset.
func (s *Store) ThemePreference() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ThemePreference
}

// SetCurrentUser replaces the session user. Passing nil logs out.
// Collections are untouched.
func (s *Store) SetCurrentUser(u *models.User) {
	s.update(func(st *Snapshot) {
		st.CurrentUser = cloneUserPtr(u)
	})
}

// CurrentUser returns a copy of the session user, or nil when logged out.
func (s *Store) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUserPtr(s.state.CurrentUser)
}

// SetSearchQuery records the session search text.
func (s *Store) SetSearchQuery(query string) {
	s.update(func(st *Snapshot) {
		st.SearchQuery = query
	})
}

// SearchQuery returns the session search text.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SearchQuery
}

// === Users ===

// AddUser appends a user to the collection. Handle uniqueness is the
// caller's responsibility; the store does not validate.
func (s *Store) AddUser(u models.User) {
	s.update(func(st *Snapshot) {
		st.Users = append(st.Users, *cloneUserPtr(&u))
	})
}

// UpdateUser merges partial fields into the matching user. When the target
// is the session user the same merge is mirrored into the session snapshot.
func (s *Store) UpdateUser(userID string, upd models.UserUpdate) {
	s.update(func(st *Snapshot) {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				applyUserUpdate(&st.Users[i], upd)
				break
			}
		}
		if st.CurrentUser != nil && st.CurrentUser.ID == userID {
			applyUserUpdate(st.CurrentUser, upd)
		}
	})
}

func applyUserUpdate(u *models.User, upd models.UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Location != nil {
		u.Location = *upd.Location
	}
	if upd.Website != nil {
		u.Website = *upd.Website
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.CoverURL != nil {
		u.CoverURL = *upd.CoverURL
	}
	if upd.Online != nil {
		u.Online = *upd.Online
	}
	if upd.LastSeen != nil {
		u.LastSeen = *upd.LastSeen
	}
}

// FollowUser adds one follower to the target and one following to the
// session user, in lockstep.
func (s *Store) FollowUser(userID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				st.Users[i].Followers++
				continue
			}
			if st.CurrentUser != nil && st.Users[i].ID == st.CurrentUser.ID {
				st.Users[i].Following++
			}
		}
		if st.CurrentUser != nil {
			st.CurrentUser.Following++
		}
	})
}

// UnfollowUser reverses FollowUser. Counts never drop below zero.
func (s *Store) UnfollowUser(userID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Users {
			if st.Users[i].ID == userID {
				st.Users[i].Followers = floorZero(st.Users[i].Followers - 1)
				continue
			}
			if st.CurrentUser != nil && st.Users[i].ID == st.CurrentUser.ID {
				st.Users[i].Following = floorZero(st.Users[i].Following - 1)
			}
		}
		if st.CurrentUser != nil {
			st.CurrentUser.Following = floorZero(st.CurrentUser.Following - 1)
		}
	})
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUsers(s.state.Users)
}

// User returns the user with the given id.
func (s *Store) User(userID string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Users {
		if s.state.Users[i].ID == userID {
			return *cloneUserPtr(&s.state.Users[i]), true
		}
	}
	return models.User{}, false
}

// UserByHandle looks a user up by handle, case-insensitively.
func (s *Store) UserByHandle(handle string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Users {
		if strings.EqualFold(s.state.Users[i].Handle, handle) {
			return *cloneUserPtr(&s.state.Users[i]), true
		}
	}
	return models.User{}, false
}

// === Posts ===

// AddPost prepends a post (most-recent-first) and bumps the author's post
// count, mirroring into the session user when they are the author.
func (s *Store) AddPost(p models.Post) {
	s.update(func(st *Snapshot) {
		st.Posts = append([]models.Post{*clonePostPtr(&p)}, st.Posts...)
		for i := range st.Users {
			if st.Users[i].ID == p.Author.ID {
				st.Users[i].Posts++
			}
		}
		if st.CurrentUser != nil && st.CurrentUser.ID == p.Author.ID {
			st.CurrentUser.Posts++
		}
	})
}

// UpdatePost merges partial fields into the matching post.
func (s *Store) UpdatePost(postID string, upd models.PostUpdate) {
	s.update(func(st *Snapshot) {
		for i := range st.Posts {
			if st.Posts[i].ID != postID {
				continue
			}
			if upd.Content != nil {
				st.Posts[i].Content = *upd.Content
			}
			if upd.Images != nil {
				st.Posts[i].Images = append([]string(nil), upd.Images...)
			}
			if upd.Location != nil {
				st.Posts[i].Location = *upd.Location
			}
			return
		}
	})
}

// DeletePost removes a post and decrements the author's post count, floored
// at zero.
func (s *Store) DeletePost(postID string) {
	s.update(func(st *Snapshot) {
		authorID := ""
		kept := st.Posts[:0]
		for i := range st.Posts {
			if st.Posts[i].ID == postID {
				authorID = st.Posts[i].Author.ID
				continue
			}
			kept = append(kept, st.Posts[i])
		}
		st.Posts = kept
		if authorID == "" {
			return
		}
		for i := range st.Users {
			if st.Users[i].ID == authorID {
				st.Users[i].Posts = floorZero(st.Users[i].Posts - 1)
			}
		}
		if st.CurrentUser != nil && st.CurrentUser.ID == authorID {
			st.CurrentUser.Posts = floorZero(st.CurrentUser.Posts - 1)
		}
	})
}

// LikePost toggles the session-local liked flag, moving the like counter by
// exactly one in the same direction.
func (s *Store) LikePost(postID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Posts {
			if st.Posts[i].ID != postID {
				continue
			}
			if st.Posts[i].Liked {
				st.Posts[i].Likes = floorZero(st.Posts[i].Likes - 1)
			} else {
				st.Posts[i].Likes++
			}
			st.Posts[i].Liked = !st.Posts[i].Liked
			return
		}
	})
}

// SavePost toggles the session-local saved flag.
func (s *Store) SavePost(postID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Posts {
			if st.Posts[i].ID == postID {
				st.Posts[i].Saved = !st.Posts[i].Saved
				return
			}
		}
	})
}

// ReactToPost records a reaction of the given kind. An existing tally for
// the kind follows the global liked toggle; a new kind starts at one and
// marks the post liked. The per-kind tally is deliberately tied to the
// single liked/likes pair, matching the historical behavior even though it
// can under-count when several kinds are used on one post.
func (s *Store) ReactToPost(postID string, kind models.ReactionKind) {
	if !models.ValidReaction(kind) {
		return
	}
	s.update(func(st *Snapshot) {
		for i := range st.Posts {
			if st.Posts[i].ID != postID {
				continue
			}
			p := &st.Posts[i]
			existing := -1
			for j := range p.Reactions {
				if p.Reactions[j].Kind == kind {
					existing = j
					break
				}
			}
			if existing >= 0 {
				if p.Liked {
					p.Reactions[existing].Count = floorZero(p.Reactions[existing].Count - 1)
					p.Likes = floorZero(p.Likes - 1)
				} else {
					p.Reactions[existing].Count++
					p.Likes++
				}
				p.Liked = !p.Liked
			} else {
				p.Reactions = append(p.Reactions, models.Reaction{Kind: kind, Count: 1})
				p.Liked = true
				p.Likes++
			}
			return
		}
	})
}

// Posts returns a copy of the post collection, most recent first.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.state.Posts)
}

// Post returns the post with the given id.
func (s *Store) Post(postID string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Posts {
		if s.state.Posts[i].ID == postID {
			return *clonePostPtr(&s.state.Posts[i]), true
		}
	}
	return models.Post{}, false
}

// === Comments ===

// AddComment appends a comment and bumps the parent post's comment counter
// by exactly one.
func (s *Store) AddComment(c models.Comment) {
	s.update(func(st *Snapshot) {
		st.Comments = append(st.Comments, *cloneCommentPtr(&c))
		for i := range st.Posts {
			if st.Posts[i].ID == c.PostID {
				st.Posts[i].Comments++
			}
		}
	})
}

// UpdateComment replaces the content of a top-level comment, or of a reply
// when no top-level comment matches.
func (s *Store) UpdateComment(commentID, content string) {
	s.update(func(st *Snapshot) {
		for i := range st.Comments {
			if st.Comments[i].ID == commentID {
				st.Comments[i].Content = content
				return
			}
			for j := range st.Comments[i].Replies {
				if st.Comments[i].Replies[j].ID == commentID {
					st.Comments[i].Replies[j].Content = content
					return
				}
			}
		}
	})
}

// DeleteComment removes a comment. Deleting a top-level comment decrements
// the parent post's counter; deleting a reply does not. The asymmetry is
// intentional and matches the historical bookkeeping.
func (s *Store) DeleteComment(commentID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Comments {
			if st.Comments[i].ID == commentID {
				postID := st.Comments[i].PostID
				st.Comments = append(st.Comments[:i], st.Comments[i+1:]...)
				for j := range st.Posts {
					if st.Posts[j].ID == postID {
						st.Posts[j].Comments = floorZero(st.Posts[j].Comments - 1)
					}
				}
				return
			}
		}
		for i := range st.Comments {
			replies := st.Comments[i].Replies
			for j := range replies {
				if replies[j].ID == commentID {
					st.Comments[i].Replies = append(replies[:j], replies[j+1:]...)
					return
				}
			}
		}
	})
}

// LikeComment toggles like state on a top-level comment, searching one level
// into replies when no top-level comment matches.
func (s *Store) LikeComment(commentID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Comments {
			if st.Comments[i].ID == commentID {
				toggleCommentLike(&st.Comments[i])
				return
			}
			for j := range st.Comments[i].Replies {
				if st.Comments[i].Replies[j].ID == commentID {
					toggleCommentLike(&st.Comments[i].Replies[j])
					return
				}
			}
		}
	})
}

func toggleCommentLike(c *models.Comment) {
	if c.Liked {
		c.Likes = floorZero(c.Likes - 1)
	} else {
		c.Likes++
	}
	c.Liked = !c.Liked
}

// ReplyToComment appends a reply to the parent comment and bumps the comment
// counter of the post the reply references.
func (s *Store) ReplyToComment(parentID string, reply models.Comment) {
	s.update(func(st *Snapshot) {
		for i := range st.Comments {
			if st.Comments[i].ID == parentID {
				st.Comments[i].Replies = append(st.Comments[i].Replies, *cloneCommentPtr(&reply))
				break
			}
		}
		for i := range st.Posts {
			if st.Posts[i].ID == reply.PostID {
				st.Posts[i].Comments++
			}
		}
	})
}

// Comments returns a copy of the full comment collection.
func (s *Store) Comments() []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneComments(s.state.Comments)
}

// CommentsForPost returns the top-level comments for a post, in insertion
// order, replies included.
func (s *Store) CommentsForPost(postID string) []models.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Comment
	for i := range s.state.Comments {
		if s.state.Comments[i].PostID == postID {
			out = append(out, *cloneCommentPtr(&s.state.Comments[i]))
		}
	}
	return out
}

// === Stories ===

// AddStory appends a new story.
func (s *Store) AddStory(st models.Story) {
	s.update(func(snap *Snapshot) {
		snap.Stories = append(snap.Stories, *cloneStoryPtr(&st))
	})
}

// ViewStory marks a story seen. No counters move.
func (s *Store) ViewStory(storyID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Stories {
			if st.Stories[i].ID == storyID {
				st.Stories[i].Seen = true
				return
			}
		}
	})
}

// Stories returns a copy of the story collection.
func (s *Store) Stories() []models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneStories(s.state.Stories)
}

// Story returns the story with the given id.
func (s *Store) Story(storyID string) (models.Story, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Stories {
		if s.state.Stories[i].ID == storyID {
			return *cloneStoryPtr(&s.state.Stories[i]), true
		}
	}
	return models.Story{}, false
}

// === Chats ===

// AddChat appends a new conversation.
func (s *Store) AddChat(ch models.Chat) {
	s.update(func(st *Snapshot) {
		st.Chats = append(st.Chats, *cloneChatPtr(&ch))
	})
}

// AddMessage appends a message to a chat. Contact-authored messages bump the
// unread counter; own messages do not.
func (s *Store) AddMessage(chatID string, msg models.Message) {
	s.update(func(st *Snapshot) {
		for i := range st.Chats {
			if st.Chats[i].ID != chatID {
				continue
			}
			st.Chats[i].Messages = append(st.Chats[i].Messages, *cloneMessagePtr(&msg))
			if msg.Sender == models.SenderContact {
				st.Chats[i].Unread++
			}
			return
		}
	})
}

// UpdateMessageStatus overwrites the delivery status of exactly one message.
func (s *Store) UpdateMessageStatus(chatID, messageID string, status models.MessageStatus) {
	s.update(func(st *Snapshot) {
		for i := range st.Chats {
			if st.Chats[i].ID != chatID {
				continue
			}
			for j := range st.Chats[i].Messages {
				if st.Chats[i].Messages[j].ID == messageID {
					st.Chats[i].Messages[j].Status = status
					return
				}
			}
			return
		}
	})
}

// OpenChat resets a chat's unread counter to zero.
func (s *Store) OpenChat(chatID string) {
	s.update(func(st *Snapshot) {
		for i := range st.Chats {
			if st.Chats[i].ID == chatID {
				st.Chats[i].Unread = 0
				return
			}
		}
	})
}

// Chats returns a copy of the chat collection.
func (s *Store) Chats() []models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneChats(s.state.Chats)
}

// Chat returns the chat with the given id.
func (s *Store) Chat(chatID string) (models.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.state.Chats {
		if s.state.Chats[i].ID == chatID {
			return *cloneChatPtr(&s.state.Chats[i]), true
		}
	}
	return models.Chat{}, false
}

// === Notifications ===

// AddNotification prepends an activity entry (newest first).
func (s *Store) AddNotification(n models.Notification) {
	s.update(func(st *Snapshot) {
		st.Notifications = append([]models.Notification{n}, st.Notifications...)
	})
}

// MarkNotificationsRead flags every notification as read.
func (s *Store) MarkNotificationsRead() {
	s.update(func(st *Snapshot) {
		for i := range st.Notifications {
			st.Notifications[i].Read = true
		}
	})
}

// Notifications returns a copy of the activity feed, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.state.Notifications...)
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSnapshot(&s.state)
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
