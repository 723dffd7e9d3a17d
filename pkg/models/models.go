// Package models defines the domain entities shared by the store, CLI and MCP server.
package models

// User represents a user account.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Handle    string   `json:"handle"`
	Verified  bool     `json:"verified"`
	Avatar    string   `json:"avatar"`
	Bio       string   `json:"bio,omitempty"`
	Location  string   `json:"location,omitempty"`
	Website   string   `json:"website,omitempty"`
	JoinedAt  string   `json:"joined_at,omitempty"`
	Followers int      `json:"followers"`
	Following int      `json:"following"`
	Posts     int      `json:"posts"`
	Online    bool     `json:"online,omitempty"`
	LastSeen  string   `json:"last_seen,omitempty"`
	Email     string   `json:"email,omitempty"`
	CoverURL  string   `json:"cover_url,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Location *string `json:"location,omitempty"`
	Website  *string `json:"website,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	CoverURL *string `json:"cover_url,omitempty"`
	Online   *bool   `json:"online,omitempty"`
	LastSeen *string `json:"last_seen,omitempty"`
}

// Author is a snapshot of a user embedded in posts, comments and stories.
// It is copied at creation time; later profile edits do not rewrite history.
type Author struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Verified bool   `json:"verified,omitempty"`
	Avatar   string `json:"avatar"`
}

// AuthorSnapshot captures the embeddable fields of a user.
func AuthorSnapshot(u *User) Author {
	if u == nil {
		return Author{}
	}
	return Author{
		ID:       u.ID,
		Name:     u.Name,
		Handle:   u.Handle,
		Verified: u.Verified,
		Avatar:   u.Avatar,
	}
}

// ReactionKind enumerates post reaction types.
type ReactionKind string

const (
	ReactionLike  ReactionKind = "like"
	ReactionLove  ReactionKind = "love"
	ReactionHaha  ReactionKind = "haha"
	ReactionWow   ReactionKind = "wow"
	ReactionSad   ReactionKind = "sad"
	ReactionAngry ReactionKind = "angry"
)

// ValidReaction reports whether kind is a known reaction type.
func ValidReaction(kind ReactionKind) bool {
	switch kind {
	case ReactionLike, ReactionLove, ReactionHaha, ReactionWow, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

// Reaction is a per-kind tally on a post.
type Reaction struct {
	Kind  ReactionKind `json:"kind"`
	Count int          `json:"count"`
}

// Post represents a feed post.
type Post struct {
	ID        string     `json:"id"`
	Author    Author     `json:"author"`
	Content   string     `json:"content"`
	Images    []string   `json:"images,omitempty"`
	Likes     int        `json:"likes"`
	Comments  int        `json:"comments"`
	Shares    int        `json:"shares"`
	Timestamp string     `json:"timestamp"`
	Location  string     `json:"location,omitempty"`
	Liked     bool       `json:"liked"`
	Saved     bool       `json:"saved"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

// PostUpdate carries a partial post edit.
type PostUpdate struct {
	Content  *string  `json:"content,omitempty"`
	Images   []string `json:"images,omitempty"`
	Location *string  `json:"location,omitempty"`
}

// Comment represents a comment on a post. Replies nest one level only.
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	Author    Author    `json:"author"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
	Likes     int       `json:"likes"`
	Liked     bool      `json:"liked"`
	Replies   []Comment `json:"replies,omitempty"`
}

// MediaType distinguishes media attachments.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media is a URL-backed media reference on a message.
type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// StoryMedia is one frame of a story.
type StoryMedia struct {
	Type            MediaType `json:"type"`
	URL             string    `json:"url"`
	Filter          string    `json:"filter,omitempty"`
	FilterIntensity int       `json:"filter_intensity,omitempty"`
	Music           string    `json:"music,omitempty"`
}

// Story represents a story. Stories never expire in this model.
type Story struct {
	ID        string       `json:"id"`
	Author    Author       `json:"author"`
	Seen      bool         `json:"seen"`
	Media     []StoryMedia `json:"media"`
	Timestamp string       `json:"timestamp"`
	Likes     int          `json:"likes"`
	ViewCount int          `json:"view_count"`
	Caption   string       `json:"caption,omitempty"`
}

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderSelf    Sender = "user"
	SenderContact Sender = "contact"
)

// MessageStatus is the delivery state of a sent message.
type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Message is a single chat message.
type Message struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Sender    Sender        `json:"sender"`
	Timestamp string        `json:"timestamp"`
	Status    MessageStatus `json:"status,omitempty"`
	Media     []Media       `json:"media,omitempty"`
}

// Contact is the other party of a chat.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Handle   string `json:"handle"`
	Avatar   string `json:"avatar"`
	Online   bool   `json:"online"`
	LastSeen string `json:"last_seen,omitempty"`
	Typing   bool   `json:"typing,omitempty"`
}

// Chat is a direct-message conversation with one contact.
type Chat struct {
	ID       string    `json:"id"`
	Contact  Contact   `json:"contact"`
	Messages []Message `json:"messages"`
	Unread   int       `json:"unread"`
}

// NotificationType enumerates activity notification kinds.
type NotificationType string

const (
	NotifyLike    NotificationType = "like"
	NotifyComment NotificationType = "comment"
	NotifyFollow  NotificationType = "follow"
	NotifyMention NotificationType = "mention"
	NotifyRepost  NotificationType = "repost"
)

// Notification is one entry in the activity feed.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Actor     Author           `json:"actor"`
	Content   string           `json:"content"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
	PostID    string           `json:"post_id,omitempty"`
	PostImage string           `json:"post_image,omitempty"`
}

// TrendingTopic is a hashtag with its occurrence count across posts.
type TrendingTopic struct {
	Topic string `json:"topic"`
	Posts int    `json:"posts"`
}
