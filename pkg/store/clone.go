package store

import "github.com/nexicon/nexicon-cli/pkg/models"

// Entities are owned exclusively by the store; readers get copies. The
// helpers below deep-copy the nested slices so a caller can never alias
// store-internal state.

func cloneUserPtr(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	c.Interests = append([]string(nil), u.Interests...)
	return &c
}

func cloneUsers(users []models.User) []models.User {
	if users == nil {
		return nil
	}
	out := make([]models.User, len(users))
	for i := range users {
		out[i] = *cloneUserPtr(&users[i])
	}
	return out
}

func clonePostPtr(p *models.Post) *models.Post {
	c := *p
	c.Images = append([]string(nil), p.Images...)
	c.Reactions = append([]models.Reaction(nil), p.Reactions...)
	return &c
}

func clonePosts(posts []models.Post) []models.Post {
	if posts == nil {
		return nil
	}
	out := make([]models.Post, len(posts))
	for i := range posts {
		out[i] = *clonePostPtr(&posts[i])
	}
	return out
}

func cloneCommentPtr(c *models.Comment) *models.Comment {
	cp := *c
	if c.Replies != nil {
		cp.Replies = make([]models.Comment, len(c.Replies))
		for i := range c.Replies {
			cp.Replies[i] = *cloneCommentPtr(&c.Replies[i])
		}
	}
	return &cp
}

func cloneComments(comments []models.Comment) []models.Comment {
	if comments == nil {
		return nil
	}
	out := make([]models.Comment, len(comments))
	for i := range comments {
		out[i] = *cloneCommentPtr(&comments[i])
	}
	return out
}

func cloneStoryPtr(st *models.Story) *models.Story {
	c := *st
	c.Media = append([]models.StoryMedia(nil), st.Media...)
	return &c
}

func cloneStories(stories []models.Story) []models.Story {
	if stories == nil {
		return nil
	}
	out := make([]models.Story, len(stories))
	for i := range stories {
		out[i] = *cloneStoryPtr(&stories[i])
	}
	return out
}

func cloneMessagePtr(m *models.Message) *models.Message {
	c := *m
	c.Media = append([]models.Media(nil), m.Media...)
	return &c
}

func cloneChatPtr(ch *models.Chat) *models.Chat {
	c := *ch
	if ch.Messages != nil {
		c.Messages = make([]models.Message, len(ch.Messages))
		for i := range ch.Messages {
			c.Messages[i] = *cloneMessagePtr(&ch.Messages[i])
		}
	}
	return &c
}

func cloneChats(chats []models.Chat) []models.Chat {
	if chats == nil {
		return nil
	}
	out := make([]models.Chat, len(chats))
	for i := range chats {
		out[i] = *cloneChatPtr(&chats[i])
	}
	return out
}

func cloneSnapshot(snap *Snapshot) *Snapshot {
	return &Snapshot{
		ThemePreference: snap.ThemePreference,
		CurrentUser:     cloneUserPtr(snap.CurrentUser),
		SearchQuery:     snap.SearchQuery,
		Users:           cloneUsers(snap.Users),
		Posts:           clonePosts(snap.Posts),
		Comments:        cloneComments(snap.Comments),
		Stories:         cloneStories(snap.Stories),
		Chats:           cloneChats(snap.Chats),
		Notifications:   append([]models.Notification(nil), snap.Notifications...),
	}
}
