package store

import "github.com/nexicon/nexicon-cli/pkg/models"

// Seed returns the built-in demo dataset the app starts from when no
// persisted snapshot exists.
func Seed() *Snapshot {
	return &Snapshot{
		Users:    seedUsers(),
		Posts:    seedPosts(),
		Comments: seedComments(),
		Stories:  seedStories(),
		Chats:    seedChats(),
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:        "user1",
			Name:      "Rohan Mehta",
			Handle:    "rohanmehta",
			Verified:  true,
			Avatar:    "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
			Bio:       "🚀 Exploring the future of AI & Web3 | Founder @NextGenTech",
			Location:  "Mumbai, India",
			Website:   "rohanmehta.com",
			JoinedAt:  "January 2020",
			Followers: 12500,
			Following: 350,
			Posts:     248,
			Online:    true,
			Email:     "rohan@example.com",
			Interests: []string{"Technology", "AI", "Web3", "Startups"},
		},
		{
			ID:        "user2",
			Name:      "Priya Sharma",
			Handle:    "priyastyles",
			Verified:  true,
			Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			Bio:       "Fashion Designer | Entrepreneur | Living life in color ✨",
			Location:  "Delhi, India",
			Website:   "priyastyles.in",
			JoinedAt:  "March 2019",
			Followers: 45600,
			Following: 512,
			Posts:     187,
			Online:    true,
			Email:     "priya@example.com",
			Interests: []string{"Fashion", "Design", "Travel", "Photography"},
		},
		{
			ID:        "user3",
			Name:      "Aryan Gupta",
			Handle:    "aryanfit",
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			Bio:       "Fitness Coach 💪 | Helping you achieve your fitness goals",
			Location:  "Bangalore, India",
			Website:   "aryanfitness.com",
			JoinedAt:  "June 2021",
			Followers: 8900,
			Following: 723,
			Posts:     156,
			LastSeen:  "2h ago",
			Email:     "aryan@example.com",
			Interests: []string{"Fitness", "Gym", "Nutrition", "Health"},
		},
		{
			ID:        "user4",
			Name:      "Neha Verma",
			Handle:    "nehaeats",
			Avatar:    "https://images.unsplash.com/photo-1580489944761-15a19d654956",
			Bio:       "Food Blogger | Exploring street food across India 🍽️",
			Location:  "Kolkata, India",
			Website:   "nehaeats.in",
			JoinedAt:  "September 2020",
			Followers: 15700,
			Following: 432,
			Posts:     312,
			Online:    true,
			Email:     "neha@example.com",
			Interests: []string{"Food", "Travel", "Cooking", "Restaurants"},
		},
		{
			ID:        "user5",
			Name:      "Kabir Singh",
			Handle:    "kabirtalks",
			Verified:  true,
			Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
			Bio:       "Movie Critic | Host @FilmTalks | Bollywood enthusiast",
			Location:  "Mumbai, India",
			Website:   "kabirreviews.com",
			JoinedAt:  "April 2018",
			Followers: 32100,
			Following: 215,
			Posts:     423,
			LastSeen:  "5h ago",
			Email:     "kabir@example.com",
			Interests: []string{"Movies", "Bollywood", "Reviews", "Film"},
		},
		{
			ID:        "user8",
			Name:      "Ananya Patel",
			Handle:    "ananyatravels",
			Avatar:    "https://images.unsplash.com/photo-1534528741775-53994a69daeb",
			Bio:       "Travel Blogger | 25 countries and counting ✈️ | Adventure seeker",
			Location:  "Goa, India",
			Website:   "ananyatravels.com",
			JoinedAt:  "October 2019",
			Followers: 22400,
			Following: 387,
			Posts:     276,
			Online:    true,
			Email:     "ananya@example.com",
			Interests: []string{"Travel", "Blogging", "Adventure", "Photography"},
		},
	}
}

func seedPosts() []models.Post {
	return []models.Post{
		{
			ID: "1",
			Author: models.Author{
				ID: "user1", Name: "Rohan Mehta", Handle: "rohanmehta", Verified: true,
				Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
			},
			Content:   "AI is the future, but are we ready for it? 🤖 #AI #Tech",
			Images:    []string{"https://images.unsplash.com/photo-1677442135136-760c813dce26"},
			Likes:     245,
			Comments:  32,
			Shares:    12,
			Timestamp: "2h ago",
			Location:  "Mumbai, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 180},
				{Kind: models.ReactionLove, Count: 45},
				{Kind: models.ReactionWow, Count: 20},
			},
		},
		{
			ID: "2",
			Author: models.Author{
				ID: "user2", Name: "Priya Sharma", Handle: "priyastyles", Verified: true,
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			},
			Content: "New ethnic collection launch! ✨ Who's excited? #IndianFashion",
			Images: []string{
				"https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b",
				"https://images.unsplash.com/photo-1614886137468-5890a0dd4bf5",
			},
			Likes:     532,
			Comments:  78,
			Shares:    45,
			Timestamp: "4h ago",
			Location:  "Delhi, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 420},
				{Kind: models.ReactionLove, Count: 80},
				{Kind: models.ReactionWow, Count: 32},
			},
		},
		{
			ID: "3",
			Author: models.Author{
				ID: "user3", Name: "Aryan Gupta", Handle: "aryanfit",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			},
			Content:   "Monday Motivation 💪 Never skip leg day! #Fitness #GymLife",
			Images:    []string{"https://images.unsplash.com/photo-1517836357463-d25dfeac3438"},
			Likes:     189,
			Comments:  23,
			Shares:    5,
			Timestamp: "6h ago",
			Location:  "Bangalore, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 150},
				{Kind: models.ReactionLove, Count: 10},
				{Kind: models.ReactionHaha, Count: 5},
			},
		},
		{
			ID: "4",
			Author: models.Author{
				ID: "user4", Name: "Neha Verma", Handle: "nehaeats",
				Avatar: "https://images.unsplash.com/photo-1580489944761-15a19d654956",
			},
			Content:   "Best Pani Puri in Kolkata? 🔥 Find out in my new post! #StreetFood",
			Images:    []string{"https://images.unsplash.com/photo-1601050690597-df0568f70950"},
			Likes:     312,
			Comments:  56,
			Shares:    18,
			Timestamp: "8h ago",
			Location:  "Kolkata, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 280},
				{Kind: models.ReactionLove, Count: 20},
				{Kind: models.ReactionWow, Count: 12},
			},
		},
		{
			ID: "5",
			Author: models.Author{
				ID: "user5", Name: "Kabir Singh", Handle: "kabirtalks", Verified: true,
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
			},
			Content:   "Just watched the new Shah Rukh Khan movie. Absolutely brilliant performance! What did you all think? #Bollywood #MovieReview",
			Images:    []string{"https://images.unsplash.com/photo-1536440136628-849c177e76a1"},
			Likes:     421,
			Comments:  87,
			Shares:    32,
			Timestamp: "1d ago",
			Location:  "Mumbai, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 350},
				{Kind: models.ReactionLove, Count: 50},
				{Kind: models.ReactionWow, Count: 21},
			},
		},
		{
			ID: "7",
			Author: models.Author{
				ID: "user8", Name: "Ananya Patel", Handle: "ananyatravels",
				Avatar: "https://images.unsplash.com/photo-1534528741775-53994a69daeb",
			},
			Content: "The breathtaking views of Ladakh! 🏔️ This trip was absolutely life-changing. #Travel #Ladakh #Wanderlust",
			Images: []string{
				"https://images.unsplash.com/photo-1537524482290-5a36d49ab04a",
				"https://images.unsplash.com/photo-1518002054494-3a6f94352e9d",
			},
			Likes:     876,
			Comments:  124,
			Shares:    76,
			Timestamp: "2d ago",
			Location:  "Ladakh, India",
			Reactions: []models.Reaction{
				{Kind: models.ReactionLike, Count: 700},
				{Kind: models.ReactionLove, Count: 126},
				{Kind: models.ReactionWow, Count: 50},
			},
		},
	}
}

func seedComments() []models.Comment {
	return []models.Comment{
		{
			ID:     "c1",
			PostID: "1",
			Author: models.Author{
				ID: "user2", Name: "Priya Sharma", Handle: "priyastyles", Verified: true,
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			},
			Content:   "This is amazing! Love the colors in this 😍",
			Timestamp: "2h ago",
			Likes:     24,
			Replies: []models.Comment{
				{
					ID:     "r1",
					PostID: "1",
					Author: models.Author{
						ID: "user1", Name: "Rohan Mehta", Handle: "rohanmehta", Verified: true,
						Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36",
					},
					Content:   "Thank you so much! I'm glad you like it 🙏",
					Timestamp: "1h ago",
					Likes:     5,
				},
			},
		},
		{
			ID:     "c2",
			PostID: "2",
			Author: models.Author{
				ID: "user5", Name: "Kabir Singh", Handle: "kabirtalks", Verified: true,
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
			},
			Content:   "The collection looks stunning, congratulations on the launch!",
			Timestamp: "3h ago",
			Likes:     11,
		},
	}
}

func seedStories() []models.Story {
	return []models.Story{
		{
			ID: "story2",
			Author: models.Author{
				ID: "user2", Name: "Priya Sharma", Handle: "priyastyles",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
			},
			Media: []models.StoryMedia{
				{Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1583391733956-3750e0ff4e8b"},
				{Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1614886137468-5890a0dd4bf5"},
			},
			Timestamp: "2h ago",
			Likes:     245,
			ViewCount: 1024,
		},
		{
			ID: "story3",
			Author: models.Author{
				ID: "user3", Name: "Aryan Gupta", Handle: "aryanfit",
				Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
			},
			Media: []models.StoryMedia{
				{Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1517836357463-d25dfeac3438"},
			},
			Timestamp: "4h ago",
			Likes:     189,
			ViewCount: 876,
		},
		{
			ID: "story4",
			Author: models.Author{
				ID: "user4", Name: "Neha Verma", Handle: "nehaeats",
				Avatar: "https://images.unsplash.com/photo-1580489944761-15a19d654956",
			},
			Seen: true,
			Media: []models.StoryMedia{
				{Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1601050690597-df0568f70950"},
			},
			Timestamp: "8h ago",
			Likes:     312,
			ViewCount: 1532,
		},
		{
			ID: "story5",
			Author: models.Author{
				ID: "user5", Name: "Kabir Singh", Handle: "kabirtalks",
				Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
			},
			Media: []models.StoryMedia{
				{Type: models.MediaImage, URL: "https://images.unsplash.com/photo-1536440136628-849c177e76a1"},
			},
			Timestamp: "1d ago",
			Likes:     421,
			ViewCount: 1876,
		},
	}
}

func seedChats() []models.Chat {
	return []models.Chat{
		{
			ID: "chat1",
			Contact: models.Contact{
				ID: "user2", Name: "Priya Sharma", Handle: "priyastyles",
				Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
				Online: true,
			},
			Messages: []models.Message{
				{
					ID:        "m1",
					Content:   "Hey! Did you see the new collection?",
					Sender:    models.SenderContact,
					Timestamp: "10:24 AM",
				},
				{
					ID:        "m2",
					Content:   "Not yet, send me the link!",
					Sender:    models.SenderSelf,
					Timestamp: "10:26 AM",
					Status:    models.StatusRead,
				},
				{
					ID:        "m3",
					Content:   "priyastyles.in/new — let me know what you think ✨",
					Sender:    models.SenderContact,
					Timestamp: "10:27 AM",
				},
			},
			Unread: 1,
		},
		{
			ID: "chat2",
			Contact: models.Contact{
				ID: "user3", Name: "Aryan Gupta", Handle: "aryanfit",
				Avatar:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
				LastSeen: "2h ago",
			},
			Messages: []models.Message{
				{
					ID:        "m4",
					Content:   "Gym at 6 tomorrow?",
					Sender:    models.SenderSelf,
					Timestamp: "Yesterday",
					Status:    models.StatusDelivered,
				},
			},
		},
	}
}
