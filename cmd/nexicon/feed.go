package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/context"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/output"
)

var findType string

func init() {
	findCmd.Flags().StringVar(&findType, "type", "posts", "Search type: posts or users")

	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(suggestCmd)
}

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "View the feed, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		posts := getStore().Posts()
		limit := limitOrDefault(20)
		if len(posts) > limit {
			posts = posts[:limit]
		}

		if len(posts) == 0 {
			if !flagQuiet {
				out.Println("Feed is empty")
			}
			return
		}

		// Point 'this' at the top post
		context.Set(posts[0].ID, "post")

		if flagJSON {
			out.Success(map[string]any{"posts": posts})
			return
		}

		for i := range posts {
			renderPost(out, &posts[i])
			if i < len(posts)-1 {
				out.Println()
			}
		}
	},
}

var readCmd = &cobra.Command{
	Use:   "read <post-id|this>",
	Short: "Read a post and its comments",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		postID, _, err := context.ResolveTarget(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		post, ok := st.Post(postID)
		if !ok {
			out.Error(fmt.Errorf("post %s not found", postID))
			os.Exit(1)
		}

		context.Set(post.ID, "post")

		comments := st.CommentsForPost(post.ID)

		if flagJSON {
			out.Success(map[string]any{"post": post, "comments": comments})
			return
		}

		renderPost(out, &post)
		if len(comments) > 0 {
			out.Println()
			out.Printf("Comments (%d):\n", len(comments))
			for i := range comments {
				renderComment(out, &comments[i])
			}
		}
	},
}

var findCmd = &cobra.Command{
	Use:   "find <query>",
	Short: "Search posts or users",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		query := strings.Join(args, " ")
		st.SetSearchQuery(query)
		limit := limitOrDefault(20)

		switch findType {
		case "users":
			users := st.SearchUsers(query)
			if len(users) > limit {
				users = users[:limit]
			}
			if flagJSON {
				out.Success(map[string]any{"users": users})
				return
			}
			if len(users) == 0 {
				out.Println("No users found")
				return
			}
			for i := range users {
				renderUser(out, &users[i])
			}
		default:
			posts := st.SearchPosts(query)
			if len(posts) > limit {
				posts = posts[:limit]
			}
			if flagJSON {
				out.Success(map[string]any{"posts": posts})
				return
			}
			if len(posts) == 0 {
				out.Println("No posts found")
				return
			}
			for i := range posts {
				renderPost(out, &posts[i])
				if i < len(posts)-1 {
					out.Println()
				}
			}
		}
	},
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show trending hashtags",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		topics := getStore().TrendingTopics(limitOrDefault(5))

		if flagJSON {
			out.Success(map[string]any{"topics": topics})
			return
		}

		if len(topics) == 0 {
			out.Println("Nothing is trending right now")
			return
		}

		rows := make([][]string, 0, len(topics))
		for i, t := range topics {
			rows = append(rows, []string{fmt.Sprintf("%d", i+1), t.Topic, fmt.Sprintf("%d", t.Posts)})
		}
		out.Table([]string{"#", "TOPIC", "POSTS"}, rows)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest users to follow",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		users := getStore().SuggestedUsers(limitOrDefault(5))

		if flagJSON {
			out.Success(map[string]any{"users": users})
			return
		}

		if len(users) == 0 {
			out.Println("No suggestions available")
			return
		}

		for i := range users {
			renderUser(out, &users[i])
		}
	},
}

func renderPost(out *output.Printer, post *models.Post) {
	if out.IsRaw() {
		out.Printf("%s\n", post.Content)
		return
	}

	author := fmt.Sprintf("@%s", post.Author.Handle)
	if post.Author.Name != "" {
		author = fmt.Sprintf("%s (@%s)", post.Author.Name, post.Author.Handle)
	}

	out.Printf("%s • %s • %s\n", post.ID, author, post.Timestamp)
	out.Println(post.Content)

	if post.Location != "" {
		out.Printf("  at %s\n", post.Location)
	}

	marks := ""
	if post.Liked {
		marks += " ♥"
	}
	if post.Saved {
		marks += " ⚑"
	}
	out.Printf("  %d likes · %d comments · %d shares%s\n", post.Likes, post.Comments, post.Shares, marks)

	if len(post.Reactions) > 0 {
		parts := make([]string, 0, len(post.Reactions))
		for _, r := range post.Reactions {
			parts = append(parts, fmt.Sprintf("%s %d", r.Kind, r.Count))
		}
		out.Printf("  %s\n", strings.Join(parts, " · "))
	}
}

func renderUser(out *output.Printer, user *models.User) {
	if out.IsRaw() {
		out.Printf("@%s\n", user.Handle)
		return
	}

	badge := ""
	if user.Verified {
		badge = " ✓"
	}
	out.Printf("@%s%s - %s\n", user.Handle, badge, user.Name)
	if user.Bio != "" {
		out.Printf("  %s\n", user.Bio)
	}
	out.Printf("  %d followers · %d following · %d posts\n", user.Followers, user.Following, user.Posts)
}

func renderComment(out *output.Printer, c *models.Comment) {
	liked := ""
	if c.Liked {
		liked = " ♥"
	}
	out.Printf("  %s @%s: %s (%d likes%s)\n", c.ID, c.Author.Handle, c.Content, c.Likes, liked)
	for i := range c.Replies {
		r := &c.Replies[i]
		out.Printf("    ↳ %s @%s: %s\n", r.ID, r.Author.Handle, r.Content)
	}
}
