package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/config"
	"github.com/nexicon/nexicon-cli/pkg/context"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

var (
	postLocation string
	editContent  string
	editLocation string
)

func init() {
	postCmd.Flags().StringVar(&postLocation, "location", "", "Location tag")
	editCmd.Flags().StringVar(&editContent, "content", "", "New post content")
	editCmd.Flags().StringVar(&editLocation, "location", "", "New location tag")

	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(reactCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(commentCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentLikeCmd)
	commentCmd.AddCommand(commentReplyCmd)
	commentCmd.AddCommand(commentEditCmd)
	commentCmd.AddCommand(commentRmCmd)
}

var postCmd = &cobra.Command{
	Use:   "post [text|-]",
	Short: "Create a new post",
	Long:  "Publish a new post to the top of the feed. Use '-' to read from stdin",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		user := requireLogin(out)

		var content string
		var err error
		if len(args) == 0 || args[0] == "-" {
			content, err = getStdinInput()
			if err != nil {
				out.Error(fmt.Errorf("read stdin: %w", err))
				os.Exit(1)
			}
		} else {
			content = args[0]
		}

		content = strings.TrimSpace(content)
		if content == "" {
			out.Error(fmt.Errorf("post content cannot be empty"))
			os.Exit(1)
		}

		post := models.Post{
			ID:        store.NewID(),
			Author:    models.AuthorSnapshot(user),
			Content:   content,
			Timestamp: "Just now",
			Location:  postLocation,
		}
		getStore().AddPost(post)
		context.Set(post.ID, "post")

		if flagJSON {
			out.Success(post)
			return
		}
		out.Printf("Posted %s\n", post.ID)
	},
}

var likeCmd = &cobra.Command{
	Use:   "like <post-id|this>",
	Short: "Toggle the like on a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		post := resolvePost(args[0])
		getStore().LikePost(post.ID)

		updated, _ := getStore().Post(post.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		if updated.Liked {
			out.Printf("Liked %s (%d likes)\n", updated.ID, updated.Likes)
		} else {
			out.Printf("Unliked %s (%d likes)\n", updated.ID, updated.Likes)
		}
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <post-id|this>",
	Short: "Toggle the bookmark on a post",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		post := resolvePost(args[0])
		getStore().SavePost(post.ID)

		updated, _ := getStore().Post(post.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		if updated.Saved {
			out.Printf("Saved %s\n", updated.ID)
		} else {
			out.Printf("Removed bookmark from %s\n", updated.ID)
		}
	},
}

var reactCmd = &cobra.Command{
	Use:   "react <post-id|this> [kind]",
	Short: "React to a post (like, love, haha, wow, sad, angry)",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		kind := ""
		if len(args) == 2 {
			kind = args[1]
		} else if v, err := config.Get("reaction.default"); err == nil {
			kind = v
		}
		if !models.ValidReaction(models.ReactionKind(kind)) {
			out.Error(fmt.Errorf("unknown reaction kind %q", kind))
			os.Exit(1)
		}

		post := resolvePost(args[0])
		getStore().ReactToPost(post.ID, models.ReactionKind(kind))

		updated, _ := getStore().Post(post.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		out.Printf("Reacted %s to %s\n", kind, updated.ID)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <post-id|this>",
	Short: "Edit one of your posts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		if editContent == "" && editLocation == "" {
			out.Error(fmt.Errorf("nothing to change: pass --content or --location"))
			os.Exit(1)
		}

		post := resolvePost(args[0])

		var upd models.PostUpdate
		if editContent != "" {
			upd.Content = &editContent
		}
		if editLocation != "" {
			upd.Location = &editLocation
		}
		getStore().UpdatePost(post.ID, upd)

		updated, _ := getStore().Post(post.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		out.Printf("Updated %s\n", updated.ID)
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <post-id|this>",
	Short: "Delete one of your posts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		post := resolvePost(args[0])
		if !flagYes && !confirm(fmt.Sprintf("Delete post %s?", post.ID)) {
			out.Println("Aborted")
			return
		}

		getStore().DeletePost(post.ID)
		context.Clear()

		if flagJSON {
			out.Success(map[string]string{"deleted": post.ID})
			return
		}
		out.Printf("Deleted %s\n", post.ID)
	},
}

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Work with comments",
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id|this> <text>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		user := requireLogin(out)

		post := resolvePost(args[0])

		comment := models.Comment{
			ID:        store.NewID(),
			PostID:    post.ID,
			Author:    models.AuthorSnapshot(user),
			Content:   args[1],
			Timestamp: "Just now",
		}
		getStore().AddComment(comment)

		if flagJSON {
			out.Success(comment)
			return
		}
		out.Printf("Commented on %s (%s)\n", post.ID, comment.ID)
	},
}

var commentLikeCmd = &cobra.Command{
	Use:   "like <comment-id>",
	Short: "Toggle the like on a comment or reply",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		getStore().LikeComment(args[0])

		if flagJSON {
			out.Success(map[string]string{"comment": args[0]})
			return
		}
		out.Printf("Toggled like on %s\n", args[0])
	},
}

var commentReplyCmd = &cobra.Command{
	Use:   "reply <comment-id> <text>",
	Short: "Reply to a top-level comment",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		user := requireLogin(out)

		parent := findComment(args[0])
		if parent == nil {
			out.Error(fmt.Errorf("comment %s not found", args[0]))
			os.Exit(1)
		}

		reply := models.Comment{
			ID:        store.NewID(),
			PostID:    parent.PostID,
			Author:    models.AuthorSnapshot(user),
			Content:   args[1],
			Timestamp: "Just now",
		}
		getStore().ReplyToComment(parent.ID, reply)

		if flagJSON {
			out.Success(reply)
			return
		}
		out.Printf("Replied to %s (%s)\n", parent.ID, reply.ID)
	},
}

var commentEditCmd = &cobra.Command{
	Use:   "edit <comment-id> <text>",
	Short: "Edit a comment or reply",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		getStore().UpdateComment(args[0], args[1])

		if flagJSON {
			out.Success(map[string]string{"comment": args[0]})
			return
		}
		out.Printf("Updated %s\n", args[0])
	},
}

var commentRmCmd = &cobra.Command{
	Use:   "rm <comment-id>",
	Short: "Delete a comment or reply",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)

		getStore().DeleteComment(args[0])

		if flagJSON {
			out.Success(map[string]string{"deleted": args[0]})
			return
		}
		out.Printf("Deleted %s\n", args[0])
	},
}

// resolvePost resolves 'this' or an explicit ID to an existing post, or exits.
func resolvePost(target string) models.Post {
	out := getOutputPrinter()

	postID, _, err := context.ResolveTarget(target)
	if err != nil {
		out.Error(err)
		os.Exit(1)
	}

	post, ok := getStore().Post(postID)
	if !ok {
		out.Error(fmt.Errorf("post %s not found", postID))
		os.Exit(1)
	}
	return post
}

// findComment looks up a top-level comment by ID.
func findComment(id string) *models.Comment {
	for _, c := range getStore().Comments() {
		if c.ID == id {
			return &c
		}
	}
	return nil
}

func getStdinInput() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func confirm(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
