package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/context"
	"github.com/nexicon/nexicon-cli/pkg/models"
	"github.com/nexicon/nexicon-cli/pkg/output"
	"github.com/nexicon/nexicon-cli/pkg/store"
)

var (
	storiesUnseen bool
	storyImages   []string
	storyVideos   []string
	storyCaption  string
	storyMusic    string
)

func init() {
	storyLsCmd.Flags().BoolVar(&storiesUnseen, "unseen", false, "Only stories not yet viewed")
	storyAddCmd.Flags().StringSliceVar(&storyImages, "image", nil, "Image URL (repeatable)")
	storyAddCmd.Flags().StringSliceVar(&storyVideos, "video", nil, "Video URL (repeatable)")
	storyAddCmd.Flags().StringVar(&storyCaption, "caption", "", "Story caption")
	storyAddCmd.Flags().StringVar(&storyMusic, "music", "", "Background track")

	rootCmd.AddCommand(storyCmd)
	storyCmd.AddCommand(storyLsCmd)
	storyCmd.AddCommand(storyViewCmd)
	storyCmd.AddCommand(storyAddCmd)
}

var storyCmd = &cobra.Command{
	Use:   "story",
	Short: "Work with stories",
}

var storyLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List stories",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		var stories []models.Story
		if storiesUnseen {
			stories = st.UnseenStories()
		} else {
			stories = st.Stories()
		}

		if flagJSON {
			out.Success(map[string]any{"stories": stories})
			return
		}

		if len(stories) == 0 {
			out.Println("No stories")
			return
		}

		for i := range stories {
			renderStory(out, &stories[i])
		}
	},
}

var storyViewCmd = &cobra.Command{
	Use:   "view <story-id|this>",
	Short: "View a story and mark it seen",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		storyID, _, err := context.ResolveTarget(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if _, ok := st.Story(storyID); !ok {
			out.Error(fmt.Errorf("story %s not found", storyID))
			os.Exit(1)
		}

		st.ViewStory(storyID)
		context.Set(storyID, "story")

		story, _ := st.Story(storyID)
		if flagJSON {
			out.Success(story)
			return
		}
		renderStory(out, &story)
		for _, m := range story.Media {
			out.Printf("  %s %s\n", m.Type, m.URL)
		}
	},
}

var storyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Publish a story",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		user := requireLogin(out)

		var media []models.StoryMedia
		for _, url := range storyImages {
			media = append(media, models.StoryMedia{Type: models.MediaImage, URL: url, Music: storyMusic})
		}
		for _, url := range storyVideos {
			media = append(media, models.StoryMedia{Type: models.MediaVideo, URL: url, Music: storyMusic})
		}
		if len(media) == 0 {
			out.Error(fmt.Errorf("a story needs at least one --image or --video"))
			os.Exit(1)
		}

		story := models.Story{
			ID:        store.NewID(),
			Author:    models.AuthorSnapshot(user),
			Media:     media,
			Timestamp: "Just now",
			Caption:   storyCaption,
		}
		getStore().AddStory(story)
		context.Set(story.ID, "story")

		if flagJSON {
			out.Success(story)
			return
		}
		out.Printf("Story %s published (%d frames)\n", story.ID, len(story.Media))
	},
}

func renderStory(out *output.Printer, st *models.Story) {
	seen := "unseen"
	if st.Seen {
		seen = "seen"
	}
	caption := st.Caption
	if caption == "" {
		caption = "(no caption)"
	}
	out.Printf("%s • @%s • %s • %s\n", st.ID, st.Author.Handle, st.Timestamp, seen)
	out.Printf("  %s · %d frames · %d views · %d likes\n", caption, len(st.Media), st.ViewCount, st.Likes)
}
