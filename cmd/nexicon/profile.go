package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

var (
	profName     string
	profBio      string
	profLocation string
	profWebsite  string
	profAvatar   string
	profCover    string
)

func init() {
	profileEditCmd.Flags().StringVar(&profName, "name", "", "Display name")
	profileEditCmd.Flags().StringVar(&profBio, "bio", "", "Profile bio")
	profileEditCmd.Flags().StringVar(&profLocation, "location", "", "Location")
	profileEditCmd.Flags().StringVar(&profWebsite, "website", "", "Website URL")
	profileEditCmd.Flags().StringVar(&profAvatar, "avatar", "", "Avatar URL")
	profileEditCmd.Flags().StringVar(&profCover, "cover", "", "Cover image URL")

	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(themeCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile [handle]",
	Short: "Show a profile (yours when no handle is given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		var user models.User
		if len(args) == 1 {
			handle := strings.TrimPrefix(args[0], "@")
			u, ok := st.UserByHandle(handle)
			if !ok {
				out.Error(fmt.Errorf("user @%s not found", handle))
				os.Exit(1)
			}
			user = u
		} else {
			current := requireLogin(out)
			user = *current
		}

		posts := st.PostsByAuthor(user.ID)

		if flagJSON {
			out.Success(map[string]any{"user": user, "posts": posts})
			return
		}

		renderUser(out, &user)
		if user.Location != "" {
			out.Printf("  from %s\n", user.Location)
		}
		if user.Website != "" {
			out.Printf("  %s\n", user.Website)
		}
		if user.JoinedAt != "" {
			out.Printf("  joined %s\n", user.JoinedAt)
		}
		if len(posts) > 0 {
			out.Println()
			out.Printf("Recent posts:\n")
			limit := limitOrDefault(3)
			if len(posts) > limit {
				posts = posts[:limit]
			}
			for i := range posts {
				out.Printf("  %s %s\n", posts[i].ID, posts[i].Content)
			}
		}
	},
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit your profile",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		user := requireLogin(out)

		var upd models.UserUpdate
		changed := false
		if profName != "" {
			upd.Name = &profName
			changed = true
		}
		if profBio != "" {
			upd.Bio = &profBio
			changed = true
		}
		if profLocation != "" {
			upd.Location = &profLocation
			changed = true
		}
		if profWebsite != "" {
			upd.Website = &profWebsite
			changed = true
		}
		if profAvatar != "" {
			upd.Avatar = &profAvatar
			changed = true
		}
		if profCover != "" {
			upd.CoverURL = &profCover
			changed = true
		}
		if !changed {
			out.Error(fmt.Errorf("nothing to change: pass at least one flag"))
			os.Exit(1)
		}

		getStore().UpdateUser(user.ID, upd)

		updated := getStore().CurrentUser()
		if flagJSON {
			out.Success(updated)
			return
		}
		out.Printf("Profile updated\n")
	},
}

var followCmd = &cobra.Command{
	Use:   "follow <handle>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)
		st := getStore()

		handle := strings.TrimPrefix(args[0], "@")
		target, ok := st.UserByHandle(handle)
		if !ok {
			out.Error(fmt.Errorf("user @%s not found", handle))
			os.Exit(1)
		}

		st.FollowUser(target.ID)

		updated, _ := st.User(target.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		out.Printf("Now following @%s (%d followers)\n", updated.Handle, updated.Followers)
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <handle>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)
		st := getStore()

		handle := strings.TrimPrefix(args[0], "@")
		target, ok := st.UserByHandle(handle)
		if !ok {
			out.Error(fmt.Errorf("user @%s not found", handle))
			os.Exit(1)
		}

		st.UnfollowUser(target.ID)

		updated, _ := st.User(target.ID)
		if flagJSON {
			out.Success(updated)
			return
		}
		out.Printf("Unfollowed @%s (%d followers)\n", updated.Handle, updated.Followers)
	},
}

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark|system]",
	Short: "Show or set the theme preference",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		if len(args) == 0 {
			theme := st.ThemePreference()
			if flagJSON {
				out.Success(map[string]string{"theme": theme})
				return
			}
			out.Printf("Theme: %s\n", theme)
			return
		}

		switch args[0] {
		case "light", "dark", "system":
		default:
			out.Error(fmt.Errorf("unknown theme %q", args[0]))
			os.Exit(1)
		}

		st.SetThemePreference(args[0])

		if flagJSON {
			out.Success(map[string]string{"theme": args[0]})
			return
		}
		out.Printf("Theme set to %s\n", args[0])
	},
}
