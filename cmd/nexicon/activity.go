package main

import (
	"github.com/spf13/cobra"

	"github.com/nexicon/nexicon-cli/pkg/models"
)

var activityUnread bool

func init() {
	activityLsCmd.Flags().BoolVar(&activityUnread, "unread", false, "Only unread notifications")

	rootCmd.AddCommand(activityCmd)
	activityCmd.AddCommand(activityLsCmd)
	activityCmd.AddCommand(activityReadCmd)
}

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Activity notifications",
}

var activityLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List notifications, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		notifications := st.Notifications()
		if activityUnread {
			var unread []models.Notification
			for _, n := range notifications {
				if !n.Read {
					unread = append(unread, n)
				}
			}
			notifications = unread
		}

		limit := limitOrDefault(20)
		if len(notifications) > limit {
			notifications = notifications[:limit]
		}

		if flagJSON {
			out.Success(map[string]any{"notifications": notifications, "unread": st.UnreadNotifications()})
			return
		}

		if len(notifications) == 0 {
			out.Println("No notifications")
			return
		}

		for _, n := range notifications {
			marker := "*"
			if n.Read {
				marker = " "
			}
			out.Printf("%s [%s] @%s %s (%s)\n", marker, n.Type, n.Actor.Handle, n.Content, n.Timestamp)
		}
	},
}

var activityReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Mark all notifications read",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		getStore().MarkNotificationsRead()

		if flagJSON {
			out.Success(map[string]string{"status": "read"})
			return
		}
		out.Println("All notifications marked read")
	},
}
