package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginPassword  string
	signupName     string
	signupPassword string
)

func init() {
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	signupCmd.Flags().StringVar(&signupName, "name", "", "Display name")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "Account password")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login <handle>",
	Short: "Log in and start a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		handle := strings.TrimPrefix(args[0], "@")
		user, err := getAuth().Login(handle, loginPassword)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(user)
			return
		}
		out.Printf("Logged in as @%s\n", user.Handle)
	},
}

var signupCmd = &cobra.Command{
	Use:   "signup <handle>",
	Short: "Create an account and log in as it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		handle := strings.TrimPrefix(args[0], "@")
		user, err := getAuth().Signup(signupName, handle, signupPassword)
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		if flagJSON {
			out.Success(user)
			return
		}
		out.Printf("Welcome to Nexicon, @%s\n", user.Handle)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()

		getAuth().Logout()

		if flagJSON {
			out.Success(map[string]string{"status": "logged_out"})
			return
		}
		out.Println("Logged out. Your feed data is kept.")
	},
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show session status and unread counters",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		user := st.CurrentUser()
		if user == nil {
			if flagJSON {
				out.Success(map[string]any{"logged_in": false})
				return
			}
			out.Println("Not logged in")
			return
		}

		if flagJSON {
			out.Success(map[string]any{
				"logged_in":            true,
				"user":                 user,
				"unread_messages":      st.UnreadMessages(),
				"unread_notifications": st.UnreadNotifications(),
			})
			return
		}

		out.Printf("Logged in as @%s (%s)\n", user.Handle, user.Name)
		out.Printf("Unread messages: %d\n", st.UnreadMessages())
		out.Printf("Unread notifications: %d\n", st.UnreadNotifications())
	},
}
