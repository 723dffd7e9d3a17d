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

var dmMediaImages []string

func init() {
	dmSendCmd.Flags().StringSliceVar(&dmMediaImages, "image", nil, "Attach an image URL (repeatable)")

	rootCmd.AddCommand(dmCmd)
	dmCmd.AddCommand(dmLsCmd)
	dmCmd.AddCommand(dmOpenCmd)
	dmCmd.AddCommand(dmSendCmd)
	dmCmd.AddCommand(dmStatusCmd)
}

var dmCmd = &cobra.Command{
	Use:   "dm",
	Short: "Direct messages",
}

var dmLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List conversations with unread counts",
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		chats := st.Chats()

		if flagJSON {
			out.Success(map[string]any{"chats": chats, "unread": st.UnreadMessages()})
			return
		}

		if len(chats) == 0 {
			out.Println("No conversations")
			return
		}

		for i := range chats {
			renderChat(out, &chats[i])
		}
	},
}

var dmOpenCmd = &cobra.Command{
	Use:   "open <chat-id|this>",
	Short: "Open a conversation (resets its unread counter)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		chatID, _, err := context.ResolveTarget(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		chat, ok := st.Chat(chatID)
		if !ok {
			out.Error(fmt.Errorf("chat %s not found", chatID))
			os.Exit(1)
		}

		st.OpenChat(chat.ID)
		context.Set(chat.ID, "chat")

		opened, _ := st.Chat(chat.ID)
		if flagJSON {
			out.Success(opened)
			return
		}

		out.Printf("Chat with @%s\n", opened.Contact.Handle)
		for i := range opened.Messages {
			renderMessage(out, &opened.Messages[i])
		}
	},
}

var dmSendCmd = &cobra.Command{
	Use:   "send <chat-id|this> <text>",
	Short: "Send a message",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		requireLogin(out)
		st := getStore()

		chatID, _, err := context.ResolveTarget(args[0])
		if err != nil {
			out.Error(err)
			os.Exit(1)
		}

		chat, ok := st.Chat(chatID)
		if !ok {
			out.Error(fmt.Errorf("chat %s not found", chatID))
			os.Exit(1)
		}

		var media []models.Media
		for _, url := range dmMediaImages {
			media = append(media, models.Media{Type: models.MediaImage, URL: url})
		}

		msg := models.Message{
			ID:        store.NewID(),
			Content:   args[1],
			Sender:    models.SenderSelf,
			Timestamp: "Just now",
			Status:    models.StatusSent,
			Media:     media,
		}
		st.AddMessage(chat.ID, msg)
		context.Set(chat.ID, "chat")

		if flagJSON {
			out.Success(msg)
			return
		}
		out.Printf("Sent to @%s (%s)\n", chat.Contact.Handle, msg.ID)
	},
}

var dmStatusCmd = &cobra.Command{
	Use:   "status <chat-id> <message-id> <sent|delivered|read>",
	Short: "Update the delivery status of a message",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		out := getOutputPrinter()
		st := getStore()

		status := models.MessageStatus(args[2])
		switch status {
		case models.StatusSent, models.StatusDelivered, models.StatusRead:
		default:
			out.Error(fmt.Errorf("unknown status %q", args[2]))
			os.Exit(1)
		}

		st.UpdateMessageStatus(args[0], args[1], status)

		if flagJSON {
			out.Success(map[string]string{"chat": args[0], "message": args[1], "status": args[2]})
			return
		}
		out.Printf("Message %s is now %s\n", args[1], status)
	},
}

func renderChat(out *output.Printer, ch *models.Chat) {
	presence := "offline"
	if ch.Contact.Online {
		presence = "online"
	}
	unread := ""
	if ch.Unread > 0 {
		unread = fmt.Sprintf(" · %d unread", ch.Unread)
	}
	out.Printf("%s • @%s (%s)%s\n", ch.ID, ch.Contact.Handle, presence, unread)
	if len(ch.Messages) > 0 {
		last := ch.Messages[len(ch.Messages)-1]
		out.Printf("  last: %s\n", last.Content)
	}
}

func renderMessage(out *output.Printer, msg *models.Message) {
	who := "them"
	if msg.Sender == models.SenderSelf {
		who = "you"
	}
	status := ""
	if msg.Sender == models.SenderSelf && msg.Status != "" {
		status = fmt.Sprintf(" [%s]", msg.Status)
	}
	out.Printf("  %s: %s%s\n", who, msg.Content, status)
}
