package command

// friends.go covers the friend graph commands. Friend and request reads are
// deliberately uncached; the friend graph changes out from under a single
// user, unlike their own catalogue.

import (
	"fmt"

	"github.com/spf13/cobra"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "Manage your friends",
}

var friendsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your friends",
	Run: func(cmd *cobra.Command, args []string) {
		friends, err := httpClient.ListFriends()
		if err != nil {
			fmt.Println("Failed to fetch friends:", err)
			return
		}

		if len(friends) == 0 {
			fmt.Println("👥 No friends yet")
			return
		}

		for _, f := range friends {
			fmt.Printf("- %s <%s> (ID: %s), friends since %s\n",
				f.Name, f.Email, f.UserID, f.FriendsSince.Format("2006-01-02"))
		}
	},
}

var friendsRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List pending friend requests addressed to you",
	Run: func(cmd *cobra.Command, args []string) {
		requests, err := httpClient.ListFriendRequests()
		if err != nil {
			fmt.Println("Failed to fetch requests:", err)
			return
		}

		if len(requests) == 0 {
			fmt.Println("📭 No pending requests")
			return
		}

		for _, r := range requests {
			fmt.Printf("- %s wants to be friends (request ID: %s)\n", r.RequesterName, r.ID)
		}
	},
}

var friendsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search users by name or email",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		users, err := httpClient.SearchUsers(args[0])
		if err != nil {
			fmt.Println("Search failed:", err)
			return
		}

		if len(users) == 0 {
			fmt.Println("No users found")
			return
		}

		for _, u := range users {
			marker := ""
			if u.IsFriend {
				marker = " (friend)"
			} else if u.HasPendingRequest {
				marker = " (request pending)"
			}
			fmt.Printf("- %s <%s>%s (ID: %s)\n", u.Name, u.Email, marker, u.ID)
		}
	},
}

var friendsAddCmd = &cobra.Command{
	Use:   "add [user_id]",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		friendship, err := httpClient.SendFriendRequest(args[0])
		if err != nil {
			fmt.Println("Failed to send request:", err)
			return
		}

		fmt.Printf("✅ Request sent to %s\n", friendship.AddresseeName)
	},
}

var friendsAcceptCmd = &cobra.Command{
	Use:   "accept [request_id]",
	Short: "Accept a pending friend request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		friendship, err := httpClient.AcceptFriendRequest(args[0])
		if err != nil {
			fmt.Println("Failed to accept request:", err)
			return
		}

		fmt.Printf("✅ You are now friends with %s\n", friendship.RequesterName)
	},
}

var friendsRejectCmd = &cobra.Command{
	Use:   "reject [request_id]",
	Short: "Reject a pending friend request",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.RejectFriendRequest(args[0]); err != nil {
			fmt.Println("Failed to reject request:", err)
			return
		}

		fmt.Println("Request rejected")
	},
}

var friendsRemoveCmd = &cobra.Command{
	Use:   "remove [user_id]",
	Short: "Remove a friend",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.RemoveFriend(args[0]); err != nil {
			fmt.Println("Failed to remove friend:", err)
			return
		}

		fmt.Println("Friend removed")
	},
}

func init() {
	friendsCmd.AddCommand(friendsListCmd)
	friendsCmd.AddCommand(friendsRequestsCmd)
	friendsCmd.AddCommand(friendsSearchCmd)
	friendsCmd.AddCommand(friendsAddCmd)
	friendsCmd.AddCommand(friendsAcceptCmd)
	friendsCmd.AddCommand(friendsRejectCmd)
	friendsCmd.AddCommand(friendsRemoveCmd)
	rootCmd.AddCommand(friendsCmd)
}
