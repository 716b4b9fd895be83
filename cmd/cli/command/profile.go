package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/internal/http-api/dto"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update profiles",
}

var (
	profileFirstName string
	profileLastName  string
	profileBio       string
	profilePublic    bool
)

var profileShowCmd = &cobra.Command{
	Use:   "show [user_id]",
	Short: "Show a profile (yours when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var profile *dto.ProfileResponse
		var err error
		if len(args) == 0 {
			profile, err = httpClient.GetMyProfile()
		} else {
			profile, err = httpClient.GetProfile(args[0])
		}
		if err != nil {
			fmt.Println("Failed to fetch profile:", err)
			return
		}

		fmt.Printf("%s %s <%s>\n", profile.FirstName, profile.LastName, profile.Email)
		if profile.Bio != nil {
			fmt.Println("Bio:", *profile.Bio)
		}
		visibility := "private"
		if profile.IsPublicProfile {
			visibility = "public"
		}
		fmt.Println("Visibility:", visibility)
		fmt.Printf("Books: %d | Movies: %d | Friends: %d\n",
			profile.BookCount, profile.MovieCount, profile.FriendCount)
		fmt.Println("Member since:", profile.MemberSince.Format("2006-01-02"))
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.UpdateProfileRequest{
			FirstName:       profileFirstName,
			LastName:        profileLastName,
			IsPublicProfile: profilePublic,
		}
		if profileBio != "" {
			req.Bio = &profileBio
		}

		profile, err := httpClient.UpdateMyProfile(req)
		if err != nil {
			fmt.Println("Failed to update profile:", err)
			return
		}

		fmt.Printf("✅ Profile updated: %s %s\n", profile.FirstName, profile.LastName)
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileFirstName, "first-name", "", "first name")
	profileUpdateCmd.Flags().StringVar(&profileLastName, "last-name", "", "last name")
	profileUpdateCmd.Flags().StringVar(&profileBio, "bio", "", "bio")
	profileUpdateCmd.Flags().BoolVar(&profilePublic, "public", true, "profile visible to everyone")
	profileUpdateCmd.MarkFlagRequired("first-name")
	profileUpdateCmd.MarkFlagRequired("last-name")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
