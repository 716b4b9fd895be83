package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/internal/http-api/dto"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Register, log in and manage your session",
}

var (
	registerFirstName string
	registerLastName  string
)

var authRegisterCmd = &cobra.Command{
	Use:   "register [email] [password]",
	Short: "Create a new account",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := httpClient.Register(&dto.RegisterRequest{
			Email:     args[0],
			Password:  args[1],
			FirstName: registerFirstName,
			LastName:  registerLastName,
		})
		if err != nil {
			fmt.Println("Registration failed:", err)
			return
		}

		storeSession(resp)
		queryCache.InvalidateFor("auth/register")
		fmt.Printf("✅ Registered and logged in as %s %s (%s)\n",
			resp.User.FirstName, resp.User.LastName, resp.User.Email)
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Log in and store the session tokens",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		resp, err := httpClient.Login(&dto.LoginRequest{
			Email:    args[0],
			Password: args[1],
		})
		if err != nil {
			fmt.Println("Login failed:", err)
			return
		}

		storeSession(resp)
		queryCache.InvalidateFor("auth/login")
		fmt.Printf("✅ Logged in as %s %s\n", resp.User.FirstName, resp.User.LastName)
	},
}

var authRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rotate the stored token pair",
	Run: func(cmd *cobra.Command, args []string) {
		if cliConfig.AccessToken == "" || cliConfig.RefreshToken == "" {
			fmt.Println("Not logged in")
			return
		}

		resp, err := httpClient.Refresh(&dto.RefreshTokenRequest{
			AccessToken:  cliConfig.AccessToken,
			RefreshToken: cliConfig.RefreshToken,
		})
		if err != nil {
			fmt.Println("Refresh failed, please log in again:", err)
			return
		}

		storeSession(resp)
		fmt.Println("✅ Session refreshed")
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.Logout(); err != nil {
			fmt.Println("Logout failed:", err)
		}

		cliConfig.AccessToken = ""
		cliConfig.RefreshToken = ""
		cliConfig.UserID = ""
		cliConfig.Email = ""
		if err := saveCLIConfig(cfgFile, cliConfig); err != nil {
			fmt.Println("Failed to clear session:", err)
			return
		}
		queryCache.InvalidateFor("auth/logout")
		fmt.Println("✅ Logged out")
	},
}

var authMeCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := httpClient.Me()
		if err != nil {
			fmt.Println("Failed to fetch user:", err)
			return
		}

		fmt.Printf("%s %s <%s>\n", user.FirstName, user.LastName, user.Email)
		if user.Bio != nil {
			fmt.Println("Bio:", *user.Bio)
		}
	},
}

func storeSession(resp *dto.AuthResponse) {
	cliConfig.AccessToken = resp.AccessToken
	cliConfig.RefreshToken = resp.RefreshToken
	cliConfig.UserID = resp.User.ID
	cliConfig.Email = resp.User.Email
	if err := saveCLIConfig(cfgFile, cliConfig); err != nil {
		fmt.Println("Warning: failed to save session:", err)
	}
	httpClient.SetToken(resp.AccessToken)
}

func init() {
	authRegisterCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
	authRegisterCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name")
	authRegisterCmd.MarkFlagRequired("first-name")
	authRegisterCmd.MarkFlagRequired("last-name")

	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRefreshCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authMeCmd)
	rootCmd.AddCommand(authCmd)
}
