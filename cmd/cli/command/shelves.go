package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/cmd/cli/cache"
	"libraryhub/internal/http-api/dto"
)

var shelvesCmd = &cobra.Command{
	Use:   "shelves",
	Short: "Manage your shelves",
}

var (
	shelfIncludeBooks bool
	shelfLocation     string
	shelfColor        string
)

var shelvesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your shelves",
	Run: func(cmd *cobra.Command, args []string) {
		key := fmt.Sprintf("shelves:list:%t", shelfIncludeBooks)

		var shelves []dto.ShelfResponse
		if !queryCache.Get(key, &shelves) {
			var err error
			shelves, err = httpClient.ListShelves(shelfIncludeBooks)
			if err != nil {
				fmt.Println("Failed to fetch shelves:", err)
				return
			}
			queryCache.Set(key, shelves, cache.TagShelves)
		}

		if len(shelves) == 0 {
			fmt.Println("🗄  No shelves yet")
			return
		}

		for i, s := range shelves {
			fmt.Printf("%d. %s (%d books, %d movies) (ID: %s)\n",
				i+1, s.Name, s.BookCount, s.MovieCount, s.ID)
			if s.Location != nil {
				fmt.Printf("   Location: %s\n", *s.Location)
			}
			for _, b := range s.Books {
				fmt.Printf("   - %s by %s\n", b.Title, b.Author)
			}
		}
	},
}

var shelvesGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a shelf with its books",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := "shelves:get:" + args[0]

		var shelf dto.ShelfResponse
		if !queryCache.Get(key, &shelf) {
			resp, err := httpClient.GetShelf(args[0])
			if err != nil {
				fmt.Println("Failed to fetch shelf:", err)
				return
			}
			shelf = *resp
			queryCache.Set(key, shelf, cache.TagShelves)
		}

		fmt.Printf("%s (%d books, %d movies)\n", shelf.Name, shelf.BookCount, shelf.MovieCount)
		for _, b := range shelf.Books {
			fmt.Printf("- %s by %s\n", b.Title, b.Author)
		}
	},
}

var shelvesCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a shelf",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.CreateShelfRequest{Name: args[0]}
		if shelfLocation != "" {
			req.Location = &shelfLocation
		}
		if shelfColor != "" {
			req.Color = &shelfColor
		}

		shelf, err := httpClient.CreateShelf(req)
		if err != nil {
			fmt.Println("Failed to create shelf:", err)
			return
		}

		queryCache.InvalidateFor("shelves/create")
		fmt.Printf("✅ Created shelf %q (ID: %s)\n", shelf.Name, shelf.ID)
	},
}

var shelvesUpdateCmd = &cobra.Command{
	Use:   "update [id] [name]",
	Short: "Update a shelf",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.UpdateShelfRequest{Name: args[1]}
		if shelfLocation != "" {
			req.Location = &shelfLocation
		}
		if shelfColor != "" {
			req.Color = &shelfColor
		}

		shelf, err := httpClient.UpdateShelf(args[0], req)
		if err != nil {
			fmt.Println("Failed to update shelf:", err)
			return
		}

		queryCache.InvalidateFor("shelves/update")
		fmt.Printf("✅ Updated shelf %q\n", shelf.Name)
	},
}

var shelvesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a shelf (books and movies keep existing, unshelved)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.DeleteShelf(args[0]); err != nil {
			fmt.Println("Failed to delete shelf:", err)
			return
		}

		queryCache.InvalidateFor("shelves/delete")
		fmt.Println("✅ Shelf deleted")
	},
}

func init() {
	shelvesListCmd.Flags().BoolVar(&shelfIncludeBooks, "include-books", false, "include books per shelf")

	for _, c := range []*cobra.Command{shelvesCreateCmd, shelvesUpdateCmd} {
		c.Flags().StringVar(&shelfLocation, "location", "", "physical location")
		c.Flags().StringVar(&shelfColor, "color", "", "display color")
	}

	shelvesCmd.AddCommand(shelvesListCmd)
	shelvesCmd.AddCommand(shelvesGetCmd)
	shelvesCmd.AddCommand(shelvesCreateCmd)
	shelvesCmd.AddCommand(shelvesUpdateCmd)
	shelvesCmd.AddCommand(shelvesDeleteCmd)
	rootCmd.AddCommand(shelvesCmd)
}
