package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/cmd/cli/cache"
	"libraryhub/internal/http-api/dto"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage your categories",
}

var categoryColor string

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your categories",
	Run: func(cmd *cobra.Command, args []string) {
		key := "categories:list"

		var categories []dto.CategoryResponse
		if !queryCache.Get(key, &categories) {
			var err error
			categories, err = httpClient.ListCategories()
			if err != nil {
				fmt.Println("Failed to fetch categories:", err)
				return
			}
			queryCache.Set(key, categories, cache.TagCategories)
		}

		if len(categories) == 0 {
			fmt.Println("🏷  No categories yet")
			return
		}

		for _, cat := range categories {
			fmt.Printf("- %s (ID: %s)\n", cat.Name, cat.ID)
		}
	},
}

var categoriesCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.CreateCategoryRequest{Name: args[0]}
		if categoryColor != "" {
			req.Color = &categoryColor
		}

		category, err := httpClient.CreateCategory(req)
		if err != nil {
			fmt.Println("Failed to create category:", err)
			return
		}

		queryCache.InvalidateFor("categories/create")
		fmt.Printf("✅ Created category %q (ID: %s)\n", category.Name, category.ID)
	},
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a category (books and movies keep existing)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.DeleteCategory(args[0]); err != nil {
			fmt.Println("Failed to delete category:", err)
			return
		}

		queryCache.InvalidateFor("categories/delete")
		fmt.Println("✅ Category deleted")
	},
}

func init() {
	categoriesCreateCmd.Flags().StringVar(&categoryColor, "color", "", "display color")

	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesCreateCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)
	rootCmd.AddCommand(categoriesCmd)
}
