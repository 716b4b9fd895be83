package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/cmd/cli/cache"
	"libraryhub/internal/http-api/dto"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage your book collection",
}

var (
	bookSearch      string
	bookShelfID     string
	bookAuthor      string
	bookStatus      string
	bookCategoryIDs []string
)

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your books",
	Run: func(cmd *cobra.Command, args []string) {
		key := fmt.Sprintf("books:list:%s:%s", bookSearch, bookShelfID)

		var books []dto.BookResponse
		if !queryCache.Get(key, &books) {
			var err error
			books, err = httpClient.ListBooks(bookSearch, bookShelfID)
			if err != nil {
				fmt.Println("Failed to fetch books:", err)
				return
			}
			queryCache.Set(key, books, cache.TagBooks)
		}

		if len(books) == 0 {
			fmt.Println("📚 No books found")
			return
		}

		fmt.Printf("📚 Your books (%d)\n", len(books))
		for i, b := range books {
			fmt.Printf("%d. %s by %s [%s] (ID: %s)\n", i+1, b.Title, b.Author, b.Status, b.ID)
			if b.ShelfName != nil {
				fmt.Printf("   Shelf: %s\n", *b.ShelfName)
			}
			if len(b.Categories) > 0 {
				fmt.Printf("   Categories: %v\n", b.Categories)
			}
			if b.ReadingProgress != nil {
				fmt.Printf("   Progress: %s (page %d)\n", b.ReadingProgress.Status, b.ReadingProgress.CurrentPage)
			}
		}
	},
}

var booksGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := "books:get:" + args[0]

		var book dto.BookResponse
		if !queryCache.Get(key, &book) {
			resp, err := httpClient.GetBook(args[0])
			if err != nil {
				fmt.Println("Failed to fetch book:", err)
				return
			}
			book = *resp
			queryCache.Set(key, book, cache.TagBooks)
		}

		fmt.Printf("%s by %s\n", book.Title, book.Author)
		fmt.Println("Status:", book.Status)
		fmt.Println("Language:", book.Language)
		if book.PageCount != nil {
			fmt.Println("Pages:", *book.PageCount)
		}
		if book.Description != nil {
			fmt.Println("Description:", *book.Description)
		}
	},
}

var booksCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Add a book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.CreateBookRequest{
			Title:       args[0],
			Author:      bookAuthor,
			Status:      bookStatus,
			CategoryIDs: bookCategoryIDs,
		}
		if bookShelfID != "" {
			req.ShelfID = &bookShelfID
		}

		book, err := httpClient.CreateBook(req)
		if err != nil {
			fmt.Println("Failed to create book:", err)
			return
		}

		queryCache.InvalidateFor("books/create")
		fmt.Printf("✅ Added %q (ID: %s)\n", book.Title, book.ID)
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update [id] [title]",
	Short: "Update a book (full replace, including categories)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.UpdateBookRequest{
			Title:       args[1],
			Author:      bookAuthor,
			Status:      bookStatus,
			CategoryIDs: bookCategoryIDs,
		}
		if bookShelfID != "" {
			req.ShelfID = &bookShelfID
		}

		book, err := httpClient.UpdateBook(args[0], req)
		if err != nil {
			fmt.Println("Failed to update book:", err)
			return
		}

		queryCache.InvalidateFor("books/update")
		fmt.Printf("✅ Updated %q\n", book.Title)
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a book",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.DeleteBook(args[0]); err != nil {
			fmt.Println("Failed to delete book:", err)
			return
		}

		queryCache.InvalidateFor("books/delete")
		fmt.Println("✅ Book deleted")
	},
}

func init() {
	booksListCmd.Flags().StringVar(&bookSearch, "search", "", "search title or author")
	booksListCmd.Flags().StringVar(&bookShelfID, "shelf", "", "filter by shelf id")

	for _, c := range []*cobra.Command{booksCreateCmd, booksUpdateCmd} {
		c.Flags().StringVar(&bookAuthor, "author", "", "author")
		c.Flags().StringVar(&bookStatus, "status", "", "owned|wishlist|borrowed|lent")
		c.Flags().StringVar(&bookShelfID, "shelf", "", "shelf id")
		c.Flags().StringSliceVar(&bookCategoryIDs, "categories", nil, "category ids")
		c.MarkFlagRequired("author")
	}

	booksCmd.AddCommand(booksListCmd)
	booksCmd.AddCommand(booksGetCmd)
	booksCmd.AddCommand(booksCreateCmd)
	booksCmd.AddCommand(booksUpdateCmd)
	booksCmd.AddCommand(booksDeleteCmd)
	rootCmd.AddCommand(booksCmd)
}
