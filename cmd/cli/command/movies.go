package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"libraryhub/cmd/cli/cache"
	"libraryhub/internal/http-api/dto"
)

var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "Manage your movie collection",
}

var (
	movieSearch        string
	movieShelfID       string
	movieDirector      string
	movieStatus        string
	movieCategoryIDs   []string
	progressStatus     string
	progressWatchCount int
)

var moviesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your movies",
	Run: func(cmd *cobra.Command, args []string) {
		key := fmt.Sprintf("movies:list:%s:%s", movieSearch, movieShelfID)

		var movies []dto.MovieResponse
		if !queryCache.Get(key, &movies) {
			var err error
			movies, err = httpClient.ListMovies(movieSearch, movieShelfID)
			if err != nil {
				fmt.Println("Failed to fetch movies:", err)
				return
			}
			queryCache.Set(key, movies, cache.TagMovies)
		}

		if len(movies) == 0 {
			fmt.Println("🎬 No movies found")
			return
		}

		fmt.Printf("🎬 Your movies (%d)\n", len(movies))
		for i, m := range movies {
			fmt.Printf("%d. %s by %s [%s] (ID: %s)\n", i+1, m.Title, m.Director, m.Status, m.ID)
			if m.WatchingProgress != nil {
				fmt.Printf("   Progress: %s, watched %d times\n",
					m.WatchingProgress.Status, m.WatchingProgress.WatchCount)
			}
		}
	},
}

var moviesGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := "movies:get:" + args[0]

		var movie dto.MovieResponse
		if !queryCache.Get(key, &movie) {
			resp, err := httpClient.GetMovie(args[0])
			if err != nil {
				fmt.Println("Failed to fetch movie:", err)
				return
			}
			movie = *resp
			queryCache.Set(key, movie, cache.TagMovies)
		}

		fmt.Printf("%s, directed by %s\n", movie.Title, movie.Director)
		fmt.Println("Status:", movie.Status)
		if movie.Year != nil {
			fmt.Println("Year:", *movie.Year)
		}
		if movie.PersonalRating != nil {
			fmt.Printf("Rating: %.1f/10\n", *movie.PersonalRating)
		}
		if movie.WatchingProgress != nil {
			fmt.Printf("Progress: %s, watched %d times\n",
				movie.WatchingProgress.Status, movie.WatchingProgress.WatchCount)
		}
	},
}

var moviesCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Add a movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.CreateMovieRequest{
			Title:       args[0],
			Director:    movieDirector,
			Status:      movieStatus,
			CategoryIDs: movieCategoryIDs,
		}
		if movieShelfID != "" {
			req.ShelfID = &movieShelfID
		}

		movie, err := httpClient.CreateMovie(req)
		if err != nil {
			fmt.Println("Failed to create movie:", err)
			return
		}

		queryCache.InvalidateFor("movies/create")
		fmt.Printf("✅ Added %q (ID: %s)\n", movie.Title, movie.ID)
	},
}

var moviesUpdateCmd = &cobra.Command{
	Use:   "update [id] [title]",
	Short: "Update a movie (full replace, including categories)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		req := &dto.UpdateMovieRequest{
			Title:       args[1],
			Director:    movieDirector,
			Status:      movieStatus,
			CategoryIDs: movieCategoryIDs,
		}
		if movieShelfID != "" {
			req.ShelfID = &movieShelfID
		}

		movie, err := httpClient.UpdateMovie(args[0], req)
		if err != nil {
			fmt.Println("Failed to update movie:", err)
			return
		}

		queryCache.InvalidateFor("movies/update")
		fmt.Printf("✅ Updated %q\n", movie.Title)
	},
}

var moviesProgressCmd = &cobra.Command{
	Use:   "progress [id]",
	Short: "Update watching progress",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		progress, err := httpClient.UpdateWatchingProgress(args[0], &dto.UpdateWatchingProgressRequest{
			Status:     progressStatus,
			WatchCount: progressWatchCount,
		})
		if err != nil {
			fmt.Println("Failed to update progress:", err)
			return
		}

		queryCache.InvalidateFor("movies/progress")
		fmt.Printf("✅ Progress: %s, watched %d times\n", progress.Status, progress.WatchCount)
	},
}

var moviesDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a movie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := httpClient.DeleteMovie(args[0]); err != nil {
			fmt.Println("Failed to delete movie:", err)
			return
		}

		queryCache.InvalidateFor("movies/delete")
		fmt.Println("✅ Movie deleted")
	},
}

func init() {
	moviesListCmd.Flags().StringVar(&movieSearch, "search", "", "search title or director")
	moviesListCmd.Flags().StringVar(&movieShelfID, "shelf", "", "filter by shelf id")

	for _, c := range []*cobra.Command{moviesCreateCmd, moviesUpdateCmd} {
		c.Flags().StringVar(&movieDirector, "director", "", "director")
		c.Flags().StringVar(&movieStatus, "status", "", "owned|watched|watchlist|lost")
		c.Flags().StringVar(&movieShelfID, "shelf", "", "shelf id")
		c.Flags().StringSliceVar(&movieCategoryIDs, "categories", nil, "category ids")
		c.MarkFlagRequired("director")
	}

	moviesProgressCmd.Flags().StringVar(&progressStatus, "status", "", "not_started|watching|completed|abandoned")
	moviesProgressCmd.Flags().IntVar(&progressWatchCount, "watch-count", 0, "times watched")
	moviesProgressCmd.MarkFlagRequired("status")

	moviesCmd.AddCommand(moviesListCmd)
	moviesCmd.AddCommand(moviesGetCmd)
	moviesCmd.AddCommand(moviesCreateCmd)
	moviesCmd.AddCommand(moviesUpdateCmd)
	moviesCmd.AddCommand(moviesProgressCmd)
	moviesCmd.AddCommand(moviesDeleteCmd)
	rootCmd.AddCommand(moviesCmd)
}
