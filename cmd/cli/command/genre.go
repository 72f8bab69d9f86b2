package command

import (
	"fmt"
	"strings"

	"tunahub/cmd/cli/command/client"
	"tunahub/internal/microservices/http-api/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var genreCmd = &cobra.Command{
	Use:   "genre",
	Short: "Genre management commands",
	Long:  `Manage genres: list all genres, create new genres, and see the songs tagged with a genre`,
}

func printGenre(g *dto.GenreResponse) {
	fmt.Printf("ID: %d | %s | Songs: %d\n", g.ID, g.Description, len(g.Songs))
	for _, s := range g.Songs {
		fmt.Printf("  - [%d] %s (%s)\n", s.ID, s.Title, s.Album)
	}
}

var listGenresCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available genres",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		genres, err := newClient().ListGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get genres: %w", err)
		}

		if len(genres) == 0 {
			color.Yellow("No genres found.")
			return nil
		}

		fmt.Printf("Available genres (%d total):\n\n", len(genres))
		for i := range genres {
			printGenre(&genres[i])
		}
		return nil
	},
}

var getGenreCmd = &cobra.Command{
	Use:   "songs [genre-id]",
	Short: "Get all songs in a specific genre",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		g, err := newClient().GetGenre(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get genre: %w", err)
		}
		printGenre(g)
		return nil
	},
}

var createGenreCmd = &cobra.Command{
	Use:   "create [description]",
	Short: "Create a new genre",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		ctx, cancel := commandContext(cmd)
		defer cancel()

		g, err := newClient().CreateGenre(ctx, client.GenreRequest{Description: description})
		if err != nil {
			return fmt.Errorf("failed to create genre: %w", err)
		}

		color.Green("✓ Genre created successfully!")
		fmt.Printf("ID: %d\n", g.ID)
		fmt.Printf("Description: %s\n", g.Description)
		return nil
	},
}

var renameGenreCmd = &cobra.Command{
	Use:   "rename [genre-id] [description]",
	Short: "Change a genre's description",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		in := client.GenreRequest{Description: strings.Join(args[1:], " ")}
		if err := newClient().UpdateGenre(ctx, id, in); err != nil {
			return fmt.Errorf("failed to update genre: %w", err)
		}
		color.Green("✓ Genre %d updated.", id)
		return nil
	},
}

var deleteGenreCmd = &cobra.Command{
	Use:   "delete [genre-id]",
	Short: "Delete a genre; tagged songs are kept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteGenre(ctx, id); err != nil {
			return fmt.Errorf("failed to delete genre: %w", err)
		}
		color.Green("✓ Genre %d deleted.", id)
		return nil
	},
}

func init() {
	genreCmd.AddCommand(listGenresCmd, getGenreCmd, createGenreCmd, renameGenreCmd, deleteGenreCmd)
}
