package command

import (
	"fmt"

	"tunahub/cmd/cli/command/client"
	"tunahub/internal/microservices/http-api/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var artistCmd = &cobra.Command{
	Use:   "artist",
	Short: "Artist management commands",
}

var artistInput client.ArtistRequest

func printArtist(a *dto.ArtistResponse) {
	fmt.Printf("ID: %d | Name: %s | Age: %d | Songs: %d\n", a.ID, a.Name, a.Age, a.SongsCount)
	if a.Bio != "" {
		fmt.Printf("  %s\n", a.Bio)
	}
	for _, s := range a.Songs {
		fmt.Printf("  - [%d] %s (%s, %ds)\n", s.ID, s.Title, s.Album, s.Length)
	}
}

var listArtistsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all artists",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		artists, err := newClient().ListArtists(ctx)
		if err != nil {
			return fmt.Errorf("failed to list artists: %w", err)
		}
		if len(artists) == 0 {
			color.Yellow("No artists found.")
			return nil
		}
		for i := range artists {
			printArtist(&artists[i])
		}
		return nil
	},
}

var getArtistCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one artist with their songs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		a, err := newClient().GetArtist(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get artist: %w", err)
		}
		printArtist(a)
		return nil
	},
}

var createArtistCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new artist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "name", "age", "bio"); err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		a, err := newClient().CreateArtist(ctx, artistInput)
		if err != nil {
			return fmt.Errorf("failed to create artist: %w", err)
		}
		color.Green("✓ Artist created successfully!")
		printArtist(a)
		return nil
	},
}

var updateArtistCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace every field of an artist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := requireFlags(cmd, "name", "age", "bio"); err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().UpdateArtist(ctx, id, artistInput); err != nil {
			return fmt.Errorf("failed to update artist: %w", err)
		}
		color.Green("✓ Artist %d updated.", id)
		return nil
	},
}

var deleteArtistCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an artist and all of their songs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteArtist(ctx, id); err != nil {
			return fmt.Errorf("failed to delete artist: %w", err)
		}
		color.Green("✓ Artist %d deleted.", id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createArtistCmd, updateArtistCmd} {
		c.Flags().StringVar(&artistInput.Name, "name", "", "artist name")
		c.Flags().IntVar(&artistInput.Age, "age", 0, "artist age")
		c.Flags().StringVar(&artistInput.Bio, "bio", "", "short biography")
	}
	artistCmd.AddCommand(listArtistsCmd, getArtistCmd, createArtistCmd, updateArtistCmd, deleteArtistCmd)
}
