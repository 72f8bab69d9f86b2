package command

import (
	"fmt"

	"tunahub/cmd/cli/command/client"
	"tunahub/internal/microservices/http-api/dto"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var songCmd = &cobra.Command{
	Use:   "song",
	Short: "Song management commands",
}

var songInput client.SongRequest

func printSong(s *dto.SongResponse) {
	artist := "?"
	if len(s.Artist) > 0 {
		artist = s.Artist[0].Name
	}
	fmt.Printf("ID: %d | %s by %s | Album: %s | %ds\n", s.ID, s.Title, artist, s.Album, s.Length)
	for _, g := range s.Genres {
		fmt.Printf("  #%s\n", g.Description)
	}
}

var listSongsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all songs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		songs, err := newClient().ListSongs(ctx)
		if err != nil {
			return fmt.Errorf("failed to list songs: %w", err)
		}
		if len(songs) == 0 {
			color.Yellow("No songs found.")
			return nil
		}
		for i := range songs {
			printSong(&songs[i])
		}
		return nil
	},
}

var getSongCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one song with its artist and genres",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		s, err := newClient().GetSong(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get song: %w", err)
		}
		printSong(s)
		return nil
	},
}

var createSongCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new song for an existing artist",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireFlags(cmd, "title", "length", "album", "artist"); err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		s, err := newClient().CreateSong(ctx, songInput)
		if err != nil {
			return fmt.Errorf("failed to create song: %w", err)
		}
		color.Green("✓ Song created successfully!")
		printSong(s)
		return nil
	},
}

var updateSongCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace every field of a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := requireFlags(cmd, "title", "length", "album", "artist"); err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().UpdateSong(ctx, id, songInput); err != nil {
			return fmt.Errorf("failed to update song: %w", err)
		}
		color.Green("✓ Song %d updated.", id)
		return nil
	},
}

var deleteSongCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().DeleteSong(ctx, id); err != nil {
			return fmt.Errorf("failed to delete song: %w", err)
		}
		color.Green("✓ Song %d deleted.", id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{createSongCmd, updateSongCmd} {
		c.Flags().StringVar(&songInput.Title, "title", "", "song title")
		c.Flags().IntVar(&songInput.Length, "length", 0, "length in seconds")
		c.Flags().StringVar(&songInput.Album, "album", "", "album name")
		c.Flags().Int64Var(&songInput.Artist, "artist", 0, "artist id")
	}
	songCmd.AddCommand(listSongsCmd, getSongCmd, createSongCmd, updateSongCmd, deleteSongCmd)
}
