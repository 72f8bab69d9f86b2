package command

import (
	"fmt"

	"tunahub/cmd/cli/command/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var songGenreCmd = &cobra.Command{
	Use:   "tag",
	Short: "Link songs and genres",
}

var listTagsCmd = &cobra.Command{
	Use:   "list",
	Short: "List every song/genre link",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()

		links, err := newClient().ListSongGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to list links: %w", err)
		}
		if len(links) == 0 {
			color.Yellow("No links found.")
			return nil
		}
		for _, l := range links {
			fmt.Printf("ID: %d | song %d -> genre %d\n", l.ID, l.Song, l.Genre)
		}
		return nil
	},
}

var addTagCmd = &cobra.Command{
	Use:   "add [song-id] [genre-id]",
	Short: "Tag a song with a genre",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		songID, err := parseID(args[0])
		if err != nil {
			return err
		}
		genreID, err := parseID(args[1])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		link, err := newClient().LinkSongGenre(ctx, client.SongGenreRequest{Song: songID, Genre: genreID})
		if err != nil {
			return fmt.Errorf("failed to tag song: %w", err)
		}
		color.Green("✓ Link %d: song %d -> genre %d", link.ID, link.Song, link.Genre)
		return nil
	},
}

var removeTagCmd = &cobra.Command{
	Use:   "remove [link-id]",
	Short: "Remove a song/genre link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ctx, cancel := commandContext(cmd)
		defer cancel()

		if err := newClient().UnlinkSongGenre(ctx, id); err != nil {
			return fmt.Errorf("failed to remove link: %w", err)
		}
		color.Green("✓ Link %d removed.", id)
		return nil
	},
}

func init() {
	songGenreCmd.AddCommand(listTagsCmd, addTagCmd, removeTagCmd)
}
