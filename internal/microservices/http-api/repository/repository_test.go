package repository_test

import (
	"context"
	"errors"
	"testing"

	"tunahub/internal/microservices/http-api/models"
	"tunahub/internal/microservices/http-api/repository"
	"tunahub/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repos struct {
	artists    *repository.ArtistRepo
	songs      *repository.SongRepo
	genres     *repository.GenreRepo
	songGenres *repository.SongGenreRepo
}

func setupRepos(t *testing.T) repos {
	db := testutil.NewDB(t)
	return repos{
		artists:    repository.NewArtistRepo(db),
		songs:      repository.NewSongRepo(db),
		genres:     repository.NewGenreRepo(db),
		songGenres: repository.NewSongGenreRepo(db),
	}
}

// seed creates one artist with one song tagged with one genre.
func seed(t *testing.T, r repos) (*models.Artist, *models.Song, *models.Genre, *models.SongGenre) {
	ctx := context.Background()

	a := &models.Artist{Name: "A", Age: 30, Bio: "b"}
	require.NoError(t, r.artists.Create(ctx, a))
	s := &models.Song{Title: "T", Length: 200, Album: "Al", ArtistID: a.ID}
	require.NoError(t, r.songs.Create(ctx, s))
	g := &models.Genre{Description: "Rock"}
	require.NoError(t, r.genres.Create(ctx, g))
	sg := &models.SongGenre{SongID: s.ID, GenreID: g.ID}
	require.NoError(t, r.songGenres.Create(ctx, sg))
	return a, s, g, sg
}

func TestArtistRepo_CRUD(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	a := &models.Artist{Name: "Nina", Age: 41, Bio: "jazz"}
	require.NoError(t, r.artists.Create(ctx, a))
	assert.NotZero(t, a.ID)

	got, err := r.artists.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nina", got.Name)
	assert.Empty(t, got.Songs)

	require.NoError(t, r.artists.Update(ctx, a.ID, &models.Artist{Name: "Nina S", Age: 42, Bio: "soul"}))
	got, err = r.artists.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nina S", got.Name)
	assert.Equal(t, 42, got.Age)
	assert.Equal(t, "soul", got.Bio)

	ok, err := r.artists.Exists(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, r.artists.Delete(ctx, a.ID))
	_, err = r.artists.GetByID(ctx, a.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestRepos_MissingRows(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	assert.ErrorIs(t, r.artists.Update(ctx, 99999, &models.Artist{Name: "x"}), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.artists.Delete(ctx, 99999), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.songs.Delete(ctx, 99999), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.genres.Update(ctx, 99999, &models.Genre{Description: "x"}), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, r.songGenres.Delete(ctx, 99999), gorm.ErrRecordNotFound)

	_, err := r.songs.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	ok, err := r.genres.Exists(ctx, 99999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSongRepo_PreloadsRelations(t *testing.T) {
	r := setupRepos(t)
	a, s, g, _ := seed(t, r)

	got, err := r.songs.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.Artist.ID)
	assert.Equal(t, "A", got.Artist.Name)
	require.Len(t, got.SongGenres, 1)
	assert.Equal(t, g.ID, got.SongGenres[0].Genre.ID)
	assert.Equal(t, "Rock", got.SongGenres[0].Genre.Description)
}

func TestSongRepo_UpdateRepointsArtist(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, s, _, _ := seed(t, r)

	other := &models.Artist{Name: "B", Age: 25, Bio: "c"}
	require.NoError(t, r.artists.Create(ctx, other))

	require.NoError(t, r.songs.Update(ctx, s.ID, &models.Song{Title: "T2", Length: 180, Album: "Al2", ArtistID: other.ID}))

	got, err := r.songs.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "T2", got.Title)
	assert.Equal(t, 180, got.Length)
	assert.Equal(t, "Al2", got.Album)
	assert.Equal(t, other.ID, got.ArtistID)
	assert.Equal(t, "B", got.Artist.Name)
}

func TestGenreRepo_PreloadsSongs(t *testing.T) {
	r := setupRepos(t)
	_, s, g, _ := seed(t, r)

	got, err := r.genres.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.Len(t, got.SongGenres, 1)
	assert.Equal(t, s.ID, got.SongGenres[0].Song.ID)
	assert.Equal(t, "T", got.SongGenres[0].Song.Title)
}

func TestDeleteArtist_CascadesSongsAndLinks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	a, s, g, sg := seed(t, r)

	require.NoError(t, r.artists.Delete(ctx, a.ID))

	_, err := r.songs.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = r.songGenres.GetByID(ctx, sg.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// the genre itself is untouched
	got, err := r.genres.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SongGenres)
}

func TestDeleteGenre_KeepsSongs(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, s, g, sg := seed(t, r)

	require.NoError(t, r.genres.Delete(ctx, g.ID))

	_, err := r.songGenres.GetByID(ctx, sg.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := r.songs.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SongGenres)
}

func TestDeleteSong_CascadesLinks(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, s, g, _ := seed(t, r)

	require.NoError(t, r.songs.Delete(ctx, s.ID))

	links, err := r.songGenres.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	got, err := r.genres.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.SongGenres)
}

func TestGetAll_OrderedByID(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, r.artists.Create(ctx, &models.Artist{Name: name, Age: 1, Bio: ""}))
	}
	list, err := r.artists.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "first", list[0].Name)
	assert.Equal(t, "third", list[2].Name)
}
