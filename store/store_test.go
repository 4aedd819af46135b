package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spotilike/api/config"
	"github.com/spotilike/api/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openTestDB gives each test its own SQLite file with foreign keys
// enforced, so the cascade constraints behave like production MySQL.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?_fk=1", filepath.Join(t.TempDir(), "spotilike.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func uintPtr(v uint) *uint        { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}

func TestArtistCascadeDelete(t *testing.T) {
	db := openTestDB(t)

	artist, err := CreateArtist(db, models.ArtistInput{Name: "Daft Punk"})
	require.NoError(t, err)
	other, err := CreateArtist(db, models.ArtistInput{Name: "Justice"})
	require.NoError(t, err)

	discovery, err := CreateAlbum(db, models.AlbumInput{Title: "Discovery", ArtistID: artist.ID})
	require.NoError(t, err)
	homework, err := CreateAlbum(db, models.AlbumInput{Title: "Homework", ArtistID: artist.ID})
	require.NoError(t, err)
	cross, err := CreateAlbum(db, models.AlbumInput{Title: "Cross", ArtistID: other.ID})
	require.NoError(t, err)

	s1, err := CreateSong(db, models.SongInput{Title: "One More Time", ArtistID: &artist.ID, AlbumID: &discovery.ID})
	require.NoError(t, err)
	_, err = CreateSong(db, models.SongInput{Title: "Around the World", ArtistID: &artist.ID, AlbumID: &homework.ID})
	require.NoError(t, err)
	// attached to the artist but to no album; survives with the
	// reference cleared
	loose, err := CreateSong(db, models.SongInput{Title: "Demo", ArtistID: &artist.ID})
	require.NoError(t, err)
	_, err = CreateSong(db, models.SongInput{Title: "Genesis", ArtistID: &other.ID, AlbumID: &cross.ID})
	require.NoError(t, err)

	genre, err := CreateGenre(db, models.GenreInput{Title: "French House"})
	require.NoError(t, err)
	require.NoError(t, AddGenreToSong(db, s1.ID, genre.ID))

	require.NoError(t, DeleteArtist(db, artist.ID))

	_, err = GetAlbum(db, discovery.ID)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	_, err = GetAlbum(db, homework.ID)
	require.ErrorAs(t, err, &nf)
	_, err = GetSong(db, s1.ID)
	require.ErrorAs(t, err, &nf)

	// no orphaned link rows survive the cascade
	require.EqualValues(t, 0, countRows(t, db, "song_genres"))
	_, err = GetGenre(db, genre.ID)
	require.NoError(t, err)

	survivor, err := GetSong(db, loose.ID)
	require.NoError(t, err)
	require.Nil(t, survivor.ArtistID)

	// the other artist's catalog is untouched
	albums, err := AlbumsOfArtist(db, other.ID, DefaultPage())
	require.NoError(t, err)
	require.Len(t, albums, 1)
}

func TestAlbumCascadeDelete(t *testing.T) {
	db := openTestDB(t)

	artist, err := CreateArtist(db, models.ArtistInput{Name: "Air"})
	require.NoError(t, err)
	album, err := CreateAlbum(db, models.AlbumInput{Title: "Moon Safari", ArtistID: artist.ID})
	require.NoError(t, err)
	song, err := CreateSong(db, models.SongInput{Title: "La Femme d'Argent", AlbumID: &album.ID})
	require.NoError(t, err)
	genre, err := CreateGenre(db, models.GenreInput{Title: "Downtempo"})
	require.NoError(t, err)
	require.NoError(t, AddGenreToSong(db, song.ID, genre.ID))

	require.NoError(t, DeleteAlbum(db, album.ID))

	var nf *NotFoundError
	_, err = GetSong(db, song.ID)
	require.ErrorAs(t, err, &nf)
	require.EqualValues(t, 0, countRows(t, db, "song_genres"))

	_, err = GetArtist(db, artist.ID)
	require.NoError(t, err)
	_, err = GetGenre(db, genre.ID)
	require.NoError(t, err)
}

func TestForeignKeyChecksGateWrites(t *testing.T) {
	db := openTestDB(t)

	var ref *ReferenceNotFoundError

	_, err := CreateAlbum(db, models.AlbumInput{Title: "Ghost", ArtistID: 42})
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "artist", ref.Kind)
	require.EqualValues(t, 42, ref.ID)
	require.EqualValues(t, 0, countRows(t, db, "albums"))

	_, err = CreateSong(db, models.SongInput{Title: "Ghost", ArtistID: uintPtr(42)})
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "artist", ref.Kind)

	_, err = CreateSong(db, models.SongInput{Title: "Ghost", AlbumID: uintPtr(7)})
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "album", ref.Kind)
	require.EqualValues(t, 0, countRows(t, db, "songs"))

	// once the references exist the same writes succeed
	artist, err := CreateArtist(db, models.ArtistInput{Name: "M83"})
	require.NoError(t, err)
	album, err := CreateAlbum(db, models.AlbumInput{Title: "Saturdays", ArtistID: artist.ID})
	require.NoError(t, err)
	song, err := CreateSong(db, models.SongInput{Title: "Midnight City", ArtistID: &artist.ID, AlbumID: &album.ID})
	require.NoError(t, err)

	// update re-checks the keys
	_, err = UpdateSong(db, song.ID, models.SongInput{Title: "Midnight City", AlbumID: uintPtr(99)})
	require.ErrorAs(t, err, &ref)
	require.Equal(t, "album", ref.Kind)
	_, err = UpdateAlbum(db, album.ID, models.AlbumInput{Title: "Saturdays", ArtistID: 99})
	require.ErrorAs(t, err, &ref)
}

func TestGenreLinkIdempotency(t *testing.T) {
	db := openTestDB(t)

	song, err := CreateSong(db, models.SongInput{Title: "Untitled"})
	require.NoError(t, err)
	genre, err := CreateGenre(db, models.GenreInput{Title: "Ambient"})
	require.NoError(t, err)

	require.NoError(t, AddGenreToSong(db, song.ID, genre.ID))
	require.NoError(t, AddGenreToSong(db, song.ID, genre.ID))
	require.EqualValues(t, 1, countRows(t, db, "song_genres"))

	// unlinking an absent pair is a no-op
	otherGenre, err := CreateGenre(db, models.GenreInput{Title: "Noise"})
	require.NoError(t, err)
	require.NoError(t, RemoveGenreFromSong(db, song.ID, otherGenre.ID))
	require.EqualValues(t, 1, countRows(t, db, "song_genres"))

	titles, err := GenresOfSong(db, song.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"Ambient"}, titles)

	require.NoError(t, RemoveGenreFromSong(db, song.ID, genre.ID))
	require.EqualValues(t, 0, countRows(t, db, "song_genres"))

	// linking against a missing song or genre names the missing kind
	var nf *NotFoundError
	require.ErrorAs(t, AddGenreToSong(db, 99, genre.ID), &nf)
	require.Equal(t, "song", nf.Kind)
	require.ErrorAs(t, AddGenreToSong(db, song.ID, 99), &nf)
	require.Equal(t, "genre", nf.Kind)
}

func TestDeleteGenreKeepsSongs(t *testing.T) {
	db := openTestDB(t)

	song, err := CreateSong(db, models.SongInput{Title: "Linked"})
	require.NoError(t, err)
	genre, err := CreateGenre(db, models.GenreInput{Title: "IDM"})
	require.NoError(t, err)
	require.NoError(t, AddGenreToSong(db, song.ID, genre.ID))

	require.NoError(t, DeleteGenre(db, genre.ID))
	require.EqualValues(t, 0, countRows(t, db, "song_genres"))
	_, err = GetSong(db, song.ID)
	require.NoError(t, err)
}

func TestPaginationBounds(t *testing.T) {
	db := openTestDB(t)

	for i := 0; i < 5; i++ {
		_, err := CreateArtist(db, models.ArtistInput{Name: fmt.Sprintf("Artist %d", i)})
		require.NoError(t, err)
	}

	var validation *ValidationError
	_, err := ListArtists(db, Page{Limit: 0})
	require.ErrorAs(t, err, &validation)
	_, err = ListArtists(db, Page{Limit: MaxLimit + 1})
	require.ErrorAs(t, err, &validation)
	_, err = ListArtists(db, Page{Limit: 10, Offset: -1})
	require.ErrorAs(t, err, &validation)

	artists, err := ListArtists(db, Page{Limit: 2})
	require.NoError(t, err)
	require.Len(t, artists, 2)

	artists, err = ListArtists(db, Page{Limit: 10, Offset: 4})
	require.NoError(t, err)
	require.Len(t, artists, 1)

	artists, err = ListArtists(db, Page{Limit: 10, Offset: 50})
	require.NoError(t, err)
	require.Empty(t, artists)
}

func TestFullReplacementUpdate(t *testing.T) {
	db := openTestDB(t)

	artist, err := CreateArtist(db, models.ArtistInput{
		Name:   "Moby",
		Avatar: strPtr("http://img/moby.png"),
		Bio:    strPtr("Play"),
	})
	require.NoError(t, err)

	// every field is supplied; omitted optionals become null
	updated, err := UpdateArtist(db, artist.ID, models.ArtistInput{Name: "Moby (updated)"})
	require.NoError(t, err)
	require.Equal(t, "Moby (updated)", updated.Name)
	require.Nil(t, updated.Avatar)
	require.Nil(t, updated.Bio)

	stored, err := GetArtist(db, artist.ID)
	require.NoError(t, err)
	require.Nil(t, stored.Avatar)
	require.Nil(t, stored.Bio)
}

func TestRelationshipListingChecksParent(t *testing.T) {
	db := openTestDB(t)

	var nf *NotFoundError
	_, err := AlbumsOfArtist(db, 7, DefaultPage())
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "artist", nf.Kind)

	_, err = SongsOfArtist(db, 7, DefaultPage())
	require.ErrorAs(t, err, &nf)

	_, err = SongsOfAlbum(db, 7, DefaultPage())
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "album", nf.Kind)
}

func TestAlbumReleaseDateRoundTrip(t *testing.T) {
	db := openTestDB(t)

	artist, err := CreateArtist(db, models.ArtistInput{Name: "Boards of Canada"})
	require.NoError(t, err)
	released := time.Date(1998, 4, 20, 0, 0, 0, 0, time.UTC)
	album, err := CreateAlbum(db, models.AlbumInput{
		Title:       "Music Has the Right to Children",
		Cover:       strPtr("http://img/mhtrtc.jpg"),
		ReleaseDate: &released,
		ArtistID:    artist.ID,
	})
	require.NoError(t, err)

	got, err := GetAlbum(db, album.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReleaseDate)
	require.True(t, got.ReleaseDate.Equal(released))
	require.NotNil(t, got.ArtistName)
	require.Equal(t, "Boards of Canada", *got.ArtistName)
}
