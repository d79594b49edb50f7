package classify

import "testing"

func TestDetectGenre(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/music/dark trap beat.wav", "trap"},
		{"/music/808 slide.mp3", "trap"},
		{"/music/boom bap demo.wav", "hip-hop"},
		{"/music/deep house mix.flac", "electronic"},
		{"/music/Indie Anthem.wav", "rock"},
		{"/music/radio edit.wav", "pop"},
		{"/music/bebop standard.wav", "jazz"},
		{"/music/symphony no 5.flac", "classical"},
		{"/music/r&b slow jam.wav", "rnb"},
		{"/music/dancehall riddim.wav", "reggae"},
		{"/music/untitled bounce.wav", GenreGeneral},
	}
	for _, tc := range cases {
		if got := DetectGenre(tc.path); got != tc.want {
			t.Errorf("DetectGenre(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectGenreOrderedFirstMatchWins(t *testing.T) {
	// "trap house" matches both trap and electronic keywords; trap comes
	// first in the table.
	if got := DetectGenre("/music/trap house banger.wav"); got != "trap" {
		t.Fatalf("DetectGenre = %q, want trap", got)
	}
}

func TestDetectAlbumGenreMajority(t *testing.T) {
	files := []string{
		"/a/trap intro.wav",
		"/a/jazz interlude.wav",
		"/a/trap outro.wav",
	}
	if got := DetectAlbumGenre(files); got != "trap" {
		t.Fatalf("DetectAlbumGenre = %q, want trap", got)
	}
}

func TestDetectAlbumGenreTieBreaksFirstSeen(t *testing.T) {
	files := []string{
		"/a/jazz interlude.wav",
		"/a/trap outro.wav",
	}
	if got := DetectAlbumGenre(files); got != "jazz" {
		t.Fatalf("DetectAlbumGenre = %q, want first-seen jazz on tie", got)
	}
}

func TestDetectAlbumGenreEmpty(t *testing.T) {
	if got := DetectAlbumGenre(nil); got != GenreGeneral {
		t.Fatalf("DetectAlbumGenre(nil) = %q, want %q", got, GenreGeneral)
	}
}
