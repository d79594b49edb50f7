package classify

import "strings"

// GenreGeneral is returned when no keyword matches.
const GenreGeneral = "general"

type genreEntry struct {
	tag      string
	keywords []string
}

// genreTable is checked in order; the first tag with a matching keyword wins.
var genreTable = []genreEntry{
	{"trap", []string{"trap", "808", "drill", "rage"}},
	{"hip-hop", []string{"rap", "hip hop", "hiphop", "boom bap"}},
	{"electronic", []string{"edm", "house", "techno", "dubstep", "dnb"}},
	{"rock", []string{"rock", "metal", "punk", "indie"}},
	{"pop", []string{"pop", "chart", "radio"}},
	{"jazz", []string{"jazz", "swing", "bebop"}},
	{"classical", []string{"classical", "symphony", "orchestra"}},
	{"rnb", []string{"rnb", "r&b", "soul"}},
	{"reggae", []string{"reggae", "reggaeton", "dancehall"}},
}

// DetectGenre classifies a file by keyword matches against its lowercased
// filename stem.
func DetectGenre(path string) string {
	stem := strings.ToLower(stemOf(path))
	for _, entry := range genreTable {
		for _, kw := range entry.keywords {
			if strings.Contains(stem, kw) {
				return entry.tag
			}
		}
	}
	return GenreGeneral
}

// DetectAlbumGenre runs DetectGenre over every file and returns the majority
// tag. Ties break toward the tag seen first in file order.
func DetectAlbumGenre(files []string) string {
	if len(files) == 0 {
		return GenreGeneral
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, f := range files {
		tag := DetectGenre(f)
		if _, ok := counts[tag]; !ok {
			firstSeen = append(firstSeen, tag)
		}
		counts[tag]++
	}

	best := firstSeen[0]
	for _, tag := range firstSeen[1:] {
		if counts[tag] > counts[best] {
			best = tag
		}
	}
	return best
}
