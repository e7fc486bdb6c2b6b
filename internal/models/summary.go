package models

import "strings"

// Summary is the subset of a venue or artist shown in lists and search results.
type Summary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// GenreDelimiter separates genre tags in the stored representation.
const GenreDelimiter = ","

// Genres accepted by the forms, in display order.
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// NormalizeGenres trims tags and drops blanks and duplicates, keeping the
// first occurrence of each tag.
func NormalizeGenres(genres []string) []string {
	out := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

// JoinGenres encodes genres for storage.
func JoinGenres(genres []string) string {
	return strings.Join(NormalizeGenres(genres), GenreDelimiter)
}

// SplitGenres decodes the stored representation.
func SplitGenres(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeGenres(strings.Split(raw, GenreDelimiter))
}
