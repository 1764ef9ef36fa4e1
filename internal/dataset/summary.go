package dataset

import (
	"sort"
	"strings"

	"music-insights-go/internal/types"
)

// Summary is a compact description of a loaded rating table, logged at
// startup and exposed on /summary.
type Summary struct {
	TotalSongs        int      `json:"total_songs"`
	RatedCells        int      `json:"rated_cells"`
	Users             []string `json:"users"`
	DistinctGenres    int      `json:"distinct_genres"`
	MissingGenreRows  int      `json:"missing_genre_rows"`
	ListLiteralGenres int      `json:"list_literal_genres"`
}

// Summarize walks the loaded rows once and tallies shape statistics. Genre
// counting here is on the raw labels; list-literal cells are only counted, not
// resolved (that is the aggregator's job).
func Summarize(rows []types.SongRow) Summary {
	userSet := map[string]struct{}{}
	genreSet := map[string]struct{}{}
	s := Summary{TotalSongs: len(rows)}
	for _, row := range rows {
		if row.Genre == "" {
			s.MissingGenreRows++
		} else {
			genreSet[row.Genre] = struct{}{}
			if strings.HasPrefix(row.Genre, "[") && strings.HasSuffix(row.Genre, "]") {
				s.ListLiteralGenres++
			}
		}
		for user := range row.Ratings {
			userSet[user] = struct{}{}
			s.RatedCells++
		}
	}
	s.DistinctGenres = len(genreSet)
	s.Users = make([]string, 0, len(userSet))
	for user := range userSet {
		s.Users = append(s.Users, user)
	}
	sort.Strings(s.Users)
	return s
}
