package aggregator

import (
	"strings"

	"github.com/sirupsen/logrus"
	"music-insights-go/internal/logger"
	"music-insights-go/internal/types"
)

// Aggregate builds per-user genre preference stats from the rating table in a
// single pass. Rows without a genre label are skipped entirely; missing rating
// cells contribute nothing (they are not zeros). The returned mapping is meant
// to be treated as a read-only snapshot afterward.
func Aggregate(rows []types.SongRow) types.PreferencesByUser {
	log := logger.New().WithComponent("aggregator")

	prefs := types.PreferencesByUser{}
	for _, row := range rows {
		if row.Genre == "" {
			continue
		}
		genre := effectiveGenre(row.Genre, log)
		for user, rating := range row.Ratings {
			userPrefs, ok := prefs[user]
			if !ok {
				userPrefs = types.UserPreferences{}
				prefs[user] = userPrefs
			}
			stat, ok := userPrefs[genre]
			if !ok {
				stat = &types.GenreStat{}
				userPrefs[genre] = stat
			}
			stat.Add(rating)
		}
	}
	return prefs
}

// effectiveGenre resolves list-literal genre cells ("['Jazz', 'Blues']") to
// their first entry. A cell that looks like a list but does not parse keeps its
// raw text as the genre key; that almost always produces a garbage key, hence
// the warning.
func effectiveGenre(genre string, log *logrus.Entry) string {
	if !strings.HasPrefix(genre, "[") || !strings.HasSuffix(genre, "]") || len(genre) < 2 {
		return genre
	}
	entries, err := parseListLiteral(genre)
	if err != nil || len(entries) == 0 {
		log.WithField("genre_cell", genre).Warn("unparseable genre list literal, keeping raw value")
		return genre
	}
	return entries[0]
}
