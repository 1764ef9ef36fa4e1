package recommend

import (
	"math"
	"sort"

	"music-insights-go/internal/types"
)

// NextGenre suggests the genre the target user should explore next, scored
// from the preferences of the already-ranked similar users. The target's own
// top-k genres are excluded as candidates. Each similar user contributes
// stat.Average * (1 - i/len(similar)) per genre, i being the user's zero-based
// position in the ranking, so closer neighbors weigh more. Returns false when
// the ranking is empty, the target is unknown, or no candidate genre remains.
func NextGenre(target string, prefs types.PreferencesByUser, similar []string, k int) (string, bool) {
	if len(similar) == 0 {
		return "", false
	}
	targetPrefs, ok := prefs[target]
	if !ok {
		return "", false
	}

	excluded := map[string]struct{}{}
	for _, genre := range TopGenres(targetPrefs, k) {
		excluded[genre] = struct{}{}
	}

	scores := map[string]float64{}
	for i, user := range similar {
		userPrefs, ok := prefs[user]
		if !ok {
			continue
		}
		weight := 1 - float64(i)/float64(len(similar))
		for genre, stat := range userPrefs {
			if _, skip := excluded[genre]; skip {
				continue
			}
			scores[genre] += stat.Average * weight
		}
	}
	if len(scores) == 0 {
		return "", false
	}

	best := ""
	bestScore := math.Inf(-1)
	for genre, score := range scores {
		if score > bestScore || (score == bestScore && genre < best) {
			best, bestScore = genre, score
		}
	}
	return best, true
}

// TopGenres returns the user's k highest-average genres, ties broken by genre
// name ascending for reproducible output.
func TopGenres(p types.UserPreferences, k int) []string {
	if k <= 0 {
		return []string{}
	}
	genres := make([]string, 0, len(p))
	for genre := range p {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool {
		a, b := p[genres[i]], p[genres[j]]
		if a.Average != b.Average {
			return a.Average > b.Average
		}
		return genres[i] < genres[j]
	})
	if len(genres) > k {
		genres = genres[:k]
	}
	return genres
}
