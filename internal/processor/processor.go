package processor

import (
	"fmt"
	"time"

	"music-insights-go/internal/recommend"
	"music-insights-go/internal/similarity"
	"music-insights-go/internal/types"
)

const (
	DefaultSimilarN = 3
	DefaultExcludeK = 2
)

// ProfileResult is the full recommendation profile for one user.
type ProfileResult struct {
	User         string   `json:"user"`
	TopGenres    []string `json:"top_genres"`
	SimilarUsers []string `json:"similar_users"`
	NextGenre    string   `json:"next_genre,omitempty"`
	HasNextGenre bool     `json:"has_next_genre"`
	DurationMs   int64    `json:"duration_ms"`
	Error        string   `json:"error,omitempty"`
}

// Profile runs the similarity ranker and the genre recommender for one user
// over an already-aggregated preference snapshot. An unknown user produces an
// empty profile with an explanatory Error string, not a failure.
func Profile(user string, prefs types.PreferencesByUser, n, k int) ProfileResult {
	start := time.Now()
	res := ProfileResult{User: user}

	targetPrefs, ok := prefs[user]
	if !ok {
		res.Error = fmt.Sprintf("unknown user %q", user)
		res.DurationMs = time.Since(start).Milliseconds()
		return res
	}

	res.TopGenres = recommend.TopGenres(targetPrefs, k)
	res.SimilarUsers = similarity.RankSimilar(user, prefs, n)
	res.NextGenre, res.HasNextGenre = recommend.NextGenre(user, prefs, res.SimilarUsers, k)
	res.DurationMs = time.Since(start).Milliseconds()
	return res
}
