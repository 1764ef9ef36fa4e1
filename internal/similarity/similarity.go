package similarity

import (
	"math"
	"sort"

	"music-insights-go/internal/types"
)

// RankSimilar returns up to n user IDs ordered by descending cosine similarity
// to the target user's genre-average vector. An unknown target yields an empty
// list, never an error. Equal similarities are broken by user ID ascending so
// the ranking is reproducible.
func RankSimilar(target string, prefs types.PreferencesByUser, n int) []string {
	if n <= 0 {
		return []string{}
	}
	targetPrefs, ok := prefs[target]
	if !ok {
		return []string{}
	}

	genres := genreBasis(prefs)
	targetVec := vectorFor(targetPrefs, genres)

	type scored struct {
		user string
		sim  float64
	}
	candidates := make([]scored, 0, len(prefs)-1)
	for user, userPrefs := range prefs {
		if user == target {
			continue
		}
		candidates = append(candidates, scored{user, Cosine(targetVec, vectorFor(userPrefs, genres))})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		return candidates[i].user < candidates[j].user
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.user
	}
	return out
}

// genreBasis is the union of all genres across all users, sorted so one
// invocation applies the same ordering to every vector.
func genreBasis(prefs types.PreferencesByUser) []string {
	seen := map[string]struct{}{}
	for _, userPrefs := range prefs {
		for genre := range userPrefs {
			seen[genre] = struct{}{}
		}
	}
	genres := make([]string, 0, len(seen))
	for genre := range seen {
		genres = append(genres, genre)
	}
	sort.Strings(genres)
	return genres
}

// vectorFor projects one user's preferences onto the genre basis, 0 where the
// user has no stat for a genre.
func vectorFor(p types.UserPreferences, genres []string) []float64 {
	vec := make([]float64, len(genres))
	for i, genre := range genres {
		if stat, ok := p[genre]; ok {
			vec[i] = stat.Average
		}
	}
	return vec
}

// Cosine is dot(a,b) / (||a|| * ||b||) over equal-length vectors, defined as 0
// when either norm is zero.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
