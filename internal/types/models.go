package types

// SongRow is one row of the rating table after loading: the song's genre label
// (empty when the cell was missing) and the ratings present on that row, keyed
// by user column name. Blank rating cells are absent from the map, never zero.
type SongRow struct {
	Genre   string             `json:"genre"`
	Ratings map[string]float64 `json:"ratings"`
}

// GenreStat aggregates one user's ratings for one genre.
// Invariant: Average == Total/Count whenever Count > 0.
type GenreStat struct {
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Add folds one rating into the stat, recomputing the running average.
func (s *GenreStat) Add(rating float64) {
	s.Total += rating
	s.Count++
	s.Average = s.Total / float64(s.Count)
}

// UserPreferences maps genre to that user's aggregate stat. Built once by the
// aggregator, read-only afterward.
type UserPreferences map[string]*GenreStat

// PreferencesByUser maps user ID (the user column name) to preferences.
type PreferencesByUser map[string]UserPreferences
