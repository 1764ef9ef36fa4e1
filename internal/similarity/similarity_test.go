package similarity_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"music-insights-go/internal/similarity"
	"music-insights-go/internal/types"
)

func statsOf(averages map[string]float64) types.UserPreferences {
	p := types.UserPreferences{}
	for genre, avg := range averages {
		p[genre] = &types.GenreStat{Total: avg, Average: avg, Count: 1}
	}
	return p
}

func TestCosine(t *testing.T) {
	Convey("Given two vectors", t, func() {
		Convey("Identical non-zero vectors have similarity 1", func() {
			v := []float64{1, 2, 3}
			So(similarity.Cosine(v, v), ShouldAlmostEqual, 1.0)
		})

		Convey("Orthogonal vectors have similarity 0", func() {
			So(similarity.Cosine([]float64{1, 0}, []float64{0, 1}), ShouldAlmostEqual, 0)
		})

		Convey("An all-zero vector has similarity 0 with anything", func() {
			So(similarity.Cosine([]float64{0, 0}, []float64{3, 4}), ShouldEqual, 0)
			So(similarity.Cosine([]float64{3, 4}, []float64{0, 0}), ShouldEqual, 0)
			So(similarity.Cosine([]float64{0, 0}, []float64{0, 0}), ShouldEqual, 0)
		})
	})
}

func TestRankSimilar(t *testing.T) {
	Convey("Given aggregated preferences for three users", t, func() {
		prefs := types.PreferencesByUser{
			"user_a": statsOf(map[string]float64{"Rock": 5, "Pop": 2}),
			"user_b": statsOf(map[string]float64{"Rock": 3, "Pop": 4}),
			"user_c": statsOf(map[string]float64{"Rock": 5, "Pop": 2}),
		}

		Convey("The target never appears in its own ranking", func() {
			So(similarity.RankSimilar("user_a", prefs, 10), ShouldNotContain, "user_a")
		})

		Convey("The closest vector ranks first", func() {
			// user_c's averages are identical to user_a's
			ranked := similarity.RankSimilar("user_a", prefs, 2)
			So(ranked, ShouldResemble, []string{"user_c", "user_b"})
		})

		Convey("n larger than the candidate count returns all candidates", func() {
			So(similarity.RankSimilar("user_a", prefs, 10), ShouldHaveLength, 2)
		})

		Convey("n=0 returns an empty list", func() {
			So(similarity.RankSimilar("user_a", prefs, 0), ShouldBeEmpty)
		})

		Convey("An unknown target returns an empty list", func() {
			So(similarity.RankSimilar("user_z", prefs, 3), ShouldBeEmpty)
		})
	})

	Convey("Given two users with one shared genre basis", t, func() {
		prefs := types.PreferencesByUser{
			"user_a": statsOf(map[string]float64{"Rock": 5, "Pop": 2}),
			"user_b": statsOf(map[string]float64{"Rock": 3, "Pop": 4}),
		}

		Convey("The only other user is the whole ranking", func() {
			So(similarity.RankSimilar("user_a", prefs, 1), ShouldResemble, []string{"user_b"})
		})
	})

	Convey("Given equally similar users", t, func() {
		prefs := types.PreferencesByUser{
			"user_a": statsOf(map[string]float64{"Rock": 4}),
			"user_d": statsOf(map[string]float64{"Rock": 2}),
			"user_b": statsOf(map[string]float64{"Rock": 8}),
		}

		Convey("Ties break by user ID ascending", func() {
			// both candidates are colinear with the target, similarity 1
			So(similarity.RankSimilar("user_a", prefs, 2), ShouldResemble, []string{"user_b", "user_d"})
		})
	})

	Convey("Given a user with no overlap and a zero-norm candidate", t, func() {
		prefs := types.PreferencesByUser{
			"user_a": statsOf(map[string]float64{"Rock": 5}),
			"user_b": types.UserPreferences{},
		}

		Convey("The zero-norm candidate still ranks, with similarity 0", func() {
			So(similarity.RankSimilar("user_a", prefs, 3), ShouldResemble, []string{"user_b"})
		})
	})
}
