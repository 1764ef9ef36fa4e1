package actionable

import (
	"fmt"
	"strings"

	"music-insights-go/internal/processor"
)

type ActionCard struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
	Impact  string `json:"impact"`
}

func Generate(p processor.ProfileResult) ActionCard {
	if p.HasNextGenre {
		return ActionCard{
			Insight: fmt.Sprintf("%s's closest listeners (%s) rate %s highly", p.User, strings.Join(p.SimilarUsers, ", "), p.NextGenre),
			Action:  fmt.Sprintf("Queue a %s discovery playlist for %s", p.NextGenre, p.User),
			Impact:  "Broader listening beyond current favorites",
		}
	}
	return ActionCard{
		Insight: "No unexplored genre stands out",
		Action:  "Collect more ratings before recommending",
		Impact:  "Low immediate intervention",
	}
}
