package rank

// PromotionResult is the merit deficit to a user's next rank. A zero value
// with an empty NextRank means the user is at (or past) the end of the ladder.
type PromotionResult struct {
	MeritNeeded int    `json:"merit_needed"`
	NextRank    string `json:"next_rank,omitempty"`
}

type step struct {
	threshold int
	next      string
}

// The forum promotion ladder. Thresholds are cumulative merit required to
// hold the rank; the chain ends at Legendary.
var ladder = map[string]step{
	"Brand new":   {0, "Newbie"},
	"Newbie":      {0, "Jr. Member"},
	"Jr. Member":  {1, "Member"},
	"Member":      {10, "Full Member"},
	"Full Member": {100, "Sr. Member"},
	"Sr. Member":  {250, "Hero Member"},
	"Hero Member": {500, "Legendary"},
	"Legendary":   {1000, ""},
}

// Threshold returns the merit threshold for a rank name.
func Threshold(rankName string) (int, bool) {
	s, ok := ladder[rankName]
	return s.threshold, ok
}

// NextRankInfo computes how much merit a user still needs for the next rank.
// Unknown ranks and the terminal rank degrade to "nothing needed" rather than
// erroring: the scraper occasionally emits rank strings we have not seen.
// The deficit is clamped at zero because a user can cross the threshold
// before the scraper records the promotion.
func NextRankInfo(currentRank string, currentMerit int) PromotionResult {
	cur, ok := ladder[currentRank]
	if !ok || cur.next == "" {
		return PromotionResult{}
	}
	needed := ladder[cur.next].threshold - currentMerit
	if needed < 0 {
		needed = 0
	}
	return PromotionResult{MeritNeeded: needed, NextRank: cur.next}
}
