package rank

import "github.com/Ronyah390/bitcointalk-dashboard/internal/models"

// Eligibility gates for the "close to next rank" view. These are dashboard
// policy, not derived from the ladder thresholds.
const (
	JrMemberGate = 2
	DefaultGate  = 20
)

// Candidate is a user record annotated with its promotion deficit.
type Candidate struct {
	models.UserRecord
	PromotionResult
}

// Eligible reports whether a user qualifies for the close-to-rank-up view.
// Brand new and Newbie members are never shown: the ladder gates neither rank
// on merit, so "close to promotion" has no meaning for them. Users already
// past the threshold (deficit 0) and terminal-rank users are excluded too.
func Eligible(rankName string, merit int) (PromotionResult, bool) {
	switch rankName {
	case "Brand new", "Newbie":
		return PromotionResult{}, false
	}
	res := NextRankInfo(rankName, merit)
	if res.NextRank == "" || res.MeritNeeded <= 0 {
		return res, false
	}
	gate := DefaultGate
	if rankName == "Jr. Member" {
		gate = JrMemberGate
	}
	return res, res.MeritNeeded <= gate
}

// Candidates filters a user collection down to the close-to-rank-up subset,
// annotating each survivor with its deficit. Input order is preserved.
func Candidates(users []models.UserRecord) []Candidate {
	out := []Candidate{}
	for _, u := range users {
		if res, ok := Eligible(u.Rank, u.Merit); ok {
			out = append(out, Candidate{UserRecord: u, PromotionResult: res})
		}
	}
	return out
}
