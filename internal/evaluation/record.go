package evaluation

import (
	"regexp"
	"strings"
)

// MatchThreshold is the score at or above which a candidate counts as a match.
// The AI's own "Match" label is ignored; recomputing locally keeps the field
// consistent with the score.
const MatchThreshold = 70

// Record is the normalized evaluation outcome for a single candidate.
type Record struct {
	CandidateName string   `json:"candidateName"`
	Email         string   `json:"email"`
	Score         int      `json:"score"`
	Match         bool     `json:"match"`
	Skills        []string `json:"skills"`
	Rationale     string   `json:"rationale"`
}

// sentinelRecord is the uniform degraded result for failed evaluations.
func sentinelRecord(rationale string) Record {
	return Record{
		CandidateName: "Unknown",
		Email:         "",
		Score:         0,
		Match:         false,
		Skills:        []string{},
		Rationale:     rationale,
	}
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

// fallbackContact scans resume text for the candidate's name (first line)
// and email address, used when the AI omits them.
func fallbackContact(text string) (name, email string) {
	lines := strings.SplitN(text, "\n", 2)
	name = strings.TrimSpace(lines[0])
	email = emailPattern.FindString(text)
	return name, email
}
