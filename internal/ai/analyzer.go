package ai

import "context"

// CardSnapshot carries the mentoring fields of one card to the analysis
// service. Field names follow the service's wire contract.
type CardSnapshot struct {
	MenteeName       string `json:"menteeName"`
	MenteeContext    string `json:"menteeContext,omitempty"`
	MenteeGoal       string `json:"menteeGoal,omitempty"`
	MentorPerception string `json:"mentorPerception,omitempty"`
	MentorResistance string `json:"mentorResistance,omitempty"`
	MentorAttention  string `json:"mentorAttention,omitempty"`
	MentorEmotion    string `json:"mentorEmotion,omitempty"`
	Phase            string `json:"phase,omitempty"`
	EnergyMentee     int    `json:"energyMentee"`
	EnergyMentor     int    `json:"energyMentor"`
	DecisionsTaken   string `json:"decisionsTaken,omitempty"`
	DecisionsOpen    string `json:"decisionsOpen,omitempty"`
	Reflections      string `json:"reflections,omitempty"`
}

// Result is the analysis output: free-text commentary plus suggestions.
type Result struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
}

// Analyzer produces commentary for a card snapshot. A failing analyzer
// must never block or fail the card read/update path; callers surface
// ErrUnavailable as a non-fatal notice.
type Analyzer interface {
	Analyze(ctx context.Context, card CardSnapshot) (Result, error)
}
