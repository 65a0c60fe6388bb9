package domain

// UserType is the closed taxonomy of account classifications.
type UserType string

const (
	TypeHuman   UserType = "Human"
	TypeCreator UserType = "Creator"
	TypeEntity  UserType = "Entity"
	TypeBot     UserType = "Bot"
	TypeOther   UserType = "Other"
)

// ValidUserTypes enumerates every classification the engine can produce.
var ValidUserTypes = []UserType{TypeHuman, TypeCreator, TypeEntity, TypeBot, TypeOther}

// HASResult is the final output of a scoring call: a confidence score in
// [0,1], rounded to 4 decimal places, and exactly one type label.
type HASResult struct {
	Score float64  `json:"score"`
	Type  UserType `json:"type"`
}

// Detailed exposes every intermediate value of a scoring call for debugging
// and tuning. Result is byte-identical to what ComputeWithConfig returns for
// the same inputs.
type Detailed struct {
	Features     DerivedFeatures `json:"features"`
	BotScore     float64         `json:"bot_score"`
	CreatorScore float64         `json:"creator_score"`
	EntityScore  float64         `json:"entity_score"`
	PersonScore  float64         `json:"person_score"`
	Penalty      float64         `json:"penalty"`
	Result       HASResult       `json:"result"`
}
