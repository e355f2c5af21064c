package model

// Tier classifies a player's score relative to the batch average.
type Tier string

const (
	TierElite      Tier = "Elite"
	TierStrong     Tier = "Strong"
	TierAverage    Tier = "Average"
	TierDeveloping Tier = "Developing"
)

// Valid reports whether t is one of the four known tiers.
func (t Tier) Valid() bool {
	switch t {
	case TierElite, TierStrong, TierAverage, TierDeveloping:
		return true
	}
	return false
}
