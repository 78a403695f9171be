package rewards

// Preset names
const (
	PresetClassic     = "classic"
	PresetAccelerated = "accelerated"
)

// DefaultGoalReward is the coin payout for achieving a monthly goal.
const DefaultGoalReward = 1500

// ThresholdCount is the number of level thresholds (levels 0..9).
const ThresholdCount = 10

// Duration buckets for event outcomes. An event shorter than Below minutes
// falls in the bucket; anything at or beyond the last bucket uses the long tier.
type durationTier struct {
	Below     int
	Coins     int
	LevelDown int
}

var durationTiers = []durationTier{
	{Below: 30, Coins: 5, LevelDown: 1},
	{Below: 60, Coins: 10, LevelDown: 1},
	{Below: 120, Coins: 25, LevelDown: 2},
	{Below: 180, Coins: 48, LevelDown: 3},
}

const (
	longEventCoins     = 140
	longEventLevelDown = 4
)
