package game

// Default canvas dimensions used when a frontend does not supply its own.
const (
	DefaultWidth  = 800
	DefaultHeight = 600

	// FrameDuration is the tick period of fixed-rate frontends, in milliseconds.
	FrameDuration = 33.33 // ~30 FPS
)

// HighScoreKey is the key the high score is stored under.
const HighScoreKey = "popBubblesHighScore"

// RuleSet holds the gameplay constants.
type RuleSet struct {
	MaxLives int

	// Scoring
	BaseScoreNumerator float64 // base = round(numerator / radius)
	MinBaseScore       int
	MaxBaseScore       int
	ComboStep          float64 // multiplier gained per combo step beyond the first
	MaxComboMultiplier float64
	StreakBonus        float64 // fraction added per streak
	ComboWindowMs      float64

	// Slow motion
	ComboMilestones       []int
	SlowMoScale           float64
	SlowMoHoldMs          float64
	SlowMoRecoveryPerTick float64

	// Spawning and motion
	SpawnJitterMs   float64
	DriftSpeed      float64 // total horizontal drift spread, px/s
	RiseJitter      float64 // extra random upward speed, px/s
	WobbleAmplitude float64 // px per frame

	// Input
	PointerCooldownMs     float64
	PerfectRadiusFraction float64

	// Effects
	MaxParticles     int
	RippleGrowth     float64 // px/s
	RippleLife       float64 // seconds
	RippleAlpha      float64
	RippleScale      float64 // max radius as a multiple of bubble radius
	MinShards        int
	ShardJitter      int // shards in [MinShards, MinShards+ShardJitter)
	ShardAngleJitter float64
	ShardMinSpeed    float64
	ShardSpeedRange  float64
	ShardLift        float64
	ShardGravity     float64
	ShardLife        float64

	// Feedback banners, in milliseconds
	MissClickBannerMs float64
	PenaltyBannerMs   float64
	ComboBannerMs     float64
	StreakBannerMs    float64
	PerfectBannerMs   float64
	ComboBannerAt     []int
	StreakBannerMin   int
	StreakBannerEvery int
}

// Rules is the active rule set.
var Rules = RuleSet{
	MaxLives: 3,

	BaseScoreNumerator: 1000,
	MinBaseScore:       10,
	MaxBaseScore:       60,
	ComboStep:          0.2,
	MaxComboMultiplier: 4,
	StreakBonus:        0.05,
	ComboWindowMs:      800,

	ComboMilestones:       []int{8, 14, 20, 30},
	SlowMoScale:           0.5,
	SlowMoHoldMs:          700,
	SlowMoRecoveryPerTick: 0.02,

	SpawnJitterMs:   200,
	DriftSpeed:      20,
	RiseJitter:      10,
	WobbleAmplitude: 0.5,

	PointerCooldownMs:     100,
	PerfectRadiusFraction: 0.25,

	MaxParticles:     512,
	RippleGrowth:     200,
	RippleLife:       0.6,
	RippleAlpha:      0.8,
	RippleScale:      3,
	MinShards:        8,
	ShardJitter:      7,
	ShardAngleJitter: 0.5,
	ShardMinSpeed:    50,
	ShardSpeedRange:  100,
	ShardLift:        50,
	ShardGravity:     200,
	ShardLife:        1,

	MissClickBannerMs: 500,
	PenaltyBannerMs:   800,
	ComboBannerMs:     1000,
	StreakBannerMs:    1200,
	PerfectBannerMs:   600,
	ComboBannerAt:     []int{3, 5, 10},
	StreakBannerMin:   10,
	StreakBannerEvery: 5,
}
