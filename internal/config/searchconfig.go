package config

import "time"

// Profile bundles the tunable parameters for one search difficulty level.
// Values come from the engine's published difficulty table and can be
// overridden per-profile from the config file.
type Profile struct {
	Name          string
	MaxDepth      int
	TimeLimit     time.Duration
	NoiseAmp      int     // centipawns, leaf eval jitter amplitude
	BlunderProb   float64 // probability of swapping in a near-best root move
	BlunderMargin int     // centipawns, max static-eval gap for a "near-best" move
	FeatureScale  float64 // weight applied to the evaluator's positional terms
	UseTT         bool
	UseKillers    bool
}

// searchConfiguration is the data structure holding the configuration of
// a search run, including the difficulty profile table.
type searchConfiguration struct {
	// TTSizeMB is the transposition table size in megabytes for profiles
	// with UseTT enabled.
	TTSizeMB int

	// TimeCheckInterval is the node count between elapsed-time checks
	// inside the alpha-beta recursion.
	TimeCheckInterval uint64

	// KillerSlots is the number of killer-move slots kept per ply.
	KillerSlots int

	Easy   Profile
	Medium Profile
	Hard   Profile
	Expert Profile
}

// Profiles exposes the four difficulty profiles by name for callers that
// select a profile dynamically (e.g. a UI settings screen).
func (s *searchConfiguration) Profiles() map[string]Profile {
	return map[string]Profile{
		"easy":   s.Easy,
		"medium": s.Medium,
		"hard":   s.Hard,
		"expert": s.Expert,
	}
}

func init() {
	Settings.Search.TTSizeMB = 32
	Settings.Search.TimeCheckInterval = 4096
	Settings.Search.KillerSlots = 2

	Settings.Search.Easy = Profile{
		Name: "easy", MaxDepth: 3, TimeLimit: 1500 * time.Millisecond,
		NoiseAmp: 150, BlunderProb: 0.20, BlunderMargin: 200, FeatureScale: 0.3,
		UseTT: false, UseKillers: false,
	}
	Settings.Search.Medium = Profile{
		Name: "medium", MaxDepth: 5, TimeLimit: 3000 * time.Millisecond,
		NoiseAmp: 40, BlunderProb: 0.05, BlunderMargin: 80, FeatureScale: 0.7,
		UseTT: true, UseKillers: true,
	}
	Settings.Search.Hard = Profile{
		Name: "hard", MaxDepth: 8, TimeLimit: 5000 * time.Millisecond,
		NoiseAmp: 5, BlunderProb: 0.005, BlunderMargin: 20, FeatureScale: 1.0,
		UseTT: true, UseKillers: true,
	}
	Settings.Search.Expert = Profile{
		Name: "expert", MaxDepth: 20, TimeLimit: 5000 * time.Millisecond,
		NoiseAmp: 0, BlunderProb: 0.0, BlunderMargin: 0, FeatureScale: 1.0,
		UseTT: true, UseKillers: true,
	}
}
