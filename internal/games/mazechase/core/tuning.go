package core

// Tuning holds every gameplay constant the engine reads. Distances are in
// sub-tile units (TileSize units per cell), speeds in units per second and
// durations in seconds of simulation time.
type Tuning struct {
	TileSize float64

	SeekerSpeed     float64
	PursuerSpeed    float64
	VulnerableSpeed float64 // pursuer speed while the vulnerability timer runs

	WallRadius    float64 // collision cross half-size used against walls
	SnapTolerance float64 // max distance from a cell center that counts as a junction
	TurnStep      float64 // trial step used to grant early turns and reversals
	MaxDelta      float64 // per-tick dt clamp
	CacheEnabled  bool    // memoize traversability checks within a tick

	CommonReward      int
	SpecialReward     int
	PursuerBonus      int
	VulnerableSeconds float64
	CatchDistance     float64 // seeker-pursuer contact distance, independent of WallRadius
	TrailSeconds      float64
}

// DefaultTuning returns the stock tuning for a 24-unit tile.
func DefaultTuning() Tuning {
	const tile = 24.0
	return Tuning{
		TileSize:          tile,
		SeekerSpeed:       120,
		PursuerSpeed:      110,
		VulnerableSpeed:   80,
		WallRadius:        tile * 0.35,
		SnapTolerance:     0.5,
		TurnStep:          2,
		MaxDelta:          0.033,
		CacheEnabled:      true,
		CommonReward:      10,
		SpecialReward:     50,
		PursuerBonus:      200,
		VulnerableSeconds: 8,
		CatchDistance:     tile * 0.6,
		TrailSeconds:      0.3,
	}
}
