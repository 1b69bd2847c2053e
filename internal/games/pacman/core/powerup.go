package core

// PowerUpTable holds the effect parameters and the activation weights used
// when a power pellet is eaten.
type PowerUpTable struct {
	// Spawn weights (relative, higher = more common)
	WeightSpeed      int
	WeightScore      int
	WeightFreeze     int
	WeightFright     int
	WeightInvincible int

	// Durations in seconds before DurationFactor
	SpeedSeconds      float64
	ScoreSeconds      float64
	FreezeSeconds     float64
	FrightSeconds     float64
	InvincibleSeconds float64

	SpeedFactor float64
	ScoreFactor float64

	// DurationFactor scales every duration (difficulty preset).
	DurationFactor float64

	// Classic always activates fright.
	Classic bool
}

// DefaultPowerUpTable returns the power-up edition defaults. Invincibility
// exists but is not in the default draw.
func DefaultPowerUpTable() PowerUpTable {
	return PowerUpTable{
		WeightSpeed:  1,
		WeightScore:  1,
		WeightFreeze: 1,
		WeightFright: 1,

		SpeedSeconds:      6,
		ScoreSeconds:      8,
		FreezeSeconds:     4,
		FrightSeconds:     DefaultFrightDuration,
		InvincibleSeconds: 5,

		SpeedFactor: 1.8,
		ScoreFactor: 2,

		DurationFactor: 1,
	}
}

func (t PowerUpTable) scaled(seconds float64) float64 {
	if t.DurationFactor <= 0 {
		return seconds
	}
	return seconds * t.DurationFactor
}

// Roll selects the effect kind a power pellet activates.
func (t PowerUpTable) Roll(rng RandomSource) EffectKind {
	if t.Classic {
		return EffectFright
	}

	weights := [EffectCount]int{
		EffectSpeed:      t.WeightSpeed,
		EffectScore:      t.WeightScore,
		EffectFreeze:     t.WeightFreeze,
		EffectFright:     t.WeightFright,
		EffectInvincible: t.WeightInvincible,
	}
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return EffectFright
	}

	roll := rng.Intn(total)
	cumulative := 0
	for kind, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll < cumulative {
			return EffectKind(kind)
		}
	}
	return EffectFright
}

// NewEffect builds a fresh effect of the given kind.
func (t PowerUpTable) NewEffect(kind EffectKind, ghosts GhostCommander) Effect {
	switch kind {
	case EffectSpeed:
		return &SpeedBoost{Factor: t.SpeedFactor, Seconds: t.scaled(t.SpeedSeconds)}
	case EffectScore:
		return &ScoreBoost{Factor: t.ScoreFactor, Seconds: t.scaled(t.ScoreSeconds)}
	case EffectFreeze:
		return &TimeFreeze{Seconds: t.scaled(t.FreezeSeconds), Ghosts: ghosts}
	case EffectInvincible:
		return &Invincibility{Seconds: t.scaled(t.InvincibleSeconds)}
	default:
		return &FrightMode{Seconds: t.scaled(t.FrightSeconds), Ghosts: ghosts}
	}
}

// FrightDuration returns the per-ghost fright episode length.
func (t PowerUpTable) FrightDuration() float64 {
	return t.scaled(t.FrightSeconds)
}
