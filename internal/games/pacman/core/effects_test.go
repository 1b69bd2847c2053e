package core_test

import (
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/core/mocks"
)

// noopGhosts satisfies GhostCommander for tests that only watch the player.
type noopGhosts struct{}

func (noopGhosts) FreezeGhosts(bool) {}
func (noopGhosts) FrightenGhosts()   {}

func newEffectPlayer(t fataler) *core.Player {
	m := mustMaze(t, corridorLayout...)
	spawn, _ := m.PlayerSpawn()
	return core.NewPlayer(m, spawn, core.DefaultPlayerSpeed, core.DefaultTileSize)
}

type playerAttrs struct {
	speed      float64
	score      float64
	invincible bool
}

func attrsOf(p *core.Player) playerAttrs {
	return playerAttrs{p.SpeedMultiplier, p.ScoreMultiplier, p.Invincible}
}

func TestEffectsTickZeroIsIdempotent(t *testing.T) {
	p := newEffectPlayer(t)
	table := core.DefaultPowerUpTable()
	p.AddEffect(table.NewEffect(core.EffectSpeed, noopGhosts{}))
	p.AddEffect(table.NewEffect(core.EffectScore, noopGhosts{}))

	attrs := attrsOf(p)
	active := p.Effects.Active()

	for i := 0; i < 5; i++ {
		if expired := p.TickEffects(0); len(expired) != 0 {
			t.Fatalf("Tick(0) expired %v", expired)
		}
	}

	if attrsOf(p) != attrs {
		t.Errorf("Tick(0) changed attributes: %+v -> %+v", attrs, attrsOf(p))
	}
	after := p.Effects.Active()
	if len(after) != len(active) {
		t.Fatalf("Tick(0) evicted effects: %d -> %d", len(active), len(after))
	}
	for i := range after {
		if after[i] != active[i] {
			t.Errorf("effect %d changed: %+v -> %+v", i, active[i], after[i])
		}
	}
}

func TestEffectInverseLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := newEffectPlayer(t)
		p.SpeedMultiplier = rapid.Float64Range(0.1, 5).Draw(t, "speed")
		p.ScoreMultiplier = rapid.Float64Range(0.1, 5).Draw(t, "score")
		p.Invincible = rapid.Bool().Draw(t, "invincible")
		before := attrsOf(p)

		table := core.DefaultPowerUpTable()
		kind := core.EffectKind(rapid.IntRange(0, int(core.EffectCount)-1).Draw(t, "kind"))
		e := table.NewEffect(kind, noopGhosts{})

		e.Apply(p)
		e.Remove(p)

		if got := attrsOf(p); got != before {
			t.Fatalf("%v: apply+remove changed %+v to %+v", kind, before, got)
		}
	})
}

func TestEffectsComposeAndRestore(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := newEffectPlayer(t)
		before := attrsOf(p)
		table := core.DefaultPowerUpTable()

		n := rapid.IntRange(1, 12).Draw(t, "n")
		for i := 0; i < n; i++ {
			kind := rapid.SampledFrom([]core.EffectKind{
				core.EffectSpeed, core.EffectScore, core.EffectInvincible,
			}).Draw(t, "kind")
			p.AddEffect(table.NewEffect(kind, noopGhosts{}))
			p.TickEffects(rapid.Float64Range(0, 3).Draw(t, "dt"))
		}

		// Longest duration is 8 s.
		p.TickEffects(10)
		if p.Effects.Len() != 0 {
			t.Fatalf("%d effects survived", p.Effects.Len())
		}
		if got := attrsOf(p); got != before {
			t.Fatalf("attributes not restored: %+v -> %+v", before, got)
		}
	})
}

func TestEffectsCoexist(t *testing.T) {
	p := newEffectPlayer(t)
	p.AddEffect(&core.SpeedBoost{Factor: 1.8, Seconds: 2})
	p.AddEffect(&core.ScoreBoost{Factor: 2, Seconds: 4})

	if p.SpeedMultiplier != 1.8 || p.ScoreMultiplier != 2 {
		t.Fatalf("multipliers %v / %v", p.SpeedMultiplier, p.ScoreMultiplier)
	}

	expired := p.TickEffects(2.5)
	if len(expired) != 1 || expired[0] != core.EffectSpeed {
		t.Fatalf("expired %v, want [speed]", expired)
	}
	if p.SpeedMultiplier != 1 || p.ScoreMultiplier != 2 {
		t.Errorf("after speed expiry: %v / %v", p.SpeedMultiplier, p.ScoreMultiplier)
	}

	expired = p.TickEffects(2)
	if len(expired) != 1 || expired[0] != core.EffectScore {
		t.Fatalf("expired %v, want [score]", expired)
	}
	if p.ScoreMultiplier != 1 {
		t.Errorf("score multiplier %v after expiry", p.ScoreMultiplier)
	}
}

func TestEffectsSameKindRestartsTimer(t *testing.T) {
	p := newEffectPlayer(t)
	p.AddEffect(&core.SpeedBoost{Factor: 1.8, Seconds: 6})
	p.TickEffects(5)

	p.AddEffect(&core.SpeedBoost{Factor: 1.8, Seconds: 6})
	if p.Effects.Len() != 1 {
		t.Fatalf("same kind stacked: %d effects", p.Effects.Len())
	}
	if rem, _ := p.Effects.Remaining(core.EffectSpeed); rem != 6 {
		t.Errorf("remaining %v, want restarted 6", rem)
	}
	if p.SpeedMultiplier != 1.8 {
		t.Errorf("multiplier compounded to %v", p.SpeedMultiplier)
	}

	p.TickEffects(5)
	if p.SpeedMultiplier != 1.8 {
		t.Error("restarted effect expired on the old timer")
	}
	if expired := p.TickEffects(1.5); len(expired) != 1 {
		t.Fatalf("expected exactly one expiry, got %v", expired)
	}
	if p.SpeedMultiplier != 1 {
		t.Errorf("multiplier %v, want 1 restored", p.SpeedMultiplier)
	}
}

func TestEffectsRemove(t *testing.T) {
	p := newEffectPlayer(t)
	if p.Effects.Remove(p, core.EffectScore) {
		t.Error("removing a missing effect reported success")
	}

	p.AddEffect(&core.ScoreBoost{Factor: 3, Seconds: 8})
	p.AddEffect(&core.Invincibility{Seconds: 5})
	if !p.Effects.Remove(p, core.EffectScore) {
		t.Fatal("Remove did not find the score effect")
	}
	if p.ScoreMultiplier != 1 || !p.Invincible {
		t.Errorf("after Remove: score %v invincible %v", p.ScoreMultiplier, p.Invincible)
	}
	if _, ok := p.Effects.Remaining(core.EffectScore); ok {
		t.Error("score effect still listed")
	}

	p.Effects.Clear(p)
	if p.Invincible || p.Effects.Len() != 0 {
		t.Errorf("Clear left invincible=%v len=%d", p.Invincible, p.Effects.Len())
	}
}

func TestEffectsExpireOnCrossingZero(t *testing.T) {
	p := newEffectPlayer(t)
	p.AddEffect(&core.Invincibility{Seconds: 1})

	if expired := p.TickEffects(0.5); len(expired) != 0 {
		t.Fatalf("expired early: %v", expired)
	}
	if expired := p.TickEffects(0.5); len(expired) != 1 {
		t.Fatalf("not expired when remaining reached zero: %v", expired)
	}
	if expired := p.TickEffects(0.5); len(expired) != 0 {
		t.Fatalf("removed twice: %v", expired)
	}
}

func TestTimeFreezeCommandsGhosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ghosts := mocks.NewMockGhostCommander(ctrl)
	gomock.InOrder(
		ghosts.EXPECT().FreezeGhosts(true).Times(1),
		ghosts.EXPECT().FreezeGhosts(false).Times(1),
	)

	p := newEffectPlayer(t)
	p.AddEffect(&core.TimeFreeze{Seconds: 4, Ghosts: ghosts})
	for i := 0; i < 300; i++ {
		p.TickEffects(tick)
	}
}

func TestFrightModeRetriggers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ghosts := mocks.NewMockGhostCommander(ctrl)
	ghosts.EXPECT().FrightenGhosts().Times(2)

	p := newEffectPlayer(t)
	p.AddEffect(&core.FrightMode{Seconds: 6, Ghosts: ghosts})
	p.TickEffects(3)
	p.AddEffect(&core.FrightMode{Seconds: 6, Ghosts: ghosts})

	if rem, _ := p.Effects.Remaining(core.EffectFright); rem != 6 {
		t.Errorf("fright remaining %v, want 6", rem)
	}
	// Expiry is a no-op on the ghosts.
	p.TickEffects(7)
}

func TestPowerUpTableRoll(t *testing.T) {
	testCases := []struct {
		name  string
		table core.PowerUpTable
		want  core.EffectKind
	}{
		{"classic", core.PowerUpTable{Classic: true, WeightSpeed: 10}, core.EffectFright},
		{"only speed", core.PowerUpTable{WeightSpeed: 3}, core.EffectSpeed},
		{"only invincible", core.PowerUpTable{WeightInvincible: 1}, core.EffectInvincible},
		{"no weights", core.PowerUpTable{}, core.EffectFright},
		{"negative ignored", core.PowerUpTable{WeightSpeed: -5, WeightScore: 2}, core.EffectScore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := core.NewSimpleRNG(42)
			for i := 0; i < 20; i++ {
				if got := tc.table.Roll(rng); got != tc.want {
					t.Fatalf("roll %d = %v, want %v", i, got, tc.want)
				}
			}
		})
	}
}

func TestPowerUpTableDefaultDrawsAllFour(t *testing.T) {
	table := core.DefaultPowerUpTable()
	rng := core.NewSimpleRNG(2024)
	seen := map[core.EffectKind]int{}
	for i := 0; i < 400; i++ {
		seen[table.Roll(rng)]++
	}

	for _, k := range []core.EffectKind{core.EffectSpeed, core.EffectScore, core.EffectFreeze, core.EffectFright} {
		if seen[k] == 0 {
			t.Errorf("kind %v never drawn: %v", k, seen)
		}
	}
	if seen[core.EffectInvincible] != 0 {
		t.Errorf("invincibility drawn %d times with zero weight", seen[core.EffectInvincible])
	}
}

func TestPowerUpTableDurationFactor(t *testing.T) {
	table := core.DefaultPowerUpTable()
	table.DurationFactor = 0.5

	testCases := []struct {
		kind core.EffectKind
		want float64
	}{
		{core.EffectSpeed, 3},
		{core.EffectScore, 4},
		{core.EffectFreeze, 2},
		{core.EffectFright, 3},
		{core.EffectInvincible, 2.5},
	}
	for _, tc := range testCases {
		if got := table.NewEffect(tc.kind, noopGhosts{}).Duration(); got != tc.want {
			t.Errorf("%v duration = %v, want %v", tc.kind, got, tc.want)
		}
	}
	if table.FrightDuration() != 3 {
		t.Errorf("FrightDuration = %v", table.FrightDuration())
	}
}
