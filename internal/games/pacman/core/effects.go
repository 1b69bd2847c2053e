package core

// EffectKind identifies a power-up effect. Only one effect of each kind is
// active at a time.
type EffectKind int

const (
	EffectSpeed EffectKind = iota
	EffectScore
	EffectFreeze
	EffectFright
	EffectInvincible
	EffectCount
)

func (k EffectKind) String() string {
	switch k {
	case EffectSpeed:
		return "speed"
	case EffectScore:
		return "score"
	case EffectFreeze:
		return "freeze"
	case EffectFright:
		return "fright"
	case EffectInvincible:
		return "invincible"
	default:
		return "?"
	}
}

// Glyph returns the HUD marker for an effect kind.
func (k EffectKind) Glyph() rune {
	switch k {
	case EffectSpeed:
		return '>'
	case EffectScore:
		return 'x'
	case EffectFreeze:
		return '*'
	case EffectFright:
		return '!'
	case EffectInvincible:
		return '+'
	default:
		return '?'
	}
}

// Effect is a timed mutation of the player. Remove must undo exactly what
// Apply did.
type Effect interface {
	Kind() EffectKind
	Duration() float64
	Apply(p *Player)
	Remove(p *Player)
}

// Retrigger is implemented by effects whose activation fires again when the
// same kind is added while already active.
type Retrigger interface {
	Retrigger(p *Player)
}

// ActiveEffect describes one running effect.
type ActiveEffect struct {
	Kind      EffectKind
	Remaining float64
	Duration  float64
}

type runningEffect struct {
	effect    Effect
	remaining float64
}

// Effects is the player's active-effect collection, kept in activation order.
type Effects struct {
	running []*runningEffect
}

// Add activates e. If an effect of the same kind is running its timer is
// restarted and the mutation is not applied a second time.
func (es *Effects) Add(p *Player, e Effect) {
	for _, r := range es.running {
		if r.effect.Kind() != e.Kind() {
			continue
		}
		r.remaining = e.Duration()
		if rt, ok := r.effect.(Retrigger); ok {
			rt.Retrigger(p)
		}
		return
	}

	e.Apply(p)
	es.running = append(es.running, &runningEffect{effect: e, remaining: e.Duration()})
}

// Tick charges dt to every running effect and removes those whose time ran
// out, returning their kinds. A non-positive dt changes nothing.
func (es *Effects) Tick(p *Player, dt float64) []EffectKind {
	if dt <= 0 || len(es.running) == 0 {
		return nil
	}

	var expired []EffectKind
	kept := es.running[:0]
	for _, r := range es.running {
		r.remaining -= dt
		if r.remaining <= 0 {
			r.effect.Remove(p)
			expired = append(expired, r.effect.Kind())
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(es.running); i++ {
		es.running[i] = nil
	}
	es.running = kept
	return expired
}

// Remove ends the effect of the given kind early. Missing kinds are ignored.
func (es *Effects) Remove(p *Player, kind EffectKind) bool {
	for i, r := range es.running {
		if r.effect.Kind() != kind {
			continue
		}
		r.effect.Remove(p)
		es.running = append(es.running[:i], es.running[i+1:]...)
		return true
	}
	return false
}

// Clear removes every effect, newest first.
func (es *Effects) Clear(p *Player) {
	for i := len(es.running) - 1; i >= 0; i-- {
		es.running[i].effect.Remove(p)
	}
	es.running = nil
}

// Remaining returns the time left on the effect of the given kind.
func (es *Effects) Remaining(kind EffectKind) (float64, bool) {
	for _, r := range es.running {
		if r.effect.Kind() == kind {
			return r.remaining, true
		}
	}
	return 0, false
}

// Active returns a snapshot of the running effects.
func (es *Effects) Active() []ActiveEffect {
	out := make([]ActiveEffect, 0, len(es.running))
	for _, r := range es.running {
		out = append(out, ActiveEffect{
			Kind:      r.effect.Kind(),
			Remaining: r.remaining,
			Duration:  r.effect.Duration(),
		})
	}
	return out
}

// Len returns the number of running effects.
func (es *Effects) Len() int {
	return len(es.running)
}

// AddEffect activates e on the player.
func (p *Player) AddEffect(e Effect) {
	p.Effects.Add(p, e)
}

// TickEffects charges dt to the player's effects.
func (p *Player) TickEffects(dt float64) []EffectKind {
	return p.Effects.Tick(p, dt)
}

// GhostCommander is the ghost-wide command surface effects and collision
// handling act through.
type GhostCommander interface {
	FreezeGhosts(frozen bool)
	FrightenGhosts()
}

// SpeedBoost multiplies the player's speed.
type SpeedBoost struct {
	Factor  float64
	Seconds float64
	prev    float64
}

func (e *SpeedBoost) Kind() EffectKind  { return EffectSpeed }
func (e *SpeedBoost) Duration() float64 { return e.Seconds }

func (e *SpeedBoost) Apply(p *Player) {
	e.prev = p.SpeedMultiplier
	p.SpeedMultiplier = e.Factor
}

func (e *SpeedBoost) Remove(p *Player) {
	p.SpeedMultiplier = e.prev
}

// ScoreBoost multiplies pellet points.
type ScoreBoost struct {
	Factor  float64
	Seconds float64
	prev    float64
}

func (e *ScoreBoost) Kind() EffectKind  { return EffectScore }
func (e *ScoreBoost) Duration() float64 { return e.Seconds }

func (e *ScoreBoost) Apply(p *Player) {
	e.prev = p.ScoreMultiplier
	p.ScoreMultiplier = e.Factor
}

func (e *ScoreBoost) Remove(p *Player) {
	p.ScoreMultiplier = e.prev
}

// Invincibility makes the player immune to ghosts that are not vulnerable.
type Invincibility struct {
	Seconds float64
	prev    bool
}

func (e *Invincibility) Kind() EffectKind  { return EffectInvincible }
func (e *Invincibility) Duration() float64 { return e.Seconds }

func (e *Invincibility) Apply(p *Player) {
	e.prev = p.Invincible
	p.Invincible = true
}

func (e *Invincibility) Remove(p *Player) {
	p.Invincible = e.prev
}

// TimeFreeze stops every ghost for its duration.
type TimeFreeze struct {
	Seconds float64
	Ghosts  GhostCommander
}

func (e *TimeFreeze) Kind() EffectKind  { return EffectFreeze }
func (e *TimeFreeze) Duration() float64 { return e.Seconds }
func (e *TimeFreeze) Apply(*Player)     { e.Ghosts.FreezeGhosts(true) }
func (e *TimeFreeze) Remove(*Player)    { e.Ghosts.FreezeGhosts(false) }

// FrightMode frightens every eligible ghost. Removal does nothing: each
// ghost leaves fright on its own timer.
type FrightMode struct {
	Seconds float64
	Ghosts  GhostCommander
}

func (e *FrightMode) Kind() EffectKind    { return EffectFright }
func (e *FrightMode) Duration() float64   { return e.Seconds }
func (e *FrightMode) Apply(*Player)       { e.Ghosts.FrightenGhosts() }
func (e *FrightMode) Remove(*Player)      {}
func (e *FrightMode) Retrigger(p *Player) { e.Apply(p) }
