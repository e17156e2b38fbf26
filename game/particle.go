package game

import (
	"math"

	"github.com/simukka/pop-bubbles/common"
)

// Particle is a short-lived pop effect: *Ripple or *Shard.
type Particle interface {
	particle()
	Alive() bool
}

// Ripple is an expanding ring left where a bubble popped.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Alpha     float64
	Life      float64
	MaxLife   float64
}

// Shard is a fragment thrown out of a popped bubble.
type Shard struct {
	Index   int
	X, Y    float64
	VX, VY  float64
	Size    float64
	Alpha   float64
	Life    float64
	MaxLife float64
	Gravity float64
}

func (*Ripple) particle() {}
func (*Shard) particle()  {}

// Alive reports whether the ripple still has life left.
func (r *Ripple) Alive() bool { return r.Life > 0 }

// Alive reports whether the shard still has life left.
func (s *Shard) Alive() bool { return s.Life > 0 }

func (r *Ripple) update(dt, timeScale float64) {
	r.Radius = math.Min(r.MaxRadius, r.Radius+Rules.RippleGrowth*dt*timeScale)
	r.Alpha = math.Max(0, r.Alpha*(1-dt*2))
	r.Life -= dt * timeScale
}

func (s *Shard) update(dt, timeScale float64) {
	s.X += s.VX * dt * timeScale
	s.Y += s.VY * dt * timeScale
	s.VY += s.Gravity * dt * timeScale
	s.Alpha = math.Max(0, s.Life/s.MaxLife)
	s.Life -= dt * timeScale
}

// updateParticle advances one particle by dt seconds of game time.
func updateParticle(p Particle, dt, timeScale float64) {
	switch p := p.(type) {
	case *Ripple:
		p.update(dt, timeScale)
	case *Shard:
		p.update(dt, timeScale)
	}
}

// ParticlePool is a bounded set of live particles. Release swaps the released
// slot with the last active one, so iteration must run in reverse.
type ParticlePool struct {
	Pool        []Particle
	ActiveCount int
	MaxSize     int
	Dropped     int
}

// NewParticlePool creates an empty pool holding at most maxSize particles.
func NewParticlePool(maxSize int) *ParticlePool {
	return &ParticlePool{
		Pool:    make([]Particle, maxSize),
		MaxSize: maxSize,
	}
}

// Add inserts a particle. When the pool is full the particle is dropped.
func (p *ParticlePool) Add(pt Particle) bool {
	if p.ActiveCount >= p.MaxSize {
		p.Dropped++
		return false
	}
	p.Pool[p.ActiveCount] = pt
	p.ActiveCount++
	return true
}

// Release removes the particle at index.
func (p *ParticlePool) Release(index int) {
	if index >= p.ActiveCount || index < 0 {
		return
	}
	lastIndex := p.ActiveCount - 1
	if index != lastIndex {
		p.Pool[index] = p.Pool[lastIndex]
	}
	p.Pool[lastIndex] = nil
	p.ActiveCount--
}

// Clear removes all particles.
func (p *ParticlePool) Clear() {
	for i := 0; i < p.ActiveCount; i++ {
		p.Pool[i] = nil
	}
	p.ActiveCount = 0
}

// ForEachReverse iterates over active particles in reverse order.
func (p *ParticlePool) ForEachReverse(fn func(Particle, int)) {
	for i := p.ActiveCount - 1; i >= 0; i-- {
		fn(p.Pool[i], i)
	}
}

// Active returns the live particles. The slice aliases the pool.
func (p *ParticlePool) Active() []Particle {
	return p.Pool[:p.ActiveCount]
}

// Update advances all particles and releases the expired ones.
func (p *ParticlePool) Update(dt, timeScale float64) {
	p.ForEachReverse(func(pt Particle, i int) {
		updateParticle(pt, dt, timeScale)
		if !pt.Alive() {
			p.Release(i)
		}
	})
}

// EmitPop adds one ripple and a ring of shards at (x, y).
func (p *ParticlePool) EmitPop(x, y, radius float64, rng common.Rand) {
	p.Add(&Ripple{
		X:         x,
		Y:         y,
		MaxRadius: radius * Rules.RippleScale,
		Alpha:     Rules.RippleAlpha,
		Life:      Rules.RippleLife,
		MaxLife:   Rules.RippleLife,
	})

	count := common.RandomInt(rng, Rules.MinShards, Rules.MinShards+Rules.ShardJitter)
	for i := 0; i < count; i++ {
		angle := math.Pi*2*float64(i)/float64(count) + rng.Random()*Rules.ShardAngleJitter
		speed := common.RandomFloat(rng, Rules.ShardMinSpeed, Rules.ShardMinSpeed+Rules.ShardSpeedRange)
		p.Add(&Shard{
			Index:   i,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - Rules.ShardLift,
			Size:    common.RandomFloat(rng, 2, 5),
			Alpha:   1,
			Life:    Rules.ShardLife,
			MaxLife: Rules.ShardLife,
			Gravity: Rules.ShardGravity,
		})
	}
}
