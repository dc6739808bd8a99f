package particlefield

import (
	"math"

	"github.com/graysable/site/pkg/components"
)

// step 推进所有粒子一帧
func (s *Simulator) step() {
	t := s.clock.simTime
	for i := range s.particles {
		p := &s.particles[i]

		sway := math.Sin(t*p.DriftSpeed+p.DriftOffset) * p.Drift
		p.X += p.VelocityX + sway*s.cfg.Motion.SwayFactor
		p.Y += p.VelocityY

		s.repel(p)
		s.wrap(p)
	}
}

// repel 将交互半径内的粒子沿远离指针的方向推开
// 距离恰好为 0 时方向未定义，本帧不施加排斥
func (s *Simulator) repel(p *components.ParticleComponent) {
	radius := s.cfg.Interaction.Radius
	dx := s.pointer.x - p.X
	dy := s.pointer.y - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if dist <= 0 || dist >= radius {
		return
	}

	force := (radius - dist) / radius
	p.X -= (dx / dist) * force * s.cfg.Interaction.PushStrength
	p.Y -= (dy / dist) * force * s.cfg.Interaction.PushStrength
}

// wrap 处理越界回绕
// 从底部离开的粒子从顶部重新进入，并随机一个新的水平位置；
// 水平回绕不改变垂直位置
func (s *Simulator) wrap(p *components.ParticleComponent) {
	margin := s.cfg.Motion.WrapMargin

	if p.Y > s.height+margin {
		p.Y = -margin
		p.X = s.rng.Float64() * s.width
	}
	if p.X > s.width+margin {
		p.X = -margin
	}
	if p.X < -margin {
		p.X = s.width + margin
	}
}
