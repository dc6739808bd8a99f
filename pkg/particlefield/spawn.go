package particlefield

import (
	"math"

	"github.com/graysable/site/pkg/components"
)

// particleCount 计算给定表面尺寸下的粒子数量
func particleCount(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(width * height / density))
}

// spawnParticles 按配置的分布生成整套粒子，位置均匀分布在 [0,width)×[0,height)
func (s *Simulator) spawnParticles(width, height float64) []components.ParticleComponent {
	n := particleCount(width, height, s.cfg.Density)
	particles := make([]components.ParticleComponent, n)

	spawn := s.cfg.Spawn
	for i := range particles {
		particles[i] = components.ParticleComponent{
			X:           s.rng.Float64() * width,
			Y:           s.rng.Float64() * height,
			Size:        spawn.Size.Sample(s.rng),
			Opacity:     spawn.Opacity.Sample(s.rng),
			VelocityX:   spawn.VelocityX.Sample(s.rng),
			VelocityY:   spawn.VelocityY.Sample(s.rng),
			Drift:       spawn.Drift.Sample(s.rng),
			DriftSpeed:  spawn.DriftSpeed.Sample(s.rng),
			DriftOffset: spawn.DriftOffset.Sample(s.rng),
		}
	}
	return particles
}
