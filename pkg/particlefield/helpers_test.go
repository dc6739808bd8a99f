package particlefield

import (
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/graysable/site/pkg/components"
	"github.com/graysable/site/pkg/config"
	"github.com/graysable/site/pkg/host"
)

const frame = 16670 * time.Microsecond

type circle struct {
	x, y, r float64
	clr     color.Color
}

// recordSurface 记录绘制调用的测试表面
type recordSurface struct {
	width, height int
	resizes       int
	clears        int
	circles       []circle
}

func (s *recordSurface) Resize(w, h int) {
	s.width, s.height = w, h
	s.resizes++
}

func (s *recordSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
}

func (s *recordSurface) FillCircle(x, y, r float64, clr color.Color) {
	s.circles = append(s.circles, circle{x, y, r, clr})
}

// newTestField 创建一个挂载在 Loop 上的粒子场
func newTestField(t *testing.T, w, h int) (*Simulator, *host.Loop, *recordSurface) {
	t.Helper()
	surface := &recordSurface{}
	loop := host.NewLoop(w, h, surface)
	sim := New(config.DefaultParticleFieldConfig(), rand.New(rand.NewSource(42)))
	sim.Mount(loop)
	if !sim.Mounted() {
		t.Fatal("simulator should be mounted")
	}
	return sim, loop, surface
}

// newBareField 创建一个未挂载、尺寸固定的粒子场，用于直接驱动 step
func newBareField(w, h float64) *Simulator {
	sim := New(nil, rand.New(rand.NewSource(7)))
	sim.width, sim.height = w, h
	return sim
}

// stillParticle 返回一个没有速度和摆动的粒子
func stillParticle(x, y float64) components.ParticleComponent {
	return components.ParticleComponent{X: x, Y: y, Size: 1, Opacity: 0.2}
}

func at(n int) time.Duration {
	return time.Duration(n) * frame
}
