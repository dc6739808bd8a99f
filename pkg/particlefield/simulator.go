package particlefield

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/graysable/site/pkg/components"
	"github.com/graysable/site/pkg/config"
	"github.com/graysable/site/pkg/host"
)

// Simulator 背景粒子场
//
// 所有状态（粒子、时钟、指针、暂停状态、回调句柄）只在宿主回调中被修改，
// 事件监听器只记录新的观测值，粒子数据只在帧回调和 resize 中改变。
type Simulator struct {
	cfg   *config.ParticleFieldConfig
	rng   *rand.Rand
	color color.RGBA

	maxDeltaMs       float64
	referenceFrameMs float64

	host    host.Host
	surface host.Surface
	mounted bool

	width, height float64
	particles     []components.ParticleComponent

	clock   simulationClock
	pointer pointerState
	pause   pauseState

	frameID   host.FrameID
	listeners []host.ListenerID

	frames int
}

// New 创建粒子场
//
// 参数：
//   - cfg: 粒子场配置，为 nil 时使用默认配置
//   - rng: 随机源（初始分布和回绕时的水平位置），为 nil 时以当前时间为种子
func New(cfg *config.ParticleFieldConfig, rng *rand.Rand) *Simulator {
	if cfg == nil {
		cfg = config.DefaultParticleFieldConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Simulator{
		cfg:              cfg,
		rng:              rng,
		color:            cfg.ParticleColor(),
		maxDeltaMs:       cfg.MaxFrameDeltaMs(),
		referenceFrameMs: cfg.ReferenceFrameMs(),
		pointer:          newPointerState(cfg.Interaction.SentinelX, cfg.Interaction.SentinelY),
	}
}

// Mount 挂载到宿主并开始动画
//
// 宿主无法提供绘图表面时不做任何事；重复挂载被忽略。
func (s *Simulator) Mount(h host.Host) {
	if s.mounted {
		log.Printf("[ParticleField] Mount ignored: already mounted")
		return
	}
	if h == nil {
		return
	}
	surface := h.Surface()
	if surface == nil {
		log.Printf("[ParticleField] Drawing surface unavailable, animation disabled")
		return
	}

	s.host = h
	s.surface = surface
	s.mounted = true
	s.pause = pauseState{}
	s.pointer.reset()

	s.resize(host.Event{})

	s.listeners = append(s.listeners[:0],
		h.AddListener(host.EventResize, s.resize),
		h.AddListener(host.EventPointerMove, s.handlePointerMove),
		h.AddListener(host.EventPointerLeave, s.handlePointerLeave),
		h.AddListener(host.EventScroll, s.handleScroll),
		h.AddListener(host.EventTouchStart, s.handleTouchStart),
		h.AddListener(host.EventTouchMove, s.handleTouchMove),
		h.AddListener(host.EventTouchEnd, s.handleTouchEnd),
		h.AddListener(host.EventVisibilityChange, s.handleVisibilityChange),
	)

	s.frameID = h.RequestFrame(s.animate)

	log.Printf("[ParticleField] Mounted: %.0fx%.0f, %d particles", s.width, s.height, len(s.particles))
}

// Unmount 停止动画并释放宿主上的所有资源（监听器、帧请求、恢复定时器）
// 未挂载时调用是安全的
func (s *Simulator) Unmount() {
	if !s.mounted {
		return
	}

	for _, id := range s.listeners {
		s.host.RemoveListener(id)
	}
	s.listeners = s.listeners[:0]

	if s.frameID != 0 {
		s.host.CancelFrame(s.frameID)
		s.frameID = 0
	}
	s.cancelResume()

	s.mounted = false
	s.host = nil
	s.surface = nil

	log.Printf("[ParticleField] Unmounted after %d frames", s.frames)
}

// resize 同步表面尺寸并重新生成整套粒子
func (s *Simulator) resize(host.Event) {
	w, h := s.host.Viewport()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.surface.Resize(w, h)

	s.width, s.height = float64(w), float64(h)
	s.particles = s.spawnParticles(s.width, s.height)
	s.clock.resetLast()
}

// animate 帧回调
func (s *Simulator) animate(timestamp float64) {
	s.frameID = 0
	if !s.mounted {
		return
	}

	// 暂停时不更新也不绘制，但保持帧循环以便检测恢复
	if s.pause.state == StatePaused {
		s.frameID = s.host.RequestFrame(s.animate)
		return
	}

	s.clock.advance(timestamp, s.maxDeltaMs, s.referenceFrameMs)
	s.step()
	s.draw()
	s.frames++

	s.frameID = s.host.RequestFrame(s.animate)
}

func (s *Simulator) handlePointerMove(ev host.Event) {
	s.pointer.set(ev.X, ev.Y)
}

func (s *Simulator) handlePointerLeave(host.Event) {
	s.pointer.reset()
}

// Mounted 返回是否已挂载
func (s *Simulator) Mounted() bool {
	return s.mounted
}

// State 返回当前运行状态
func (s *Simulator) State() PauseState {
	return s.pause.state
}

// Paused 返回是否处于暂停状态
func (s *Simulator) Paused() bool {
	return s.pause.state == StatePaused
}

// SimTime 返回累计模拟时间（60Hz 帧单位）
func (s *Simulator) SimTime() float64 {
	return s.clock.simTime
}

// Frames 返回已执行的活动帧数
func (s *Simulator) Frames() int {
	return s.frames
}

// Size 返回当前表面尺寸
func (s *Simulator) Size() (width, height float64) {
	return s.width, s.height
}

// Particles 返回粒子快照（副本）
func (s *Simulator) Particles() []components.ParticleComponent {
	out := make([]components.ParticleComponent, len(s.particles))
	copy(out, s.particles)
	return out
}

// ParticleCount 返回当前粒子数量
func (s *Simulator) ParticleCount() int {
	return len(s.particles)
}

// Pointer 返回当前跟踪的指针位置，以及是否有活动指针
func (s *Simulator) Pointer() (x, y float64, active bool) {
	return s.pointer.x, s.pointer.y, s.pointer.active()
}
