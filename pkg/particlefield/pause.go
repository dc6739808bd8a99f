package particlefield

import (
	"log"
	"time"

	"github.com/graysable/site/pkg/host"
)

// PauseState 粒子场运行状态
type PauseState int

const (
	StateRunning PauseState = iota
	StatePaused
)

func (s PauseState) String() string {
	if s == StatePaused {
		return "PAUSED"
	}
	return "RUNNING"
}

// pauseState 暂停状态机
//
// 在页面顶部发生滚动（或下拉触摸）时暂停，输入静默一段时间后自动恢复。
// 滚动与触摸共用同一个恢复定时器，每次合格事件都会重新计时（防抖）。
type pauseState struct {
	state       PauseState
	resumeTimer host.TimerID
	touchStartY float64
}

// enterPause 进入暂停状态
// 无论之前是否已暂停都会重置帧时间戳
func (s *Simulator) enterPause(reason string) {
	if s.pause.state != StatePaused {
		s.pause.state = StatePaused
		log.Printf("[ParticleField] Paused (%s)", reason)
	}
	s.clock.resetLast()
}

// armResume （重新）安排恢复定时器
func (s *Simulator) armResume(delay time.Duration) {
	s.cancelResume()
	s.pause.resumeTimer = s.host.SetTimeout(delay, s.resume)
}

// cancelResume 取消挂起的恢复定时器
func (s *Simulator) cancelResume() {
	if s.pause.resumeTimer != 0 {
		s.host.ClearTimeout(s.pause.resumeTimer)
		s.pause.resumeTimer = 0
	}
}

// resume 恢复定时器到期回调
func (s *Simulator) resume() {
	s.pause.resumeTimer = 0
	if !s.mounted {
		return
	}
	if s.pause.state != StateRunning {
		s.pause.state = StateRunning
		log.Printf("[ParticleField] Resumed")
	}
	s.clock.resetLast()
}

func (s *Simulator) handleScroll(host.Event) {
	if s.host.ScrollY() <= 0 {
		s.enterPause("scroll at top")
	}
	s.armResume(s.cfg.Timing.ScrollResumeDelay)
}

func (s *Simulator) handleTouchStart(ev host.Event) {
	if len(ev.Touches) == 0 {
		return
	}
	touch := ev.Touches[0]
	s.pause.touchStartY = touch.Y
	s.pointer.set(touch.X, touch.Y)
}

func (s *Simulator) handleTouchMove(ev host.Event) {
	if len(ev.Touches) == 0 {
		return
	}
	touch := ev.Touches[0]
	s.pointer.set(touch.X, touch.Y)

	// 页面顶部向下拖动（过度滚动回弹）
	if s.host.ScrollY() <= 0 && touch.Y > s.pause.touchStartY {
		s.enterPause("overscroll pull")
	}
}

func (s *Simulator) handleTouchEnd(ev host.Event) {
	if len(ev.Touches) == 0 {
		s.pointer.reset()
	} else {
		touch := ev.Touches[0]
		s.pointer.set(touch.X, touch.Y)
	}
	s.armResume(s.cfg.Timing.TouchResumeDelay)
}

func (s *Simulator) handleVisibilityChange(host.Event) {
	if !s.host.Hidden() {
		s.clock.resetLast()
	}
}
