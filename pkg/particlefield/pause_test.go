package particlefield

import (
	"testing"
	"time"

	"github.com/graysable/site/pkg/host"
)

func TestPauseState_String(t *testing.T) {
	if StateRunning.String() != "RUNNING" || StatePaused.String() != "PAUSED" {
		t.Errorf("unexpected names: %s, %s", StateRunning, StatePaused)
	}
}

func TestScroll_PausesAtTopAndResumesAfterQuietPeriod(t *testing.T) {
	sim, loop, surface := newTestField(t, 800, 600)
	loop.Frame(0)
	loop.Frame(at(1))

	loop.Scroll(0)
	if !sim.Paused() {
		t.Fatal("scroll at top should pause")
	}

	t.Run("暂停期间粒子和模拟时间不变", func(t *testing.T) {
		particles := sim.Particles()
		simTime := sim.SimTime()
		clears := surface.clears

		for i := 2; i < 8; i++ {
			loop.Frame(at(1) + time.Duration(i)*10*time.Millisecond)
		}

		if sim.SimTime() != simTime {
			t.Errorf("SimTime() changed while paused: %v -> %v", simTime, sim.SimTime())
		}
		for i, p := range sim.Particles() {
			if p != particles[i] {
				t.Fatalf("particle %d changed while paused", i)
			}
		}
		if surface.clears != clears {
			t.Error("surface should not be redrawn while paused")
		}
		if loop.Stats().Frames != 1 {
			t.Error("frame loop should keep running while paused")
		}
	})

	t.Run("持续滚动重新计时", func(t *testing.T) {
		// 暂停从 at(1) 开始，at(1)+70ms 再次滚动，恢复时间推迟到 at(1)+220ms
		loop.Advance(at(1) + 70*time.Millisecond)
		loop.Scroll(0)
		loop.Advance(at(1) + 200*time.Millisecond)
		if !sim.Paused() {
			t.Error("resume should be debounced by the second scroll")
		}
		if loop.Stats().Timers != 1 {
			t.Errorf("only one resume timer should be pending, got %d", loop.Stats().Timers)
		}
	})

	t.Run("静默后恢复", func(t *testing.T) {
		loop.Advance(at(1) + 221*time.Millisecond)
		if sim.Paused() {
			t.Fatal("should resume 150ms after the last scroll")
		}

		// 恢复后第一帧步长为零
		before := sim.SimTime()
		loop.Frame(at(1) + 400*time.Millisecond)
		if sim.SimTime() != before {
			t.Errorf("first frame after resume advanced simTime: %v -> %v", before, sim.SimTime())
		}
		loop.Frame(at(1) + 400*time.Millisecond + frame)
		if sim.SimTime() <= before {
			t.Error("simulation should advance after resume")
		}
	})
}

func TestScroll_AwayFromTopDoesNotPause(t *testing.T) {
	sim, loop, _ := newTestField(t, 800, 600)
	loop.Frame(0)

	loop.Scroll(250)
	if sim.Paused() {
		t.Error("scroll below the top should not pause")
	}
	if loop.Stats().Timers != 1 {
		t.Errorf("resume timer should be armed, got %+v", loop.Stats())
	}

	loop.Advance(200 * time.Millisecond)
	if sim.Paused() || sim.State() != StateRunning {
		t.Error("timer firing while running should keep the field running")
	}
	if loop.Stats().Timers != 0 {
		t.Errorf("timer should have fired, got %+v", loop.Stats())
	}
}

func TestTouch_OverscrollPause(t *testing.T) {
	tests := []struct {
		name       string
		scrollY    float64
		start, end float64
		wantPaused bool
	}{
		{"顶部向下拖动", 0, 100, 160, true},
		{"顶部向上拖动", 0, 300, 200, false},
		{"顶部原地", 0, 100, 100, false},
		{"非顶部向下拖动", 400, 100, 160, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, loop, _ := newTestField(t, 800, 600)
			loop.Frame(0)
			if tt.scrollY != 0 {
				loop.Scroll(tt.scrollY)
				loop.Advance(time.Second)
			}

			loop.TouchStart(host.Point{X: 50, Y: tt.start})
			loop.TouchMove(host.Point{X: 55, Y: tt.end})

			if sim.Paused() != tt.wantPaused {
				t.Errorf("Paused() = %v, want %v", sim.Paused(), tt.wantPaused)
			}
			if x, y, active := sim.Pointer(); !active || x != 55 || y != tt.end {
				t.Errorf("Pointer() = (%v, %v, %v), want touch position", x, y, active)
			}
		})
	}
}

func TestTouchEnd_ResumesAfterDelay(t *testing.T) {
	sim, loop, _ := newTestField(t, 800, 600)
	loop.Frame(0)

	loop.TouchStart(host.Point{X: 10, Y: 100})
	loop.TouchMove(host.Point{X: 10, Y: 180})
	if !sim.Paused() {
		t.Fatal("pull-down at top should pause")
	}

	loop.Advance(time.Second)
	if !sim.Paused() {
		t.Fatal("touch move alone should not schedule a resume")
	}

	loop.TouchEnd()
	if _, _, active := sim.Pointer(); active {
		t.Error("pointer should reset when the last touch ends")
	}

	loop.Advance(time.Second + 299*time.Millisecond)
	if !sim.Paused() {
		t.Error("should still be paused before 300ms")
	}
	loop.Advance(time.Second + 300*time.Millisecond)
	if sim.Paused() {
		t.Error("should resume 300ms after touchend")
	}
}

func TestTouchEnd_WithRemainingTouchesKeepsPointer(t *testing.T) {
	sim, loop, _ := newTestField(t, 800, 600)

	loop.TouchStart(host.Point{X: 10, Y: 10}, host.Point{X: 300, Y: 200})
	loop.TouchEnd(host.Point{X: 300, Y: 200})

	if x, y, active := sim.Pointer(); !active || x != 300 || y != 200 {
		t.Errorf("Pointer() = (%v, %v, %v), want remaining touch", x, y, active)
	}
}

func TestResumeTimer_SharedBetweenScrollAndTouch(t *testing.T) {
	sim, loop, _ := newTestField(t, 800, 600)
	loop.Frame(0)

	// touchend 安排 300ms 后恢复，随后的滚动把它替换为 150ms
	loop.TouchStart(host.Point{X: 0, Y: 0})
	loop.TouchMove(host.Point{X: 0, Y: 50})
	loop.TouchEnd()
	loop.Advance(100 * time.Millisecond)
	loop.Scroll(0)

	if loop.Stats().Timers != 1 {
		t.Fatalf("timers = %d, want a single shared resume timer", loop.Stats().Timers)
	}

	loop.Advance(249 * time.Millisecond)
	if !sim.Paused() {
		t.Error("should still be paused before the rearmed deadline")
	}
	loop.Advance(250 * time.Millisecond)
	if sim.Paused() {
		t.Error("should resume at the scroll deadline")
	}
}
