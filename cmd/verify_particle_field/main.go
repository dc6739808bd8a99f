// Package main 在无窗口环境下运行粒子场并输出校验结果
//
// Usage:
//
//	go run ./cmd/verify_particle_field [flags]
//
// Flags:
//
//	--frames <n>         Number of frames to run (default 600)
//	--interval <dur>     Frame interval (default 16.67ms)
//	--width, --height    Viewport size (default 1920x1080)
//	--seed <n>           Random seed (default 1)
//	--config <path>      Particle field config (default data/particle_field.yaml)
//	--pointer <x,y>      Hold the pointer at a fixed position
//	--scroll-at <n>      Scroll to the top at frame n (pauses the field)
//	--touch-at <n>       Pull down from the top at frame n, release 10 frames later
//	--meta               Print the site metadata tags from data/site.yaml
//	--verbose            Enable verbose logging
//
// 必须在项目根目录运行（data/ 从当前目录读取）。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/graysable/site/pkg/config"
	"github.com/graysable/site/pkg/embedded"
	"github.com/graysable/site/pkg/host"
	"github.com/graysable/site/pkg/particlefield"
	"github.com/graysable/site/pkg/render"
)

var (
	framesFlag   = flag.Int("frames", 600, "Number of frames to run")
	intervalFlag = flag.Duration("interval", 16670*time.Microsecond, "Frame interval")
	widthFlag    = flag.Int("width", 1920, "Viewport width")
	heightFlag   = flag.Int("height", 1080, "Viewport height")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	configFlag   = flag.String("config", config.ParticleFieldConfigPath, "Particle field config file")
	pointerFlag  = flag.String("pointer", "", "Pointer position as x,y")
	scrollAtFlag = flag.Int("scroll-at", -1, "Frame at which to scroll to the top")
	touchAtFlag  = flag.Int("touch-at", -1, "Frame at which to pull down from the top")
	metaFlag     = flag.Bool("meta", false, "Print site metadata tags")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

// report 运行统计
type report struct {
	frames      int
	particles   int
	pausedTicks int
	transitions []string
	outOfBounds int
	leaked      host.Stats
}

func main() {
	flag.Parse()

	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS("."))

	if *metaFlag {
		if err := printSiteMetadata(); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.LoadParticleFieldConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %v, using defaults\n", err)
		cfg = config.DefaultParticleFieldConfig()
	}

	pointer, err := parsePoint(*pointerFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ invalid --pointer: %v\n", err)
		os.Exit(2)
	}

	r := run(cfg, pointer)
	printReport(cfg, r)

	if r.outOfBounds > 0 || !r.leaked.Idle() {
		os.Exit(1)
	}
}

// run 在 Loop 上挂载粒子场并按固定间隔运行
func run(cfg *config.ParticleFieldConfig, pointer *host.Point) report {
	surface := render.NewRecordingSurface()
	loop := host.NewLoop(*widthFlag, *heightFlag, surface)
	sim := particlefield.New(cfg, rand.New(rand.NewSource(*seedFlag)))
	sim.Mount(loop)

	if pointer != nil {
		loop.MovePointer(pointer.X, pointer.Y)
	}

	var r report
	r.particles = sim.ParticleCount()
	lastState := sim.State()

	for i := 0; i < *framesFlag; i++ {
		now := time.Duration(i) * *intervalFlag

		loop.Advance(now)
		applyScript(loop, i)

		loop.Frame(now)

		if state := sim.State(); state != lastState {
			r.transitions = append(r.transitions, fmt.Sprintf("frame %d: %s -> %s", i, lastState, state))
			lastState = state
		}
		if sim.Paused() {
			r.pausedTicks++
		}
		r.outOfBounds += countOutOfBounds(surface, float64(*widthFlag), float64(*heightFlag), cfg.Motion.WrapMargin)
	}
	r.frames = sim.Frames()

	sim.Unmount()
	r.leaked = loop.Stats()
	return r
}

// applyScript 在指定帧注入滚动或触摸输入
func applyScript(loop *host.Loop, frame int) {
	if frame == *scrollAtFlag {
		loop.Scroll(0)
	}
	switch frame {
	case *touchAtFlag:
		loop.TouchStart(host.Point{X: 100, Y: 100})
		loop.TouchMove(host.Point{X: 100, Y: 180})
	case *touchAtFlag + 10:
		if *touchAtFlag >= 0 {
			loop.TouchEnd()
		}
	}
}

// countOutOfBounds 统计本帧绘制在回绕边界外的粒子
func countOutOfBounds(surface *render.RecordingSurface, w, h, margin float64) int {
	n := 0
	for _, c := range surface.Circles {
		if c.X < -margin || c.X > w+margin || c.Y < -margin || c.Y > h+margin {
			n++
		}
	}
	return n
}

func parsePoint(s string) (*host.Point, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return nil, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return nil, err
	}
	return &host.Point{X: x, Y: y}, nil
}

func printReport(cfg *config.ParticleFieldConfig, r report) {
	fmt.Println("=== Particle Field Verification ===")
	fmt.Printf("Viewport:        %dx%d (density %.0f)\n", *widthFlag, *heightFlag, cfg.Density)
	fmt.Printf("Particles:       %d\n", r.particles)
	fmt.Printf("Frames run:      %d of %d (paused for %d)\n", r.frames, *framesFlag, r.pausedTicks)

	if len(r.transitions) == 0 {
		fmt.Println("Transitions:     none")
	} else {
		fmt.Println("Transitions:")
		for _, t := range r.transitions {
			fmt.Printf("  %s\n", t)
		}
	}

	if r.outOfBounds == 0 {
		fmt.Println("✅ All particles stayed within wrap bounds")
	} else {
		fmt.Printf("❌ %d particle draws outside wrap bounds\n", r.outOfBounds)
	}

	if r.leaked.Idle() {
		fmt.Println("✅ No pending callbacks after unmount")
	} else {
		fmt.Printf("❌ Pending after unmount: %+v\n", r.leaked)
	}
}

func printSiteMetadata() error {
	meta, err := config.LoadSiteMetadata(config.SiteConfigPath)
	if err != nil {
		return err
	}
	fmt.Printf("=== %s ===\n", meta.Title)
	for _, tag := range meta.Tags() {
		fmt.Printf("<meta %s=%q content=%q>\n", tag.Attr, tag.Key, tag.Content)
	}
	return nil
}
