// Package app 提供粒子场预览应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/graysable/site/pkg/config"
	"github.com/graysable/site/pkg/embedded"
	"github.com/graysable/site/pkg/host"
	"github.com/graysable/site/pkg/particlefield"
	"github.com/graysable/site/pkg/render"
	"github.com/graysable/site/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 粒子场配置文件路径，为空时使用嵌入的默认配置
	ConfigPath string
	// PreviewPath 预览窗口配置文件路径，为空时使用嵌入的默认配置
	PreviewPath string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// Width, Height 初始视口尺寸，0 表示使用预览配置中的值
	Width, Height int
}

// App 是粒子场预览应用，实现 ebiten.Game 接口
//
// App 持有一个 host.Loop 作为“浏览器窗口”：
// Update 把 ebiten 输入翻译成宿主事件并推进定时器，Draw 运行帧回调，
// Layout 把窗口尺寸变化作为 resize 事件派发。
type App struct {
	loop      *host.Loop
	surface   *render.EbitenSurface
	simulator *particlefield.Simulator
	input     *utils.InputTracker

	preview    *config.PreviewConfig
	background color.RGBA

	start time.Time
	now   func() time.Duration

	width, height int
	verbose       bool
}

// NewApp 创建并初始化预览应用
//
// 调用此函数前应先调用 embedded.Init() 初始化嵌入资源；
// 未初始化、配置文件缺失或无效时记录警告并使用内置默认配置，不会失败。
func NewApp(cfg Config) *App {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	preview := loadPreviewConfig(cfg.PreviewPath)
	fieldConfig := loadParticleFieldConfig(cfg.ConfigPath)

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = preview.Width
	}
	if height <= 0 {
		height = preview.Height
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using fixed seed %d", cfg.Seed)
	}

	surface := render.NewEbitenSurface(true)
	loop := host.NewLoop(width, height, surface)

	input := utils.NewInputTracker(float64(preview.PageHeight), float64(preview.WheelStep))
	input.SetViewport(width, height)

	simulator := particlefield.New(fieldConfig, rng)
	simulator.Mount(loop)

	a := &App{
		loop:       loop,
		surface:    surface,
		simulator:  simulator,
		input:      input,
		preview:    preview,
		background: preview.BackgroundColor(),
		start:      time.Now(),
		width:      width,
		height:     height,
		verbose:    cfg.Verbose,
	}
	a.now = func() time.Duration { return time.Since(a.start) }

	log.Printf("[App] Particle field preview ready: %dx%d, %d particles", width, height, simulator.ParticleCount())
	return a
}

// loadPreviewConfig 加载预览配置
// 任何失败都回退到默认值
func loadPreviewConfig(path string) *config.PreviewConfig {
	if path == "" {
		if !embedded.IsInitialized() {
			log.Printf("[Config] Embedded data unavailable, using default preview config")
			return config.DefaultPreviewConfig()
		}
		path = config.PreviewConfigPath
	}
	cfg, err := config.LoadPreviewConfig(path)
	if err != nil {
		log.Printf("[Config] WARNING: %v, using default preview config", err)
		return config.DefaultPreviewConfig()
	}
	log.Printf("[Config] Loaded preview config: %s", path)
	return cfg
}

// loadParticleFieldConfig 加载粒子场配置
// 任何失败都回退到默认值，粒子场总能启动
func loadParticleFieldConfig(path string) *config.ParticleFieldConfig {
	if path == "" {
		if !embedded.IsInitialized() {
			log.Printf("[Config] Embedded data unavailable, using default particle field config")
			return config.DefaultParticleFieldConfig()
		}
		path = config.ParticleFieldConfigPath
	}
	cfg, err := config.LoadParticleFieldConfig(path)
	if err != nil {
		log.Printf("[Config] WARNING: %v, using default particle field config", err)
		return config.DefaultParticleFieldConfig()
	}
	log.Printf("[Config] Loaded particle field config: %s", path)
	return cfg
}

// Update 翻译输入并推进定时器
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.input.Update(utils.ReadInputSnapshot(), a.loop)
	a.loop.Advance(a.now())
	return nil
}

// Draw 运行帧回调并把粒子画布合成到屏幕上
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.frame()
	a.surface.DrawTo(screen)
}

// frame 以当前单调时钟运行一帧
func (a *App) frame() int {
	return a.loop.Frame(a.now())
}

// Layout 使用实际窗口尺寸作为逻辑尺寸
// 尺寸变化时向宿主派发 resize 事件
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != a.width || outsideHeight != a.height {
		a.width, a.height = outsideWidth, outsideHeight
		a.input.SetViewport(outsideWidth, outsideHeight)
		a.loop.Resize(outsideWidth, outsideHeight)
		log.Printf("[App] Window resized to %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close 卸载粒子场，释放宿主上的所有回调
func (a *App) Close() {
	a.simulator.Unmount()
	stats := a.loop.Stats()
	if !stats.Idle() {
		log.Printf("[App] Host still has pending work after unmount: %+v", stats)
	}
}

// Size 返回当前视口尺寸
func (a *App) Size() (int, int) {
	return a.width, a.height
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.preview.Title
}

// Simulator 返回粒子场，用于调试和测试
func (a *App) Simulator() *particlefield.Simulator {
	return a.simulator
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
