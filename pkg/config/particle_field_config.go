package config

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/graysable/site/internal/particle"
	"github.com/graysable/site/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ParticleFieldConfigPath 默认粒子场配置文件路径（嵌入资源）
const ParticleFieldConfigPath = "data/particle_field.yaml"

// ParticleFieldConfig 背景粒子场的完整调参配置
//
// 所有字段都有默认值（见 DefaultParticleFieldConfig），
// YAML 文件只需覆盖需要修改的字段。
type ParticleFieldConfig struct {
	// Density 每个粒子对应的像素面积，粒子数 = floor(宽 × 高 / Density)
	Density float64 `yaml:"density"`

	Spawn       SpawnConfig       `yaml:"spawn"`
	Motion      MotionConfig      `yaml:"motion"`
	Interaction InteractionConfig `yaml:"interaction"`
	Timing      TimingConfig      `yaml:"timing"`

	// Color 粒子颜色（十六进制，如 "#ffffff"），透明度由每个粒子的 Opacity 决定
	Color string `yaml:"color"`
}

// SpawnConfig 粒子生成时各属性的分布区间，均为半开区间 [min, max)
type SpawnConfig struct {
	Size        particle.Range `yaml:"size"`        // 半径（像素）
	Opacity     particle.Range `yaml:"opacity"`     // 透明度
	VelocityX   particle.Range `yaml:"velocityX"`   // 每帧水平位移
	VelocityY   particle.Range `yaml:"velocityY"`   // 每帧垂直位移
	Drift       particle.Range `yaml:"drift"`       // 摆动幅度
	DriftSpeed  particle.Range `yaml:"driftSpeed"`  // 摆动速度
	DriftOffset particle.Range `yaml:"driftOffset"` // 摆动相位
}

// MotionConfig 运动参数
type MotionConfig struct {
	SwayFactor float64 `yaml:"swayFactor"` // 摆动量叠加到 x 上的系数
	WrapMargin float64 `yaml:"wrapMargin"` // 越过边界多少像素后回绕
}

// InteractionConfig 指针排斥参数
type InteractionConfig struct {
	Radius       float64 `yaml:"radius"`       // 交互半径（像素）
	PushStrength float64 `yaml:"pushStrength"` // 排斥强度
	SentinelX    float64 `yaml:"sentinelX"`    // 无指针时的哨兵坐标
	SentinelY    float64 `yaml:"sentinelY"`
}

// TimingConfig 帧时间与暂停恢复的防抖参数
type TimingConfig struct {
	MaxFrameDelta     time.Duration `yaml:"maxFrameDelta"`     // 单帧最大步长
	ReferenceFrame    time.Duration `yaml:"referenceFrame"`    // 归一化基准帧（60Hz）
	ScrollResumeDelay time.Duration `yaml:"scrollResumeDelay"` // 滚动停止后恢复的静默期
	TouchResumeDelay  time.Duration `yaml:"touchResumeDelay"`  // 触摸结束后恢复的静默期
}

// DefaultParticleFieldConfig 返回默认配置
func DefaultParticleFieldConfig() *ParticleFieldConfig {
	return &ParticleFieldConfig{
		Density: 10000,
		Spawn: SpawnConfig{
			Size:        particle.Range{Min: 0.5, Max: 2.5},
			Opacity:     particle.Range{Min: 0.1, Max: 0.4},
			VelocityX:   particle.Range{Min: -0.1, Max: 0.1},
			VelocityY:   particle.Range{Min: 0.05, Max: 0.2},
			Drift:       particle.Range{Min: -0.75, Max: 0.75},
			DriftSpeed:  particle.Range{Min: 0.003, Max: 0.011},
			DriftOffset: particle.Range{Min: 0, Max: 2 * math.Pi},
		},
		Motion: MotionConfig{
			SwayFactor: 0.2,
			WrapMargin: 10,
		},
		Interaction: InteractionConfig{
			Radius:       100,
			PushStrength: 2,
			SentinelX:    -1000,
			SentinelY:    -1000,
		},
		Timing: TimingConfig{
			MaxFrameDelta:     32 * time.Millisecond,
			ReferenceFrame:    16670 * time.Microsecond,
			ScrollResumeDelay: 150 * time.Millisecond,
			TouchResumeDelay:  300 * time.Millisecond,
		},
		Color: "#ffffff",
	}
}

// LoadParticleFieldConfig 从 YAML 文件加载粒子场配置
// 参数：
//
//	path - 配置文件路径（"data/" 前缀读取嵌入资源，其余从磁盘读取）
//
// 返回：
//
//	*ParticleFieldConfig - 在默认值基础上覆盖后的配置
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadParticleFieldConfig(path string) (*ParticleFieldConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read particle field config %s: %w", path, err)
	}

	cfg, err := ParseParticleFieldConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid particle field config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseParticleFieldConfig 解析 YAML 数据并校验
func ParseParticleFieldConfig(data []byte) (*ParticleFieldConfig, error) {
	cfg := DefaultParticleFieldConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateParticleFieldConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateParticleFieldConfig 验证配置的合法性
func validateParticleFieldConfig(cfg *ParticleFieldConfig) error {
	if cfg.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", cfg.Density)
	}

	s := cfg.Spawn
	if s.Size.Min < 0 {
		return fmt.Errorf("spawn.size cannot be negative, got %v", s.Size)
	}
	if s.Opacity.Min < 0 || s.Opacity.Max > 1 {
		return fmt.Errorf("spawn.opacity must lie within [0, 1], got %v", s.Opacity)
	}
	if s.DriftSpeed.Min < 0 {
		return fmt.Errorf("spawn.driftSpeed cannot be negative, got %v", s.DriftSpeed)
	}

	if cfg.Motion.WrapMargin < 0 {
		return fmt.Errorf("motion.wrapMargin cannot be negative, got %v", cfg.Motion.WrapMargin)
	}

	if cfg.Interaction.Radius < 0 {
		return fmt.Errorf("interaction.radius cannot be negative, got %v", cfg.Interaction.Radius)
	}
	if cfg.Interaction.PushStrength < 0 {
		return fmt.Errorf("interaction.pushStrength cannot be negative, got %v", cfg.Interaction.PushStrength)
	}

	t := cfg.Timing
	if t.MaxFrameDelta <= 0 {
		return fmt.Errorf("timing.maxFrameDelta must be positive, got %v", t.MaxFrameDelta)
	}
	if t.ReferenceFrame <= 0 {
		return fmt.Errorf("timing.referenceFrame must be positive, got %v", t.ReferenceFrame)
	}
	if t.ScrollResumeDelay <= 0 {
		return fmt.Errorf("timing.scrollResumeDelay must be positive, got %v", t.ScrollResumeDelay)
	}
	if t.TouchResumeDelay <= 0 {
		return fmt.Errorf("timing.touchResumeDelay must be positive, got %v", t.TouchResumeDelay)
	}

	if _, err := ParseColor(cfg.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}

	return nil
}

// ParticleColor 返回解析后的粒子颜色（校验后的配置不会失败）
func (c *ParticleFieldConfig) ParticleColor() color.RGBA {
	rgba, err := ParseColor(c.Color)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return rgba
}

// MaxFrameDeltaMs 返回单帧最大步长（毫秒）
func (c *ParticleFieldConfig) MaxFrameDeltaMs() float64 {
	return durationMs(c.Timing.MaxFrameDelta)
}

// ReferenceFrameMs 返回归一化基准帧长度（毫秒）
func (c *ParticleFieldConfig) ReferenceFrameMs() float64 {
	return durationMs(c.Timing.ReferenceFrame)
}

func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
