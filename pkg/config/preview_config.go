package config

import (
	"fmt"
	"image/color"

	"github.com/graysable/site/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// PreviewConfigPath 默认预览窗口配置文件路径（嵌入资源）
const PreviewConfigPath = "data/preview.yaml"

// PreviewConfig 桌面/移动端预览窗口配置
//
// 预览程序没有真实网页，使用一个虚拟页面高度来模拟滚动位置，
// 这样滚轮和触摸拖动可以产生与浏览器一致的 scroll 信号。
type PreviewConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`      // 初始窗口宽度
	Height     int    `yaml:"height"`     // 初始窗口高度
	PageHeight int    `yaml:"pageHeight"` // 虚拟页面总高度（像素）
	WheelStep  int    `yaml:"wheelStep"`  // 每个滚轮刻度滚动的像素
	Background string `yaml:"background"` // 背景色（十六进制）
}

// DefaultPreviewConfig 返回默认预览配置
func DefaultPreviewConfig() *PreviewConfig {
	return &PreviewConfig{
		Title:      "GraySable | Particle Field",
		Width:      1280,
		Height:     800,
		PageHeight: 3200,
		WheelStep:  40,
		Background: "#0a0a0a",
	}
}

// LoadPreviewConfig 从 YAML 文件加载预览配置
func LoadPreviewConfig(path string) (*PreviewConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preview config %s: %w", path, err)
	}

	cfg := DefaultPreviewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse preview config YAML from %s: %w", path, err)
	}

	if err := validatePreviewConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid preview config in %s: %w", path, err)
	}
	return cfg, nil
}

func validatePreviewConfig(cfg *PreviewConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.PageHeight < 0 {
		return fmt.Errorf("pageHeight cannot be negative, got %d", cfg.PageHeight)
	}
	if cfg.WheelStep <= 0 {
		return fmt.Errorf("wheelStep must be positive, got %d", cfg.WheelStep)
	}
	if _, err := ParseColor(cfg.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	return nil
}

// BackgroundColor 返回解析后的背景色
func (c *PreviewConfig) BackgroundColor() color.RGBA {
	rgba, err := ParseColor(c.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return rgba
}
