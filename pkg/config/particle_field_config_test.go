package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/graysable/site/internal/particle"
)

func TestDefaultParticleFieldConfig(t *testing.T) {
	cfg := DefaultParticleFieldConfig()

	if cfg.Density != 10000 {
		t.Errorf("Density = %v, want 10000", cfg.Density)
	}

	ranges := []struct {
		name string
		got  particle.Range
		want particle.Range
	}{
		{"size", cfg.Spawn.Size, particle.Range{Min: 0.5, Max: 2.5}},
		{"opacity", cfg.Spawn.Opacity, particle.Range{Min: 0.1, Max: 0.4}},
		{"velocityX", cfg.Spawn.VelocityX, particle.Range{Min: -0.1, Max: 0.1}},
		{"velocityY", cfg.Spawn.VelocityY, particle.Range{Min: 0.05, Max: 0.2}},
		{"drift", cfg.Spawn.Drift, particle.Range{Min: -0.75, Max: 0.75}},
		{"driftSpeed", cfg.Spawn.DriftSpeed, particle.Range{Min: 0.003, Max: 0.011}},
		{"driftOffset", cfg.Spawn.DriftOffset, particle.Range{Min: 0, Max: 2 * math.Pi}},
	}
	for _, r := range ranges {
		if r.got != r.want {
			t.Errorf("spawn.%s = %v, want %v", r.name, r.got, r.want)
		}
	}

	if cfg.Interaction.Radius != 100 || cfg.Interaction.PushStrength != 2 {
		t.Errorf("interaction = %+v", cfg.Interaction)
	}
	if cfg.Interaction.SentinelX != -1000 || cfg.Interaction.SentinelY != -1000 {
		t.Errorf("sentinel = (%v, %v), want (-1000, -1000)", cfg.Interaction.SentinelX, cfg.Interaction.SentinelY)
	}
	if cfg.Motion.SwayFactor != 0.2 || cfg.Motion.WrapMargin != 10 {
		t.Errorf("motion = %+v", cfg.Motion)
	}
	if cfg.MaxFrameDeltaMs() != 32 {
		t.Errorf("MaxFrameDeltaMs() = %v, want 32", cfg.MaxFrameDeltaMs())
	}
	if cfg.ReferenceFrameMs() != 16.67 {
		t.Errorf("ReferenceFrameMs() = %v, want 16.67", cfg.ReferenceFrameMs())
	}
	if cfg.Timing.ScrollResumeDelay != 150*time.Millisecond {
		t.Errorf("ScrollResumeDelay = %v", cfg.Timing.ScrollResumeDelay)
	}
	if cfg.Timing.TouchResumeDelay != 300*time.Millisecond {
		t.Errorf("TouchResumeDelay = %v", cfg.Timing.TouchResumeDelay)
	}
	if got := cfg.ParticleColor(); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("ParticleColor() = %v, want white", got)
	}

	if err := validateParticleFieldConfig(cfg); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

// TestShippedParticleFieldConfig 确保仓库内的 YAML 与默认值一致
func TestShippedParticleFieldConfig(t *testing.T) {
	path := filepath.Join("..", "..", "data", "particle_field.yaml")
	cfg, err := LoadParticleFieldConfig(path)
	if err != nil {
		t.Fatalf("LoadParticleFieldConfig failed: %v", err)
	}

	def := DefaultParticleFieldConfig()
	if cfg.Density != def.Density {
		t.Errorf("Density = %v, want %v", cfg.Density, def.Density)
	}
	if cfg.Spawn.Size != def.Spawn.Size || cfg.Spawn.DriftSpeed != def.Spawn.DriftSpeed {
		t.Errorf("spawn ranges differ from defaults: %+v", cfg.Spawn)
	}
	if math.Abs(cfg.Spawn.DriftOffset.Max-def.Spawn.DriftOffset.Max) > 1e-12 {
		t.Errorf("driftOffset = %v, want %v", cfg.Spawn.DriftOffset, def.Spawn.DriftOffset)
	}
	if cfg.Timing != def.Timing {
		t.Errorf("timing = %+v, want %+v", cfg.Timing, def.Timing)
	}
	if cfg.Interaction != def.Interaction || cfg.Motion != def.Motion {
		t.Errorf("interaction/motion differ from defaults")
	}
}

func TestParseParticleFieldConfig_PartialOverride(t *testing.T) {
	data := []byte(`
density: 5000
spawn:
  size: "[1 3]"
timing:
  scrollResumeDelay: 200ms
color: "#88ccff"
`)
	cfg, err := ParseParticleFieldConfig(data)
	if err != nil {
		t.Fatalf("ParseParticleFieldConfig failed: %v", err)
	}

	if cfg.Density != 5000 {
		t.Errorf("Density = %v, want 5000", cfg.Density)
	}
	if cfg.Spawn.Size != (particle.Range{Min: 1, Max: 3}) {
		t.Errorf("size = %v", cfg.Spawn.Size)
	}
	// 未覆盖的字段保持默认值
	if cfg.Spawn.Opacity != (particle.Range{Min: 0.1, Max: 0.4}) {
		t.Errorf("opacity should keep default, got %v", cfg.Spawn.Opacity)
	}
	if cfg.Timing.ScrollResumeDelay != 200*time.Millisecond {
		t.Errorf("scrollResumeDelay = %v", cfg.Timing.ScrollResumeDelay)
	}
	if cfg.Timing.TouchResumeDelay != 300*time.Millisecond {
		t.Errorf("touchResumeDelay should keep default, got %v", cfg.Timing.TouchResumeDelay)
	}
	if got := cfg.ParticleColor(); got != (color.RGBA{R: 0x88, G: 0xcc, B: 0xff, A: 255}) {
		t.Errorf("ParticleColor() = %v", got)
	}
}

func TestParseParticleFieldConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"密度为零", "density: 0", "density must be positive"},
		{"负尺寸", `spawn: {size: "[-1 2]"}`, "spawn.size"},
		{"透明度越界", `spawn: {opacity: "[0.5 1.5]"}`, "spawn.opacity"},
		{"负摆动速度", `spawn: {driftSpeed: "[-0.1 0.1]"}`, "spawn.driftSpeed"},
		{"负边距", "motion: {wrapMargin: -1}", "motion.wrapMargin"},
		{"负半径", "interaction: {radius: -5}", "interaction.radius"},
		{"负强度", "interaction: {pushStrength: -2}", "interaction.pushStrength"},
		{"零帧长", "timing: {maxFrameDelta: 0s}", "timing.maxFrameDelta"},
		{"零基准帧", "timing: {referenceFrame: 0s}", "timing.referenceFrame"},
		{"零滚动防抖", "timing: {scrollResumeDelay: 0s}", "timing.scrollResumeDelay"},
		{"零触摸防抖", "timing: {touchResumeDelay: 0s}", "timing.touchResumeDelay"},
		{"非法颜色", `color: "#zzzzzz"`, "color"},
		{"反向区间", `spawn: {velocityY: "[0.2 0.05]"}`, "greater than max"},
		{"非法 YAML", "density: [", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseParticleFieldConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error for %q", tt.yaml)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadParticleFieldConfig_Errors(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("文件不存在", func(t *testing.T) {
		_, err := LoadParticleFieldConfig(filepath.Join(tempDir, "missing.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !strings.Contains(err.Error(), "failed to read particle field config") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("校验失败包含路径", func(t *testing.T) {
		path := filepath.Join(tempDir, "bad.yaml")
		if err := os.WriteFile(path, []byte("density: -1\n"), 0644); err != nil {
			t.Fatalf("Failed to write test config: %v", err)
		}
		_, err := LoadParticleFieldConfig(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error should mention path %s: %v", path, err)
		}
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffffff", color.RGBA{255, 255, 255, 255}, false},
		{"#000", color.RGBA{0, 0, 0, 255}, false},
		{"0a0a0a", color.RGBA{10, 10, 10, 255}, false},
		{"  #FF8800 ", color.RGBA{255, 136, 0, 255}, false},
		{"", color.RGBA{}, true},
		{"white", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
