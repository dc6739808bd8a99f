package embedded

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

// testFS 模拟项目根目录 embed.go 中嵌入的 data/ 目录
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/particle_field.yaml": {Data: []byte("density: 10000\n")},
		"data/site.yaml":           {Data: []byte("title: GraySable\n")},
	}
}

// reset 重置包状态，避免测试之间相互影响
func reset() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Expected Init(nil) to leave the package uninitialized")
	}
}

// TestReadFileNotInitialized 测试未初始化时读取嵌入路径
func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/particle_field.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

// TestReadFileEmbedded 测试读取嵌入资源（含路径规范化）
func TestReadFileEmbedded(t *testing.T) {
	reset()
	Init(testFS())
	defer reset()

	for _, path := range []string{"data/particle_field.yaml", "./data/particle_field.yaml"} {
		t.Run(path, func(t *testing.T) {
			data, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile(%q) failed: %v", path, err)
			}
			if string(data) != "density: 10000\n" {
				t.Errorf("ReadFile(%q) = %q", path, data)
			}
		})
	}

	if _, err := ReadFile("data/missing.yaml"); err == nil {
		t.Error("Expected error for missing embedded file")
	}
}

// TestReadFileDisk 测试非 data/ 路径从磁盘读取（即使未初始化）
func TestReadFileDisk(t *testing.T) {
	reset()

	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("density: 5000\n"), 0644); err != nil {
		t.Fatalf("Failed to write override: %v", err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) failed: %v", path, err)
	}
	if string(data) != "density: 5000\n" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := ReadFile(""); err == nil {
		t.Error("Expected error for empty path")
	}
}

// TestExists 测试嵌入与磁盘路径的存在性检查
func TestExists(t *testing.T) {
	reset()
	defer reset()

	if Exists("data/site.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}

	Init(testFS())

	if !Exists("data/site.yaml") {
		t.Error("Expected data/site.yaml to exist")
	}
	if Exists("data/nonexistent.yaml") {
		t.Error("Expected Exists() to return false for non-existent file")
	}
	if Exists(filepath.Join(t.TempDir(), "nope.yaml")) {
		t.Error("Expected Exists() to return false for missing disk file")
	}
	if Exists("") {
		t.Error("Expected Exists(\"\") to be false")
	}
}

// TestGlob 测试嵌入资源匹配
func TestGlob(t *testing.T) {
	reset()
	defer reset()

	if _, err := Glob("data/*.yaml"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}

	Init(testFS())

	matches, err := Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("Expected 2 matches, got %v", matches)
	}

	_, err = Glob("invalid/*.txt")
	if err == nil {
		t.Error("Expected error for invalid path prefix")
	}
	if err != nil && err.Error() != "unknown resource path prefix: invalid/*.txt (must start with 'data/')" {
		t.Errorf("Unexpected error message: %v", err)
	}
}
