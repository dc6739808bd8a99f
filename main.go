// Package main 是 GraySable 背景粒子场的桌面预览程序
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--config <path>    Particle field config (default: embedded data/particle_field.yaml)
//	--preview <path>   Preview window config (default: embedded data/preview.yaml)
//	--seed <n>         Fixed random seed (0 = time based)
//	--width, --height  Initial window size (0 = preview config)
//
// Controls:
//
//	Mouse move        - Repel particles around the cursor
//	Mouse wheel       - Scroll the virtual page (at the top this pauses the field)
//	F11               - Toggle fullscreen
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/graysable/site/pkg/app"
	"github.com/graysable/site/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	configFlag  = flag.String("config", "", "Particle field config file")
	previewFlag = flag.String("preview", "", "Preview window config file")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	widthFlag   = flag.Int("width", 0, "Initial window width")
	heightFlag  = flag.Int("height", 0, "Initial window height")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	previewApp := app.NewApp(app.Config{
		Verbose:     *verboseFlag,
		ConfigPath:  *configFlag,
		PreviewPath: *previewFlag,
		Seed:        *seedFlag,
		Width:       *widthFlag,
		Height:      *heightFlag,
	})

	w, h := previewApp.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(previewApp.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := run(previewApp, ebiten.RunGame); err != nil {
		fmt.Fprintf(os.Stderr, "预览运行失败: %v\n", err)
		os.Exit(1)
	}
}

// run 运行游戏循环，并保证无论循环如何结束都卸载粒子场
// os.Exit 不会执行 defer，所以退出前必须先从这里返回
func run(previewApp *app.App, runGame func(ebiten.Game) error) error {
	defer previewApp.Close()
	return runGame(previewApp)
}
