// Package main 校验 data/ 下的全部 YAML 配置
//
// Usage:
//
//	go run ./cmd/validate_config [--dir .]
//
// 每个配置文件都经过与运行时相同的加载和校验流程，任一失败时退出码为 1。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/graysable/site/pkg/config"
	"github.com/graysable/site/pkg/embedded"
)

var dirFlag = flag.String("dir", ".", "Project root containing data/")

type check struct {
	path string
	load func(path string) (string, error)
}

func main() {
	flag.Parse()
	embedded.Init(os.DirFS(*dirFlag))

	checks := []check{
		{config.ParticleFieldConfigPath, func(path string) (string, error) {
			cfg, err := config.LoadParticleFieldConfig(path)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("density %.0f, color %s, radius %.0f", cfg.Density, cfg.Color, cfg.Interaction.Radius), nil
		}},
		{config.PreviewConfigPath, func(path string) (string, error) {
			cfg, err := config.LoadPreviewConfig(path)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%dx%d, page height %d", cfg.Width, cfg.Height, cfg.PageHeight), nil
		}},
		{config.SiteConfigPath, func(path string) (string, error) {
			meta, err := config.LoadSiteMetadata(path)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%q, %d meta tags", meta.Title, len(meta.Tags())), nil
		}},
	}

	failed := 0
	for _, c := range checks {
		summary, err := c.load(c.path)
		if err != nil {
			fmt.Printf("❌ %s: %v\n", c.path, err)
			failed++
			continue
		}
		fmt.Printf("✅ %s: %s\n", c.path, summary)
	}

	if failed > 0 {
		fmt.Printf("❌ %d of %d config files failed validation\n", failed, len(checks))
		os.Exit(1)
	}
	fmt.Printf("✅ All %d config files are valid\n", len(checks))
}
