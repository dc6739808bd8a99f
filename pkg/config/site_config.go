package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/graysable/site/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// SiteConfigPath 默认站点元数据文件路径（嵌入资源）
const SiteConfigPath = "data/site.yaml"

// SiteMetadata 站点的 SEO 与社交分享元数据
//
// 这是一个静态的键值契约：页面头部由外部模板渲染，本包只负责加载、校验，
// 并把嵌套结构展开为有序的标签列表。
type SiteMetadata struct {
	MetadataBase string          `yaml:"metadataBase"` // 绝对 URL，用于解析相对图片地址
	Title        string          `yaml:"title"`
	Description  string          `yaml:"description"`
	Keywords     []string        `yaml:"keywords"`
	Authors      []SiteAuthor    `yaml:"authors"`
	OpenGraph    OpenGraphConfig `yaml:"openGraph"`
	Twitter      TwitterConfig   `yaml:"twitter"`
}

// SiteAuthor 作者信息
type SiteAuthor struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

// OpenGraphConfig Open Graph 元数据
type OpenGraphConfig struct {
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Type        string           `yaml:"type"`
	Images      []OpenGraphImage `yaml:"images"`
}

// OpenGraphImage Open Graph 分享图片
type OpenGraphImage struct {
	URL    string `yaml:"url"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Alt    string `yaml:"alt"`
}

// TwitterConfig Twitter 卡片元数据
type TwitterConfig struct {
	Card        string   `yaml:"card"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Images      []string `yaml:"images"`
}

// MetaTag 一个展开后的 <meta> 标签
// Attr 为 "name" 或 "property"
type MetaTag struct {
	Attr    string
	Key     string
	Content string
}

var validTwitterCards = map[string]bool{
	"summary":             true,
	"summary_large_image": true,
	"app":                 true,
	"player":              true,
}

// LoadSiteMetadata 从 YAML 文件加载站点元数据
func LoadSiteMetadata(path string) (*SiteMetadata, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site metadata %s: %w", path, err)
	}

	var meta SiteMetadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to parse site metadata YAML from %s: %w", path, err)
	}

	if err := validateSiteMetadata(&meta); err != nil {
		return nil, fmt.Errorf("invalid site metadata in %s: %w", path, err)
	}

	return &meta, nil
}

// validateSiteMetadata 验证元数据的完整性
func validateSiteMetadata(meta *SiteMetadata) error {
	base, err := url.Parse(meta.MetadataBase)
	if err != nil {
		return fmt.Errorf("metadataBase: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return fmt.Errorf("metadataBase must be an absolute URL, got %q", meta.MetadataBase)
	}

	if strings.TrimSpace(meta.Title) == "" {
		return fmt.Errorf("title is required")
	}

	for i, author := range meta.Authors {
		if strings.TrimSpace(author.Name) == "" {
			return fmt.Errorf("authors[%d]: name is required", i)
		}
	}

	for i, img := range meta.OpenGraph.Images {
		if img.URL == "" {
			return fmt.Errorf("openGraph.images[%d]: url is required", i)
		}
		if img.Width <= 0 || img.Height <= 0 {
			return fmt.Errorf("openGraph.images[%d]: size must be positive, got %dx%d", i, img.Width, img.Height)
		}
		if _, err := url.Parse(img.URL); err != nil {
			return fmt.Errorf("openGraph.images[%d]: %w", i, err)
		}
	}

	if meta.Twitter.Card != "" && !validTwitterCards[meta.Twitter.Card] {
		return fmt.Errorf("twitter.card %q is not a valid card type", meta.Twitter.Card)
	}
	for i, img := range meta.Twitter.Images {
		if _, err := url.Parse(img); err != nil {
			return fmt.Errorf("twitter.images[%d]: %w", i, err)
		}
	}

	return nil
}

// ResolveURL 将相对地址解析为基于 MetadataBase 的绝对地址
func (m *SiteMetadata) ResolveURL(ref string) string {
	base, err := url.Parse(m.MetadataBase)
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(u).String()
}

// Tags 将元数据展开为有序的 <meta> 标签列表
// 空字段不会生成标签
func (m *SiteMetadata) Tags() []MetaTag {
	tags := make([]MetaTag, 0, 16)
	add := func(attr, key, content string) {
		if content == "" {
			return
		}
		tags = append(tags, MetaTag{Attr: attr, Key: key, Content: content})
	}

	add("name", "description", m.Description)
	add("name", "keywords", strings.Join(m.Keywords, ", "))
	for _, author := range m.Authors {
		add("name", "author", author.Name)
	}

	og := m.OpenGraph
	add("property", "og:title", og.Title)
	add("property", "og:description", og.Description)
	add("property", "og:type", og.Type)
	for _, img := range og.Images {
		add("property", "og:image", m.ResolveURL(img.URL))
		add("property", "og:image:width", strconv.Itoa(img.Width))
		add("property", "og:image:height", strconv.Itoa(img.Height))
		add("property", "og:image:alt", img.Alt)
	}

	tw := m.Twitter
	add("name", "twitter:card", tw.Card)
	add("name", "twitter:title", tw.Title)
	add("name", "twitter:description", tw.Description)
	for _, img := range tw.Images {
		add("name", "twitter:image", m.ResolveURL(img))
	}

	return tags
}
