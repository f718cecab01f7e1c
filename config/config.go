package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/order"
	"gopkg.in/yaml.v3"
)

// DefaultFileName 是在检查根目录下自动查找的配置文件名
const DefaultFileName = ".ngmemberorder.yaml"

// Config 是一次检查运行的配置
type Config struct {
	Language model.Language `yaml:"language"` // Language: typescript 或 tsx
	Order    []string       `yaml:"order"`    // Order: 自定义分类顺序，为空时使用默认顺序
	Workers  int            `yaml:"workers"`  // Workers: 并发处理文件的协程数量
	Exclude  []string       `yaml:"exclude"`  // Exclude: 文件名或相对路径的 glob 模式
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Language: model.LangTypeScript,
		Workers:  runtime.NumCPU(),
	}
}

// Load 读取并校验配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse 解析 YAML 配置，未知字段视为错误；未设置的字段取默认值
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = model.LangTypeScript
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find 在 dir 中查找默认配置文件
func Find(dir string) (string, bool) {
	path := filepath.Join(dir, DefaultFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return path, true
	}
	return "", false
}

// Validate 校验语言、顺序和并发数。自定义顺序的错误保持为 *order.InvalidConfigurationError。
func (c *Config) Validate() error {
	switch c.Language {
	case model.LangTypeScript, model.LangTSX:
	default:
		return fmt.Errorf("unsupported language %q", c.Language)
	}

	if err := order.ValidateOrderSpec(c.Order); err != nil {
		return err
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// CanonicalOrder 返回本次运行使用的规范顺序
func (c *Config) CanonicalOrder() (*order.Order, error) {
	return order.ParseOrder(c.Order)
}

// IsExcluded 判断 relPath 是否命中任一排除模式（分别匹配完整相对路径和文件名）
func (c *Config) IsExcluded(relPath string) bool {
	slashed := filepath.ToSlash(relPath)
	base := filepath.Base(relPath)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// Marshal 以 YAML 输出配置，用于生成示例配置
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
