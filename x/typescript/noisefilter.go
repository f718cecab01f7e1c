package typescript

import (
	"path/filepath"
	"strings"
)

type NoiseFilter struct{}

func NewTypeScriptNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

// IsNoise 跳过类型声明文件和第三方依赖目录
func (f *NoiseFilter) IsNoise(filePath string) bool {
	p := filepath.ToSlash(filePath)
	if strings.HasSuffix(p, ".d.ts") {
		return true
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "node_modules" {
			return true
		}
	}
	return false
}
