package model

import (
	"fmt"
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language 标识支持的编程语言
type Language string

const (
	LangTypeScript Language = "typescript"
	LangTSX        Language = "tsx"
)

// langMap 存储语言标识到 Tree-sitter 语言对象的映射
var langMap = make(map[Language]*sitter.Language)

// RegisterLanguage 用于注册 Tree-sitter 语言库
func RegisterLanguage(lang Language, tsLang *sitter.Language) {
	langMap[lang] = tsLang
}

// GetLanguage 获取已注册的 Tree-sitter 语言对象
func GetLanguage(lang Language) (*sitter.Language, error) {
	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}

	return tsLang, nil
}

// RegisteredLanguages 返回已注册的语言（按名称排序）
func RegisteredLanguages() []Language {
	langs := make([]Language, 0, len(langMap))
	for l := range langMap {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// FileExtensions 返回语言对应的源文件扩展名
func FileExtensions(lang Language) []string {
	switch lang {
	case LangTypeScript:
		return []string{".ts"}
	case LangTSX:
		return []string{".tsx"}
	default:
		return nil
	}
}
