package typescript

import (
	"github.com/CodMac/ng-member-order/collector"
	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/noisefilter"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

func init() {
	// 注册 Tree-sitter TypeScript / TSX 语言对象
	model.RegisterLanguage(model.LangTypeScript, sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()))
	model.RegisterLanguage(model.LangTSX, sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()))

	// 两种方言共用同一套 Collector 与 NoiseFilter
	c := NewTypeScriptCollector()
	f := NewTypeScriptNoiseFilter()
	for _, lang := range []model.Language{model.LangTypeScript, model.LangTSX} {
		collector.RegisterCollector(lang, c)
		noisefilter.RegisterNoiseFilter(lang, f)
	}
}
