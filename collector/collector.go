package collector

import (
	"fmt"

	"github.com/CodMac/ng-member-order/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Collector 用于收集类声明及其直接成员。
type Collector interface {
	// CollectClasses 负责遍历 AST，按源码顺序返回文件中的全部类声明（含嵌套类）。
	CollectClasses(rootNode *sitter.Node, filePath string, sourceBytes []byte) ([]*model.ClassDecl, error)
}

var collectorMap = make(map[model.Language]Collector)

// RegisterCollector 注册一个语言与其对应的 Collector
func RegisterCollector(lang model.Language, collector Collector) {
	collectorMap[lang] = collector
}

// GetCollector 根据语言类型获取对应的 Collector 实例。
func GetCollector(lang model.Language) (Collector, error) {
	collector, ok := collectorMap[lang]
	if !ok {
		return nil, fmt.Errorf("no collector registered for language: %s", lang)
	}

	return collector, nil
}
