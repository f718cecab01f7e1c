package order

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration 用于 errors.Is 判断自定义顺序配置错误
var ErrInvalidConfiguration = errors.New("invalid configuration")

// InvalidConfigurationError 表示自定义顺序中出现了词表之外的分类
type InvalidConfigurationError struct {
	Entry string
	Index int
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: unknown member category %q at position %d", e.Entry, e.Index)
}

func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// ValidateOrderSpec 逐项检查自定义顺序，遇到第一个未知分类立即失败。
// 重复项不视为错误，排序比较时以首次出现的位置为准。
func ValidateOrderSpec(candidate []string) error {
	for i, entry := range candidate {
		if !IsKnown(Category(entry)) {
			return &InvalidConfigurationError{Entry: entry, Index: i}
		}
	}
	return nil
}

// Order 是一个规范分类顺序，构造后只读，可被多个 goroutine 共享
type Order struct {
	categories []Category
	positions  map[Category]int
}

// NewOrder 由分类列表构造顺序；重复分类保留首次出现的位置
func NewOrder(categories []Category) *Order {
	o := &Order{
		categories: append([]Category(nil), categories...),
		positions:  make(map[Category]int, len(categories)),
	}
	for i, c := range o.categories {
		if _, seen := o.positions[c]; !seen {
			o.positions[c] = i
		}
	}
	return o
}

var defaultOrderValue = NewOrder(defaultOrder)

// DefaultOrder 返回内置的默认顺序
func DefaultOrder() *Order {
	return defaultOrderValue
}

// ParseOrder 校验并构造自定义顺序；names 为空时返回默认顺序
func ParseOrder(names []string) (*Order, error) {
	if len(names) == 0 {
		return DefaultOrder(), nil
	}
	if err := ValidateOrderSpec(names); err != nil {
		return nil, err
	}

	cats := make([]Category, len(names))
	for i, n := range names {
		cats[i] = Category(n)
	}
	return NewOrder(cats), nil
}

// Position 返回分类在顺序中的位置，不在顺序中（含 Unknown）时返回 -1
func (o *Order) Position(c Category) int {
	if p, ok := o.positions[c]; ok {
		return p
	}
	return -1
}

// Categories 返回顺序中的分类副本
func (o *Order) Categories() []Category {
	return append([]Category(nil), o.categories...)
}

// Strings 以字符串形式返回顺序，便于写回配置
func (o *Order) Strings() []string {
	out := make([]string, len(o.categories))
	for i, c := range o.categories {
		out[i] = string(c)
	}
	return out
}
