// Package order 对类成员做语义分类，并检查成员声明是否符合规范顺序。
package order

import "strings"

// Category 是成员的语义分类
type Category string

const (
	StaticProperty            Category = "static-property"
	StaticMethod              Category = "static-method"
	ComponentInput            Category = "component-input"
	ComponentOutput           Category = "component-output"
	ComponentHostBindingAttr  Category = "component-hostbinding-attr"
	ComponentHostBindingClass Category = "component-hostbinding-class"
	ComponentHostBindingStyle Category = "component-hostbinding-style"
	ComponentHostBindingOther Category = "component-hostbinding-other"
	ComponentContentChild     Category = "component-contentchild"
	ComponentContentChildren  Category = "component-contentchildren"
	ComponentViewChild        Category = "component-viewchild"
	ComponentViewChildren     Category = "component-viewchildren"
	InstanceProperty          Category = "instance-property"
	InstanceConstructor       Category = "instance-constructor"
	ComponentListenerGlobal   Category = "component-listener-global"
	ComponentListenerHost     Category = "component-listener-host"
	ComponentListenerView     Category = "component-listener-view"
	InstanceMethod            Category = "instance-method"

	// Unknown 不参与任何顺序比较
	Unknown Category = "unknown"
)

// lifecycleHooks 按 Angular 的调用顺序排列
var lifecycleHooks = []string{
	"ngOnChanges",
	"ngOnInit",
	"ngDoCheck",
	"ngAfterContentInit",
	"ngAfterContentChecked",
	"ngAfterViewInit",
	"ngAfterViewChecked",
	"ngOnDestroy",
}

// lifecycleCategories: hook 方法名 -> 分类，例如 ngOnInit -> lifecycle-oninit
var lifecycleCategories = func() map[string]Category {
	m := make(map[string]Category, len(lifecycleHooks))
	for _, hook := range lifecycleHooks {
		m[hook] = lifecycleCategory(hook)
	}
	return m
}()

func lifecycleCategory(hook string) Category {
	return Category("lifecycle-" + strings.ToLower(strings.TrimPrefix(hook, "ng")))
}

// defaultOrder 是内置的规范顺序，初始化后不再修改
var defaultOrder = func() []Category {
	cats := []Category{
		StaticProperty,
		StaticMethod,
		ComponentInput,
		ComponentOutput,
		ComponentHostBindingAttr,
		ComponentHostBindingClass,
		ComponentHostBindingStyle,
		ComponentHostBindingOther,
		ComponentContentChild,
		ComponentContentChildren,
		ComponentViewChild,
		ComponentViewChildren,
		InstanceProperty,
		InstanceConstructor,
	}
	for _, hook := range lifecycleHooks {
		cats = append(cats, lifecycleCategory(hook))
	}
	return append(cats,
		ComponentListenerGlobal,
		ComponentListenerHost,
		ComponentListenerView,
		InstanceMethod,
	)
}()

var vocabulary = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(defaultOrder))
	for _, c := range defaultOrder {
		m[c] = struct{}{}
	}
	return m
}()

// Categories 返回完整的分类词表（即默认顺序）的副本
func Categories() []Category {
	return append([]Category(nil), defaultOrder...)
}

// LifecycleHooks 返回可识别的生命周期方法名
func LifecycleHooks() []string {
	return append([]string(nil), lifecycleHooks...)
}

// IsKnown 判断 c 是否属于分类词表；Unknown 不属于词表
func IsKnown(c Category) bool {
	_, ok := vocabulary[c]
	return ok
}
