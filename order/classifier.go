package order

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/CodMac/ng-member-order/model"
)

// Member 是分类器所需的最小成员抽象，由外部 AST 提供方实现
type Member interface {
	MemberKind() model.MemberKind
	MemberName() string
	MemberDecorators() []model.Decorator
	HasModifier(mod string) bool
}

// 分类器识别的装饰器名称，按原文精确比较，不解析 import 别名
const (
	decoratorInput           = "Input"
	decoratorOutput          = "Output"
	decoratorHostBinding     = "HostBinding"
	decoratorHostListener    = "HostListener"
	decoratorContentChild    = "ContentChild"
	decoratorContentChildren = "ContentChildren"
	decoratorViewChild       = "ViewChild"
	decoratorViewChildren    = "ViewChildren"

	modifierStatic = "static"
)

// rule 是分类表中的一条规则：match 命中后由 category 给出结果
type rule struct {
	name     string
	match    func(Member) bool
	category func(Member) Category
}

// rules 自上而下求值，第一条命中的规则生效
var rules = []rule{
	{"input", hasDecorator(decoratorInput), constant(ComponentInput)},
	{"output", hasDecorator(decoratorOutput), constant(ComponentOutput)},
	{"constructor", isKind(model.Constructor), constant(InstanceConstructor)},
	{"getter-hostbinding", all(isKind(model.GetAccessor), hasDecorator(decoratorHostBinding)), hostBindingCategory},

	{"property-hostbinding", all(isKind(model.Property), hasDecorator(decoratorHostBinding)), hostBindingCategory},
	{"property-contentchild", all(isKind(model.Property), hasDecorator(decoratorContentChild)), constant(ComponentContentChild)},
	{"property-contentchildren", all(isKind(model.Property), hasDecorator(decoratorContentChildren)), constant(ComponentContentChildren)},
	{"property-viewchild", all(isKind(model.Property), hasDecorator(decoratorViewChild)), constant(ComponentViewChild)},
	{"property-viewchildren", all(isKind(model.Property), hasDecorator(decoratorViewChildren)), constant(ComponentViewChildren)},
	{"property", isKind(model.Property), staticOr(StaticProperty, InstanceProperty)},

	{"method-lifecycle", all(isKind(model.Method), isLifecycleHook), lifecycleHookCategory},
	{"method-hostlistener", all(isKind(model.Method), hasDecorator(decoratorHostListener)), hostListenerCategory},
	{"method-view-listener", all(isKind(model.Method), isViewListenerName), constant(ComponentListenerView)},
	{"method", isKind(model.Method), staticOr(StaticMethod, InstanceMethod)},
}

// Classify 返回成员的语义分类。该函数是全函数：任何成员都会得到一个分类，
// 未命中任何规则时返回 Unknown。
func Classify(m Member) Category {
	c, _ := Explain(m)
	return c
}

// Explain 与 Classify 相同，同时返回命中的规则名；未命中时规则名为空
func Explain(m Member) (Category, string) {
	for _, r := range rules {
		if r.match(m) {
			return r.category(m), r.name
		}
	}
	return Unknown, ""
}

// ClassifyHostBinding 根据 HostBinding 绑定字符串（带引号的源码文本）判定分类
func ClassifyHostBinding(binding string) Category {
	binding = strings.TrimSpace(binding)
	if binding != "" && strings.ContainsRune(`'"`+"`", rune(binding[0])) {
		binding = binding[1:]
	}
	prefix, _, found := strings.Cut(binding, ".")
	if !found {
		return ComponentHostBindingOther
	}

	switch prefix {
	case "class":
		return ComponentHostBindingClass
	case "attr":
		return ComponentHostBindingAttr
	case "style":
		return ComponentHostBindingStyle
	default:
		return ComponentHostBindingOther
	}
}

// ClassifyHostListener 根据 HostListener 的事件字符串判定分类；
// 带 ":" 目标限定（例如 'click:window'）的视为全局监听
func ClassifyHostListener(event string) Category {
	if strings.Contains(event, ":") {
		return ComponentListenerGlobal
	}
	return ComponentListenerHost
}

// IsViewListenerName 判断方法名是否符合 onXxx 的事件处理器命名约定
func IsViewListenerName(name string) bool {
	if len(name) < 3 || !strings.HasPrefix(name, "on") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[2:])
	return unicode.IsUpper(r)
}

func findDecorator(m Member, name string) (model.Decorator, bool) {
	for _, d := range m.MemberDecorators() {
		if d.Name == name {
			return d, true
		}
	}
	return model.Decorator{}, false
}

func hasDecorator(name string) func(Member) bool {
	return func(m Member) bool {
		_, ok := findDecorator(m, name)
		return ok
	}
}

func isKind(kind model.MemberKind) func(Member) bool {
	return func(m Member) bool { return m.MemberKind() == kind }
}

func all(preds ...func(Member) bool) func(Member) bool {
	return func(m Member) bool {
		for _, p := range preds {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

func isLifecycleHook(m Member) bool {
	_, ok := lifecycleCategories[m.MemberName()]
	return ok
}

func isViewListenerName(m Member) bool {
	return IsViewListenerName(m.MemberName())
}

func constant(c Category) func(Member) Category {
	return func(Member) Category { return c }
}

func staticOr(static, instance Category) func(Member) Category {
	return func(m Member) Category {
		if m.HasModifier(modifierStatic) {
			return static
		}
		return instance
	}
}

func lifecycleHookCategory(m Member) Category {
	return lifecycleCategories[m.MemberName()]
}

func hostBindingCategory(m Member) Category {
	d, _ := findDecorator(m, decoratorHostBinding)
	return ClassifyHostBinding(d.FirstArgument())
}

func hostListenerCategory(m Member) Category {
	d, _ := findDecorator(m, decoratorHostListener)
	return ClassifyHostListener(d.FirstArgument())
}
