package model

import "fmt"

// MemberKind 是类成员的语法类型
type MemberKind string

const (
	Property    MemberKind = "PROPERTY"     // 字段 (e.g., `foo = 1`, `@Input() foo`)
	GetAccessor MemberKind = "GET_ACCESSOR" // getter (e.g., `get foo()`)
	SetAccessor MemberKind = "SET_ACCESSOR" // setter (e.g., `set foo(v)`)
	Constructor MemberKind = "CONSTRUCTOR"  // 构造函数
	Method      MemberKind = "METHOD"       // 方法（含重载签名、抽象方法）
	Other       MemberKind = "OTHER"        // 索引签名、static 块等无法归类的成员
)

// Location 描述了代码元素在源码中的位置
type Location struct {
	FilePath    string `json:"FilePath"`
	StartLine   int    `json:"StartLine"`
	EndLine     int    `json:"EndLine"`
	StartColumn int    `json:"StartColumn"`
	EndColumn   int    `json:"EndColumn"`
}

func (l *Location) String() string {
	if l == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.StartLine, l.StartColumn+1)
}

// Decorator 描述成员上声明的一个装饰器
type Decorator struct {
	Name      string   `json:"Name"`                // Name: 装饰器名称原文 (e.g., "HostBinding", "core.Input")
	Arguments []string `json:"Arguments,omitempty"` // Arguments: 各个实参的源码文本，字符串保留引号 (e.g., "'class.active'")
}

// FirstArgument 返回第一个位置参数的源码文本，没有参数时返回空串
func (d Decorator) FirstArgument() string {
	if len(d.Arguments) == 0 {
		return ""
	}
	return d.Arguments[0]
}

// Member 是类体中的一个直接成员
type Member struct {
	Kind         MemberKind  `json:"Kind"`
	Name         string      `json:"Name"`                   // Name: 成员名原文，索引签名等没有名称
	Decorators   []Decorator `json:"Decorators,omitempty"`   // Decorators: 按声明顺序
	Modifiers    []string    `json:"Modifiers,omitempty"`    // Modifiers: static, readonly, private, async ...
	Location     *Location   `json:"Location,omitempty"`     // Location: 整个成员（含装饰器）的位置
	NameLocation *Location   `json:"NameLocation,omitempty"` // NameLocation: 名称 token 的位置
}

func (m *Member) MemberKind() MemberKind { return m.Kind }

func (m *Member) MemberName() string { return m.Name }

func (m *Member) MemberDecorators() []Decorator { return m.Decorators }

func (m *Member) HasModifier(mod string) bool {
	for _, v := range m.Modifiers {
		if v == mod {
			return true
		}
	}
	return false
}

// Anchor 返回诊断应当锚定的位置：优先名称 token，否则成员的第一个 token
func (m *Member) Anchor() *Location {
	if m.NameLocation != nil {
		return m.NameLocation
	}
	return m.Location
}

// ClassDecl 描述一个类声明及其按源码顺序排列的直接成员
type ClassDecl struct {
	Name     string    `json:"Name"` // Name: 类名，匿名类表达式为空
	Path     string    `json:"Path"`
	Location *Location `json:"Location,omitempty"`
	Members  []*Member `json:"Members"`
}
