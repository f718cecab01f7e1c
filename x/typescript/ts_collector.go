package typescript

import (
	"strings"

	"github.com/CodMac/ng-member-order/model"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

type Collector struct{}

func NewTypeScriptCollector() *Collector {
	return &Collector{}
}

func (c *Collector) CollectClasses(rootNode *sitter.Node, filePath string, sourceBytes []byte) ([]*model.ClassDecl, error) {
	var classes []*model.ClassDecl
	c.collectClassesRecursive(rootNode, filePath, sourceBytes, &classes)
	return classes, nil
}

// collectClassesRecursive 先序遍历，外层类排在其内部嵌套类之前
func (c *Collector) collectClassesRecursive(node *sitter.Node, filePath string, sourceBytes []byte, classes *[]*model.ClassDecl) {
	if node == nil {
		return
	}

	switch node.Kind() {
	case nodeClassDeclaration, nodeAbstractClassDeclaration, nodeClassExpression:
		// 匿名的 class 关键字 token 与类表达式同名，需要排除
		if !node.IsNamed() {
			break
		}
		if decl := c.extractClass(node, filePath, sourceBytes); decl != nil {
			*classes = append(*classes, decl)
		}
	}

	cursor := node.Walk()
	defer cursor.Close()

	if cursor.GotoFirstChild() {
		for {
			c.collectClassesRecursive(cursor.Node(), filePath, sourceBytes, classes)
			if !cursor.GotoNextSibling() {
				break
			}
		}
	}
}

func (c *Collector) extractClass(node *sitter.Node, filePath string, sourceBytes []byte) *model.ClassDecl {
	body := node.ChildByFieldName("body")
	if body == nil {
		return nil
	}

	decl := &model.ClassDecl{
		Name:     c.getNodeContent(node.ChildByFieldName("name"), sourceBytes),
		Path:     filePath,
		Location: c.extractLocation(node, filePath),
		Members:  make([]*model.Member, 0),
	}

	// TypeScript 语法中方法的装饰器是 class_body 里位于方法之前的兄弟节点，
	// 字段的装饰器则是字段节点自身的子节点，两种情况都要收集。
	var pending []model.Decorator
	var pendingStart *sitter.Node
	for i := uint(0); i < body.NamedChildCount(); i++ {
		child := body.NamedChild(i)
		if child == nil {
			continue
		}

		switch child.Kind() {
		case nodeComment:
			continue
		case nodeDecorator:
			pending = append(pending, c.extractDecorator(child, sourceBytes))
			if pendingStart == nil {
				pendingStart = child
			}
			continue
		}

		member := c.extractMember(child, filePath, sourceBytes)
		if len(pending) > 0 {
			member.Decorators = append(pending, member.Decorators...)
			member.Location.StartLine = int(pendingStart.StartPosition().Row) + 1
			member.Location.StartColumn = int(pendingStart.StartPosition().Column)
		}
		decl.Members = append(decl.Members, member)
		pending, pendingStart = nil, nil
	}

	return decl
}

func (c *Collector) extractMember(node *sitter.Node, filePath string, sourceBytes []byte) *model.Member {
	var nameNode *sitter.Node
	if namedMemberKinds[node.Kind()] {
		nameNode = node.ChildByFieldName("name")
	}
	member := &model.Member{
		Kind:     model.Other,
		Name:     c.getNodeContent(nameNode, sourceBytes),
		Location: c.extractLocation(node, filePath),
	}
	if nameNode != nil {
		member.NameLocation = c.extractLocation(nameNode, filePath)
	}

	modifiers, decorators, accessor := c.extractModifiersAndDecorators(node, nameNode, sourceBytes)
	member.Modifiers = modifiers
	member.Decorators = decorators

	switch node.Kind() {
	case nodePublicFieldDefinition:
		member.Kind = model.Property
	case nodeMethodDefinition, nodeMethodSignature, nodeAbstractMethodSignature:
		switch {
		case member.Name == constructorName:
			member.Kind = model.Constructor
		case accessor == "get":
			member.Kind = model.GetAccessor
		case accessor == "set":
			member.Kind = model.SetAccessor
		default:
			member.Kind = model.Method
		}
	}

	return member
}

// extractModifiersAndDecorators 读取成员名之前的子节点：关键字修饰符、访问修饰符、
// 成员自身的装饰器，以及 get/set 访问器关键字。
func (c *Collector) extractModifiersAndDecorators(node, nameNode *sitter.Node, sourceBytes []byte) ([]string, []model.Decorator, string) {
	var mods []string
	var decos []model.Decorator
	accessor := ""

	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		if nameNode != nil && child.StartByte() >= nameNode.StartByte() {
			break
		}

		kind := child.Kind()
		switch {
		case kind == nodeDecorator:
			decos = append(decos, c.extractDecorator(child, sourceBytes))
		case kind == nodeAccessibilityModifier, kind == nodeOverrideModifier:
			mods = append(mods, c.getNodeContent(child, sourceBytes))
		case child.IsNamed():
			continue
		case kind == "get", kind == "set":
			accessor = kind
		case kind == "static get":
			// "static get" 后紧跟换行时被词法合并为一个 token。
			// 语法在 `static get` 换行后再接 `bar() {}` 的写法下不会产出该 token，
			// 而是拆成静态字段 get 与方法 bar，这里按语法树原样收集。
			mods = append(mods, "static")
			accessor = "get"
		case keywordModifiers[kind]:
			mods = append(mods, kind)
		}
	}
	return mods, decos, accessor
}

// extractDecorator 解析 `@Name`、`@ns.Name`、`@Name(args...)` 三种形式。
// 名称保留原文，不做别名解析；实参保留源码文本（字符串带引号）。
func (c *Collector) extractDecorator(node *sitter.Node, sourceBytes []byte) model.Decorator {
	expr := node.NamedChild(0)
	if expr == nil {
		return model.Decorator{Name: strings.TrimPrefix(c.getNodeContent(node, sourceBytes), "@")}
	}

	if expr.Kind() != nodeCallExpression {
		return model.Decorator{Name: c.getNodeContent(expr, sourceBytes)}
	}

	d := model.Decorator{Name: c.getNodeContent(expr.ChildByFieldName("function"), sourceBytes)}
	if args := expr.ChildByFieldName("arguments"); args != nil {
		for i := uint(0); i < args.NamedChildCount(); i++ {
			arg := args.NamedChild(i)
			if arg == nil || arg.Kind() == nodeComment {
				continue
			}
			d.Arguments = append(d.Arguments, c.getNodeContent(arg, sourceBytes))
		}
	}
	return d
}

func (c *Collector) extractLocation(n *sitter.Node, filePath string) *model.Location {
	if n == nil {
		return nil
	}
	return &model.Location{
		FilePath:    filePath,
		StartLine:   int(n.StartPosition().Row) + 1,
		EndLine:     int(n.EndPosition().Row) + 1,
		StartColumn: int(n.StartPosition().Column),
		EndColumn:   int(n.EndPosition().Column),
	}
}

func (c *Collector) getNodeContent(n *sitter.Node, sourceBytes []byte) string {
	if n == nil {
		return ""
	}
	return n.Utf8Text(sourceBytes)
}
