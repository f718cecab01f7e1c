package typescript

// Tree-sitter TypeScript 语法节点类型
const (
	nodeClassDeclaration         = "class_declaration"
	nodeAbstractClassDeclaration = "abstract_class_declaration"
	nodeClassExpression          = "class"
	nodeDecorator                = "decorator"
	nodeComment                  = "comment"
	nodeCallExpression           = "call_expression"
	nodeMethodDefinition         = "method_definition"
	nodeMethodSignature          = "method_signature"
	nodeAbstractMethodSignature  = "abstract_method_signature"
	nodePublicFieldDefinition    = "public_field_definition"
	nodeAccessibilityModifier    = "accessibility_modifier"
	nodeOverrideModifier         = "override_modifier"
)

const constructorName = "constructor"

// namedMemberKinds 是带成员名的节点类型；index_signature 等节点的 name 字段不是成员名
var namedMemberKinds = map[string]bool{
	nodePublicFieldDefinition:   true,
	nodeMethodDefinition:        true,
	nodeMethodSignature:         true,
	nodeAbstractMethodSignature: true,
}

// keywordModifiers 是出现在成员名之前、记录为修饰符的匿名关键字
var keywordModifiers = map[string]bool{
	"static":   true,
	"readonly": true,
	"abstract": true,
	"declare":  true,
	"async":    true,
	"override": true,
	"accessor": true,
}
