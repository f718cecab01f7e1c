package order_test

import (
	"testing"

	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/order"
	"github.com/stretchr/testify/assert"
)

func deco(name string, args ...string) model.Decorator {
	return model.Decorator{Name: name, Arguments: args}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		member *model.Member
		want   order.Category
	}{
		{"plain field", &model.Member{Kind: model.Property, Name: "count"}, order.InstanceProperty},
		{"static field", &model.Member{Kind: model.Property, Name: "ID", Modifiers: []string{"static", "readonly"}}, order.StaticProperty},
		{"input field", &model.Member{Kind: model.Property, Name: "value", Decorators: []model.Decorator{deco("Input")}}, order.ComponentInput},
		{"input wins over others", &model.Member{Kind: model.Property, Name: "value", Decorators: []model.Decorator{deco("HostBinding", "'class.a'"), deco("Input")}}, order.ComponentInput},
		{"input on setter", &model.Member{Kind: model.SetAccessor, Name: "value", Decorators: []model.Decorator{deco("Input")}}, order.ComponentInput},
		{"input on static field", &model.Member{Kind: model.Property, Name: "v", Modifiers: []string{"static"}, Decorators: []model.Decorator{deco("Input")}}, order.ComponentInput},
		{"output field", &model.Member{Kind: model.Property, Name: "changed", Decorators: []model.Decorator{deco("Output")}}, order.ComponentOutput},
		{"constructor", &model.Member{Kind: model.Constructor, Name: "constructor"}, order.InstanceConstructor},
		{"hostbinding getter", &model.Member{Kind: model.GetAccessor, Name: "active", Decorators: []model.Decorator{deco("HostBinding", "'class.active'")}}, order.ComponentHostBindingClass},
		{"plain getter", &model.Member{Kind: model.GetAccessor, Name: "active"}, order.Unknown},
		{"hostbinding setter", &model.Member{Kind: model.SetAccessor, Name: "active", Decorators: []model.Decorator{deco("HostBinding", "'class.active'")}}, order.Unknown},
		{"hostbinding field", &model.Member{Kind: model.Property, Name: "role", Decorators: []model.Decorator{deco("HostBinding", "'attr.role'")}}, order.ComponentHostBindingAttr},
		{"hostbinding without args", &model.Member{Kind: model.Property, Name: "x", Decorators: []model.Decorator{deco("HostBinding")}}, order.ComponentHostBindingOther},
		{"contentchild", &model.Member{Kind: model.Property, Name: "c", Decorators: []model.Decorator{deco("ContentChild", "Foo")}}, order.ComponentContentChild},
		{"contentchildren", &model.Member{Kind: model.Property, Name: "c", Decorators: []model.Decorator{deco("ContentChildren", "Foo")}}, order.ComponentContentChildren},
		{"viewchild", &model.Member{Kind: model.Property, Name: "v", Decorators: []model.Decorator{deco("ViewChild", "'ref'")}}, order.ComponentViewChild},
		{"viewchildren", &model.Member{Kind: model.Property, Name: "v", Decorators: []model.Decorator{deco("ViewChildren", "Bar")}}, order.ComponentViewChildren},
		{"viewchild on method is ignored", &model.Member{Kind: model.Method, Name: "load", Decorators: []model.Decorator{deco("ViewChild")}}, order.InstanceMethod},
		{"lifecycle ngOnDestroy", &model.Member{Kind: model.Method, Name: "ngOnDestroy"}, order.Category("lifecycle-ondestroy")},
		{"lifecycle ngAfterViewInit", &model.Member{Kind: model.Method, Name: "ngAfterViewInit"}, order.Category("lifecycle-afterviewinit")},
		{"lifecycle beats hostlistener", &model.Member{Kind: model.Method, Name: "ngOnInit", Decorators: []model.Decorator{deco("HostListener", "'click'")}}, order.Category("lifecycle-oninit")},
		{"lifecycle name on field", &model.Member{Kind: model.Property, Name: "ngOnInit"}, order.InstanceProperty},
		{"global listener", &model.Member{Kind: model.Method, Name: "handle", Decorators: []model.Decorator{deco("HostListener", "'click:window'", "['$event']")}}, order.ComponentListenerGlobal},
		{"host listener", &model.Member{Kind: model.Method, Name: "handle", Decorators: []model.Decorator{deco("HostListener", "'click'")}}, order.ComponentListenerHost},
		{"view listener", &model.Member{Kind: model.Method, Name: "onClick"}, order.ComponentListenerView},
		{"lowercase on", &model.Member{Kind: model.Method, Name: "onclick"}, order.InstanceMethod},
		{"bare on", &model.Member{Kind: model.Method, Name: "on"}, order.InstanceMethod},
		{"static method", &model.Member{Kind: model.Method, Name: "create", Modifiers: []string{"static"}}, order.StaticMethod},
		{"instance method", &model.Member{Kind: model.Method, Name: "save"}, order.InstanceMethod},
		{"aliased decorator is not resolved", &model.Member{Kind: model.Property, Name: "x", Decorators: []model.Decorator{deco("core.Input")}}, order.InstanceProperty},
		{"index signature", &model.Member{Kind: model.Other}, order.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.Classify(tt.member))
		})
	}
}

func TestClassify_IsTotal(t *testing.T) {
	kinds := []model.MemberKind{model.Property, model.GetAccessor, model.SetAccessor, model.Constructor, model.Method, model.Other, ""}
	for _, k := range kinds {
		c := order.Classify(&model.Member{Kind: k, Name: "whatever"})
		assert.NotEmpty(t, c)
		assert.True(t, c == order.Unknown || order.IsKnown(c), "kind %s -> %s", k, c)
	}
}

func TestExplain(t *testing.T) {
	c, rule := order.Explain(&model.Member{Kind: model.Method, Name: "onSave"})
	assert.Equal(t, order.ComponentListenerView, c)
	assert.Equal(t, "method-view-listener", rule)

	c, rule = order.Explain(&model.Member{Kind: model.Other})
	assert.Equal(t, order.Unknown, c)
	assert.Empty(t, rule)
}

func TestClassifyHostBinding(t *testing.T) {
	tests := map[string]order.Category{
		"'class.active'":   order.ComponentHostBindingClass,
		"'attr.role'":      order.ComponentHostBindingAttr,
		"'style.color'":    order.ComponentHostBindingStyle,
		`"style.width.px"`: order.ComponentHostBindingStyle,
		"`class.x`":        order.ComponentHostBindingClass,
		"'foo'":            order.ComponentHostBindingOther,
		"'class'":          order.ComponentHostBindingOther,
		"'@fade.disabled'": order.ComponentHostBindingOther,
		"":                 order.ComponentHostBindingOther,
	}
	for binding, want := range tests {
		assert.Equal(t, want, order.ClassifyHostBinding(binding), binding)
	}
}

func TestClassifyHostListener(t *testing.T) {
	assert.Equal(t, order.ComponentListenerGlobal, order.ClassifyHostListener("'click:window'"))
	assert.Equal(t, order.ComponentListenerGlobal, order.ClassifyHostListener("'document:keydown.escape'"))
	assert.Equal(t, order.ComponentListenerHost, order.ClassifyHostListener("'click'"))
	assert.Equal(t, order.ComponentListenerHost, order.ClassifyHostListener(""))
}

func TestIsViewListenerName(t *testing.T) {
	assert.True(t, order.IsViewListenerName("onClick"))
	assert.True(t, order.IsViewListenerName("onX"))
	assert.False(t, order.IsViewListenerName("onclick"))
	assert.False(t, order.IsViewListenerName("on"))
	assert.False(t, order.IsViewListenerName("online"))
	assert.False(t, order.IsViewListenerName("handleClick"))
	assert.False(t, order.IsViewListenerName("on_click"))
}
