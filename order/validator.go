package order

// Classified 是一个已分类的成员
type Classified struct {
	Member   Member
	Category Category
}

// Violation 记录一个相对紧邻前驱成员顺序错误的成员
type Violation struct {
	Index    int      // Index: 成员在类体中的声明序号
	Member   Member   // Member: 违规成员，供上层锚定诊断位置
	Category Category // Category: 违规成员的分类
	Previous Category // Previous: 紧邻前一个成员的分类
}

// ClassifyAll 按声明顺序对成员逐个分类
func ClassifyAll(members []Member) []Classified {
	out := make([]Classified, len(members))
	for i, m := range members {
		out[i] = Classified{Member: m, Category: Classify(m)}
	}
	return out
}

// FindViolations 对成员分类后检查顺序，返回按声明顺序排列的违规列表
func FindViolations(members []Member, o *Order) []Violation {
	return CheckClassified(ClassifyAll(members), o)
}

// CheckClassified 只与下标 i-1 的成员做两两比较，而不是与最后一个顺序正确的成员比较，
// 因此一个放错位置的成员只会被报告一次。分类不在顺序中的成员既不会触发违规，
// 其后继与它比较时也不会触发（位置 -1）。
func CheckClassified(classified []Classified, o *Order) []Violation {
	if o == nil {
		o = DefaultOrder()
	}

	var violations []Violation
	for i := 1; i < len(classified); i++ {
		cur := o.Position(classified[i].Category)
		if cur < 0 {
			continue
		}
		if cur < o.Position(classified[i-1].Category) {
			violations = append(violations, Violation{
				Index:    i,
				Member:   classified[i].Member,
				Category: classified[i].Category,
				Previous: classified[i-1].Category,
			})
		}
	}
	return violations
}
