package model

// Diagnostic 是一条成员顺序违规的输出记录
type Diagnostic struct {
	Path     string    `json:"Path"`
	Class    string    `json:"Class"`
	Member   string    `json:"Member"`
	Category string    `json:"Category"` // Category: 违规成员被判定的分类
	Previous string    `json:"Previous"` // Previous: 紧邻前一个成员的分类
	Location *Location `json:"Location"` // Location: 名称 token 的位置（无名称时为成员起始位置）
	Message  string    `json:"Message"`
}
