package output

import (
	"encoding/json"
	"io"

	"github.com/CodMac/ng-member-order/model"
)

type JSONLWriter struct {
	encoder *json.Encoder
}

func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{
		encoder: json.NewEncoder(w),
	}
}

func (w *JSONLWriter) Write(v interface{}) error {
	return w.encoder.Encode(v)
}

// WriteDiagnostics 每行输出一条诊断，返回写出的条数
func (w *JSONLWriter) WriteDiagnostics(diagnostics []*model.Diagnostic) (int, error) {
	count := 0
	for _, d := range diagnostics {
		if err := w.Write(d); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
