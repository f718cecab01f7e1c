package collector_test

import (
	"testing"

	"github.com/CodMac/ng-member-order/collector"
	"github.com/CodMac/ng-member-order/model"
	_ "github.com/CodMac/ng-member-order/x/typescript"
	"github.com/stretchr/testify/assert"
)

func TestGetCollector(t *testing.T) {
	for _, lang := range []model.Language{model.LangTypeScript, model.LangTSX} {
		c, err := collector.GetCollector(lang)
		assert.NoError(t, err)
		assert.NotNil(t, c)
	}

	_, err := collector.GetCollector("java")
	assert.Error(t, err)
	assert.Equal(t, []model.Language{model.LangTSX, model.LangTypeScript}, model.RegisteredLanguages())
}
