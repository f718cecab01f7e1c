package processor_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/order"
	"github.com/CodMac/ng-member-order/processor"
	_ "github.com/CodMac/ng-member-order/x/typescript" // 确保注册 TypeScript
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestFilePath(name string) string {
	currentDir, _ := filepath.Abs(filepath.Dir("."))
	return filepath.Join(currentDir, "testdata", name)
}

func relPaths(t *testing.T, root string, paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out[i] = filepath.ToSlash(rel)
	}
	return out
}

func TestDiscoverFiles(t *testing.T) {
	root := getTestFilePath("")

	files, err := processor.DiscoverFiles(root, model.LangTypeScript, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"app/clean.component.spec.ts",
		"app/clean.component.ts",
		"app/hero.component.ts",
	}, relPaths(t, root, files))
}

func TestDiscoverFiles_Exclude(t *testing.T) {
	root := getTestFilePath("")

	files, err := processor.DiscoverFiles(root, model.LangTypeScript, func(rel string) bool {
		return filepath.Base(rel) == "clean.component.spec.ts"
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"app/clean.component.ts", "app/hero.component.ts"}, relPaths(t, root, files))
}

func TestDiscoverFiles_SingleFile(t *testing.T) {
	path := getTestFilePath(filepath.Join("app", "hero.component.ts"))
	files, err := processor.DiscoverFiles(path, model.LangTypeScript, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverFiles_MissingRoot(t *testing.T) {
	_, err := processor.DiscoverFiles(getTestFilePath("does-not-exist"), model.LangTypeScript, nil)
	assert.Error(t, err)
}

func TestFileProcessor_ProcessFiles(t *testing.T) {
	heroPath := getTestFilePath(filepath.Join("app", "hero.component.ts"))
	cleanPath := getTestFilePath(filepath.Join("app", "clean.component.ts"))
	missing := getTestFilePath(filepath.Join("app", "missing.ts"))

	proc := processor.NewFileProcessor(model.LangTypeScript, 2, nil, nil)
	result, err := proc.ProcessFiles(context.Background(), []string{cleanPath, missing, heroPath})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Files)
	assert.Equal(t, 2, result.Classes)
	assert.Equal(t, 20, result.Members)
	assert.Equal(t, []string{missing}, result.Skipped)

	require.Len(t, result.Diagnostics, 2)

	first := result.Diagnostics[0]
	assert.Equal(t, heroPath, first.Path)
	assert.Equal(t, "HeroComponent", first.Class)
	assert.Equal(t, "ngOnDestroy", first.Member)
	assert.Equal(t, "lifecycle-ondestroy", first.Category)
	assert.Equal(t, "instance-method", first.Previous)
	assert.Equal(t, 26, first.Location.StartLine)
	assert.Contains(t, first.Message, "ngOnDestroy")

	second := result.Diagnostics[1]
	assert.Equal(t, "create", second.Member)
	assert.Equal(t, "static-method", second.Category)
	assert.Equal(t, "lifecycle-ondestroy", second.Previous)
	assert.Equal(t, 28, second.Location.StartLine)
	assert.Equal(t, 9, second.Location.StartColumn)
}

func TestFileProcessor_DeterministicAcrossWorkers(t *testing.T) {
	root := getTestFilePath("")
	files, err := processor.DiscoverFiles(root, model.LangTypeScript, nil)
	require.NoError(t, err)

	one, err := processor.NewFileProcessor(model.LangTypeScript, 1, nil, nil).ProcessFiles(context.Background(), files)
	require.NoError(t, err)
	many, err := processor.NewFileProcessor(model.LangTypeScript, 8, nil, nil).ProcessFiles(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, one.Diagnostics, many.Diagnostics)
	// clean.component.spec.ts 中的 Fixture 类：static build 位于 run 之后
	assert.Len(t, one.Diagnostics, 3)
}

func TestFileProcessor_CustomOrder(t *testing.T) {
	heroPath := getTestFilePath(filepath.Join("app", "hero.component.ts"))
	custom, err := order.ParseOrder([]string{"instance-method", "static-method"})
	require.NoError(t, err)

	result, err := processor.NewFileProcessor(model.LangTypeScript, 1, custom, nil).ProcessFiles(context.Background(), []string{heroPath})
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
}

func TestFileProcessor_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := processor.NewFileProcessor(model.LangTypeScript, 1, nil, nil).ProcessFiles(ctx, []string{getTestFilePath(filepath.Join("app", "hero.component.ts"))})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileProcessor_UnknownLanguage(t *testing.T) {
	_, err := processor.NewFileProcessor(model.Language("cobol"), 1, nil, nil).ProcessFiles(context.Background(), []string{"a.cbl"})
	assert.Error(t, err)
}

func TestFileProcessor_EmptyInput(t *testing.T) {
	result, err := processor.NewFileProcessor(model.LangTypeScript, 1, nil, nil).ProcessFiles(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, result.Diagnostics)
}

func TestFileProcessor_CheckClass(t *testing.T) {
	decl := &model.ClassDecl{
		Path: "inline.ts",
		Members: []*model.Member{
			{Kind: model.Property, Name: "a", Location: &model.Location{StartLine: 2}},
			{Kind: model.Other, Location: &model.Location{StartLine: 3}},
			{Kind: model.Property, Name: "ID", Modifiers: []string{"static"}, Location: &model.Location{StartLine: 4}, NameLocation: &model.Location{StartLine: 4, StartColumn: 9}},
		},
	}

	proc := processor.NewFileProcessor(model.LangTypeScript, 1, nil, nil)
	assert.Empty(t, proc.CheckClass(decl), "unknown members are transparent")

	decl.Members = append(decl.Members[:1], decl.Members[2])
	ds := proc.CheckClass(decl)
	require.Len(t, ds, 1)
	assert.Equal(t, "<anonymous>", ds[0].Class)
	assert.Equal(t, "ID", ds[0].Member)
	assert.Equal(t, 9, ds[0].Location.StartColumn)
}
