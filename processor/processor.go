package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/CodMac/ng-member-order/collector"
	"github.com/CodMac/ng-member-order/logging"
	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/noisefilter"
	"github.com/CodMac/ng-member-order/order"
	"github.com/CodMac/ng-member-order/parser"
	"go.uber.org/zap"
)

// FileProcessor 负责并发处理文件列表，并聚合所有成员顺序诊断。
type FileProcessor struct {
	Language model.Language
	Workers  int          // 并发协程数量
	Order    *order.Order // 规范顺序，为 nil 时使用默认顺序
	Logger   *zap.SugaredLogger
}

// Result 汇总一次运行的结果
type Result struct {
	Diagnostics []*model.Diagnostic
	Files       int      // 成功检查的文件数
	Classes     int      // 检查的类声明数
	Members     int      // 检查的成员数
	Skipped     []string // 读取或解析失败而跳过的文件
}

// NewFileProcessor 创建 FileProcessor 实例
func NewFileProcessor(lang model.Language, workers int, o *order.Order, logger *zap.SugaredLogger) *FileProcessor {
	if workers <= 0 {
		workers = 4 // 默认并发数
	}
	if o == nil {
		o = order.DefaultOrder()
	}
	return &FileProcessor{
		Language: lang,
		Workers:  workers,
		Order:    o,
		Logger:   logging.OrNop(logger),
	}
}

type fileResult struct {
	path        string
	diagnostics []*model.Diagnostic
	classes     int
	members     int
	err         error
}

// ProcessFiles 并发解析并检查文件；单个文件失败只记录警告，不影响其它文件。
// 返回的诊断按文件路径、行、列排序，与并发调度无关。
func (fp *FileProcessor) ProcessFiles(ctx context.Context, filePaths []string) (*Result, error) {
	result := &Result{}
	if len(filePaths) == 0 {
		return result, nil
	}

	coll, err := collector.GetCollector(fp.Language)
	if err != nil {
		return nil, err
	}

	fp.Logger.Infof("Checking member order in %d files using %s with %d workers...", len(filePaths), fp.Language, fp.Workers)

	filesChan := make(chan string, len(filePaths))
	resultsChan := make(chan *fileResult, len(filePaths))
	errChan := make(chan error, fp.Workers)
	var wg sync.WaitGroup

	for i := 0; i < fp.Workers; i++ {
		wg.Add(1)
		go fp.worker(ctx, &wg, coll, filesChan, resultsChan, errChan)
	}

	for _, path := range filePaths {
		filesChan <- path
	}
	close(filesChan)

	go func() {
		wg.Wait()
		close(resultsChan)
		close(errChan)
	}()

	for res := range resultsChan {
		if res.err != nil {
			fp.Logger.Warnf("Skipping %s: %v", res.path, res.err)
			result.Skipped = append(result.Skipped, res.path)
			continue
		}
		result.Files++
		result.Classes += res.classes
		result.Members += res.members
		result.Diagnostics = append(result.Diagnostics, res.diagnostics...)
	}

	if err := <-errChan; err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sortDiagnostics(result.Diagnostics)
	sort.Strings(result.Skipped)
	fp.Logger.Infof("Check complete. %d files, %d classes, %d violations.", result.Files, result.Classes, len(result.Diagnostics))
	return result, nil
}

// worker 每个协程持有独立的 parser（Tree-sitter parser 不可并发使用）
func (fp *FileProcessor) worker(ctx context.Context, wg *sync.WaitGroup, coll collector.Collector, filesChan <-chan string, resultsChan chan<- *fileResult, errChan chan<- error) {
	defer wg.Done()

	p, err := parser.NewParser(fp.Language)
	if err != nil {
		errChan <- fmt.Errorf("failed to create %s parser: %w", fp.Language, err)
		return
	}
	defer p.Close()

	for filePath := range filesChan {
		if ctx.Err() != nil {
			return
		}
		resultsChan <- fp.processFile(p, coll, filePath)
	}
}

func (fp *FileProcessor) processFile(p parser.Parser, coll collector.Collector, filePath string) *fileResult {
	res := &fileResult{path: filePath}

	tree, sourceBytes, err := p.ParseFile(filePath)
	if err != nil {
		res.err = err
		return res
	}
	defer tree.Close()

	classes, err := coll.CollectClasses(tree.RootNode(), filePath, sourceBytes)
	if err != nil {
		res.err = fmt.Errorf("failed to collect classes: %w", err)
		return res
	}

	for _, decl := range classes {
		res.classes++
		res.members += len(decl.Members)
		res.diagnostics = append(res.diagnostics, fp.CheckClass(decl)...)
	}
	return res
}

// CheckClass 对单个类声明分类并检查顺序，把每个违规映射回成员的诊断
func (fp *FileProcessor) CheckClass(decl *model.ClassDecl) []*model.Diagnostic {
	logger := logging.OrNop(fp.Logger)
	o := fp.Order
	if o == nil {
		o = order.DefaultOrder()
	}

	classified := make([]order.Classified, len(decl.Members))
	for i, m := range decl.Members {
		cat, rule := order.Explain(m)
		classified[i] = order.Classified{Member: m, Category: cat}
		logger.Debugw("classified member", "class", className(decl), "member", m.Name, "category", cat, "rule", rule)
	}

	violations := order.CheckClassified(classified, o)
	diagnostics := make([]*model.Diagnostic, 0, len(violations))
	for _, v := range violations {
		m := decl.Members[v.Index]
		diagnostics = append(diagnostics, &model.Diagnostic{
			Path:     decl.Path,
			Class:    className(decl),
			Member:   m.Name,
			Category: string(v.Category),
			Previous: string(v.Previous),
			Location: m.Anchor(),
			Message:  fmt.Sprintf("%q (%s) should be declared before %s", m.Name, v.Category, v.Previous),
		})
	}
	return diagnostics
}

// DiscoverFiles 递归查找 root 下所有符合语言要求的文件路径。
// 隐藏目录和 NoiseFilter 判定的路径会被跳过；exclude 接收相对 root 的路径。
func DiscoverFiles(root string, lang model.Language, exclude func(relPath string) bool) ([]string, error) {
	var files []string
	exts := model.FileExtensions(lang)
	noise := noisefilter.GetNoiseFilter(lang)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			// 忽略隐藏目录（根目录本身除外）
			if path != root && (strings.HasPrefix(d.Name(), ".") || noise.IsNoise(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasExtension(path, exts) || noise.IsNoise(path) {
			return nil
		}
		if exclude != nil && exclude(rel) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover files in %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

func hasExtension(path string, exts []string) bool {
	ext := filepath.Ext(path)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func className(decl *model.ClassDecl) string {
	if decl.Name == "" {
		return "<anonymous>"
	}
	return decl.Name
}

func sortDiagnostics(ds []*model.Diagnostic) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		la, lb := a.Location, b.Location
		if la == nil || lb == nil {
			return la != nil
		}
		if la.StartLine != lb.StartLine {
			return la.StartLine < lb.StartLine
		}
		return la.StartColumn < lb.StartColumn
	})
}
