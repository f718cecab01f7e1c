package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/CodMac/ng-member-order/config"
	"github.com/CodMac/ng-member-order/logging"
	"github.com/CodMac/ng-member-order/model"
	"github.com/CodMac/ng-member-order/order"
	"github.com/CodMac/ng-member-order/output"
	"github.com/CodMac/ng-member-order/processor"
	"github.com/spf13/cobra"

	// 导入语言实现，以触发其 init() 函数注册 Language / Collector / NoiseFilter
	_ "github.com/CodMac/ng-member-order/x/typescript"
)

// 进程退出码
const (
	ExitOK         = 0
	ExitViolations = 1
	ExitUsage      = 2
	ExitFatal      = 3
)

// usageError 标记命令行参数或配置错误
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

var errViolations = errors.New("member order violations found")

type options struct {
	configPath string
	language   string
	orderList  []string
	workers    int
	format     string
	noColor    bool
	verbose    bool
	printOrder bool
	printCfg   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errViolations):
		return ExitViolations
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var uErr *usageError
		if errors.As(err, &uErr) || errors.Is(err, order.ErrInvalidConfiguration) {
			return ExitUsage
		}
		return ExitFatal
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ngmemberorder [paths...]",
		Short: "Check that Angular class members are declared in canonical order",
		Long: `ngmemberorder classifies every class member (inputs, outputs, host bindings,
queries, properties, constructor, lifecycle hooks, listeners, methods) and reports
each member declared before a member of an earlier category.

Exit Codes:
  0  - No violations
  1  - Member order violations found
  2  - Invalid arguments or configuration
  3  - Fatal processing error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "配置文件路径 (默认在当前目录查找 "+config.DefaultFileName+")")
	flags.StringVarP(&opts.language, "lang", "l", "", "要分析的语言 (typescript, tsx)")
	flags.StringSliceVar(&opts.orderList, "order", nil, "自定义分类顺序，逗号分隔，覆盖配置文件")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "并发处理文件的协程数量 (默认 CPU 核心数)")
	flags.StringVarP(&opts.format, "format", "f", "text", "输出格式 (text, jsonl)")
	flags.BoolVar(&opts.noColor, "no-color", false, "禁用彩色输出")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "输出详细日志")
	flags.BoolVar(&opts.printOrder, "print-order", false, "打印生效的分类顺序后退出")
	flags.BoolVar(&opts.printCfg, "print-config", false, "以 YAML 打印合并后的配置后退出")
	return cmd
}

func runCheck(cmd *cobra.Command, opts *options, args []string) error {
	logger, err := logging.New(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// 1. 加载并校验配置，自定义顺序错误在扫描任何文件之前终止运行
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	canonical, err := cfg.CanonicalOrder()
	if err != nil {
		return err
	}

	if opts.printCfg {
		cfg.Order = canonical.Strings()
		data, err := cfg.Marshal()
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if opts.printOrder {
		for _, c := range canonical.Strings() {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}
		return nil
	}

	if opts.format != "text" && opts.format != "jsonl" {
		return &usageError{fmt.Errorf("unsupported format %q", opts.format)}
	}

	// 2. 查找所有要分析的文件
	if len(args) == 0 {
		args = []string{"."}
	}
	lang := cfg.Language
	var filePaths []string
	for _, root := range args {
		files, err := processor.DiscoverFiles(root, lang, cfg.IsExcluded)
		if err != nil {
			return &usageError{err}
		}
		filePaths = append(filePaths, files...)
	}
	if len(filePaths) == 0 {
		logger.Infof("No %s source files found to check.", lang)
		return nil
	}

	// 3. 启动处理器
	proc := processor.NewFileProcessor(lang, cfg.Workers, canonical, logger)
	result, err := proc.ProcessFiles(cmd.Context(), filePaths)
	if err != nil {
		return fmt.Errorf("fatal processing error: %w", err)
	}

	// 4. 输出结果
	if opts.format == "jsonl" {
		if _, err := output.NewJSONLWriter(cmd.OutOrStdout()).WriteDiagnostics(result.Diagnostics); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := output.NewTextReporter(cmd.OutOrStdout(), opts.noColor).Report(result.Diagnostics, result.Files); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if len(result.Diagnostics) > 0 {
		return errViolations
	}
	return nil
}

// loadConfig 合并配置文件与命令行参数，命令行优先
func loadConfig(opts *options) (*config.Config, error) {
	cfg := config.Default()
	path := opts.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}
	if path != "" {
		loaded, err := config.Load(filepath.Clean(path))
		if err != nil {
			return nil, &usageError{err}
		}
		cfg = loaded
	}

	if opts.language != "" {
		cfg.Language = model.Language(opts.language)
	}
	if len(opts.orderList) > 0 {
		cfg.Order = opts.orderList
	}
	if opts.workers > 0 {
		cfg.Workers = opts.workers
	}

	if err := cfg.Validate(); err != nil {
		var cfgErr *order.InvalidConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, err
		}
		return nil, &usageError{err}
	}
	return cfg, nil
}
