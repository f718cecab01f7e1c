package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 创建输出到 stderr 的控制台日志器；verbose 时输出 Debug 级别并带调用位置
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.DisableCaller = true
		cfg.EncoderConfig.TimeKey = ""
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// OrNop 在 logger 为 nil 时返回一个丢弃所有输出的日志器
func OrNop(logger *zap.SugaredLogger) *zap.SugaredLogger {
	if logger == nil {
		return zap.NewNop().Sugar()
	}
	return logger
}
