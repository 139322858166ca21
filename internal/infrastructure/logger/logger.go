package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sentiment-bot/config"
)

// Service значение поля service в каждой записи
const Service = "sentiment-bot"

// DefaultOutput куда пишутся логи, если log.output не задан.
// stdout остаётся за результатами CLI.
const DefaultOutput = "stderr"

// New создаёт zap-логгер по конфигурации.
// Output принимает stdout, stderr или путь к файлу.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	output := cfg.Output
	if output == "" {
		output = DefaultOutput
	}

	sink, _, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", output, err)
	}
	return NewWithSink(cfg, sink), nil
}

// NewWithSink пишет записи в sink; неизвестный уровень означает info
func NewWithSink(cfg config.LogConfig, sink zapcore.WriteSyncer) *zap.Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	core := zapcore.NewCore(newEncoder(cfg.Format), sink, level)
	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
		zap.Fields(zap.String("service", Service)),
	)
}

func newEncoder(format string) zapcore.Encoder {
	if format == "console" {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		ec.EncodeDuration = zapcore.StringDurationEncoder
		return zapcore.NewConsoleEncoder(ec)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeDuration = zapcore.MillisDurationEncoder
	return zapcore.NewJSONEncoder(ec)
}
