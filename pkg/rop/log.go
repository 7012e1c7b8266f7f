package rop

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = defaultLogger()

func defaultLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		zapcore.ErrorLevel,
	)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

// SetLogger replaces the logger used to report representation corruption and
// returns the previous one. A nil logger restores the default, which writes
// to stderr. The logger's fatal hook decides how the process ends.
func SetLogger(l *zap.Logger) *zap.Logger {
	prev := logger
	if l == nil {
		l = defaultLogger()
	}
	logger = l
	return prev
}

func corrupt(tag uint) {
	logger.Fatal(ErrCorrupted.Error(),
		zap.Uint("tag", tag),
		zap.Uint("ok", tagOk),
		zap.Uint("err", tagErr),
	)
	// Reached only if the fatal hook returned.
	os.Exit(2)
}
