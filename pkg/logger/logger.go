package logger

import (
	"go.uber.org/zap"

	"github.com/cloudfit/interviewd/pkg/environment"
	"github.com/cloudfit/interviewd/pkg/errors"
)

type Logger interface {
	With(label string) Logger

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Panicf(format string, args ...any)

	Debug(err error)
	Info(err error)
	Warn(err error)
	Error(err error)
	Panic(err error)

	Sync() error
}

func New(env environment.Env) (Logger, error) {
	var base *zap.Logger
	var err error

	switch env {
	case environment.Production:
		base, err = zap.NewProduction()
	default:
		base, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, errors.WrapFail(err, "build zap logger")
	}

	return &wrapper{base: base.Sugar()}, nil
}

// FromZap adapts an existing zap logger, mostly for tests that want
// to observe output.
func FromZap(base *zap.Logger) Logger {
	return &wrapper{base: base.Sugar()}
}

type wrapper struct {
	base *zap.SugaredLogger
}

func (w *wrapper) With(label string) Logger {
	return &wrapper{base: w.base.Named(label)}
}

func (w *wrapper) Debugf(format string, args ...any) { w.base.Debugf(format, args...) }
func (w *wrapper) Infof(format string, args ...any)  { w.base.Infof(format, args...) }
func (w *wrapper) Warnf(format string, args ...any)  { w.base.Warnf(format, args...) }
func (w *wrapper) Errorf(format string, args ...any) { w.base.Errorf(format, args...) }
func (w *wrapper) Panicf(format string, args ...any) { w.base.Panicf(format, args...) }

func (w *wrapper) Debug(err error) { w.base.Debugf("%s", err) }
func (w *wrapper) Info(err error)  { w.base.Infof("%s", err) }
func (w *wrapper) Warn(err error)  { w.base.Warnf("%s", err) }
func (w *wrapper) Error(err error) { w.base.Errorf("%s", err) }
func (w *wrapper) Panic(err error) { w.base.Panicf("%s", err) }

func (w *wrapper) Sync() error {
	return w.base.Sync()
}
