package errors

import (
	"errors"
	"fmt"
)

var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

const cantPrefix = "can't "

func Join(errs ...error) error {
	return errors.Join(errs...)
}

func Error(msg string) error {
	return errors.New(msg)
}

func Errorf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// Fail builds a "can't <do thing>" error for failed actions.
func Fail(whatFailed string) error {
	return errors.New(cantPrefix + whatFailed)
}

func Failf(format string, args ...any) error {
	return fmt.Errorf(cantPrefix+format, args...)
}

func Wrap(err error, wrapper string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", wrapper, err)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

func WrapFail(err error, whatFailed string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, cantPrefix+whatFailed)
}

func WrapFailf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return Wrapf(err, cantPrefix+format, args...)
}
