package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// usageError 参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func newUsageError(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

func asUsageError(err error) error {
	if err == nil {
		return nil
	}
	return &usageError{err: err}
}

// cliUsageMessages urfave/cli 参数解析错误的消息片段。
var cliUsageMessages = []string{
	"flag provided but not defined",
	"invalid value",
	"Required flag",
	"No help topic for",
	"flag needs an argument",
}

// isCLIUsageError 识别框架产生的参数错误（未知 flag、取值非法、未知命令）。
func isCLIUsageError(err error) bool {
	if err == nil {
		return false
	}
	var exitCoder cli.ExitCoder
	if errors.As(err, &exitCoder) {
		return true
	}
	msg := err.Error()
	for _, m := range cliUsageMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
