// Package tlog вывод ошибок со структурированным контекстом в тестах.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

// Expect checks err matches target and logs it. Signals an error
// otherwise.
func Expect(t TestingPrinter, err, target error) bool {
	t.Helper()
	if errors.Is(err, target) {
		t.Log(render(err, bold))
		return true
	}

	if err == nil {
		t.Errorf("%serror '%v' expected, got nothing%s", red, target, reset)
		return false
	}

	t.Errorf("%serror '%v' expected, got:%s\n%s", red, target, reset, render(err, red))
	return false
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c errorContextConsumer
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", width-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
