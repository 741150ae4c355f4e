// Package input evaluates console answers without touching the console.
//
// A Field parses one raw line and runs its rules over the parsed value. The
// outcome is either accepted, a retry (with the reason to show before asking
// again), or an error that aborts the whole operation. The console package
// drives the prompt loop.
package input

import (
	"context"
	"strings"
	"time"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/timezone"
)

// Parser turns a raw line into a value.
type Parser[T any] func(raw string) (T, error)

// Rule checks a parsed value. A non-empty reason rejects the value; an error
// means the check itself failed.
type Rule[T any] func(ctx context.Context, value T) (reason string, err error)

type Field[T any] struct {
	Prompt string
	Parse  Parser[T]
	// Invalid is shown when Parse fails; empty means ask again silently.
	Invalid string
	// Retry replaces Prompt after a rejection; the reason is then not shown.
	Retry string
	Rules []Rule[T]
}

type Verdict[T any] struct {
	Value    T
	Accepted bool
	Reason   string
}

// Evaluate runs Parse and then every rule in order; the first rejection wins.
func (f Field[T]) Evaluate(ctx context.Context, raw string) (Verdict[T], error) {
	var verdict Verdict[T]

	value, err := f.Parse(raw)
	if err != nil {
		verdict.Reason = f.Invalid

		return verdict, nil
	}

	for _, rule := range f.Rules {
		reason, err := rule(ctx, value)
		if err != nil {
			return verdict, err
		}

		if reason != constant.Empty {
			verdict.Reason = reason

			return verdict, nil
		}
	}

	verdict.Value = value
	verdict.Accepted = true

	return verdict, nil
}

func Int(raw string) (int, error) {
	return shared.ConvertStringToInt(raw) //nolint:wrapcheck
}

func Float(raw string) (float64, error) {
	return shared.ConvertStringToFloat(raw) //nolint:wrapcheck
}

// Text accepts any line as typed, minus the line ending.
func Text(raw string) (string, error) {
	return strings.TrimRight(raw, "\r\n"), nil
}

// Date parses month/day/year in the application timezone.
func Date(raw string) (time.Time, error) {
	return timezone.Parse(constant.DateInputLayout, strings.TrimSpace(raw)) //nolint:wrapcheck
}

// Exists rejects values for which check reports false.
func Exists[T any](check func(ctx context.Context, value T) (bool, error), reason string) Rule[T] {
	return func(ctx context.Context, value T) (string, error) {
		ok, err := check(ctx, value)
		if err != nil {
			return constant.Empty, err
		}

		if !ok {
			return reason, nil
		}

		return constant.Empty, nil
	}
}

// NotBefore rejects dates on a day strictly before today().
func NotBefore(today func() time.Time, reason string) Rule[time.Time] {
	return func(_ context.Context, value time.Time) (string, error) {
		if timezone.StartOfDay(value).Before(timezone.StartOfDay(today())) {
			return reason, nil
		}

		return constant.Empty, nil
	}
}
