package prompt

import (
	"strings"
)

// Parser turns a raw input line into a value. A failure should wrap
// types.ErrParse.
type Parser[T any] func(raw string) (T, error)

// Rule is an acceptance check applied to a parsed value. Reject is called
// with the value when Accept returns false.
type Rule[T any] struct {
	Accept func(T) bool
	Reject func(T)
}

// NewRule builds a Rule from its two halves.
func NewRule[T any](accept func(T) bool, reject func(T)) Rule[T] {
	return Rule[T]{Accept: accept, Reject: reject}
}

// check runs rules in order and reports the first rejection.
func check[T any](v T, rules []Rule[T]) bool {
	for _, r := range rules {
		if r.Accept != nil && !r.Accept(v) {
			if r.Reject != nil {
				r.Reject(v)
			}
			return false
		}
	}
	return true
}

// RequestValidInput prompts until a line parses and passes every rule, then
// returns the value. onError receives each line that failed to parse. The
// only error returned is end of input (io.EOF) or a read failure.
func RequestValidInput[T any](c *Console, prompt string, onError func(raw string), parse Parser[T], rules ...Rule[T]) (T, error) {
	for {
		raw, err := c.ReadLine(prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(raw)
		if err != nil {
			if onError != nil {
				onError(raw)
			}
			continue
		}
		if check(v, rules) {
			return v, nil
		}
	}
}

// RequestValidInputs collects valid values until a line equal to sentinel
// (ignoring case and surrounding space) is read. The sentinel is never parsed
// or collected. At end of input the values gathered so far are returned with
// io.EOF. The result is never nil.
func RequestValidInputs[T any](c *Console, prompt string, onError func(raw string), parse Parser[T], sentinel string, rules ...Rule[T]) ([]T, error) {
	out := []T{}
	sentinel = strings.TrimSpace(sentinel)
	for {
		raw, err := c.ReadLine(prompt)
		if err != nil {
			return out, err
		}
		if strings.EqualFold(strings.TrimSpace(raw), sentinel) {
			return out, nil
		}
		v, err := parse(raw)
		if err != nil {
			if onError != nil {
				onError(raw)
			}
			continue
		}
		if check(v, rules) {
			out = append(out, v)
		}
	}
}
