// Package treasury implements the US Treasury fractional price notation.
//
// A price string has the shape AAA-BBC: AAA is the integer handle, BB is
// thirty-seconds (two decimal digits), and C is eighths within the current
// thirty-second, a digit 0-7 or '+' meaning 4. The decimal value is
//
//	value = AAA + BB/32 + C/256
//
// Every representable price lies on the 1/256 grid, so values are exact in
// scale-8 decimals and Format(Parse(s)) == s for any well-formed s.
package treasury

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// ErrMalformedPrice reports a string that is not valid fractional notation.
var ErrMalformedPrice = errors.New("malformed fractional price")

// ErrOffGridPrice reports a decimal that does not sit on the 1/256 grid.
var ErrOffGridPrice = errors.New("price not on 1/256 grid")

// Sentinels are attached with %w so callers can match them with errors.Is
// no matter how far up the chain the input context was added.
func malformed(s string) error {
	return fmt.Errorf("%s: %w", s, ErrMalformedPrice)
}

// 1/256 == 390625e-8.
var tick = decimal.New(390625, -8)

var twoFiveSix = decimal.NewFromInt(256)

// Parse converts fractional notation to its exact decimal value.
func Parse(s string) (decimal.Decimal, error) {
	if len(s) < 5 || s[len(s)-4] != '-' {
		return decimal.Zero, malformed(s)
	}

	handlePart := s[:len(s)-4]
	thirtySecondsPart := s[len(s)-3 : len(s)-1]
	eighthChar := s[len(s)-1]

	handle, err := strconv.ParseInt(handlePart, 10, 32)
	if err != nil || handle < 0 {
		return decimal.Zero, malformed(s)
	}
	thirtySeconds, err := strconv.ParseInt(thirtySecondsPart, 10, 32)
	if err != nil || thirtySeconds > 31 {
		return decimal.Zero, malformed(s)
	}

	var eighths int64
	switch {
	case eighthChar == '+':
		eighths = 4
	case eighthChar >= '0' && eighthChar <= '7':
		eighths = int64(eighthChar - '0')
	default:
		return decimal.Zero, malformed(s)
	}

	ticks := handle*256 + thirtySeconds*8 + eighths
	return FromTicks(ticks), nil
}

// FromTicks returns the exact decimal value of a whole number of 1/256
// ticks.
func FromTicks(ticks int64) decimal.Decimal {
	return decimal.NewFromInt(ticks).Mul(tick)
}

// Format converts a decimal on the 1/256 grid back to fractional notation,
// padding the thirty-seconds to two digits and emitting '+' for four
// eighths.
func Format(d decimal.Decimal) (string, error) {
	ticksDec := d.Mul(twoFiveSix)
	if !ticksDec.IsInteger() || ticksDec.IsNegative() {
		return "", fmt.Errorf("%s: %w", d.String(), ErrOffGridPrice)
	}

	ticks := ticksDec.IntPart()
	handle := ticks / 256
	rem := ticks % 256
	thirtySeconds := rem / 8
	eighths := rem % 8

	eighthChar := byte('0' + eighths)
	if eighths == 4 {
		eighthChar = '+'
	}
	return fmt.Sprintf("%d-%02d%c", handle, thirtySeconds, eighthChar), nil
}
