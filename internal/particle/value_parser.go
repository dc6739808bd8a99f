// Package particle provides the value types used to describe particle field
// distributions in configuration files.
package particle

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// ParseRange parses a value string from particle configuration.
// Supports the following formats:
//   - Fixed value: "100" → min=100, max=100
//   - Range: "[0.5 2.5]" → min=0.5, max=2.5
//   - Single bracketed value: "[2]" → min=2, max=2
//   - Multiples of π: "[0 2pi]", "pi", "-0.5pi"
//
// 与配置文件中的原始写法一致，区间按半开区间 [min, max) 采样。
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{}, fmt.Errorf("empty range value")
	}

	if strings.HasPrefix(s, "[") || strings.HasSuffix(s, "]") {
		if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
			return Range{}, fmt.Errorf("unbalanced brackets in range %q", s)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
		parts := strings.Fields(inner)
		switch len(parts) {
		case 1:
			v, err := parseNumber(parts[0])
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			return Range{Min: v, Max: v}, nil
		case 2:
			lo, err := parseNumber(parts[0])
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			hi, err := parseNumber(parts[1])
			if err != nil {
				return Range{}, fmt.Errorf("range %q: %w", s, err)
			}
			if lo > hi {
				return Range{}, fmt.Errorf("range %q: min %v is greater than max %v", s, lo, hi)
			}
			return Range{Min: lo, Max: hi}, nil
		default:
			return Range{}, fmt.Errorf("range %q: expected 1 or 2 values, got %d", s, len(parts))
		}
	}

	// Fixed value format
	v, err := parseNumber(s)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: v, Max: v}, nil
}

// parseNumber 解析单个数值，支持 "pi" 后缀（"2pi" = 2π）
func parseNumber(tok string) (float64, error) {
	if strings.HasSuffix(tok, "pi") {
		coef := strings.TrimSuffix(tok, "pi")
		switch coef {
		case "":
			return math.Pi, nil
		case "-":
			return -math.Pi, nil
		}
		c, err := strconv.ParseFloat(coef, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", tok)
		}
		return c * math.Pi, nil
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("number %q is not finite", tok)
	}
	return v, nil
}

// RandomInRange returns a random float64 in the half-open range [min, max)
// drawn from rng.
func RandomInRange(rng *rand.Rand, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + rng.Float64()*(max-min)
}
