package particle

import (
	"fmt"
	"math/rand"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Range 表示一个数值分布区间 [Min, Max)
//
// 在 YAML 中以字符串形式书写（如 "[0.5 2.5]"），也接受单个数字。
type Range struct {
	Min float64
	Max float64
}

// Fixed 返回一个固定值区间
func Fixed(v float64) Range {
	return Range{Min: v, Max: v}
}

// Span 返回区间宽度
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies in [Min, Max). A fixed range contains only
// its single value.
func (r Range) Contains(v float64) bool {
	if r.Min == r.Max {
		return v == r.Min
	}
	return v >= r.Min && v < r.Max
}

// Sample 从区间中均匀采样
func (r Range) Sample(rng *rand.Rand) float64 {
	return RandomInRange(rng, r.Min, r.Max)
}

// String formats the range the way it is written in configuration files.
func (r Range) String() string {
	if r.Min == r.Max {
		return strconv.FormatFloat(r.Min, 'g', -1, 64)
	}
	return "[" + strconv.FormatFloat(r.Min, 'g', -1, 64) + " " + strconv.FormatFloat(r.Max, 'g', -1, 64) + "]"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: range must be a scalar like \"[0.5 2.5]\"", value.Line)
	}
	parsed, err := ParseRange(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Range) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}
