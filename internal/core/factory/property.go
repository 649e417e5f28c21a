// If you are AI: This file defines property specs and typed property values.
// Values are parsed from text against a spec and printed back canonically.

package factory

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when text does not fit a property spec.
var ErrInvalidValue = errors.New("invalid property value")

// PropType is the value type of a property.
type PropType uint8

const (
	TypeString PropType = iota
	TypeBool
	TypeInt
	TypeUint
	TypeInt64
	TypeUint64
	TypeFloat
	TypeDouble
	TypeEnum
)

var propTypeNames = map[PropType]string{
	TypeString: "string",
	TypeBool:   "bool",
	TypeInt:    "int",
	TypeUint:   "uint",
	TypeInt64:  "int64",
	TypeUint64: "uint64",
	TypeFloat:  "float",
	TypeDouble: "double",
	TypeEnum:   "enum",
}

// String returns the type name used in YAML catalogs.
func (t PropType) String() string {
	if name, ok := propTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParsePropType converts a type name into a PropType.
func ParsePropType(s string) (PropType, error) {
	for t, name := range propTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return TypeString, fmt.Errorf("unknown property type %q", s)
}

// IsNumeric reports whether values of the type carry a min/max range.
func (t PropType) IsNumeric() bool {
	switch t {
	case TypeInt, TypeUint, TypeInt64, TypeUint64, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// PropertySpec describes one property of a factory.
// Min and Max only apply to numeric types; both zero means the type's full range.
type PropertySpec struct {
	Name        string
	Type        PropType
	Default     string
	Min         float64
	Max         float64
	Choices     []string // enum values
	Description string
}

// Validate checks the spec and its default value.
func (p PropertySpec) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("property name is empty")
	}
	if p.Type == TypeEnum && len(p.Choices) == 0 {
		return fmt.Errorf("enum property %s has no choices", p.Name)
	}
	if p.Min > p.Max {
		return fmt.Errorf("property %s: min %v is greater than max %v", p.Name, p.Min, p.Max)
	}
	if _, err := p.DefaultValue(); err != nil {
		return fmt.Errorf("property %s default: %w", p.Name, err)
	}
	return nil
}

// DefaultValue parses the spec default. An empty default means the zero value.
func (p PropertySpec) DefaultValue() (Value, error) {
	text := p.Default
	if text == "" {
		switch {
		case p.Type == TypeBool:
			text = "false"
		case p.Type == TypeEnum:
			text = p.Choices[0]
		case p.Type.IsNumeric():
			text = "0"
			if p.Min > 0 || p.Max < 0 {
				text = strconv.FormatFloat(p.Min, 'g', -1, 64)
			}
		}
	}
	return p.Parse(text)
}

// Parse converts text into a value of the spec type.
func (p PropertySpec) Parse(text string) (Value, error) {
	v := Value{Type: p.Type}
	var err error
	switch p.Type {
	case TypeString:
		v.s = text
	case TypeBool:
		v.b, err = strconv.ParseBool(strings.TrimSpace(text))
	case TypeInt, TypeInt64:
		bits := 64
		if p.Type == TypeInt {
			bits = 32
		}
		v.i, err = strconv.ParseInt(strings.TrimSpace(text), 10, bits)
		if err == nil {
			err = p.checkRange(float64(v.i))
		}
	case TypeUint, TypeUint64:
		bits := 64
		if p.Type == TypeUint {
			bits = 32
		}
		v.u, err = strconv.ParseUint(strings.TrimSpace(text), 10, bits)
		if err == nil {
			err = p.checkRange(float64(v.u))
		}
	case TypeFloat, TypeDouble:
		v.f, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err == nil && (math.IsNaN(v.f) || math.IsInf(v.f, 0)) {
			err = fmt.Errorf("%s is not a finite number", text)
		}
		if err == nil {
			err = p.checkRange(v.f)
		}
	case TypeEnum:
		err = fmt.Errorf("%q is not one of %s", text, strings.Join(p.Choices, ", "))
		for _, c := range p.Choices {
			if c == text {
				v.s, err = c, nil
				break
			}
		}
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w for %s: %v", ErrInvalidValue, p.Name, err)
	}
	return v, nil
}

// checkRange enforces Min and Max for numeric values.
func (p PropertySpec) checkRange(x float64) error {
	if p.Min == 0 && p.Max == 0 {
		return nil
	}
	if x < p.Min || x > p.Max {
		return fmt.Errorf("%v is outside <%v, %v>", x, p.Min, p.Max)
	}
	return nil
}

// Value is a typed property value.
type Value struct {
	Type PropType
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

// String returns the canonical text form of the value.
func (v Value) String() string {
	switch v.Type {
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeInt, TypeInt64:
		return strconv.FormatInt(v.i, 10)
	case TypeUint, TypeUint64:
		return strconv.FormatUint(v.u, 10)
	case TypeFloat, TypeDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return v.s
	}
}

// Bool returns the value of a bool property.
func (v Value) Bool() bool { return v.b }

// Int returns the value of a signed integer property.
func (v Value) Int() int64 { return v.i }

// Uint returns the value of an unsigned integer property.
func (v Value) Uint() uint64 { return v.u }

// Float returns the value of a floating point property.
func (v Value) Float() float64 { return v.f }

// Equal reports whether two values have the same type and content.
func (v Value) Equal(o Value) bool {
	return v == o
}
