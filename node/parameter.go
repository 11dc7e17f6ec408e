package node

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/crucible"
)

type ParameterType int32

const (
	ParameterTypeInt ParameterType = iota
	ParameterTypeFloat
	ParameterTypeBool
	ParameterTypeString
)

var parameterTypeMapping = map[ParameterType]string{
	ParameterTypeInt:    "Int",
	ParameterTypeFloat:  "Float",
	ParameterTypeBool:   "Bool",
	ParameterTypeString: "String",
}

func (t ParameterType) String() string {
	str, ok := parameterTypeMapping[t]
	if !ok {
		return fmt.Sprintf("ParameterType(%d)", int32(t))
	}
	return str
}

// Parameter is a named configuration value attached to a node descriptor. Numeric parameters
// (int, float and bool) convert into each other on read; string parameters only read as strings.
// Ints and bools are kept as int64 so large ints survive unchanged.
type Parameter struct {
	parameterType ParameterType
	integer       int64
	float         float64
	str           string
}

func IntParameter(value int) Parameter {
	return Parameter{parameterType: ParameterTypeInt, integer: int64(value)}
}

func FloatParameter(value float64) Parameter {
	return Parameter{parameterType: ParameterTypeFloat, float: value}
}

func BoolParameter(value bool) Parameter {
	p := Parameter{parameterType: ParameterTypeBool}
	if value {
		p.integer = 1
	}
	return p
}

func StringParameter(value string) Parameter {
	return Parameter{parameterType: ParameterTypeString, str: value}
}

func (p Parameter) Type() ParameterType { return p.parameterType }

func (p Parameter) requireNumeric(as string) error {
	if p.parameterType == ParameterTypeString {
		return errors.Wrapf(crucible.ErrInvalidArgument, "cannot read string parameter %q as %s", p.str, as)
	}
	return nil
}

// Int returns the value, truncating floats toward zero
func (p Parameter) Int() (int, error) {
	err := p.requireNumeric("int")
	if err != nil {
		return 0, err
	}
	if p.parameterType == ParameterTypeFloat {
		return int(p.float), nil
	}
	return int(p.integer), nil
}

func (p Parameter) Float() (float64, error) {
	err := p.requireNumeric("float")
	if err != nil {
		return 0, err
	}
	if p.parameterType == ParameterTypeFloat {
		return p.float, nil
	}
	return float64(p.integer), nil
}

func (p Parameter) Bool() (bool, error) {
	err := p.requireNumeric("bool")
	if err != nil {
		return false, err
	}
	if p.parameterType == ParameterTypeFloat {
		return p.float != 0, nil
	}
	return p.integer != 0, nil
}

func (p Parameter) StringValue() (string, error) {
	if p.parameterType != ParameterTypeString {
		return "", errors.Wrapf(crucible.ErrInvalidArgument, "cannot read %s parameter as string", p.parameterType)
	}
	return p.str, nil
}

func (p Parameter) String() string {
	switch p.parameterType {
	case ParameterTypeString:
		return p.str
	case ParameterTypeBool:
		return fmt.Sprintf("%t", p.integer != 0)
	case ParameterTypeInt:
		return fmt.Sprintf("%d", p.integer)
	}
	return fmt.Sprintf("%g", p.float)
}
