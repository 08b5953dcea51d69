// Package dynamic implements the runtime value of Aardvark programs: a
// single tagged container for a String, Int, Double, Bool or File whose
// operators follow the value's current tag.
//
// Binary operations are governed by the left operand (the receiver). The
// right operand is coerced toward the receiver's tag, never the other way,
// so Int(3) + Double(2.9) is Int(5) while Double(2.9) + Int(3) is
// Double(5.9). Equality is the exception: it is total and symmetric.
package dynamic

import (
	"math"

	"github.com/pkg/errors"

	"github.com/funvibe/aardvark/internal/config"
)

// Tag identifies which payload a Value holds.
type Tag uint8

const (
	tagNone Tag = iota
	TagString
	TagInt
	TagDouble
	TagBool
	TagFile
)

func (t Tag) String() string {
	switch t {
	case TagString:
		return "String"
	case TagInt:
		return "Int"
	case TagDouble:
		return "Double"
	case TagBool:
		return "Bool"
	case TagFile:
		return "File"
	default:
		return "Invalid"
	}
}

// Value is a dynamically typed runtime value. The set of implementations is
// closed: String, Int, Double, Bool and File.
type Value interface {
	Tag() Tag
	// String returns the canonical text rendering.
	String() string
	value()
}

type (
	String string
	Int    int64
	Double float64
	Bool   bool
)

// File binds a value to a filesystem path. It holds no OS handle; see Read.
type File struct {
	Path string
}

func (String) Tag() Tag { return TagString }
func (Int) Tag() Tag    { return TagInt }
func (Double) Tag() Tag { return TagDouble }
func (Bool) Tag() Tag   { return TagBool }
func (File) Tag() Tag   { return TagFile }

func (String) value() {}
func (Int) value()    {}
func (Double) value() {}
func (Bool) value()   {}
func (File) value()   {}

// Default is the value of a default-constructed variable.
var Default Value = Bool(false)

func orDefault(v Value) Value {
	if v == nil {
		return Default
	}
	return v
}

// Of builds a Value from a Go primitive. An existing Value is returned as is.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return orDefault(x), nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(x), nil
	case uint16:
		return Int(x), nil
	case uint32:
		return Int(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, constructionError("%d overflows Int", x)
		}
		return Int(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, constructionError("%d overflows Int", x)
		}
		return Int(x), nil
	case float32:
		return Double(x), nil
	case float64:
		return Double(x), nil
	case nil:
		return Default, nil
	default:
		return nil, constructionError("cannot hold a %T", x)
	}
}

// MustOf is Of for literals known to be valid. It panics otherwise.
func MustOf(x any) Value {
	v, err := Of(x)
	if err != nil {
		panic(err)
	}
	return v
}

// New is the two-argument constructor. typeTag must be "FILE".
func New(typeTag, path string) (Value, error) {
	if typeTag != config.FileTypeTag {
		return nil, constructionError("unknown type tag %q", typeTag)
	}
	return File{Path: path}, nil
}

func constructionError(format string, args ...any) error {
	return &KindError{Kind: ErrInvalidConstruction, Err: errors.Errorf(format, args...)}
}

// Tag-checked accessors. Each fails with ErrUnsupported when v holds a
// different tag.

func AsString(v Value) (string, error) {
	if s, ok := v.(String); ok {
		return string(s), nil
	}
	return "", accessError(v, TagString)
}

func AsInt(v Value) (int64, error) {
	if i, ok := v.(Int); ok {
		return int64(i), nil
	}
	return 0, accessError(v, TagInt)
}

func AsDouble(v Value) (float64, error) {
	if d, ok := v.(Double); ok {
		return float64(d), nil
	}
	return 0, accessError(v, TagDouble)
}

func AsBool(v Value) (bool, error) {
	if b, ok := v.(Bool); ok {
		return bool(b), nil
	}
	return false, accessError(v, TagBool)
}

func AsFile(v Value) (File, error) {
	if f, ok := v.(File); ok {
		return f, nil
	}
	return File{}, accessError(v, TagFile)
}

func accessError(v Value, want Tag) error {
	return &OpError{Op: "as", Left: orDefault(v).Tag(), Right: want, Kind: ErrUnsupported, Detail: "accessor"}
}
