package sqltype

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Conversion identifies a directional value conversion between two primitive
// data types.
//
// The numeric value of each constant is a wire contract: persisted plans and
// serialized cast nodes reference a conversion by its ordinal. New
// conversions are appended after the last constant; existing ordinals are
// never reordered or reused. The golden test over the catalog table guards
// this.
type Conversion uint8

const (
	// ConvIdentity returns the input unchanged.
	ConvIdentity Conversion = iota
	// ConvNull returns nil regardless of input.
	ConvNull

	ConvDateToString
	ConvOtherToString

	ConvRationalToLong
	ConvIntegerToLong
	ConvStringToLong
	ConvDateToLong

	ConvRationalToInt
	ConvIntegerToInt
	ConvBoolToInt
	ConvStringToInt
	ConvDateToInt

	ConvRationalToShort
	ConvIntegerToShort
	ConvBoolToShort
	ConvStringToShort
	ConvDateToShort

	ConvRationalToByte
	ConvIntegerToByte
	ConvBoolToByte
	ConvStringToByte
	ConvDateToByte

	ConvRationalToFloat
	ConvIntegerToFloat
	ConvBoolToFloat
	ConvStringToFloat
	ConvDateToFloat

	ConvRationalToDouble
	ConvIntegerToDouble
	ConvBoolToDouble
	ConvStringToDouble
	ConvDateToDouble

	ConvRationalToDate
	ConvIntegerToDate
	ConvBoolToDate
	ConvStringToDate

	ConvNumericToBoolean
	ConvStringToBoolean
	ConvDateToBoolean

	numConversions // sentinel, not a conversion
)

var conversionNames = [numConversions]string{
	ConvIdentity:         "identity",
	ConvNull:             "null",
	ConvDateToString:     "date_to_string",
	ConvOtherToString:    "other_to_string",
	ConvRationalToLong:   "rational_to_long",
	ConvIntegerToLong:    "integer_to_long",
	ConvStringToLong:     "string_to_long",
	ConvDateToLong:       "date_to_long",
	ConvRationalToInt:    "rational_to_int",
	ConvIntegerToInt:     "integer_to_int",
	ConvBoolToInt:        "bool_to_int",
	ConvStringToInt:      "string_to_int",
	ConvDateToInt:        "date_to_int",
	ConvRationalToShort:  "rational_to_short",
	ConvIntegerToShort:   "integer_to_short",
	ConvBoolToShort:      "bool_to_short",
	ConvStringToShort:    "string_to_short",
	ConvDateToShort:      "date_to_short",
	ConvRationalToByte:   "rational_to_byte",
	ConvIntegerToByte:    "integer_to_byte",
	ConvBoolToByte:       "bool_to_byte",
	ConvStringToByte:     "string_to_byte",
	ConvDateToByte:       "date_to_byte",
	ConvRationalToFloat:  "rational_to_float",
	ConvIntegerToFloat:   "integer_to_float",
	ConvBoolToFloat:      "bool_to_float",
	ConvStringToFloat:    "string_to_float",
	ConvDateToFloat:      "date_to_float",
	ConvRationalToDouble: "rational_to_double",
	ConvIntegerToDouble:  "integer_to_double",
	ConvBoolToDouble:     "bool_to_double",
	ConvStringToDouble:   "string_to_double",
	ConvDateToDouble:     "date_to_double",
	ConvRationalToDate:   "rational_to_date",
	ConvIntegerToDate:    "integer_to_date",
	ConvBoolToDate:       "bool_to_date",
	ConvStringToDate:     "string_to_date",
	ConvNumericToBoolean: "numeric_to_boolean",
	ConvStringToBoolean:  "string_to_boolean",
	ConvDateToBoolean:    "date_to_boolean",
}

// Name returns the stable lower-case name of the conversion.
func (c Conversion) Name() string { return conversionNames[c] }

// Ordinal returns the conversion's stable catalog position.
func (c Conversion) Ordinal() int { return int(c) }

// Conversions lists the full catalog in ordinal order.
func Conversions() []Conversion {
	all := make([]Conversion, numConversions)
	for i := range all {
		all[i] = Conversion(i)
	}
	return all
}

// ConversionFromOrdinal recovers a conversion from a persisted ordinal.
func ConversionFromOrdinal(n int) (Conversion, bool) {
	if n < 0 || n >= int(numConversions) {
		return 0, false
	}
	return Conversion(n), true
}

// CanConvert reports whether a value of type from can be converted to type
// to. Always true for identical types and for a Null source; otherwise both
// types must be primitive and a catalog entry must exist.
func CanConvert(from, to DataType) bool {
	if from == to || from == Null {
		return true
	}
	// only primitives are supported so far
	if !from.IsPrimitive() || !to.IsPrimitive() {
		return false
	}
	_, ok := conversion(from, to)
	return ok
}

// ConversionFor returns the catalog conversion from one type to another.
// Identical types get ConvIdentity and a Null target gets ConvNull; any
// other pair without a catalog entry is a NO_CONVERSION error naming both
// types. This is the entry point to consult before inserting an implicit
// cast.
func ConversionFor(from, to DataType) (Conversion, error) {
	if from == to {
		return ConvIdentity, nil
	}
	if to == Null {
		return ConvNull, nil
	}
	c, ok := conversion(from, to)
	if !ok {
		return 0, newNoConversionError(from, to)
	}
	return c, nil
}

// conversion dispatches on the target type, then on the source's
// classification within each target family.
func conversion(from, to DataType) (Conversion, bool) {
	switch to {
	case Keyword, Text:
		return conversionToString(from), true
	case Long:
		return conversionToLong(from)
	case Integer:
		return conversionToInt(from)
	case Short:
		return conversionToShort(from)
	case Byte:
		return conversionToByte(from)
	case Float:
		return conversionToFloat(from)
	case Double:
		return conversionToDouble(from)
	case Date:
		return conversionToDate(from)
	case Boolean:
		return conversionToBoolean(from)
	}
	return 0, false
}

func conversionToString(from DataType) Conversion {
	if from == Date {
		return ConvDateToString
	}
	return ConvOtherToString
}

func conversionToLong(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToLong, true
	case from.IsInteger():
		return ConvIntegerToLong, true
	case from == Boolean:
		// the int conversion is wide enough for a boolean's 0/1
		return ConvBoolToInt, true
	case from.IsString():
		return ConvStringToLong, true
	case from == Date:
		return ConvDateToLong, true
	}
	return 0, false
}

func conversionToInt(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToInt, true
	case from.IsInteger():
		return ConvIntegerToInt, true
	case from == Boolean:
		return ConvBoolToInt, true
	case from.IsString():
		return ConvStringToInt, true
	case from == Date:
		return ConvDateToInt, true
	}
	return 0, false
}

func conversionToShort(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToShort, true
	case from.IsInteger():
		return ConvIntegerToShort, true
	case from == Boolean:
		return ConvBoolToShort, true
	case from.IsString():
		return ConvStringToShort, true
	case from == Date:
		return ConvDateToShort, true
	}
	return 0, false
}

func conversionToByte(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToByte, true
	case from.IsInteger():
		return ConvIntegerToByte, true
	case from == Boolean:
		return ConvBoolToByte, true
	case from.IsString():
		return ConvStringToByte, true
	case from == Date:
		return ConvDateToByte, true
	}
	return 0, false
}

func conversionToFloat(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToFloat, true
	case from.IsInteger():
		return ConvIntegerToFloat, true
	case from == Boolean:
		return ConvBoolToFloat, true
	case from.IsString():
		return ConvStringToFloat, true
	case from == Date:
		return ConvDateToFloat, true
	}
	return 0, false
}

func conversionToDouble(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToDouble, true
	case from.IsInteger():
		return ConvIntegerToDouble, true
	case from == Boolean:
		return ConvBoolToDouble, true
	case from.IsString():
		return ConvStringToDouble, true
	case from == Date:
		return ConvDateToDouble, true
	}
	return 0, false
}

func conversionToDate(from DataType) (Conversion, bool) {
	switch {
	case from.IsRational():
		return ConvRationalToDate, true
	case from.IsInteger():
		return ConvIntegerToDate, true
	case from == Boolean:
		return ConvBoolToDate, true
	case from.IsString():
		return ConvStringToDate, true
	}
	return 0, false
}

func conversionToBoolean(from DataType) (Conversion, bool) {
	switch {
	case from.IsNumeric():
		return ConvNumericToBoolean, true
	case from.IsString():
		return ConvStringToBoolean, true
	case from == Date:
		return ConvDateToBoolean, true
	}
	return 0, false
}

// Apply runs the conversion against a value. A nil input is returned as nil
// without touching the conversion; every conversion is total over its
// declared non-null domain but fails on out-of-range values and unparsable
// input.
func (c Conversion) Apply(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch c {
	case ConvIdentity:
		return value, nil
	case ConvNull:
		return nil, nil

	case ConvDateToString:
		d, err := asDate(value)
		if err != nil {
			return nil, err
		}
		return d.UTC().Format("2006-01-02T15:04:05.000Z07:00"), nil
	case ConvOtherToString:
		return fmt.Sprint(value), nil

	case ConvRationalToLong:
		return applyRational(value, func(f float64) (any, error) { return SafeToLong(f) })
	case ConvIntegerToLong:
		return applyInteger(value, func(n int64) (any, error) { return n, nil })
	case ConvStringToLong:
		return applyString(value, "Long", func(s string) (any, error) { return strconv.ParseInt(s, 10, 64) })
	case ConvDateToLong:
		return applyDate(value, func(millis int64) (any, error) { return millis, nil })

	case ConvRationalToInt:
		return applyRational(value, func(f float64) (any, error) { return safeFloatToInt(f) })
	case ConvIntegerToInt:
		return applyInteger(value, func(n int64) (any, error) { return SafeToInt(n) })
	case ConvBoolToInt:
		return applyBool(value, func(b bool) any {
			if b {
				return int32(1)
			}
			return int32(0)
		})
	case ConvStringToInt:
		return applyString(value, "Int", func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, 32)
			return int32(n), err
		})
	case ConvDateToInt:
		return applyDate(value, func(millis int64) (any, error) { return SafeToInt(millis) })

	case ConvRationalToShort:
		return applyRational(value, func(f float64) (any, error) { return safeFloatToShort(f) })
	case ConvIntegerToShort:
		return applyInteger(value, func(n int64) (any, error) { return SafeToShort(n) })
	case ConvBoolToShort:
		return applyBool(value, func(b bool) any {
			if b {
				return int16(1)
			}
			return int16(0)
		})
	case ConvStringToShort:
		return applyString(value, "Short", func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, 16)
			return int16(n), err
		})
	case ConvDateToShort:
		return applyDate(value, func(millis int64) (any, error) { return SafeToShort(millis) })

	case ConvRationalToByte:
		return applyRational(value, func(f float64) (any, error) { return safeFloatToByte(f) })
	case ConvIntegerToByte:
		return applyInteger(value, func(n int64) (any, error) { return SafeToByte(n) })
	case ConvBoolToByte:
		return applyBool(value, func(b bool) any {
			if b {
				return int8(1)
			}
			return int8(0)
		})
	case ConvStringToByte:
		return applyString(value, "Byte", func(s string) (any, error) {
			n, err := strconv.ParseInt(s, 10, 8)
			return int8(n), err
		})
	case ConvDateToByte:
		return applyDate(value, func(millis int64) (any, error) { return SafeToByte(millis) })

	case ConvRationalToFloat:
		return applyRational(value, func(f float64) (any, error) { return float32(f), nil })
	case ConvIntegerToFloat:
		return applyInteger(value, func(n int64) (any, error) { return float32(n), nil })
	case ConvBoolToFloat:
		return applyBool(value, func(b bool) any {
			if b {
				return float32(1)
			}
			return float32(0)
		})
	case ConvStringToFloat:
		return applyString(value, "Float", func(s string) (any, error) {
			f, err := strconv.ParseFloat(s, 32)
			return float32(f), err
		})
	case ConvDateToFloat:
		return applyDate(value, func(millis int64) (any, error) { return float32(millis), nil })

	case ConvRationalToDouble:
		return applyRational(value, func(f float64) (any, error) { return f, nil })
	case ConvIntegerToDouble:
		return applyInteger(value, func(n int64) (any, error) { return float64(n), nil })
	case ConvBoolToDouble:
		return applyBool(value, func(b bool) any {
			if b {
				return float64(1)
			}
			return float64(0)
		})
	case ConvStringToDouble:
		return applyString(value, "Double", func(s string) (any, error) { return strconv.ParseFloat(s, 64) })
	case ConvDateToDouble:
		return applyDate(value, func(millis int64) (any, error) { return float64(millis), nil })

	case ConvRationalToDate:
		return applyAsDate(ConvRationalToLong, value)
	case ConvIntegerToDate:
		return applyAsDate(ConvIntegerToLong, value)
	case ConvBoolToDate:
		return applyAsDate(ConvBoolToInt, value)
	case ConvStringToDate:
		return applyString(value, "Date", func(s string) (any, error) {
			d, err := dateparse.ParseIn(s, time.UTC)
			if err != nil {
				return nil, err
			}
			return d.UTC(), nil
		})

	case ConvNumericToBoolean:
		return applyInteger(value, func(n int64) (any, error) { return n != 0, nil })
	case ConvStringToBoolean:
		return applyString(value, "Boolean", func(s string) (any, error) { return ConvertToBoolean(s) })
	case ConvDateToBoolean:
		return applyDate(value, func(millis int64) (any, error) { return millis != 0, nil })
	}
	return nil, fmt.Errorf("unknown conversion ordinal %d", int(c))
}

// applyAsDate runs the named long-valued conversion and wraps the resulting
// epoch milliseconds in a UTC timestamp.
func applyAsDate(via Conversion, value any) (any, error) {
	out, err := via.Apply(value)
	if err != nil {
		return nil, err
	}
	millis, err := asInt64(out)
	if err != nil {
		return nil, err
	}
	return time.UnixMilli(millis).UTC(), nil
}

func applyRational(value any, fn func(float64) (any, error)) (any, error) {
	f, err := asFloat64(value)
	if err != nil {
		return nil, err
	}
	return fn(f)
}

func applyInteger(value any, fn func(int64) (any, error)) (any, error) {
	n, err := asInt64(value)
	if err != nil {
		return nil, err
	}
	return fn(n)
}

func applyString(value any, target string, fn func(string) (any, error)) (any, error) {
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	out, err := fn(s)
	if err != nil {
		var te *Error
		if errors.As(err, &te) {
			return nil, te
		}
		return nil, newCastError(s, target, err)
	}
	return out, nil
}

func applyBool(value any, fn func(bool) any) (any, error) {
	b, ok := value.(bool)
	if !ok {
		return nil, newCastError(value, "Boolean", nil)
	}
	return fn(b), nil
}

func applyDate(value any, fn func(int64) (any, error)) (any, error) {
	d, err := asDate(value)
	if err != nil {
		return nil, err
	}
	return fn(d.UnixMilli())
}

// asInt64 extracts a 64-bit integer from any numeric runtime value.
// Rational values truncate toward zero, matching the catalog's
// numeric-to-boolean semantics.
func asInt64(value any) (int64, error) {
	switch n := value.(type) {
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float32:
		return truncateToInt64(float64(n))
	case float64:
		return truncateToInt64(n)
	}
	return 0, newCastError(value, "Long", nil)
}

// truncateToInt64 drops the fractional part, rejecting NaN and values
// outside the int64 range instead of letting the conversion wrap.
func truncateToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || f >= 1<<63 || f < math.MinInt64 {
		return 0, newRangeError(f, "Long")
	}
	return int64(f), nil
}

func asFloat64(value any) (float64, error) {
	switch n := value.(type) {
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case float32:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, newCastError(value, "Double", nil)
}

func asDate(value any) (time.Time, error) {
	d, ok := value.(time.Time)
	if !ok {
		return time.Time{}, newCastError(value, "Date", nil)
	}
	return d, nil
}

// SafeToByte narrows a 64-bit integer to a byte, failing with an
// OUT_OF_RANGE error instead of wrapping on overflow.
func SafeToByte(x int64) (int8, error) {
	if x > math.MaxInt8 || x < math.MinInt8 {
		return 0, newRangeError(x, "Byte")
	}
	return int8(x), nil
}

// SafeToShort narrows a 64-bit integer to a short, failing with an
// OUT_OF_RANGE error instead of wrapping on overflow.
func SafeToShort(x int64) (int16, error) {
	if x > math.MaxInt16 || x < math.MinInt16 {
		return 0, newRangeError(x, "Short")
	}
	return int16(x), nil
}

// SafeToInt narrows a 64-bit integer to an int, failing with an
// OUT_OF_RANGE error instead of wrapping on overflow.
func SafeToInt(x int64) (int32, error) {
	if x > math.MaxInt32 || x < math.MinInt32 {
		return 0, newRangeError(x, "Int")
	}
	return int32(x), nil
}

// SafeToLong rounds a rational value to the nearest 64-bit integer, failing
// with an OUT_OF_RANGE error when the value does not fit.
func SafeToLong(x float64) (int64, error) {
	// MaxInt64 is not representable as a float64; the valid range is
	// [-2^63, 2^63) with an exclusive upper bound. NaN compares false
	// against both bounds and must be rejected up front.
	if math.IsNaN(x) || x >= 1<<63 || x < math.MinInt64 {
		return 0, newRangeError(x, "Long")
	}
	return int64(math.Round(x)), nil
}

func safeFloatToInt(f float64) (int32, error) {
	l, err := SafeToLong(f)
	if err != nil {
		return 0, err
	}
	return SafeToInt(l)
}

func safeFloatToShort(f float64) (int16, error) {
	l, err := SafeToLong(f)
	if err != nil {
		return 0, err
	}
	return SafeToShort(l)
}

func safeFloatToByte(f float64) (int8, error) {
	l, err := SafeToLong(f)
	if err != nil {
		return 0, err
	}
	return SafeToByte(l)
}

// ToInteger rounds a rational value and narrows it to the width of the given
// integer type. Any non-integer target gets the full 64-bit result.
func ToInteger(x float64, t DataType) (any, error) {
	l, err := SafeToLong(x)
	if err != nil {
		return nil, err
	}
	switch t {
	case Byte:
		return SafeToByte(l)
	case Short:
		return SafeToShort(l)
	case Integer:
		return SafeToInt(l)
	default:
		return l, nil
	}
}

// ConvertToBoolean parses the canonical boolean literals, ignoring case.
// Anything other than true/false is a BAD_CAST error naming the literal.
func ConvertToBoolean(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, newCastError(s, "Boolean", nil)
}

// TypeOf detects the DataType of a runtime value. Unknown representations
// map to Unsupported, which no conversion accepts.
func TypeOf(value any) DataType {
	switch value.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case int8:
		return Byte
	case int16:
		return Short
	case int32:
		return Integer
	case int64, int:
		return Long
	case float32:
		return Float
	case float64:
		return Double
	case string:
		return Keyword
	case time.Time:
		return Date
	}
	return Unsupported
}

// Convert coerces an arbitrary runtime value to the desired data type,
// short-circuiting when the value is nil or already of that type. This is
// the single dynamic-value entry point for literal folding and cast
// evaluation.
func Convert(value any, to DataType) (any, error) {
	from := TypeOf(value)
	if from == to || value == nil {
		return value, nil
	}
	c, err := ConversionFor(from, to)
	if err != nil {
		return nil, err
	}
	return c.Apply(value)
}
