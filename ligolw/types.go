// Package ligolw defines the scalar type vocabulary of LIGO Light Weight
// XML documents: the type names, their text format specifiers, the Go
// kinds they load into, the array element-storage codes, and the
// relational column affinities. The tables are a static contract; XML
// parsing and writing machinery live elsewhere.
//
// Floating-point format specifiers keep one decimal digit fewer than an
// exact round trip needs, trading the last bit for compact documents.
package ligolw

import "reflect"

// Type names a LIGO_LW scalar type.
type Type string

const (
	ILWDChar  Type = "ilwd:char"
	ILWDCharU Type = "ilwd:char_u"
	CharS     Type = "char_s"
	CharV     Type = "char_v"
	LString   Type = "lstring"
	String    Type = "string"
	Int2S     Type = "int_2s"
	Int2U     Type = "int_2u"
	Int4S     Type = "int_4s"
	Int4U     Type = "int_4u"
	Int8S     Type = "int_8s"
	Int8U     Type = "int_8u"
	Int       Type = "int"
	Real4     Type = "real_4"
	Real8     Type = "real_8"
	Float     Type = "float"
	Double    Type = "double"
	GPS       Type = "GPS"
	Unix      Type = "Unix"
	ISO8601   Type = "ISO-8601"
)

var (
	idTypes     = []Type{ILWDChar, ILWDCharU}
	stringTypes = []Type{ILWDChar, ILWDCharU, CharS, CharV, LString, String}
	intTypes    = []Type{Int2S, Int2U, Int4S, Int4U, Int8S, Int8U, Int}
	floatTypes  = []Type{Real4, Real8, Float, Double}
	timeTypes   = []Type{GPS, Unix, ISO8601}
)

// Types returns every known scalar type in stable order.
func Types() []Type {
	out := make([]Type, 0, len(stringTypes)+len(intTypes)+len(floatTypes)+len(timeTypes))
	out = append(out, stringTypes...)
	out = append(out, intTypes...)
	out = append(out, floatTypes...)
	out = append(out, timeTypes...)
	return out
}

// IsValid reports whether t is a known scalar type.
func (t Type) IsValid() bool {
	return t.IsString() || t.IsInt() || t.IsFloat() || t.IsTime()
}

// IsID reports whether t is a row-identifier type.
func (t Type) IsID() bool { return contains(idTypes, t) }

// IsString reports whether t holds text, identifiers included.
func (t Type) IsString() bool { return contains(stringTypes, t) }

// IsInt reports whether t is an integer type.
func (t Type) IsInt() bool { return contains(intTypes, t) }

// IsFloat reports whether t is a floating-point type.
func (t Type) IsFloat() bool { return contains(floatTypes, t) }

// IsTime reports whether t is a time type.
func (t Type) IsTime() bool { return contains(timeTypes, t) }

func contains(s []Type, t Type) bool {
	for _, v := range s {
		if v == t {
			return true
		}
	}
	return false
}

var formats = map[Type]string{
	CharS:     `"%s"`,
	CharV:     `"%s"`,
	ILWDChar:  `"%s"`,
	ILWDCharU: `"%s"`,
	LString:   `"%s"`,
	String:    `"%s"`,
	Int2S:     "%d",
	Int2U:     "%d",
	Int4S:     "%d",
	Int4U:     "%d",
	Int8S:     "%d",
	Int8U:     "%d",
	Int:       "%d",
	Real4:     "%.8g",
	Real8:     "%.16g",
	Float:     "%.8g",
	Double:    "%.16g",
}

// Format returns the fmt specifier used to write a value of type t into
// document text. Time types have no scalar format.
func (t Type) Format() (string, bool) {
	f, ok := formats[t]
	return f, ok
}

var goKinds = map[Type]reflect.Kind{
	CharS:     reflect.String,
	CharV:     reflect.String,
	ILWDChar:  reflect.String,
	ILWDCharU: reflect.String,
	LString:   reflect.String,
	String:    reflect.String,
	Int2S:     reflect.Int16,
	Int2U:     reflect.Uint16,
	Int4S:     reflect.Int32,
	Int4U:     reflect.Uint32,
	Int8S:     reflect.Int64,
	Int8U:     reflect.Uint64,
	Int:       reflect.Int32,
	Real4:     reflect.Float32,
	Real8:     reflect.Float64,
	Float:     reflect.Float64,
	Double:    reflect.Float64,
}

// GoKind returns the Go kind a scalar of type t loads into.
func (t Type) GoKind() (reflect.Kind, bool) {
	k, ok := goKinds[t]
	return k, ok
}

var storageCodes = map[Type]string{
	Int2S:  "int16",
	Int2U:  "uint16",
	Int4S:  "int32",
	Int4U:  "uint32",
	Int8S:  "int64",
	Int8U:  "uint64",
	Int:    "int32",
	Real4:  "float32",
	Real8:  "float64",
	Float:  "float64",
	Double: "float64",
}

// StorageCode returns the array element-storage code for t. String and
// time types are not array-storable.
func (t Type) StorageCode() (string, bool) {
	c, ok := storageCodes[t]
	return c, ok
}

// FromStorageCode returns the canonical scalar type for an array
// element-storage code.
func FromStorageCode(code string) (Type, bool) {
	switch code {
	case "int16":
		return Int2S, true
	case "uint16":
		return Int2U, true
	case "int32":
		return Int4S, true
	case "uint32":
		return Int4U, true
	case "int64":
		return Int8S, true
	case "uint64":
		return Int8U, true
	case "float32":
		return Real4, true
	case "float64":
		return Real8, true
	default:
		return "", false
	}
}

var columnAffinities = map[Type]string{
	CharS:     "TEXT",
	CharV:     "TEXT",
	ILWDChar:  "TEXT",
	ILWDCharU: "TEXT",
	LString:   "TEXT",
	String:    "TEXT",
	Int2S:     "INTEGER",
	Int2U:     "INTEGER",
	Int4S:     "INTEGER",
	Int4U:     "INTEGER",
	Int8S:     "INTEGER",
	Int8U:     "INTEGER",
	Int:       "INTEGER",
	Real4:     "REAL",
	Real8:     "REAL",
	Float:     "REAL",
	Double:    "REAL",
}

// ColumnAffinity returns the relational column affinity for t.
func (t Type) ColumnAffinity() (string, bool) {
	a, ok := columnAffinities[t]
	return a, ok
}

// FromColumnAffinity returns the canonical scalar type for a relational
// column affinity.
func FromColumnAffinity(affinity string) (Type, bool) {
	switch affinity {
	case "TEXT", "STRING":
		return LString, true
	case "INTEGER":
		return Int4S, true
	case "REAL":
		return Real8, true
	default:
		return "", false
	}
}

// FromGoKind returns the scalar type a native Go kind stores as.
func FromGoKind(k reflect.Kind) (Type, bool) {
	switch k {
	case reflect.String:
		return LString, true
	case reflect.Int16:
		return Int2S, true
	case reflect.Uint16:
		return Int2U, true
	case reflect.Int32:
		return Int4S, true
	case reflect.Uint32:
		return Int4U, true
	case reflect.Int, reflect.Int64:
		return Int8S, true
	case reflect.Uint, reflect.Uint64:
		return Int8U, true
	case reflect.Float32:
		return Real4, true
	case reflect.Float64:
		return Real8, true
	default:
		return "", false
	}
}
