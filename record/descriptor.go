package record

import "reflect"

// Field describes a single registered field.
type Field struct {
	// Name is the wire name of the field.
	Name string
	// GoName is the name of the struct field.
	GoName string
	// Index is the reflect index path of the struct field.
	Index []int
	// Type is the declared Go type.
	Type reflect.Type
	// Kind is the wire classification of Type.
	Kind Kind
	// Elem is the classification of list elements; only meaningful for
	// KindList.
	Elem Kind
	// Primary marks the primary key.
	Primary bool
	// Exported is false for tagged unexported fields, which cannot be
	// accessed through reflection.
	Exported bool
	// Enum holds the constants of an enum field, or of list elements.
	Enum *Enum
}

// Descriptor is the metadata of a registered record type.
type Descriptor struct {
	typeID  string
	typ     reflect.Type
	fields  []Field
	byName  map[string]int
	primary int
}

// TypeID returns the identifier the type was registered under. It names
// the table on the wire.
func (d *Descriptor) TypeID() string {
	return d.typeID
}

// Type returns the struct type.
func (d *Descriptor) Type() reflect.Type {
	return d.typ
}

// Fields returns the fields in declaration order.
func (d *Descriptor) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Field returns the field with the given wire name.
func (d *Descriptor) Field(name string) (Field, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Field{}, false
	}

	return d.fields[i], true
}

// Primary returns the primary key field, if one is declared.
func (d *Descriptor) Primary() (Field, bool) {
	if d.primary < 0 {
		return Field{}, false
	}

	return d.fields[d.primary], true
}
