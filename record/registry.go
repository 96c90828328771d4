// Package record holds the metadata of record types: their wire field
// names, wire kinds, primary keys and enumeration constants.
//
// Record types are plain structs. Fields are described with the "record"
// struct tag:
//
//	type User struct {
//		ID     string   `record:"id,pk"`
//		Name   string   `record:"name"`
//		Role   Role     `record:"role"`
//		Tags   []string `record:"tags"`
//		Cached bool     `record:"-"`
//	}
//
// Untagged exported fields use the Go field name, untagged unexported fields
// are skipped.
package record

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/tarantool/go-recstore/internal/options"
)

const (
	defaultTagName = "record"
	tagSkip        = "-"
	tagPrimary     = "pk"
)

// ErrDuplicateField is returned when two fields share a wire name.
var ErrDuplicateField = errors.New("duplicate wire field name")

type registryOptions struct {
	tagName string
	enums   []*Enum
}

// WithEnum declares an enumeration type by its complete set of constants.
// Fields of type T are written as constant names and resolved back
// case-insensitively.
func WithEnum[T fmt.Stringer](constants ...T) options.OptionCallback[registryOptions] {
	return func(opts *registryOptions) {
		opts.enums = append(opts.enums, newEnum(constants))
	}
}

// WithTagName sets the struct tag read for field metadata.
func WithTagName(name string) options.OptionCallback[registryOptions] {
	return func(opts *registryOptions) {
		opts.tagName = name
	}
}

type registerOptions struct {
	typeID string
}

// WithTypeID registers the type under id instead of its Go type name.
func WithTypeID(id string) options.OptionCallback[registerOptions] {
	return func(opts *registerOptions) {
		opts.typeID = id
	}
}

// Registry maps record types to their descriptors. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	tagName string
	enums   map[reflect.Type]*Enum
	byID    map[string]*Descriptor
	byType  map[reflect.Type]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...options.OptionCallback[registryOptions]) *Registry {
	o := options.ApplyOptions[registryOptions](func() registryOptions {
		return registryOptions{tagName: defaultTagName, enums: nil}
	}, opts)

	enums := make(map[reflect.Type]*Enum, len(o.enums))
	for _, e := range o.enums {
		enums[e.typ] = e
	}

	return &Registry{
		mu:      sync.RWMutex{},
		tagName: o.tagName,
		enums:   enums,
		byID:    make(map[string]*Descriptor),
		byType:  make(map[reflect.Type]*Descriptor),
	}
}

// Register describes the type of prototype, a struct or a pointer to one.
func (r *Registry) Register(prototype any, opts ...options.OptionCallback[registerOptions]) (*Descriptor, error) {
	typ := structType(reflect.TypeOf(prototype))

	o := options.ApplyOptions[registerOptions](nil, opts)
	if o.typeID == "" && typ != nil {
		o.typeID = typ.Name()
	}

	if typ == nil {
		return nil, errRegistration(o.typeID, "", fmt.Errorf("%w, got %T", ErrNotStruct, prototype))
	}

	desc, err := r.describe(o.typeID, typ)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[desc.typeID]; ok {
		return nil, errRegistration(desc.typeID, "", ErrAlreadyRegistered)
	}

	if _, ok := r.byType[typ]; ok {
		return nil, errRegistration(desc.typeID, "", ErrAlreadyRegistered)
	}

	r.byID[desc.typeID] = desc
	r.byType[typ] = desc

	return desc, nil
}

func (r *Registry) describe(typeID string, typ reflect.Type) (*Descriptor, error) {
	desc := &Descriptor{
		typeID:  typeID,
		typ:     typ,
		fields:  make([]Field, 0, typ.NumField()),
		byName:  make(map[string]int, typ.NumField()),
		primary: -1,
	}

	for i := range typ.NumField() {
		sf := typ.Field(i)

		tag, tagged := sf.Tag.Lookup(r.tagName)
		if tag == tagSkip || (!tagged && !sf.IsExported()) {
			continue
		}

		name, flags, _ := strings.Cut(tag, ",")
		if name == "" {
			name = sf.Name
		}

		field := Field{
			Name:     name,
			GoName:   sf.Name,
			Index:    slices.Clone(sf.Index),
			Type:     sf.Type,
			Kind:     classify(sf.Type, r.enums),
			Elem:     KindOther,
			Primary:  slices.Contains(strings.Split(flags, ","), tagPrimary),
			Exported: sf.IsExported(),
			Enum:     r.enums[sf.Type],
		}

		if field.Kind == KindList {
			field.Elem = classify(sf.Type.Elem(), r.enums)
			field.Enum = r.enums[sf.Type.Elem()]
		}

		if _, ok := desc.byName[name]; ok {
			return nil, errRegistration(typeID, name, ErrDuplicateField)
		}

		if field.Primary {
			if desc.primary >= 0 {
				return nil, errRegistration(typeID, name, ErrDuplicatePrimaryKey)
			}

			desc.primary = len(desc.fields)
		}

		desc.byName[name] = len(desc.fields)
		desc.fields = append(desc.fields, field)
	}

	return desc, nil
}

// Describe returns the descriptor registered under typeID.
func (r *Registry) Describe(typeID string) (*Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.byID[typeID]
	if !ok {
		return nil, errNotRegistered(typeID)
	}

	return desc, nil
}

// DescriptorOf returns the descriptor of the type of value, a struct or a
// pointer to one.
func (r *Registry) DescriptorOf(value any) (*Descriptor, error) {
	typ := structType(reflect.TypeOf(value))
	if typ == nil {
		return nil, fmt.Errorf("%w, got %T", ErrNotStruct, value)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	desc, ok := r.byType[typ]
	if !ok {
		return nil, errNotRegistered(typ.String())
	}

	return desc, nil
}

// Fields returns the field descriptors of typeID in declaration order.
func (r *Registry) Fields(typeID string) ([]Field, error) {
	desc, err := r.Describe(typeID)
	if err != nil {
		return nil, err
	}

	return desc.Fields(), nil
}

// PrimaryKey returns the primary key field of typeID, reporting false when
// the type declares none.
func (r *Registry) PrimaryKey(typeID string) (Field, bool, error) {
	desc, err := r.Describe(typeID)
	if err != nil {
		return Field{}, false, err
	}

	field, ok := desc.Primary()

	return field, ok, nil
}

// Enum returns the enumeration registered for typ.
func (r *Registry) Enum(typ reflect.Type) (*Enum, bool) {
	e, ok := r.enums[typ]
	return e, ok
}

// TypeIDs returns the registered type ids, sorted.
func (r *Registry) TypeIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

func structType(typ reflect.Type) reflect.Type {
	if typ == nil {
		return nil
	}

	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return nil
	}

	return typ
}
