// Package marshaller converts registered record structs to wire records and
// back, and provides the byte codecs drivers persist records with.
package marshaller

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"

	"github.com/tarantool/go-recstore/internal/options"
	"github.com/tarantool/go-recstore/record"
	"github.com/tarantool/go-recstore/wire"
)

type marshallerOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger that reports skipped fields.
func WithLogger(logger zerolog.Logger) options.OptionCallback[marshallerOptions] {
	return func(opts *marshallerOptions) {
		opts.logger = logger
	}
}

// Marshaller converts records using the metadata of a registry.
type Marshaller struct {
	registry *record.Registry
	logger   zerolog.Logger
}

// New creates a marshaller over registry.
func New(registry *record.Registry, opts ...options.OptionCallback[marshallerOptions]) *Marshaller {
	o := options.ApplyOptions[marshallerOptions](func() marshallerOptions {
		return marshallerOptions{logger: zerolog.Nop()}
	}, opts)

	return &Marshaller{
		registry: registry,
		logger:   o.logger,
	}
}

// Registry returns the registry the marshaller reads metadata from.
func (m *Marshaller) Registry() *record.Registry {
	return m.registry
}

// ToWire encodes rec, a registered struct or a pointer to one. Enum fields
// are written as constant names and empty lists as wire.EmptyListSentinel.
// A field that cannot be read fails the whole call.
func (m *Marshaller) ToWire(rec any) (*wire.Record, error) {
	desc, value, err := m.describe(rec)
	if err != nil {
		return nil, err
	}

	out := wire.NewRecord()

	for _, field := range desc.Fields() {
		fv, err := fieldValue(desc, field, value)
		if err != nil {
			return nil, err
		}

		out.Set(field.Name, toWireValue(field, fv))
	}

	return out, nil
}

// FromWire decodes in into target, a non-nil pointer to a registered struct.
// Fields are matched by wire name. A field whose value cannot be stored is
// logged and skipped, keys missing from in leave their field untouched and
// a nil value resets the field to its zero value.
func (m *Marshaller) FromWire(in *wire.Record, target any) error {
	rv := reflect.ValueOf(target)
	if target == nil || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	desc, err := m.registry.DescriptorOf(target)
	if err != nil {
		return err //nolint:wrapcheck
	}

	value := rv.Elem()

	for _, field := range desc.Fields() {
		raw, ok := in.Get(field.Name)
		if !ok {
			m.logger.Debug().
				Str("type", desc.TypeID()).
				Str("field", field.Name).
				Msg("field is missing from wire record")

			continue
		}

		if err := m.setField(desc, field, value, raw); err != nil {
			m.logger.Error().
				Err(err).
				Str("type", desc.TypeID()).
				Str("field", field.Name).
				Str("declared_type", field.Type.String()).
				Str("received_type", fmt.Sprintf("%T", raw)).
				Msg("failed to set field")
		}
	}

	return nil
}

// PrimaryKey returns the primary key value of rec. It reports false when the
// type declares no primary key.
func (m *Marshaller) PrimaryKey(rec any) (any, bool, error) {
	desc, value, err := m.describe(rec)
	if err != nil {
		return nil, false, err
	}

	field, ok := desc.Primary()
	if !ok {
		return nil, false, nil
	}

	fv, err := fieldValue(desc, field, value)
	if err != nil {
		return nil, false, err
	}

	return toWireValue(field, fv), true, nil
}

// SetPrimaryKey stores value in the primary key field of target.
func (m *Marshaller) SetPrimaryKey(target any, value any) error {
	rv := reflect.ValueOf(target)
	if target == nil || rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	desc, err := m.registry.DescriptorOf(target)
	if err != nil {
		return err //nolint:wrapcheck
	}

	field, ok := desc.Primary()
	if !ok {
		return errPrimaryKeyNotFound(desc.TypeID())
	}

	return m.setField(desc, field, rv.Elem(), value)
}

func (m *Marshaller) describe(rec any) (*record.Descriptor, reflect.Value, error) {
	desc, err := m.registry.DescriptorOf(rec)
	if err != nil {
		return nil, reflect.Value{}, err //nolint:wrapcheck
	}

	value := reflect.ValueOf(rec)
	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, reflect.Value{}, ErrNilRecord
		}

		value = value.Elem()
	}

	return desc, value, nil
}

func fieldValue(desc *record.Descriptor, field record.Field, value reflect.Value) (reflect.Value, error) {
	if !field.Exported {
		return reflect.Value{}, errReflectionAccess(desc.TypeID(), field.Name, ErrUnexportedField)
	}

	return value.FieldByIndex(field.Index), nil
}

func toWireValue(field record.Field, fv reflect.Value) any {
	switch field.Kind {
	case record.KindEnum:
		return enumName(field.Enum, fv)
	case record.KindList:
		if fv.Len() == 0 {
			return wire.EmptyListSentinel
		}

		if field.Elem != record.KindEnum {
			return fv.Interface()
		}

		names := make([]any, 0, fv.Len())
		for i := range fv.Len() {
			names = append(names, enumName(field.Enum, fv.Index(i)))
		}

		return names
	default:
		return fv.Interface()
	}
}

func enumName(enum *record.Enum, fv reflect.Value) string {
	if name, ok := enum.Name(fv); ok {
		return name
	}

	if s, ok := fv.Interface().(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprint(fv.Interface())
}

func (m *Marshaller) setField(desc *record.Descriptor, field record.Field, value reflect.Value, raw any) error {
	fv, err := fieldValue(desc, field, value)
	if err != nil {
		return err
	}

	decoded, err := fromWireValue(field, raw)
	if err != nil {
		return errField(field.Name, field.Type.String(), fmt.Sprintf("%T", raw), err)
	}

	fv.Set(decoded)

	return nil
}

// fromWireValue converts raw into a value of the field's declared type.
// Enum fields are resolved first, then arrays into list fields, then the
// empty-list sentinel; anything else is stored as-is.
func fromWireValue(field record.Field, raw any) (reflect.Value, error) {
	if raw == nil {
		return reflect.Zero(field.Type), nil
	}

	if field.Kind == record.KindEnum {
		return resolveEnum(field.Enum, raw)
	}

	if field.Kind == record.KindList {
		if items, ok := asList(raw); ok {
			return listValue(field, items)
		}

		if s, ok := raw.(string); ok && s == wire.EmptyListSentinel {
			return reflect.MakeSlice(field.Type, 0, 0), nil
		}
	}

	return convert(raw, field.Type)
}

func resolveEnum(enum *record.Enum, raw any) (reflect.Value, error) {
	text, ok := raw.(string)
	if !ok {
		return reflect.Value{}, ErrTypeMismatch
	}

	constant, ok := enum.Resolve(text)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownEnumConstant, text)
	}

	return constant, nil
}

func asList(raw any) ([]any, bool) {
	if items, ok := raw.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		items = append(items, rv.Index(i).Interface())
	}

	return items, true
}

func listValue(field record.Field, items []any) (reflect.Value, error) {
	out := reflect.MakeSlice(field.Type, len(items), len(items))
	elemType := field.Type.Elem()

	for i, item := range items {
		var (
			elem reflect.Value
			err  error
		)

		switch {
		case item == nil:
			elem = reflect.Zero(elemType)
		case field.Elem == record.KindEnum:
			elem, err = resolveEnum(field.Enum, item)
		default:
			elem, err = convert(item, elemType)
		}

		if err != nil {
			return reflect.Value{}, fmt.Errorf("element %d: %w", i, err)
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// convert stores raw as typ, widening numbers and decoding generic maps and
// slices with mapstructure. Numbers that would overflow typ or lose a
// fraction are rejected.
func convert(raw any, typ reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(raw)
	if rv.Type().AssignableTo(typ) {
		return rv, nil
	}

	if err := checkRange(raw, typ); err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(typ)

	if err := mapstructure.Decode(raw, out.Interface()); err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}

	return out.Elem(), nil
}
