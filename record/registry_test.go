package record_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-recstore/record"
)

type Role int

const (
	RoleGuest Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleGuest:
		return "GUEST"
	case RoleAdmin:
		return "ADMIN"
	default:
		return "UNKNOWN"
	}
}

type User struct {
	ID     string   `record:"id,pk"`
	Name   string   `record:"name"`
	Age    int      `record:"age"`
	Role   Role     `record:"role"`
	Roles  []Role   `record:"roles"`
	Tags   []string `record:"tags"`
	Extra  map[string]any
	Cached bool `record:"-"`
	hidden string
	secret string `record:"secret"`
}

type NoKey struct {
	Name string `record:"name"`
}

type TwoKeys struct {
	A string `record:"a,pk"`
	B string `record:"b,pk"`
}

type Clash struct {
	A string `record:"x"`
	B string `record:"x"`
}

func newRegistry() *record.Registry {
	return record.NewRegistry(record.WithEnum(RoleGuest, RoleAdmin))
}

func TestRegister_Fields(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	desc, err := reg.Register(User{})
	require.NoError(t, err)
	assert.Equal(t, "User", desc.TypeID())
	assert.Equal(t, reflect.TypeOf(User{}), desc.Type())

	names := make([]string, 0)
	for _, f := range desc.Fields() {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"id", "name", "age", "role", "roles", "tags", "Extra", "secret"}, names)

	tests := []struct {
		name    string
		kind    record.Kind
		elem    record.Kind
		enum    bool
		primary bool
	}{
		{"id", record.KindScalar, record.KindOther, false, true},
		{"age", record.KindScalar, record.KindOther, false, false},
		{"role", record.KindEnum, record.KindOther, true, false},
		{"roles", record.KindList, record.KindEnum, true, false},
		{"tags", record.KindList, record.KindScalar, false, false},
		{"Extra", record.KindOther, record.KindOther, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			field, ok := desc.Field(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.kind, field.Kind)
			assert.Equal(t, tt.elem, field.Elem)
			assert.Equal(t, tt.enum, field.Enum != nil)
			assert.Equal(t, tt.primary, field.Primary)
		})
	}

	secret, ok := desc.Field("secret")
	require.True(t, ok)
	assert.False(t, secret.Exported)

	_, ok = desc.Field("hidden")
	assert.False(t, ok)

	_, ok = desc.Field("Cached")
	assert.False(t, ok)
}

func TestRegister_PrimaryKey(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	_, err := reg.Register(&User{})
	require.NoError(t, err)

	_, err = reg.Register(NoKey{}, record.WithTypeID("nokey"))
	require.NoError(t, err)

	pk, ok, err := reg.PrimaryKey("User")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ID", pk.GoName)

	_, ok, err = reg.PrimaryKey("nokey")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = reg.PrimaryKey("missing")
	require.ErrorIs(t, err, record.ErrNotRegistered)
}

func TestRegister_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prototype any
		sentinel  error
	}{
		{"two primary keys", TwoKeys{}, record.ErrDuplicatePrimaryKey},
		{"duplicate wire name", Clash{}, record.ErrDuplicateField},
		{"not a struct", 42, record.ErrNotStruct},
		{"nil", nil, record.ErrNotStruct},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newRegistry().Register(tt.prototype)
			require.ErrorIs(t, err, tt.sentinel)

			var regErr record.RegistrationError
			require.ErrorAs(t, err, &regErr)
		})
	}
}

func TestRegister_Twice(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	_, err := reg.Register(User{})
	require.NoError(t, err)

	_, err = reg.Register(User{}, record.WithTypeID("users"))
	require.ErrorIs(t, err, record.ErrAlreadyRegistered)

	_, err = reg.Register(NoKey{}, record.WithTypeID("User"))
	require.ErrorIs(t, err, record.ErrAlreadyRegistered)
}

func TestRegistry_Lookups(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	_, err := reg.Register(User{}, record.WithTypeID("users"))
	require.NoError(t, err)

	desc, err := reg.DescriptorOf(&User{})
	require.NoError(t, err)
	assert.Equal(t, "users", desc.TypeID())

	fields, err := reg.Fields("users")
	require.NoError(t, err)
	assert.Len(t, fields, 8)

	_, err = reg.DescriptorOf(NoKey{})
	require.ErrorIs(t, err, record.ErrNotRegistered)

	_, err = reg.DescriptorOf("users")
	require.ErrorIs(t, err, record.ErrNotStruct)

	assert.Equal(t, []string{"users"}, reg.TypeIDs())
}

func TestRegistry_TagName(t *testing.T) {
	t.Parallel()

	type Row struct {
		Key string `db:"key,pk"`
		Val string `db:"val"`
	}

	reg := record.NewRegistry(record.WithTagName("db"))

	desc, err := reg.Register(Row{})
	require.NoError(t, err)

	pk, ok := desc.Primary()
	require.True(t, ok)
	assert.Equal(t, "key", pk.Name)
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	_, err := reg.Register(User{})
	require.NoError(t, err)

	var wg sync.WaitGroup

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			desc, err := reg.DescriptorOf(User{})
			assert.NoError(t, err)
			assert.Equal(t, "User", desc.TypeID())
		}()
	}

	wg.Wait()
}

func TestEnum_Resolve(t *testing.T) {
	t.Parallel()

	reg := newRegistry()

	enum, ok := reg.Enum(reflect.TypeOf(RoleAdmin))
	require.True(t, ok)
	assert.Equal(t, []string{"GUEST", "ADMIN"}, enum.Names())

	for _, text := range []string{"ADMIN", "admin", "Admin"} {
		v, ok := enum.Resolve(text)
		require.True(t, ok, text)
		assert.Equal(t, RoleAdmin, v.Interface())
	}

	_, ok = enum.Resolve("root")
	assert.False(t, ok)

	name, ok := enum.Name(reflect.ValueOf(RoleGuest))
	require.True(t, ok)
	assert.Equal(t, "GUEST", name)

	_, ok = enum.Name(reflect.ValueOf(Role(7)))
	assert.False(t, ok)

	_, ok = enum.Name(reflect.ValueOf(7))
	assert.False(t, ok)
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Scalar", record.KindScalar.String())
	assert.Equal(t, "Enum", record.KindEnum.String())
	assert.Equal(t, "List", record.KindList.String())
	assert.Equal(t, "Other", record.KindOther.String())
	assert.Equal(t, "Unknown", record.Kind(10).String())
}
