package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_errMarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("yaml marshal error")
		err := errMarshal("yaml", parentErr)
		require.Error(t, err)
		assert.Equal(t, "failed to marshal yaml: yaml marshal error", err.Error())

		var marshalErr MarshalError
		require.ErrorAs(t, err, &marshalErr)
		assert.Equal(t, "yaml", marshalErr.Codec)
		assert.Equal(t, parentErr, marshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errMarshal("yaml", nil))
	})
}

func Test_errUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("json unmarshal error")
		err := errUnmarshal("json", parentErr)
		require.Error(t, err)
		assert.Equal(t, "failed to unmarshal json: json unmarshal error", err.Error())

		var unmarshalErr UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
		assert.Equal(t, parentErr, unmarshalErr.Unwrap())
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errUnmarshal("json", nil))
	})
}

func TestRecordErrors(t *testing.T) {
	t.Parallel()

	access := errReflectionAccess("User", "secret", ErrUnexportedField)
	require.ErrorIs(t, access, ErrUnexportedField)
	assert.Equal(t, `cannot access field "secret" of "User": field is not exported`, access.Error())

	pk := errPrimaryKeyNotFound("Log")
	assert.Equal(t, `type "Log" declares no primary key`, pk.Error())

	field := errField("age", "int", "string", ErrTypeMismatch)
	require.ErrorIs(t, field, ErrTypeMismatch)
	assert.Equal(t,
		"age couldn't be set, field type was int but got string: wire value does not match field type",
		field.Error())
}
