package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	assert.Nil(t, Required("username", "alice"))

	err := Required("username", "   ")
	assert.NotNil(t, err)
	assert.Equal(t, "username", err.Field)
	assert.EqualError(t, err, "username: is required")
}

func TestEmail(t *testing.T) {
	assert.Nil(t, Email("email", "a@x.com"))

	for _, bad := range []string{"", "plain", "a@b", "a b@x.com", "@x.com"} {
		assert.NotNil(t, Email("email", bad), "expected %q to fail", bad)
	}
}

func TestLengths(t *testing.T) {
	assert.Nil(t, MinLen("password", "secret1", 6))
	assert.NotNil(t, MinLen("password", "pw", 6))

	assert.Nil(t, MaxLen("username", "alice", 100))
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.NotNil(t, MaxLen("username", string(long), 100))
}
