package models

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cancelled registrations stay in the table, so the (event_id, user_id) pair
// repeats when a user re-registers. A unique index here would turn every
// re-registration into a duplicate-key failure.
func TestRegistrationAllowsCancelledDuplicates(t *testing.T) {
	typ := reflect.TypeOf(Registration{})

	for _, name := range []string{"EventID", "UserID"} {
		field, ok := typ.FieldByName(name)
		require.True(t, ok)
		tag := field.Tag.Get("gorm")
		assert.NotContains(t, tag, "uniqueIndex", "%s must not be part of a unique index", name)
		assert.Contains(t, tag, "index:idx_event_user", "%s keeps the plain composite lookup index", name)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusRegistered, StatusConfirmed, StatusAttended, StatusCancelled} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("pending"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Registered"))
}
