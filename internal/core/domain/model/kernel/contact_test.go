package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking/internal/core/domain/model/kernel"
)

func TestNewContactInfo(t *testing.T) {
	t.Run("creates valid contact info", func(t *testing.T) {
		contact, err := kernel.NewContactInfo("Jane", "Doe", "jane@example.com", "+90 555 000 0000")

		require.NoError(t, err)
		require.NoError(t, contact.Validate())
		assert.Equal(t, "Jane", contact.FirstName())
		assert.Equal(t, "Doe", contact.LastName())
		assert.Equal(t, "jane@example.com", contact.Email())
		assert.Equal(t, "+90 555 000 0000", contact.Phone())
		assert.Equal(t, "Jane Doe", contact.FullName())
	})

	t.Run("phone is optional", func(t *testing.T) {
		contact, err := kernel.NewContactInfo("Jane", "Doe", "jane@example.com", "")

		require.NoError(t, err)
		assert.Empty(t, contact.Phone())
	})

	t.Run("fails without first name", func(t *testing.T) {
		_, err := kernel.NewContactInfo("", "Doe", "jane@example.com", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "first name")
	})

	t.Run("fails without last name", func(t *testing.T) {
		_, err := kernel.NewContactInfo("Jane", "", "jane@example.com", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "last name")
	})

	t.Run("fails without email", func(t *testing.T) {
		_, err := kernel.NewContactInfo("Jane", "Doe", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := kernel.NewContactInfo("Jane", "Doe", "not-an-email", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("collects multiple validation errors", func(t *testing.T) {
		_, err := kernel.NewContactInfo("", "", "nope", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "first name")
		assert.Contains(t, err.Error(), "last name")
		assert.Contains(t, err.Error(), "email")
	})
}

func TestContactInfo_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var contact kernel.ContactInfo

		err := contact.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "contact info must be created")
	})
}

func TestContactInfo_IsEqual(t *testing.T) {
	a, _ := kernel.NewContactInfo("Jane", "Doe", "jane@example.com", "")
	b, _ := kernel.NewContactInfo("Jane", "Doe", "jane@example.com", "")
	c, _ := kernel.NewContactInfo("John", "Doe", "john@example.com", "")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
