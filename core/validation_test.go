package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCompany(t *testing.T) {
	valid := Company{ID: "c1", Name: "Acme Widgets", ABN: "51824753556", Rating: 4.5}

	t.Run("valid company", func(t *testing.T) {
		assert.NoError(t, ValidateCompany(&valid))
	})

	t.Run("nil company", func(t *testing.T) {
		err := ValidateCompany(nil)
		assert.ErrorIs(t, err, ErrInvalidCompany)
	})

	t.Run("empty id", func(t *testing.T) {
		c := valid
		c.ID = ""
		assert.ErrorIs(t, ValidateCompany(&c), ErrEmptyCompanyID)
	})

	t.Run("empty name", func(t *testing.T) {
		c := valid
		c.Name = ""
		assert.ErrorIs(t, ValidateCompany(&c), ErrEmptyCompanyName)
	})

	t.Run("malformed abn", func(t *testing.T) {
		c := valid
		c.ABN = "12345"
		assert.ErrorIs(t, ValidateCompany(&c), ErrMalformedABN)
	})

	t.Run("absent abn is fine", func(t *testing.T) {
		c := valid
		c.ABN = ""
		assert.NoError(t, ValidateCompany(&c))
	})

	t.Run("rating out of range", func(t *testing.T) {
		c := valid
		c.Rating = 5.1
		assert.ErrorIs(t, ValidateCompany(&c), ErrRatingOutOfRange)
	})
}

func TestIsValidABN(t *testing.T) {
	assert.True(t, IsValidABN("51824753556"))
	assert.False(t, IsValidABN("5182475355"))
	assert.False(t, IsValidABN("518247535567"))
	assert.False(t, IsValidABN("5182475355a"))
	assert.False(t, IsValidABN(""))
}
