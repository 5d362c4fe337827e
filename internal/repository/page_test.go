package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Run("should fail negative offset", func(t *testing.T) {
		// given
		offset, limit := -1, 10

		// when
		page, err := NewPage(offset, limit)

		// then
		assert.True(t, errors.Is(err, ErrNegativeOffset))
		assert.Zero(t, page)
	})

	t.Run("should fail negative limit", func(t *testing.T) {
		// given
		offset, limit := 0, -5

		// when
		page, err := NewPage(offset, limit)

		// then
		assert.True(t, errors.Is(err, ErrNegativeLimit))
		assert.Zero(t, page)
	})

	t.Run("should succeed", func(t *testing.T) {
		// given
		offset, limit := 30, 15

		// when
		page, err := NewPage(offset, limit)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 30, page.Offset)
		assert.Equal(t, 15, page.Limit)
	})

	t.Run("should keep explicit zero limit", func(t *testing.T) {
		// given
		offset, limit := 0, 0

		// when
		page, err := NewPage(offset, limit)

		// then
		assert.NoError(t, err)
		assert.Equal(t, 0, page.Limit)
	})
}
