package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NajatBouz/study-organizer/internal/model"
)

func TestRequireOwner(t *testing.T) {
	ownerID := uuid.New()
	contact := model.Contact{ID: uuid.New(), OwnerID: ownerID}

	t.Run("owner passes through", func(t *testing.T) {
		got, err := requireOwner(contact, nil, ownerID)
		require.NoError(t, err)
		assert.Equal(t, contact, got)
	})

	t.Run("foreign requester is forbidden", func(t *testing.T) {
		got, err := requireOwner(contact, nil, uuid.New())
		require.ErrorIs(t, err, model.ErrForbidden)
		assert.Zero(t, got)
	})

	t.Run("lookup error wins", func(t *testing.T) {
		got, err := requireOwner(model.Contact{}, model.ErrNotFound, ownerID)
		require.ErrorIs(t, err, model.ErrNotFound)
		assert.Zero(t, got)
	})
}
