package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stufflending/internal/domain"
)

func TestMemberRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository()

	alice := &domain.Member{ID: "AAAAAA", Name: "Alice", Email: "alice@example.com", Phone: "1234567890", Credits: decimal.NewFromInt(500)}
	require.NoError(t, repo.Create(ctx, alice))

	t.Run("Get Returns Copy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "AAAAAA")
		require.NoError(t, err)
		got.Credits = decimal.Zero

		again, err := repo.GetByID(ctx, "AAAAAA")
		require.NoError(t, err)
		assert.True(t, again.Credits.Equal(decimal.NewFromInt(500)))
	})

	t.Run("Get Trims Whitespace", func(t *testing.T) {
		got, err := repo.GetByID(ctx, " AAAAAA ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("Duplicate ID Rejected", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Member{ID: "AAAAAA", Name: "Impostor"})
		assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
	})

	t.Run("Update", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "AAAAAA")
		require.NoError(t, err)
		got.Credits = decimal.NewFromInt(350)
		require.NoError(t, repo.Update(ctx, got))

		again, err := repo.GetByID(ctx, "AAAAAA")
		require.NoError(t, err)
		assert.True(t, again.Credits.Equal(decimal.NewFromInt(350)))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "AAAAAA"))
		_, err := repo.GetByID(ctx, "AAAAAA")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "AAAAAA"), domain.ErrNotFound)
	})
}

func TestMemberRepository_IdentityInUse(t *testing.T) {
	ctx := context.Background()
	repo := NewMemberRepository()
	require.NoError(t, repo.Create(ctx, &domain.Member{ID: "AAAAAA", Name: "Alice", Email: "alice@example.com", Phone: "1234567890"}))

	t.Run("Email Match Is Case Insensitive", func(t *testing.T) {
		inUse, err := repo.IdentityInUse(ctx, "ALICE@Example.COM", "0000000000", "")
		require.NoError(t, err)
		assert.True(t, inUse)
	})

	t.Run("Phone Match", func(t *testing.T) {
		inUse, err := repo.IdentityInUse(ctx, "other@example.com", "1234567890", "")
		require.NoError(t, err)
		assert.True(t, inUse)
	})

	t.Run("Self Is Excluded", func(t *testing.T) {
		inUse, err := repo.IdentityInUse(ctx, "alice@example.com", "1234567890", "AAAAAA")
		require.NoError(t, err)
		assert.False(t, inUse)
	})

	t.Run("Free Identity", func(t *testing.T) {
		inUse, err := repo.IdentityInUse(ctx, "bob@example.com", "0987654321", "")
		require.NoError(t, err)
		assert.False(t, inUse)
	})
}

func TestItemRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewItemRepository()

	bike := &domain.Item{OwnerID: "AAAAAA", Name: "Bicycle", Description: "Mountain bike", Category: domain.ItemCategoryVehicle, CostPerDay: decimal.NewFromInt(50), Available: true}
	hammer := &domain.Item{OwnerID: "AAAAAA", Name: "Hammer", Description: "A sturdy hammer", Category: domain.ItemCategoryTool, CostPerDay: decimal.NewFromInt(10), Available: true}
	require.NoError(t, repo.Create(ctx, bike))
	require.NoError(t, repo.Create(ctx, hammer))

	t.Run("Sequential IDs", func(t *testing.T) {
		assert.Equal(t, 1, bike.ID)
		assert.Equal(t, 2, hammer.ID)
	})

	t.Run("List By Owner", func(t *testing.T) {
		owned, err := repo.ListByOwner(ctx, "AAAAAA")
		require.NoError(t, err)
		assert.Len(t, owned, 2)

		none, err := repo.ListByOwner(ctx, "BBBBBB")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("Get Returns Copy", func(t *testing.T) {
		got, err := repo.GetByID(ctx, bike.ID)
		require.NoError(t, err)
		got.Available = false

		again, err := repo.GetByID(ctx, bike.ID)
		require.NoError(t, err)
		assert.True(t, again.Available)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, hammer.ID))
		_, err := repo.GetByID(ctx, hammer.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// The freed ID is not reused.
		spade := &domain.Item{OwnerID: "AAAAAA", Name: "Spade", Description: "Garden spade", Category: domain.ItemCategoryTool, CostPerDay: decimal.NewFromInt(5), Available: true}
		require.NoError(t, repo.Create(ctx, spade))
		assert.Equal(t, 3, spade.ID)
	})
}
