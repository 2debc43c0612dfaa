package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stufflending/internal/domain"
	"stufflending/internal/repository/memory"
)

func TestSeeder_Seed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	memberSvc := NewMemberService(store.MemberRepository, store.ItemRepository, decimal.NewFromInt(100))
	contractSvc := NewContractService(store.ContractRepository, store.ItemRepository, store.MemberRepository)
	itemSvc := NewItemService(store.ItemRepository, store.MemberRepository, store.ContractRepository, fixedClock{})

	require.NoError(t, NewSeeder(memberSvc, itemSvc, contractSvc).Seed(ctx))

	members, err := store.MemberRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)

	byName := make(map[string]domain.Member, len(members))
	for _, m := range members {
		byName[m.Name] = m
	}
	assert.True(t, byName["Alice"].Credits.Equal(decimal.NewFromInt(500)))
	assert.True(t, byName["Bob"].Credits.Equal(decimal.NewFromInt(100)))
	assert.True(t, byName["Charlie"].Credits.Equal(decimal.NewFromInt(100)))

	items, err := store.ItemRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bicycle", items[0].Name)
	assert.True(t, items[0].Available)
	assert.Equal(t, "Hammer", items[1].Name)
	assert.False(t, items[1].Available, "the seeded contract rents the hammer")

	contracts, err := store.ContractRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	c := contracts[0]
	assert.Equal(t, items[1].ID, c.ItemID)
	assert.Equal(t, byName["Charlie"].ID, c.RenterID)
	assert.Equal(t, 5, c.StartDay)
	assert.Equal(t, 7, c.EndDay)
	assert.Equal(t, domain.ContractStatusActive, c.Status)
	assert.True(t, c.TotalCost.Equal(decimal.NewFromInt(30)))
}

func TestSeededContractSettlesOnDaySeven(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	memberSvc := NewMemberService(store.MemberRepository, store.ItemRepository, decimal.NewFromInt(100))
	contractSvc := NewContractService(store.ContractRepository, store.ItemRepository, store.MemberRepository)
	itemSvc := NewItemService(store.ItemRepository, store.MemberRepository, store.ContractRepository, fixedClock{})
	require.NoError(t, NewSeeder(memberSvc, itemSvc, contractSvc).Seed(ctx))

	settlement := NewSettlementService(store.ContractRepository, store.ItemRepository, store.MemberRepository)
	require.NoError(t, settlement.ProcessDueContracts(ctx, 7))

	members, err := store.MemberRepository.List(ctx)
	require.NoError(t, err)
	for _, m := range members {
		switch m.Name {
		case "Alice":
			assert.True(t, m.Credits.Equal(decimal.NewFromInt(530)), "owner got 3 days * 10")
		case "Charlie":
			assert.True(t, m.Credits.Equal(decimal.NewFromInt(70)))
		case "Bob":
			assert.True(t, m.Credits.Equal(decimal.NewFromInt(100)))
		}
	}
}
