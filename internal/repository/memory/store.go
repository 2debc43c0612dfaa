// Package memory provides the in-memory repository implementations. All
// state is process-lifetime only and is discarded on exit. Each store guards
// its map with a mutex so the single-writer semantics of the interactive
// session survive incidental concurrent use (the optional auto-advance
// scheduler runs on a cron goroutine).
package memory

import "stufflending/internal/repository"

// Store bundles all repositories the services need.
type Store struct {
	MemberRepository   repository.MemberRepository
	ItemRepository     repository.ItemRepository
	ContractRepository repository.ContractRepository
}

// NewStore creates a fresh, empty set of in-memory repositories.
func NewStore() *Store {
	return &Store{
		MemberRepository:   NewMemberRepository(),
		ItemRepository:     NewItemRepository(),
		ContractRepository: NewContractRepository(),
	}
}
