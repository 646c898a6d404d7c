package keeper

import (
	"sync"

	"cosmossdk.io/math"
	"github.com/google/btree"
)

const btreeDegree = 32

// askItem wraps a listing reference for use in btree.
// Implements btree.Item interface
type askItem struct {
	price math.LegacyDec
	index uint64
}

// Less implements btree.Item interface - ascending by price, index breaks ties
func (a *askItem) Less(b btree.Item) bool {
	other := b.(*askItem)
	if a.price.Equal(other.price) {
		return a.index < other.index
	}
	return a.price.LT(other.price)
}

// askBook is an in-memory price-ordered index of active listings, one
// tree per pool. Listings themselves live in the store; the book only
// answers best-ask queries without a full scan.
type askBook struct {
	mu    sync.RWMutex
	trees map[string]*btree.BTree
}

func newAskBook() *askBook {
	return &askBook{trees: map[string]*btree.BTree{}}
}

// Insert adds a listing to the pool's ask tree
func (b *askBook) Insert(poolID string, price math.LegacyDec, index uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tree, ok := b.trees[poolID]
	if !ok {
		tree = btree.New(btreeDegree)
		b.trees[poolID] = tree
	}
	tree.ReplaceOrInsert(&askItem{price: price, index: index})
}

// Remove deletes a listing from the pool's ask tree
func (b *askBook) Remove(poolID string, price math.LegacyDec, index uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tree, ok := b.trees[poolID]
	if !ok {
		return
	}
	tree.Delete(&askItem{price: price, index: index})
	if tree.Len() == 0 {
		delete(b.trees, poolID)
	}
}

// Best returns the index of the cheapest listing for a pool
func (b *askBook) Best(poolID string) (uint64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tree, ok := b.trees[poolID]
	if !ok || tree.Len() == 0 {
		return 0, false
	}
	item := tree.Min()
	if item == nil {
		return 0, false
	}
	return item.(*askItem).index, true
}

// Len returns the number of active listings for a pool
func (b *askBook) Len(poolID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	tree, ok := b.trees[poolID]
	if !ok {
		return 0
	}
	return tree.Len()
}

// Clear drops every tree, ahead of a rebuild from the store
func (b *askBook) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trees = map[string]*btree.BTree{}
}
