package entity

import (
	"sort"

	"github.com/samdwyer/cavecrawler/internal/world"
)

// Stack is a quantity of one item.
type Stack struct {
	Item  world.Item `json:"item"`
	Count int        `json:"count"`
}

// Inventory counts the items a player carries.
type Inventory struct {
	items map[world.Item]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{items: make(map[world.Item]int)}
}

// Add puts n of item into the inventory. Non-positive n is ignored.
func (inv *Inventory) Add(item world.Item, n int) {
	if n <= 0 {
		return
	}
	inv.items[item] += n
}

// Remove takes n of item out and reports whether there were enough.
// Nothing is removed when there are not.
func (inv *Inventory) Remove(item world.Item, n int) bool {
	if n <= 0 || !inv.Has(item, n) {
		return false
	}
	inv.items[item] -= n
	if inv.items[item] == 0 {
		delete(inv.items, item)
	}
	return true
}

// Count returns how many of item are held.
func (inv *Inventory) Count(item world.Item) int {
	return inv.items[item]
}

// Has reports whether at least n of item are held.
func (inv *Inventory) Has(item world.Item, n int) bool {
	return inv.items[item] >= n
}

// Stacks returns the held items sorted by name.
func (inv *Inventory) Stacks() []Stack {
	stacks := make([]Stack, 0, len(inv.items))
	for item, n := range inv.items {
		stacks = append(stacks, Stack{Item: item, Count: n})
	}
	sort.Slice(stacks, func(i, j int) bool {
		return stacks[i].Item < stacks[j].Item
	})
	return stacks
}
