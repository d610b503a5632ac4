package interact

import (
	"github.com/oomph-ac/scout/entity"
	"github.com/oomph-ac/scout/world"
)

// Slot is one inventory slot. Body is the world body the item had before it was picked
// up, so it can be put back into the world when the item leaves the inventory.
type Slot struct {
	Handle world.Handle
	Item   entity.Pickupable
	Body   world.Body
}

// Empty returns true if the slot holds nothing.
func (s Slot) Empty() bool {
	return s.Item == nil
}

// Inventory is a fixed amount of item slots with one selected slot. The item in the
// selected slot is the held item.
type Inventory struct {
	slots    []Slot
	selected int
}

// NewInventory returns an inventory with n slots. n is at least 1.
func NewInventory(n int) *Inventory {
	return &Inventory{slots: make([]Slot, max(n, 1))}
}

// Size returns the amount of slots.
func (inv *Inventory) Size() int {
	return len(inv.slots)
}

// Select selects the slot at index i. Out of range indices are ignored and false is
// returned.
func (inv *Inventory) Select(i int) bool {
	if i < 0 || i >= len(inv.slots) {
		return false
	}
	inv.selected = i
	return true
}

// Selected returns the index of the selected slot.
func (inv *Inventory) Selected() int {
	return inv.selected
}

// Held returns the slot currently held, if it is not empty.
func (inv *Inventory) Held() (Slot, bool) {
	s := inv.slots[inv.selected]
	return s, !s.Empty()
}

// Slot returns the slot at index i.
func (inv *Inventory) Slot(i int) (Slot, bool) {
	if i < 0 || i >= len(inv.slots) {
		return Slot{}, false
	}
	return inv.slots[i], true
}

// put places s in the selected slot. It fails if the slot is occupied.
func (inv *Inventory) put(s Slot) bool {
	if !inv.slots[inv.selected].Empty() {
		return false
	}
	inv.slots[inv.selected] = s
	return true
}

// take empties the selected slot and returns what it held.
func (inv *Inventory) take() (Slot, bool) {
	s, ok := inv.Held()
	if ok {
		inv.slots[inv.selected] = Slot{}
	}
	return s, ok
}

// Items returns every occupied slot.
func (inv *Inventory) Items() []Slot {
	var items []Slot
	for _, s := range inv.slots {
		if !s.Empty() {
			items = append(items, s)
		}
	}
	return items
}
