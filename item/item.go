// Package item implements the small objects an actor can scan, pick up, throw and consume.
package item

import (
	"github.com/google/uuid"
	"github.com/oomph-ac/scout/entity"
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// base carries the state every item shares. Items may be scanned by several actors
// ticking concurrently, so all of it is guarded.
type base struct {
	name     string
	info     string
	scanType entity.ScanType

	scans atomic.Int32

	mu     deadlock.Mutex
	held   bool
	holder uuid.UUID
}

// Name ...
func (b *base) Name() string {
	return b.name
}

// OnScanned ...
func (b *base) OnScanned() {
	b.scans.Inc()
}

// ScanInfo ...
func (b *base) ScanInfo() string {
	return b.info
}

// ScanType ...
func (b *base) ScanType() entity.ScanType {
	return b.scanType
}

// Scans returns the amount of times the item was discovered by a scan.
func (b *base) Scans() int {
	return int(b.scans.Load())
}

// CanBePickedUp ...
func (b *base) CanBePickedUp() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return !b.held
}

// PickUp ...
func (b *base) PickUp(actor uuid.UUID) {
	b.mu.Lock()
	b.held, b.holder = true, actor
	b.mu.Unlock()
}

// Release ...
func (b *base) Release() {
	b.mu.Lock()
	b.held, b.holder = false, uuid.Nil
	b.mu.Unlock()
}

// Holder returns the id of the actor holding the item.
func (b *base) Holder() (uuid.UUID, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.holder, b.held
}
