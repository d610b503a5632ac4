package entity

import "github.com/google/uuid"

// ScanType is the category a scannable object reports to the scanner UI.
type ScanType uint8

const (
	ScanTypeItem ScanType = iota
	ScanTypeEnvironment
	ScanTypeEnemy
	ScanTypeHazard
	ScanTypeInteractive
	ScanTypeQuest
	ScanTypeUnknown
)

func (t ScanType) String() string {
	switch t {
	case ScanTypeItem:
		return "item"
	case ScanTypeEnvironment:
		return "environment"
	case ScanTypeEnemy:
		return "enemy"
	case ScanTypeHazard:
		return "hazard"
	case ScanTypeInteractive:
		return "interactive"
	case ScanTypeQuest:
		return "quest"
	}
	return "unknown"
}

// Scannable is implemented by objects that react to being discovered by a scanner sweep.
type Scannable interface {
	// OnScanned is called once per sweep that discovers the object.
	OnScanned()
	// ScanInfo returns a short description shown to the player.
	ScanInfo() string
	ScanType() ScanType
}

// Pickupable is implemented by objects an actor can hold.
type Pickupable interface {
	Name() string
	// CanBePickedUp returns false while the object is unavailable, for example while
	// it is already held.
	CanBePickedUp() bool
	// PickUp is called when the actor with the id passed takes the object.
	PickUp(actor uuid.UUID)
	// Release is called when the holder drops or throws the object.
	Release()
}

// Throwable is implemented by pickupables that do something when thrown.
type Throwable interface {
	Pickupable
	// OnThrown is called after the object left the holder's hand. It returns the radius
	// of the noise the impact makes, or 0 for none.
	OnThrown() float32
}

// Consumable is implemented by pickupables that are used up by the holder.
type Consumable interface {
	Pickupable
	// Consume uses up the object and returns the amount of health it restores.
	Consume() float32
}

// Energizer is implemented by consumables that also restore stamina.
type Energizer interface {
	Consumable
	StaminaRestore() float32
}
