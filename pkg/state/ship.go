package state

import (
	"time"

	"github.com/google/uuid"
)

// Rooms aboard the Orion. Location fields only ever hold one of these.
const (
	LocationBridge      = "bridge"
	LocationReadyRoom   = "readyroom"
	LocationEngineering = "engineering"
	LocationEscapePod   = "escapepod"
)

// Inventory descriptors. The "+ " prefix is part of the display string the
// client shows verbatim, so it is part of the descriptor.
const (
	ItemCleaningTools = "+ Miscellaneous cleansing tools and fluids"
	ItemBookUnread    = "+ A book -possibly about space rescues."
	ItemBookRead      = "+ A book: Pride and Prejudice by Jane Austen."
	ItemDave          = "+ DAVE"
)

// ShipState is the full per-session state of one rescue. It is owned by the
// session layer and handed to the dispatch engine for the duration of a turn.
type ShipState struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Location  string   `json:"location"`
	Inventory []string `json:"inventory"`

	HasBook bool `json:"has_book"`
	HasDave bool `json:"has_dave"`

	BookLocation  string `json:"book_location"`
	DaveLocation  string `json:"dave_location"`
	OscarLocation string `json:"oscar_location"`

	SeenError       bool `json:"seen_error"`
	SeenBridge      bool `json:"seen_bridge"`
	SeenReadyRoom   bool `json:"seen_readyroom"`
	SeenPanel       bool `json:"seen_panel"`
	SeenFire        bool `json:"seen_fire"`
	SeenEngineering bool `json:"seen_engineering"`
	SeenEscapePod   bool `json:"seen_escapepod"`
	SeenOscar       bool `json:"seen_oscar"`
	SeenDave        bool `json:"seen_dave"`

	BeenBridge      bool `json:"been_bridge"`
	BeenReadyRoom   bool `json:"been_readyroom"`
	BeenEngineering bool `json:"been_engineering"`

	PanelOpen        bool `json:"panel_open"`
	HatchOpen        bool `json:"hatch_open"`
	KlaxonOn         bool `json:"klaxon_on"`
	ReadBook         bool `json:"read_book"`
	AwareEngineering bool `json:"aware_engineering"`
	Launched         bool `json:"launched"`

	ActionCount int `json:"action_count"`
	ErrorCount  int `json:"error_count"`
}

// NewShipState returns a fresh session at the start of the rescue: the
// Cleanerbot is on the bridge with its cleaning kit, the klaxons are going,
// the book is in the ready room and DAVE and OSCAR are in engineering.
func NewShipState() *ShipState {
	now := time.Now()
	return &ShipState{
		ID:            uuid.New(),
		CreatedAt:     now,
		UpdatedAt:     now,
		Location:      LocationBridge,
		Inventory:     []string{ItemCleaningTools},
		BookLocation:  LocationReadyRoom,
		DaveLocation:  LocationEngineering,
		OscarLocation: LocationEngineering,
		BeenBridge:    true,
		KlaxonOn:      true,
	}
}

// AddItem appends a descriptor to the inventory if it is not already there.
func (s *ShipState) AddItem(item string) {
	for _, it := range s.Inventory {
		if it == item {
			return
		}
	}
	s.Inventory = append(s.Inventory, item)
}

// RemoveItem removes a descriptor from the inventory, preserving order.
func (s *ShipState) RemoveItem(item string) {
	for i, it := range s.Inventory {
		if it == item {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return
		}
	}
}

// HasItem reports whether a descriptor is currently carried.
func (s *ShipState) HasItem(item string) bool {
	for _, it := range s.Inventory {
		if it == item {
			return true
		}
	}
	return false
}
