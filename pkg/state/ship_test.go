package state

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewShipStateDefaults(t *testing.T) {
	st := NewShipState()

	if st.ID == uuid.Nil {
		t.Error("Expected non-nil session ID")
	}
	if st.CreatedAt.IsZero() || st.UpdatedAt.IsZero() {
		t.Error("Expected timestamps to be set")
	}
	if st.Location != LocationBridge {
		t.Errorf("Expected start on bridge, got %q", st.Location)
	}
	if !st.HasItem(ItemCleaningTools) {
		t.Error("Expected cleaning tools in starting inventory")
	}
	if st.BookLocation != LocationReadyRoom {
		t.Errorf("Expected book in ready room, got %q", st.BookLocation)
	}
	if st.DaveLocation != LocationEngineering || st.OscarLocation != LocationEngineering {
		t.Errorf("Expected DAVE and OSCAR in engineering, got %q/%q", st.DaveLocation, st.OscarLocation)
	}
	if !st.BeenBridge {
		t.Error("Expected been_bridge true at start")
	}
	if !st.KlaxonOn {
		t.Error("Expected klaxon sounding at start")
	}
	if st.Launched {
		t.Error("Expected launched false at start")
	}
	if st.ActionCount != 0 || st.ErrorCount != 0 {
		t.Errorf("Expected zero counters, got %d/%d", st.ActionCount, st.ErrorCount)
	}
}

func TestInventoryOperations(t *testing.T) {
	st := NewShipState()

	st.AddItem(ItemDave)
	if !st.HasItem(ItemDave) {
		t.Error("Expected DAVE in inventory after AddItem")
	}

	// Adding twice must not duplicate.
	st.AddItem(ItemDave)
	count := 0
	for _, item := range st.Inventory {
		if item == ItemDave {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected one DAVE entry, got %d", count)
	}

	st.RemoveItem(ItemDave)
	if st.HasItem(ItemDave) {
		t.Error("Expected DAVE removed from inventory")
	}

	// Removing something absent is a no-op.
	st.RemoveItem(ItemBookRead)
	if !st.HasItem(ItemCleaningTools) {
		t.Error("RemoveItem of absent item disturbed the inventory")
	}
}
