package state

import (
	"errors"
	"testing"
)

func TestEncodeRowRoundTrip(t *testing.T) {
	src := NewShipState()
	src.Location = LocationEngineering
	src.HasDave = true
	src.SeenOscar = true
	src.SeenDave = true
	src.PanelOpen = true
	src.KlaxonOn = false
	src.OscarLocation = LocationEscapePod
	src.ActionCount = 42
	src.ErrorCount = 7
	src.AddItem(ItemDave)

	row := src.EncodeRow()
	if len(row) != RowColumns {
		t.Fatalf("Expected %d columns, got %d", RowColumns, len(row))
	}

	dst := NewShipState()
	if err := dst.ApplyRow(row); err != nil {
		t.Fatalf("ApplyRow failed: %v", err)
	}

	if dst.Location != LocationEngineering {
		t.Errorf("Expected location %q, got %q", LocationEngineering, dst.Location)
	}
	if !dst.HasDave || !dst.SeenOscar || !dst.SeenDave || !dst.PanelOpen {
		t.Error("Boolean flags did not survive the round trip")
	}
	if dst.KlaxonOn {
		t.Error("Expected klaxon_on false after round trip")
	}
	if dst.OscarLocation != LocationEscapePod {
		t.Errorf("Expected OSCAR at %q, got %q", LocationEscapePod, dst.OscarLocation)
	}
	if dst.ActionCount != 42 || dst.ErrorCount != 7 {
		t.Errorf("Counters mismatch: got %d/%d", dst.ActionCount, dst.ErrorCount)
	}
	if len(dst.Inventory) != 2 || !dst.HasItem(ItemDave) || !dst.HasItem(ItemCleaningTools) {
		t.Errorf("Inventory mismatch: %v", dst.Inventory)
	}
}

func TestApplyRowWrongColumnCount(t *testing.T) {
	st := NewShipState()
	err := st.ApplyRow([]string{"bridge", "True"})
	if !errors.Is(err, ErrCorruptSaveRow) {
		t.Errorf("Expected ErrCorruptSaveRow, got %v", err)
	}
}

func TestApplyRowBadBooleanToken(t *testing.T) {
	row := NewShipState().EncodeRow()
	row[3] = "yes"

	st := NewShipState()
	if err := st.ApplyRow(row); !errors.Is(err, ErrCorruptSaveRow) {
		t.Errorf("Expected ErrCorruptSaveRow, got %v", err)
	}
}

func TestApplyRowBadCounters(t *testing.T) {
	row := NewShipState().EncodeRow()
	row[23] = "many"

	st := NewShipState()
	if err := st.ApplyRow(row); !errors.Is(err, ErrCorruptSaveRow) {
		t.Errorf("Expected ErrCorruptSaveRow, got %v", err)
	}
}

func TestApplyRowCorruptInventoryKeepsScalars(t *testing.T) {
	src := NewShipState()
	src.Location = LocationReadyRoom
	src.HasBook = true
	src.ActionCount = 9
	row := src.EncodeRow()
	row[25] = "not a list"

	dst := NewShipState()
	err := dst.ApplyRow(row)
	if !errors.Is(err, ErrCorruptInventoryEncoding) {
		t.Fatalf("Expected ErrCorruptInventoryEncoding, got %v", err)
	}

	// Scalar columns are applied before the inventory column parses.
	if dst.Location != LocationReadyRoom {
		t.Errorf("Expected scalars applied despite bad inventory, got location %q", dst.Location)
	}
	if !dst.HasBook || dst.ActionCount != 9 {
		t.Error("Expected scalar fields applied despite bad inventory")
	}
}

func TestInventoryEncodingEscapedQuotes(t *testing.T) {
	src := NewShipState()
	src.Inventory = []string{"+ DAVE's favorite rock", ItemCleaningTools}
	row := src.EncodeRow()

	dst := NewShipState()
	if err := dst.ApplyRow(row); err != nil {
		t.Fatalf("ApplyRow failed: %v", err)
	}
	if len(dst.Inventory) != 2 || dst.Inventory[0] != "+ DAVE's favorite rock" {
		t.Errorf("Quoted descriptor did not survive: %v", dst.Inventory)
	}
}

func TestApplyRowEmptyInventory(t *testing.T) {
	src := NewShipState()
	src.Inventory = nil
	row := src.EncodeRow()

	dst := NewShipState()
	if err := dst.ApplyRow(row); err != nil {
		t.Fatalf("ApplyRow failed: %v", err)
	}
	if len(dst.Inventory) != 0 {
		t.Errorf("Expected empty inventory, got %v", dst.Inventory)
	}
}
