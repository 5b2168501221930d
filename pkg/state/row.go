package state

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A save row is the positional CSV encoding of a ShipState used by the save
// system: 25 scalar columns followed by the inventory column. Column order is
// fixed for the life of the save file format.
const RowColumns = 26

var (
	// ErrCorruptSaveRow is returned when a stored row has the wrong column
	// count or an unparseable scalar column.
	ErrCorruptSaveRow = errors.New("corrupt save row")

	// ErrCorruptInventoryEncoding is returned when only the trailing
	// inventory column of a row fails to parse. The scalar columns have
	// already been applied when this is returned.
	ErrCorruptInventoryEncoding = errors.New("corrupt inventory encoding")
)

// EncodeRow serializes the state into its save-row columns. Counterpart of
// ApplyRow.
func (s *ShipState) EncodeRow() []string {
	bools := []bool{
		s.HasBook, s.HasDave, s.SeenError, s.SeenBridge, s.SeenReadyRoom,
		s.SeenEngineering, s.SeenPanel, s.SeenFire, s.SeenOscar,
		s.SeenEscapePod, s.SeenDave, s.BeenBridge, s.BeenReadyRoom,
		s.BeenEngineering, s.PanelOpen, s.HatchOpen, s.KlaxonOn,
		s.ReadBook, s.AwareEngineering,
	}

	row := make([]string, 0, RowColumns)
	row = append(row, s.Location)
	for _, b := range bools {
		row = append(row, encodeBool(b))
	}
	row = append(row,
		s.BookLocation,
		s.DaveLocation,
		s.OscarLocation,
		strconv.Itoa(s.ActionCount),
		strconv.Itoa(s.ErrorCount),
		encodeInventory(s.Inventory),
	)
	return row
}

// ApplyRow restores the state from save-row columns. Scalar columns are
// parsed up front and applied atomically; an inventory parse failure leaves
// the scalars applied and returns ErrCorruptInventoryEncoding.
func (s *ShipState) ApplyRow(row []string) error {
	if len(row) != RowColumns {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrCorruptSaveRow, RowColumns, len(row))
	}

	bools := make([]bool, 19)
	for i := range bools {
		b, err := parseBool(row[1+i])
		if err != nil {
			return err
		}
		bools[i] = b
	}

	actionCount, err := strconv.Atoi(row[23])
	if err != nil {
		return fmt.Errorf("%w: action count %q", ErrCorruptSaveRow, row[23])
	}
	errorCount, err := strconv.Atoi(row[24])
	if err != nil {
		return fmt.Errorf("%w: error count %q", ErrCorruptSaveRow, row[24])
	}

	s.Location = row[0]
	s.HasBook, s.HasDave = bools[0], bools[1]
	s.SeenError, s.SeenBridge, s.SeenReadyRoom = bools[2], bools[3], bools[4]
	s.SeenEngineering, s.SeenPanel, s.SeenFire = bools[5], bools[6], bools[7]
	s.SeenOscar, s.SeenEscapePod, s.SeenDave = bools[8], bools[9], bools[10]
	s.BeenBridge, s.BeenReadyRoom, s.BeenEngineering = bools[11], bools[12], bools[13]
	s.PanelOpen, s.HatchOpen, s.KlaxonOn = bools[14], bools[15], bools[16]
	s.ReadBook, s.AwareEngineering = bools[17], bools[18]
	s.BookLocation = row[20]
	s.DaveLocation = row[21]
	s.OscarLocation = row[22]
	s.ActionCount = actionCount
	s.ErrorCount = errorCount

	inv, err := parseInventory(row[25])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptInventoryEncoding, err)
	}
	s.Inventory = inv
	return nil
}

func encodeBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseBool(tok string) (bool, error) {
	switch tok {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return false, fmt.Errorf("%w: boolean token %q", ErrCorruptSaveRow, tok)
	}
}

// encodeInventory renders the inventory as a bracketed, comma-separated list
// of single-quoted descriptors: ['+ DAVE', '+ A book...']. Descriptors are
// preserved verbatim, with embedded single quotes backslash-escaped.
func encodeInventory(items []string) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('\'')
		sb.WriteString(strings.ReplaceAll(item, "'", `\'`))
		sb.WriteByte('\'')
	}
	sb.WriteByte(']')
	return sb.String()
}

func parseInventory(col string) ([]string, error) {
	col = strings.TrimSpace(col)
	if len(col) < 2 || col[0] != '[' || col[len(col)-1] != ']' {
		return nil, fmt.Errorf("not a bracketed list: %q", col)
	}

	body := col[1 : len(col)-1]
	items := []string{}
	i := 0
	for i < len(body) {
		// Skip separator between items.
		for i < len(body) && (body[i] == ',' || body[i] == ' ') {
			i++
		}
		if i >= len(body) {
			break
		}
		if body[i] != '\'' {
			return nil, fmt.Errorf("expected quoted item at offset %d", i)
		}
		i++
		var sb strings.Builder
		closed := false
		for i < len(body) {
			c := body[i]
			if c == '\\' && i+1 < len(body) && body[i+1] == '\'' {
				sb.WriteByte('\'')
				i += 2
				continue
			}
			if c == '\'' {
				closed = true
				i++
				break
			}
			sb.WriteByte(c)
			i++
		}
		if !closed {
			return nil, fmt.Errorf("unterminated quoted item")
		}
		items = append(items, sb.String())
	}
	return items, nil
}
