package confstore

// State distinguishes a key declared bare from a key assigned an empty value.
type State uint8

const (
	// Unset is a key declared without a delimiter, such as "verbose".
	Unset State = iota
	// Empty is a key whose delimiter is followed by nothing, such as "gap =".
	Empty
	// Value is a key holding non-empty text.
	Value
)

func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case Empty:
		return "empty"
	case Value:
		return "value"
	default:
		return "invalid"
	}
}

// Slot is the value stored for one key.
// The zero Slot is [Unset].
type Slot struct {
	state State
	text  string
}

// UnsetSlot returns a slot for a key declared without a value.
func UnsetSlot() Slot { return Slot{state: Unset} }

// TextSlot returns a slot holding text, or an [Empty] slot if text is empty.
func TextSlot(text string) Slot {
	if text == "" {
		return Slot{state: Empty}
	}

	return Slot{state: Value, text: text}
}

// State reports which of the three states s is in.
func (s Slot) State() State { return s.state }

// Text returns the raw text of s, including any double quotes.
// An [Unset] or [Empty] slot returns "".
func (s Slot) Text() string { return s.text }

// IsUnset reports whether s was declared without a value.
func (s Slot) IsUnset() bool { return s.state == Unset }

// continued returns s extended by a continuation line. The separator is
// always inserted, so continuing an Unset or Empty slot yields sep+line.
func (s Slot) continued(sep, line string) Slot {
	return Slot{state: Value, text: s.text + sep + line}
}
