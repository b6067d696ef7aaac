package confstore

import (
	"io"
	"iter"
	"slices"
	"strings"
)

// Section is a named group of keys.
type Section struct {
	name  string
	keys  []string
	slots map[string]Slot
}

func newSection(name string) *Section {
	return &Section{name: name, slots: make(map[string]Slot)}
}

// Name returns the trimmed section name.
func (s *Section) Name() string { return s.name }

// Len returns the number of keys in s.
func (s *Section) Len() int { return len(s.keys) }

// Lookup returns the slot stored for key.
func (s *Section) Lookup(key string) (Slot, bool) {
	slot, ok := s.slots[key]

	return slot, ok
}

// All returns an iterator over the keys of s in insertion order.
func (s *Section) All() iter.Seq2[string, Slot] {
	return func(yield func(string, Slot) bool) {
		for _, key := range s.keys {
			if !yield(key, s.slots[key]) {
				return
			}
		}
	}
}

// Keys returns the keys of s in insertion order.
func (s *Section) Keys() []string { return slices.Clone(s.keys) }

// set stores slot under key, returning the previous slot if one existed.
func (s *Section) set(key string, slot Slot) (Slot, bool) {
	prev, ok := s.slots[key]
	if !ok {
		s.keys = append(s.keys, key)
	}

	s.slots[key] = slot

	return prev, ok
}

// Document is a parsed configuration: sections of keys, each holding a
// [Slot]. Section and key names are case-sensitive.
//
// A Document is not safe for concurrent mutation.
type Document struct {
	order    []string
	sections map[string]*Section
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{sections: make(map[string]*Section)}
}

// Section returns the named section.
func (d *Document) Section(name string) (*Section, bool) {
	s, ok := d.sections[name]

	return s, ok
}

// Sections returns an iterator over section names in declaration order.
// A section declared more than once appears at its first position.
func (d *Document) Sections() iter.Seq[string] {
	return slices.Values(d.order)
}

// Keys returns an iterator over the keys of the named section in insertion
// order. It yields nothing if the section does not exist.
func (d *Document) Keys(section string) iter.Seq2[string, Slot] {
	s, ok := d.sections[section]
	if !ok {
		return func(func(string, Slot) bool) {}
	}

	return s.All()
}

// Lookup returns the slot stored for key in section.
func (d *Document) Lookup(section, key string) (Slot, bool) {
	s, ok := d.sections[section]
	if !ok {
		return Slot{}, false
	}

	return s.Lookup(key)
}

// Set stores slot under key in section, creating the section if needed.
// It returns the previous slot and whether one existed. No validation is
// performed on either name.
func (d *Document) Set(section, key string, slot Slot) (Slot, bool) {
	return d.open(section).set(key, slot)
}

// SetStr stores value under key in section. See [Document.Set].
func (d *Document) SetStr(section, key, value string) {
	d.Set(section, key, TextSlot(value))
}

// SetUnset declares key in section without a value. See [Document.Set].
func (d *Document) SetUnset(section, key string) {
	d.Set(section, key, UnsetSlot())
}

// open returns the named section, creating it if it does not exist.
func (d *Document) open(name string) *Section {
	s, ok := d.sections[name]
	if !ok {
		s = newSection(name)
		d.sections[name] = s
		d.order = append(d.order, name)
	}

	return s
}

// Format writes d in configuration syntax. Multi-line values are written as
// continuation lines split on sep.
//
// Values containing the comment character or blank continuation lines do not
// survive a round trip through [Parse].
func (d *Document) Format(w io.Writer, sep string) error {
	var sb strings.Builder

	for i, name := range d.order {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString("[ ")
		sb.WriteString(name)
		sb.WriteString(" ]\n")

		for key, slot := range d.sections[name].All() {
			sb.WriteString(key)

			switch slot.State() {
			case Unset:

			case Empty:
				sb.WriteString(" =")

			case Value:
				lines := []string{slot.Text()}
				if sep != "" {
					lines = strings.Split(slot.Text(), sep)
				}

				sb.WriteString(" = ")
				sb.WriteString(lines[0])

				for _, line := range lines[1:] {
					sb.WriteString("\n\t")
					sb.WriteString(line)
				}
			}

			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}
