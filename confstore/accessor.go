package confstore

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
)

// GetStr returns the value of key in section with every double quote
// removed. An [Empty] value reads as "".
func (d *Document) GetStr(section, key string) (string, error) {
	s, ok := d.sections[section]
	if !ok {
		return "", ErrSectionNotFound.
			Detail(section).
			Suggest(section, d.order).
			With(slog.String("section", section), slog.String("key", key))
	}

	slot, ok := s.Lookup(key)
	if !ok {
		return "", ErrKeyNotFound.
			Detail(section + "." + key).
			Suggest(key, s.keys).
			With(slog.String("section", section), slog.String("key", key))
	}

	if slot.IsUnset() {
		return "", ErrKeyHasNoValue.
			Detail(section + "." + key).
			With(slog.String("section", section), slog.String("key", key))
	}

	return strings.ReplaceAll(slot.Text(), `"`, ""), nil
}

// GetBool returns the value of key in section parsed as exactly "true" or
// "false".
func (d *Document) GetBool(section, key string) (bool, error) {
	value, err := d.GetStr(section, key)
	if err != nil {
		return false, err
	}

	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}

	return false, ErrNotABoolean.
		Detail(strconv.Quote(value)).
		Suggest(value, []string{"true", "false"}).
		With(
			slog.String("section", section),
			slog.String("key", key),
			slog.String("value", value),
		)
}

// GetInt returns the value of key in section parsed as an unsigned 32-bit
// decimal integer. A single leading plus sign is allowed.
func (d *Document) GetInt(section, key string) (uint32, error) {
	value, err := d.GetStr(section, key)
	if err != nil {
		return 0, err
	}

	n, perr := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 32)
	if perr != nil {
		return 0, ErrNotAnInteger.
			Detail(strconv.Quote(value)).
			Wrap(perr).
			With(
				slog.String("section", section),
				slog.String("key", key),
				slog.String("value", value),
			)
	}

	return uint32(n), nil
}

// GetFilter returns the value of key in section parsed as a [Filter] name.
func (d *Document) GetFilter(section, key string) (Filter, error) {
	value, err := d.GetStr(section, key)
	if err != nil {
		return FilterNearest, err
	}

	f, ok := ParseFilter(value)
	if !ok {
		names := FilterNames()

		return FilterNearest, ErrUnknownFilterName.
			Detail(strconv.Quote(value) + "; available: " + strings.Join(names, ", ")).
			Suggest(value, names).
			With(
				slog.String("section", section),
				slog.String("key", key),
				slog.String("value", value),
			)
	}

	return f, nil
}

// StrOr returns the string value of key in section, or def if it cannot be
// read. The lookup error, if any, is returned alongside def so the caller
// can log it.
func (d *Document) StrOr(section, key, def string) (string, error) {
	v, err := d.GetStr(section, key)
	if err != nil {
		return def, err
	}

	return v, nil
}

// BoolOr is the boolean counterpart of [Document.StrOr].
func (d *Document) BoolOr(section, key string, def bool) (bool, error) {
	v, err := d.GetBool(section, key)
	if err != nil {
		return def, err
	}

	return v, nil
}

// IntOr is the integer counterpart of [Document.StrOr].
func (d *Document) IntOr(section, key string, def uint32) (uint32, error) {
	v, err := d.GetInt(section, key)
	if err != nil {
		return def, err
	}

	return v, nil
}

// SectionNames returns the section names of d in declaration order.
func (d *Document) SectionNames() []string { return slices.Clone(d.order) }
