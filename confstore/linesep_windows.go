//go:build windows

package confstore

// LineSeparator joins continuation lines of multi-line values.
const LineSeparator = "\r\n"
