// Package confstore parses and stores lightfetch configuration files.
//
// The configuration language is line oriented:
//
//	# comment
//	[ GENERAL ]
//	auto center = true
//	bare key
//	text = first line
//		continued line
//
// [Parse] builds a [Document] from text. Every key holds a [Slot] that is
// either [Unset] (declared without a delimiter), [Empty] or a [Value]. The
// typed accessors [Document.GetStr], [Document.GetBool], [Document.GetInt]
// and [Document.GetFilter] return an *[Error] whose [Kind] identifies the
// failure. Lookup and type errors suggest the closest known name.
//
// A [Store] loads documents from an afero filesystem, writing the embedded
// [Default] configuration first if the file does not exist.
package confstore
