// Package settings decodes a firmware system-settings table blob into typed
// entries and renders them as deterministic INI-style text.
//
// The pipeline has two pure stages. Decode walks the binary entry table and
// produces an ordered []Entry; Render groups the entries into sections by
// category and formats each value per its type tag. Both stages are free of
// I/O and shared state, so concurrent calls with independent inputs are safe.
//
//	data, _ := os.ReadFile("system_settings.bin")
//	text, err := settings.Dump(data, settings.RenderOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(text)
//
// Decode is all-or-nothing: the first malformed entry fails the whole call
// and no partial result is returned. Errors are classified by the sentinel
// values ErrTruncated, ErrUnknownTypeTag, ErrMalformedEntryName and
// ErrPayloadLengthMismatch, matched with errors.Is.
package settings
