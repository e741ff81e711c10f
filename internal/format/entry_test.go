package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/DarkMatterCore/nx-cfg-parser/internal/buf"
)

func makeRecord(name string, tag byte, size uint32, payloadArea []byte) []byte {
	b := make([]byte, EntryRecordSize)
	copy(b[EntryNameOffset:EntryNameOffset+EntryNameSize], name)
	b[EntryTypeOffset] = tag
	buf.PutU32LE(b[EntrySizeOffset:], size)
	copy(b[EntryPayloadOffset:], payloadArea)
	return b
}

func TestDecodeEntryRecord(t *testing.T) {
	rec, err := DecodeEntryRecord(makeRecord("usb!port_count", TagU32, 4, []byte{4, 0, 0, 0}))
	if err != nil {
		t.Fatalf("DecodeEntryRecord: %v", err)
	}
	if rec.Name() != "usb!port_count" {
		t.Fatalf("Name = %q", rec.Name())
	}
	if rec.TypeTag != TagU32 {
		t.Fatalf("TypeTag = 0x%02x", rec.TypeTag)
	}
	if rec.PayloadSize != 4 {
		t.Fatalf("PayloadSize = %d", rec.PayloadSize)
	}
}

func TestDecodeEntryRecordShort(t *testing.T) {
	_, err := DecodeEntryRecord(make([]byte, EntryRecordSize-1))
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated, got %v", err)
	}
}

func TestResolvePayloadInline(t *testing.T) {
	rec, _ := DecodeEntryRecord(makeRecord("a!b", TagU64, 8, []byte{1, 2, 3, 4, 5, 6, 7, 8}))
	payload, err := ResolvePayload(rec, nil)
	if err != nil {
		t.Fatalf("ResolvePayload: %v", err)
	}
	if !bytes.Equal(payload, []byte{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Fatalf("payload = %x", payload)
	}
}

func TestResolvePayloadInlineWidthMismatch(t *testing.T) {
	rec, _ := DecodeEntryRecord(makeRecord("a!b", TagU32, 3, []byte{1, 2, 3, 0}))
	_, err := ResolvePayload(rec, nil)
	if !errors.Is(err, ErrPayloadLengthMismatch) {
		t.Fatalf("want ErrPayloadLengthMismatch, got %v", err)
	}
}

func TestResolvePayloadReferenced(t *testing.T) {
	region := []byte("....hello\x00")
	area := make([]byte, EntryPayloadAreaSize)
	buf.PutU32LE(area, 4)
	rec, _ := DecodeEntryRecord(makeRecord("a!b", TagString, 6, area))
	payload, err := ResolvePayload(rec, region)
	if err != nil {
		t.Fatalf("ResolvePayload: %v", err)
	}
	if !bytes.Equal(payload, []byte("hello\x00")) {
		t.Fatalf("payload = %q", payload)
	}
}

func TestResolvePayloadReferencedExactEnd(t *testing.T) {
	// A payload ending exactly at the end of the region succeeds; one byte
	// beyond fails.
	region := []byte{0xaa, 0xbb, 0xcc, 0xdd}
	area := make([]byte, EntryPayloadAreaSize)
	buf.PutU32LE(area, 2)

	rec, _ := DecodeEntryRecord(makeRecord("a!b", TagHexBlob, 2, area))
	if _, err := ResolvePayload(rec, region); err != nil {
		t.Fatalf("exact-end payload should succeed: %v", err)
	}

	rec, _ = DecodeEntryRecord(makeRecord("a!b", TagHexBlob, 3, area))
	if _, err := ResolvePayload(rec, region); !errors.Is(err, ErrTruncated) {
		t.Fatalf("want ErrTruncated one byte past the region, got %v", err)
	}
}

func TestResolvePayloadUnknownTag(t *testing.T) {
	rec, _ := DecodeEntryRecord(makeRecord("a!b", 0xFF, 1, []byte{1}))
	_, err := ResolvePayload(rec, nil)
	if !errors.Is(err, ErrUnknownTypeTag) {
		t.Fatalf("want ErrUnknownTypeTag, got %v", err)
	}
}

func TestResolvePayloadCopies(t *testing.T) {
	region := []byte{1, 2, 3, 4}
	area := make([]byte, EntryPayloadAreaSize)
	rec, _ := DecodeEntryRecord(makeRecord("a!b", TagHexBlob, 4, area))
	payload, err := ResolvePayload(rec, region)
	if err != nil {
		t.Fatalf("ResolvePayload: %v", err)
	}
	region[0] = 0xff
	if payload[0] != 1 {
		t.Fatalf("payload aliases the source buffer")
	}
}

func TestLookupTagClosure(t *testing.T) {
	for tag := byte(TagString); tag <= TagHexBlob; tag++ {
		if _, ok := LookupTag(tag); !ok {
			t.Fatalf("tag 0x%02x should be known", tag)
		}
	}
	for _, tag := range []byte{0x00, 0x07, 0x7f, 0xff} {
		if _, ok := LookupTag(tag); ok {
			t.Fatalf("tag 0x%02x should be unknown", tag)
		}
	}
}
