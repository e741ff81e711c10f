package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = false

	output, err := captureOutput(t, func() error {
		return runInfo([]string{usbTestBlob(t)})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Entries: 2")
	assert.Contains(t, output, "usb")
	assert.Contains(t, output, "Bool")
	assert.Contains(t, output, "U32")
}

func TestInfoCommandJSON(t *testing.T) {
	quiet = false
	verbose = false
	jsonOut = true
	defer func() { jsonOut = false }()

	output, err := captureOutput(t, func() error {
		return runInfo([]string{usbTestBlob(t)})
	})
	require.NoError(t, err)

	var info struct {
		EntryCount int            `json:"entry_count"`
		Categories []string       `json:"categories"`
		TypeCounts map[string]int `json:"type_counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.Equal(t, 2, info.EntryCount)
	assert.Equal(t, []string{"usb"}, info.Categories)
	assert.Equal(t, 1, info.TypeCounts["Bool"])
}

func TestInfoCommandMissingFile(t *testing.T) {
	err := runInfo([]string{"/nonexistent/settings.bin"})
	require.Error(t, err)
}
