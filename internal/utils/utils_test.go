package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSanitizeFilename tests the SanitizeFilename function.
func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain filename",
			input:    "move.mp3",
			expected: "move.mp3",
		},
		{
			name:     "invalid characters replaced",
			input:    `ca<pture>:knight?.wav`,
			expected: "ca_pture__knight_.wav",
		},
		{
			name:     "path separators replaced",
			input:    "a/b\\c.ogg",
			expected: "a_b_c.ogg",
		},
		{
			name:     "windows reserved name",
			input:    "CON.mp3",
			expected: "_CON.mp3",
		},
		{
			name:     "windows reserved name lowercase",
			input:    "aux.wav",
			expected: "_aux.wav",
		},
		{
			name:     "trailing dots trimmed",
			input:    "check...",
			expected: "check",
		},
		{
			name:     "only invalid characters",
			input:    "???",
			expected: "___",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

// TestHasAudioExtension tests the HasAudioExtension function.
func TestHasAudioExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "mp3",
			input:    "move.mp3",
			expected: true,
		},
		{
			name:     "uppercase extension",
			input:    "CAPTURE.WAV",
			expected: true,
		},
		{
			name:     "mixed case",
			input:    "castle.FlAc",
			expected: true,
		},
		{
			name:     "m4a",
			input:    "promotion.m4a",
			expected: true,
		},
		{
			name:     "no extension",
			input:    "audio",
			expected: false,
		},
		{
			name:     "unrelated extension",
			input:    "cover.jpg",
			expected: false,
		},
		{
			name:     "extension not at the end",
			input:    "move.mp3.txt",
			expected: false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, HasAudioExtension(tt.input))
		})
	}
}

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "text html",
			input:    "text/html",
			expected: true,
		},
		{
			name:     "text html with utf-8 charset",
			input:    "text/html; charset=utf-8",
			expected: true,
		},
		{
			name:     "application json",
			input:    "application/json",
			expected: true,
		},
		{
			name:     "binary audio",
			input:    "audio/mpeg",
			expected: false,
		},
		{
			name:     "octet stream",
			input:    "application/octet-stream",
			expected: false,
		},
		{
			name:     "text with exotic charset",
			input:    "text/html; charset=windows-1251",
			expected: false,
		},
		{
			name:     "invalid content type",
			input:    "not a content type;;;",
			expected: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.input))
		})
	}
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	input := []string{"move", "capture", "castle"}
	result := Map(input, func(v string) int { return len(v) })

	assert.Equal(t, []int{4, 7, 6}, result)
}

// TestMapEmptySlice tests that Map preserves emptiness.
func TestMapEmptySlice(t *testing.T) {
	t.Parallel()

	result := Map([]int{}, func(v int) int { return v * 2 })
	assert.Empty(t, result)
}
