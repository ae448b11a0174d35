package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *PathError
		expected []string
	}{
		{
			name: "single segment",
			err: &PathError{
				Kind:     ErrPathUnset,
				Path:     "greeting",
				Message:  MessageStringNotFound,
				Expected: expectedString,
			},
			expected: []string{
				"&m————————————————————————————————————",
				"&fConfiguration Error",
				"&m————————————————————————————————————",
				"&fError: String Not Found",
				"&fFile: config.yml",
				"&fPath: ",
				"&fgreeting: <- Expected [String ('your text here')]",
				"&m————————————————————————————————————",
			},
		},
		{
			name: "nested path",
			err: &PathError{
				Kind:     ErrTypeMismatch,
				Path:     "database.pool.size",
				Message:  MessageValueNotValid,
				Expected: expectedWholeNumber,
			},
			expected: []string{
				"&m————————————————————————————————————",
				"&fConfiguration Error",
				"&m————————————————————————————————————",
				"&fError: The value inputted at the current path is not valid.",
				"&fFile: config.yml",
				"&fPath: ",
				"&fdatabase:",
				"&f  pool:",
				"&f    size: <- Expected [Whole Number E.G. 1, 2, 3]",
				"&m————————————————————————————————————",
			},
		},
		{
			name: "trailing separators dropped",
			err: &PathError{
				Kind:     ErrPathUnset,
				Path:     "database.port..",
				Message:  MessageValueMissing,
				Expected: expectedWholeNumber,
			},
			expected: []string{
				"&m————————————————————————————————————",
				"&fConfiguration Error",
				"&m————————————————————————————————————",
				"&fError: The value expected at the current path is missing.",
				"&fFile: config.yml",
				"&fPath: ",
				"&fdatabase:",
				"&f  port: <- Expected [Whole Number E.G. 1, 2, 3]",
				"&m————————————————————————————————————",
			},
		},
		{
			name: "several expected values",
			err: &PathError{
				Kind:     ErrEmptyCollection,
				Path:     "messages.lore",
				Message:  MessageStringListNotFound,
				Expected: expectedStringList,
			},
			expected: []string{
				"&m————————————————————————————————————",
				"&fConfiguration Error",
				"&m————————————————————————————————————",
				"&fError: List of String Not Found",
				"&fFile: config.yml",
				"&fPath: ",
				"&fmessages:",
				"&f  lore: <- Expected ['line 1', 'line 2', 'line 3']",
				"&f   - 'line 1'",
				"&f   - 'line 2'",
				"&f   - 'line 3'",
				"&m————————————————————————————————————",
			},
		},
		{
			name: "url without expected values",
			err: &PathError{
				Kind:    ErrParseFailure,
				Path:    "effects.sound",
				Message: "Sound Not Found",
				URL:     "https://example.com/sounds",
			},
			expected: []string{
				"&m————————————————————————————————————",
				"&fConfiguration Error",
				"&m————————————————————————————————————",
				"&fError: Sound Not Found",
				"&fFile: config.yml",
				"&fPath: ",
				"&feffects:",
				"&f  sound: <- Expected []",
				"&bhttps://example.com/sounds &ffor more information",
				"&m————————————————————————————————————",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Diagnose("config.yml", tt.err))
		})
	}
}

func TestPathError_Unwrap(t *testing.T) {
	t.Parallel()

	var err error = &PathError{Kind: ErrTypeMismatch, Path: "a.b", Message: MessageValueNotValid}

	require.ErrorIs(t, err, ErrTypeMismatch)
	assert.False(t, errors.Is(err, ErrPathUnset))
	assert.Contains(t, err.Error(), `"a.b"`)

	var pathErr *PathError

	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "a.b", pathErr.Path)
}
