package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sound string

const soundsURL = "https://example.com/sounds"

func sounds() Vocabulary[sound] {
	return VocabularyOf("Sound", soundsURL, sound("ENTITY_PLAYER_LEVELUP"), sound("BLOCK_NOTE_BLOCK_PLING"))
}

const enumYAML = `
effects:
  success: ENTITY_PLAYER_LEVELUP
  failure: NOT_A_SOUND
  nested:
    key: value
`

func TestGetEnum(t *testing.T) {
	t.Parallel()

	entry, rec := newTestEntry(t, enumYAML)

	value, ok := GetEnum(entry, "effects.success", sounds())
	assert.True(t, ok)
	assert.Equal(t, sound("ENTITY_PLAYER_LEVELUP"), value)

	_, ok = GetEnum(entry, "effects.missing", sounds())
	assert.False(t, ok)

	_, ok = GetEnum(entry, "effects.nested", sounds())
	assert.False(t, ok)
	assert.Empty(t, rec.blocks, "unreadable strings are not reported")

	value, ok = GetEnum(entry, "effects.failure", sounds())
	assert.False(t, ok)
	assert.Empty(t, value)
	require.Len(t, rec.blocks, 1)
	assert.Equal(t, "&fError: Sound Not Found", rec.blocks[0][3])
	assert.Equal(t, "&f  failure: <- Expected []", rec.blocks[0][7])
	assert.Equal(t, "&b"+soundsURL+" &ffor more information", rec.blocks[0][8])
}

func TestGetEnumSilent(t *testing.T) {
	t.Parallel()

	entry, rec := newTestEntry(t, enumYAML)

	value, ok := GetEnumSilent(entry, "effects.success", sounds())
	assert.True(t, ok)
	assert.Equal(t, sound("ENTITY_PLAYER_LEVELUP"), value)

	_, ok = GetEnumSilent(entry, "effects.failure", sounds())
	assert.False(t, ok)

	_, ok = GetEnumSilent(entry, "effects.nested", sounds())
	assert.False(t, ok)
	assert.Empty(t, rec.blocks)
}

func TestMatchEnum(t *testing.T) {
	t.Parallel()

	entry, rec := newTestEntry(t, enumYAML)

	value, ok := MatchEnum(entry, "effects.success", sounds())
	assert.True(t, ok)
	assert.Equal(t, sound("ENTITY_PLAYER_LEVELUP"), value)

	_, ok = MatchEnum(entry, "effects.missing", sounds())
	assert.False(t, ok)

	_, ok = MatchEnum(entry, "effects.failure", sounds())
	assert.False(t, ok)
	assert.Empty(t, rec.blocks, "unset paths and unknown names are silent")

	_, ok = MatchEnum(entry, "effects.nested", sounds())
	assert.False(t, ok)
	require.Len(t, rec.blocks, 1)
	assert.Equal(t, "&fError: String Not Found", rec.blocks[0][3])
}

func TestVocabulary_CustomMatch(t *testing.T) {
	t.Parallel()

	entry, _ := newTestEntry(t, "material: diamond_sword\n")

	materials := Vocabulary[string]{
		Name: "Material",
		Match: func(text string) (string, bool) {
			upper := strings.ToUpper(text)

			return upper, upper == "DIAMOND_SWORD"
		},
	}

	value, ok := GetEnum(entry, "material", materials)
	assert.True(t, ok)
	assert.Equal(t, "DIAMOND_SWORD", value)
}
