package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraits_UnmarshalKeepsNonStringMembers(t *testing.T) {
	var traits Traits
	require.NoError(t, json.Unmarshal([]byte(`["quirky", 1, true, null, { "a" : [1, 2] }]`), &traits))

	require.Len(t, traits, 5)
	text, ok := traits[0].Text()
	assert.True(t, ok)
	assert.Equal(t, "quirky", text)
	for _, member := range traits[1:] {
		_, ok := member.Text()
		assert.False(t, ok)
	}
	assert.Equal(t, []string{"quirky", "1", "true", "null", `{"a":[1,2]}`}, traits.Strings())

	out, err := json.Marshal(traits)
	require.NoError(t, err)
	assert.JSONEq(t, `["quirky",1,true,null,{"a":[1,2]}]`, string(out))
}

func TestTraits_ContainsMatchesStringMembersOnly(t *testing.T) {
	var traits Traits
	require.NoError(t, json.Unmarshal([]byte(`[1, "quirky", "true"]`), &traits))

	assert.True(t, traits.Contains("quirky"))
	assert.True(t, traits.Contains("true"))
	assert.False(t, traits.Contains("1"))
}

func TestTextTrait_DoesNotEscapeHTML(t *testing.T) {
	assert.Equal(t, `"fish & chips"`, string(TextTrait("fish & chips")))
	assert.Equal(t, TextTrait("fish & chips"), TraitsOf("fish & chips")[0])
}

func TestTraits_CloneIsDeep(t *testing.T) {
	traits := TraitsOf("calm")
	clone := traits.Clone()
	clone[0][1] = 'C'

	assert.Equal(t, "calm", traits[0].String())
	assert.NotNil(t, Traits(nil).Clone())
}
