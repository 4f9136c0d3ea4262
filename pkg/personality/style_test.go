package personality

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleForSnarkBuckets(t *testing.T) {
	assert.Equal(t, StyleProfessional, styleForSnark(0.0))
	assert.Equal(t, StyleFriendly, styleForSnark(0.3))
	assert.Equal(t, StyleSnarky, styleForSnark(0.6))
	assert.Equal(t, StyleChaotic, styleForSnark(0.99))
}

func TestErrorMessageStyleMatchesProfile(t *testing.T) {
	ctx := NewContext("reliable")
	assert.Equal(t, StyleProfessional, ctx.ErrorMessageStyle())

	ctx = NewContext("chaotic")
	assert.Equal(t, StyleChaotic, ctx.ErrorMessageStyle())
}

func TestSelectMessageNeverEmpty(t *testing.T) {
	ctx := NewContext("playful")
	for _, kind := range []string{"welp_fallback", "ish_comparison", "assert_probability", "assert_eventually", "unknown_kind"} {
		msg := ctx.SelectMessage(kind)
		assert.NotEmpty(t, msg)
	}
}
