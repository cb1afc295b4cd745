package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStatic_Classify tests the fixed-selection classifier.
func TestStatic_Classify(t *testing.T) {
	c := Static{Selections: []string{"ChatInput", "LanguageModel"}}

	got, err := c.Classify(context.Background(), "anything", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ChatInput", "LanguageModel"}, got)
}

// TestStatic_Classify_CopiesSelections tests callers cannot mutate the
// classifier's backing slice.
func TestStatic_Classify_CopiesSelections(t *testing.T) {
	c := Static{Selections: []string{"ChatInput"}}

	got, err := c.Classify(context.Background(), "x", nil)
	require.NoError(t, err)
	got[0] = "mutated"

	again, err := c.Classify(context.Background(), "x", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"ChatInput"}, again)
}

// TestStatic_Classify_Empty tests an empty selection stays empty.
func TestStatic_Classify_Empty(t *testing.T) {
	got, err := Static{}.Classify(context.Background(), "x", []Component{
		{TypeID: "ChatInput", DisplayName: "Chat Input"},
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
