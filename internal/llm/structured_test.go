package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type suggestion struct {
	ID    string   `json:"id"`
	Dates []string `json:"suggestedDates"`
}

func TestExtractJSONArrayPlain(t *testing.T) {
	raw := `[{"id":"p1","suggestedDates":["10.06.2025"]}]`

	got, err := ExtractJSONArray[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestExtractJSONArrayWithFencesAndProse(t *testing.T) {
	raw := "Ось розклад, який я пропоную:\n```json\n" +
		`[{"id":"p1","suggestedDates":["10.06.2025","11.06.2025"]}]` +
		"\n```\nДати рівномірно розподілені по місяцю."

	got, err := ExtractJSONArray[[]suggestion](raw, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"10.06.2025", "11.06.2025"}, got[0].Dates)
}

func TestExtractJSONObjectWithLeadingText(t *testing.T) {
	raw := `The result is {"suggestions":[{"newDate":"2025-06-10","reason":"вільний день [пн]"}]} as requested`

	type out struct {
		Suggestions []struct {
			NewDate string `json:"newDate"`
			Reason  string `json:"reason"`
		} `json:"suggestions"`
	}

	got, err := ExtractJSON[out](raw, nil)
	require.NoError(t, err)
	require.Len(t, got.Suggestions, 1)
	// Brackets inside JSON strings must not confuse block extraction.
	assert.Equal(t, "вільний день [пн]", got.Suggestions[0].Reason)
}

func TestExtractJSONNoBlock(t *testing.T) {
	_, err := ExtractJSONArray[[]suggestion]("Вибачте, не можу допомогти.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONMalformed(t *testing.T) {
	_, err := ExtractJSONArray[[]suggestion](`[{"id": }]`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSONValidatorRejects(t *testing.T) {
	raw := `[{"id":"","suggestedDates":[]}]`
	validator := func(s []suggestion) error {
		for _, item := range s {
			if item.ID == "" {
				return fmt.Errorf("missing id")
			}
		}
		return nil
	}

	_, err := ExtractJSONArray[[]suggestion](raw, validator)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOutput))
}
