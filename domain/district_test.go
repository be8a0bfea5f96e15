package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDistrictSeedsPlaceholders(t *testing.T) {
	content := DefaultContent()

	next, created := content.AddDistrict(DistrictData{})
	require.Len(t, next.Districts, 4)
	assert.Equal(t, created, next.Districts[3])
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "New Area", created.Name)
	assert.Equal(t, "አዲስ ወረዳ", created.DisplayName.Amharic)
	assert.Equal(t, "Aanaa Haaraa", created.DisplayName.AfaanOromoo)

	// A populated draft keeps its values, only the ID is assigned.
	draft := DistrictData{
		ID:          "ignored",
		Name:        "Babile",
		DisplayName: Localized("ባቢሌ", "Babbilee"),
	}
	_, kept := content.AddDistrict(draft)
	assert.NotEqual(t, "ignored", kept.ID)
	assert.Equal(t, "Babile", kept.Name)
	assert.Equal(t, draft.DisplayName, kept.DisplayName)
}

func TestUpdateDistrictField(t *testing.T) {
	content := DefaultContent()

	tests := []struct {
		name    string
		id      string
		field   DistrictField
		lang    Language
		value   string
		found   bool
		wantErr error
	}{
		{"plain name field", "haramaya", DistrictFieldName, "", "Haramaya Zone", true, nil},
		{"localized field amharic", "metta", DistrictFieldSoilTypes, LangAmharic, "አዲስ", true, nil},
		{"localized field oromo", "metta", DistrictFieldSoilTypes, LangAfaanOromoo, "Haaraa", true, nil},
		{"unknown language", "metta", DistrictFieldSoilTypes, Language("english"), "x", true, ErrUnknownLanguage},
		{"unknown field", "metta", DistrictField("altitude"), LangAmharic, "x", true, ErrUnknownField},
		{"unknown id", "missing", DistrictFieldName, "", "x", false, nil},
		{"unknown id and field", "missing", DistrictField("altitude"), "", "x", false, ErrUnknownField},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, found, err := content.UpdateDistrictField(tc.id, tc.field, tc.lang, tc.value)
			assert.Equal(t, tc.found, found)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			if !found {
				assert.Equal(t, content.Districts, next.Districts)
			}
		})
	}
}

func TestUpdateDistrictFieldTouchesOnlyTarget(t *testing.T) {
	content := DefaultContent()
	next, found, err := content.UpdateDistrictField("haramaya", DistrictFieldCharacteristics, LangAmharic, "የተሻሻለ")
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "የተሻሻለ", next.Districts[1].Characteristics.Amharic)
	assert.Equal(t, content.Districts[1].Characteristics.AfaanOromoo, next.Districts[1].Characteristics.AfaanOromoo)
	assert.Equal(t, content.Districts[0], next.Districts[0])
	assert.Equal(t, content.Districts[2], next.Districts[2])
	// The source aggregate never changes.
	assert.Equal(t, "ከፍተኛ ለምነት", content.Districts[1].Characteristics.Amharic)
}

func TestRemoveDistrict(t *testing.T) {
	content := DefaultContent()

	next, found := content.RemoveDistrict("diredawa")
	require.True(t, found)
	require.Len(t, next.Districts, 2)
	assert.Equal(t, "haramaya", next.Districts[0].ID)
	assert.Len(t, content.Districts, 3)

	unchanged, found := content.RemoveDistrict("missing")
	assert.False(t, found)
	assert.Equal(t, content.Districts, unchanged.Districts)
}
