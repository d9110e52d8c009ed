package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LCW-App/internal/domain/model"
)

// testBars 絞り込みテストに使う4パターンの設備フラグを持つフィクスチャ
func testBars() []model.Bar {
	return []model.Bar{
		{Name: "Alpha Bar", Location: model.LatLng{Lat: 51.5, Lng: -0.1}, Rooftop: true, Food: false},
		{Name: "Beta Lounge", Location: model.LatLng{Lat: 51.51, Lng: -0.11}, Rooftop: false, Food: true},
		{Name: "Gamma Rooftop", Location: model.LatLng{Lat: 51.52, Lng: -0.12}, Rooftop: true, Food: true},
		{Name: "delta alpha club", Location: model.LatLng{Lat: 51.53, Lng: -0.13}, Rooftop: false, Food: false},
	}
}

func TestFilterNoCriteriaReturnsAllInOrder(t *testing.T) {
	svc := NewBarFilterService()
	bars := testBars()

	result := svc.Filter(bars, model.FilterCriteria{Query: "", Preference: model.PreferenceAll})

	require.Len(t, result, len(bars))
	for i, r := range result {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, bars[i].Name, r.Bar.Name)
	}
}

func TestFilterTextQueryIsCaseInsensitiveSubstring(t *testing.T) {
	svc := NewBarFilterService()

	result := svc.Filter(testBars(), model.FilterCriteria{Query: "ALPHA", Preference: model.PreferenceAll})

	require.Len(t, result, 2)
	assert.Equal(t, 0, result[0].Index)
	assert.Equal(t, "Alpha Bar", result[0].Bar.Name)
	assert.Equal(t, 3, result[1].Index)
	assert.Equal(t, "delta alpha club", result[1].Bar.Name)
}

func TestFilterNoMatchReturnsEmpty(t *testing.T) {
	svc := NewBarFilterService()

	result := svc.Filter(testBars(), model.FilterCriteria{Query: "zzz", Preference: model.PreferenceAll})

	assert.Empty(t, result)
}

func TestFilterPreferenceCategories(t *testing.T) {
	svc := NewBarFilterService()
	bars := testBars()

	tests := []struct {
		name       string
		preference model.PreferenceCategory
		wantNames  []string
	}{
		// RooftopOnly / FoodOnly は自分のフラグのみを見るため、両方trueのバーも一致する
		{"rooftop only", model.PreferenceRooftopOnly, []string{"Alpha Bar", "Gamma Rooftop"}},
		{"food only", model.PreferenceFoodOnly, []string{"Beta Lounge", "Gamma Rooftop"}},
		{"both", model.PreferenceBoth, []string{"Gamma Rooftop"}},
		{"neither", model.PreferenceNeither, []string{"delta alpha club"}},
		{"all", model.PreferenceAll, []string{"Alpha Bar", "Beta Lounge", "Gamma Rooftop", "delta alpha club"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Filter(bars, model.FilterCriteria{Preference: tt.preference})
			names := make([]string, 0, len(result))
			for _, r := range result {
				names = append(names, r.Bar.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterTextThenPreference(t *testing.T) {
	svc := NewBarFilterService()

	// spec のシナリオ: {name:"Alpha Bar", R:true, F:false} を query=alpha, preference=R で絞り込む
	result := svc.Filter(testBars(), model.FilterCriteria{Query: "alpha bar", Preference: model.PreferenceRooftopOnly})

	require.Len(t, result, 1)
	assert.Equal(t, 0, result[0].Index)
	assert.Equal(t, "Alpha Bar", result[0].Bar.Name)
}

func TestFilterUnknownPreferenceDegradesToAll(t *testing.T) {
	svc := NewBarFilterService()

	result := svc.Filter(testBars(), model.FilterCriteria{Preference: model.PreferenceCategory("sparkly")})

	assert.Len(t, result, len(testBars()))
}

func TestParsePreferenceCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want model.PreferenceCategory
	}{
		{"", model.PreferenceAll},
		{"r", model.PreferenceRooftopOnly},
		{"R", model.PreferenceRooftopOnly},
		{"f", model.PreferenceFoodOnly},
		{"both", model.PreferenceBoth},
		{"none", model.PreferenceNeither},
		{" both ", model.PreferenceBoth},
		{"unknown-value", model.PreferenceAll},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ParsePreferenceCategory(tt.raw), "raw=%q", tt.raw)
	}
}
