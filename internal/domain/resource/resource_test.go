package resource

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	r := New()

	assert.Regexp(t, `^R-\d{4}$`, r.ID)
	assert.Equal(t, "v1.0", r.Version)
	assert.Equal(t, CategoryDOC, r.Category)
	assert.Equal(t, ScopeInternal, r.Scope)
	assert.NotNil(t, r.Topics)
	assert.Empty(t, r.Topics)
}

func TestTopicsUnmarshalAcceptsLegacyString(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want TopicList
	}{
		{"array", `["FOCUS","Leads"]`, TopicList{"FOCUS", "Leads"}},
		{"legacy comma string", `"Onboarding, FOCUS ,Training"`, TopicList{"Onboarding", "FOCUS", "Training"}},
		{"legacy with empties", `"a,, b ,"`, TopicList{"a", "b"}},
		{"empty string", `""`, TopicList{}},
		{"array with blanks", `[" a ",""]`, TopicList{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tl TopicList
			err := json.Unmarshal([]byte(tt.raw), &tl)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, tl)
		})
	}
}

func TestTopicsUnmarshalRejectsOtherShapes(t *testing.T) {
	var tl TopicList
	err := json.Unmarshal([]byte(`42`), &tl)
	assert.Error(t, err)
}

func TestNormalizeBackfillsLegacyRecord(t *testing.T) {
	raw := []byte(`{"id":"R-9001","title":"Old Doc","date":"01/05/2023","topics":"Legacy, Import"}`)

	r := New()
	err := json.Unmarshal(raw, &r)
	assert.NoError(t, err)
	r.Normalize()

	assert.Equal(t, "R-9001", r.ID)
	assert.Equal(t, TopicList{"Legacy", "Import"}, r.Topics)
	assert.Equal(t, ScopeInternal, r.Scope)
	assert.Equal(t, "v1.0", r.Version)
}

func TestFilterSearchesTitleTopicsDescription(t *testing.T) {
	a := New()
	a.ID = "R-1"
	a.Title = "Onboarding Deck"
	a.Date = "04/01/2024"
	b := New()
	b.ID = "R-2"
	b.Title = "Routing Sheet"
	b.Topics = TopicList{"Leads", "UCP"}
	b.Date = "05/01/2024"
	c := New()
	c.ID = "R-3"
	c.Title = "Checklist"
	c.Description = "validating incoming orders"
	c.Date = "03/01/2024"
	all := []Resource{a, b, c}

	byTitle := Filter(all, FilterState{Search: "deck"})
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "R-1", byTitle[0].ID)

	byTopic := Filter(all, FilterState{Search: "ucp"})
	assert.Len(t, byTopic, 1)
	assert.Equal(t, "R-2", byTopic[0].ID)

	byDescription := Filter(all, FilterState{Search: "incoming"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "R-3", byDescription[0].ID)

	sorted := Filter(all, FilterState{})
	assert.Equal(t, []string{"R-2", "R-1", "R-3"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
}

func TestFilterByCategoryAndScope(t *testing.T) {
	a := New()
	a.ID = "R-1"
	a.Category = CategoryPPT
	b := New()
	b.ID = "R-2"
	b.Category = CategoryPDF
	b.Scope = ScopeExternal
	all := []Resource{a, b}

	ppt := Filter(all, FilterState{Category: "PPT"})
	assert.Len(t, ppt, 1)
	assert.Equal(t, "R-1", ppt[0].ID)

	external := Filter(all, FilterState{Scope: "External"})
	assert.Len(t, external, 1)
	assert.Equal(t, "R-2", external[0].ID)

	everything := Filter(all, FilterState{Category: FilterAll, Scope: FilterAll})
	assert.Len(t, everything, 2)
}
