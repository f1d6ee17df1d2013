package tagfilter

import (
	"testing"

	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func space(address, tags string) *models.Space {
	return &models.Space{Address: address, Tags: tags}
}

func TestCanonicalTag(t *testing.T) {
	// Известная метка заменяется машинным значением
	assert.Equal(t, "women_support", CanonicalTag("女性援助"))
	assert.Equal(t, "legal_aid", CanonicalTag(" 法律援助 "))

	// Остальное приводится к нижнему регистру
	assert.Equal(t, "shelter", CanonicalTag("Shelter"))
	assert.Equal(t, "women_support", CanonicalTag("women_support"))
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "女性援助", LabelFor("women_support"))
	assert.Equal(t, "unknown_tag", LabelFor("unknown_tag"))
}

func TestFilter_EmptyFiltersPassEverything(t *testing.T) {
	spaces := []*models.Space{
		space("Madrid, Spain", "women_support"),
		space("Paris, France", ""),
	}

	got := Filter(spaces, "", nil)
	assert.Equal(t, spaces, got)
}

func TestFilter_LabelMatchesStoredValue(t *testing.T) {
	spaces := []*models.Space{
		space("Madrid, Spain", "women_support,shelter"),
		space("Madrid, Spain", "legal_aid"),
	}

	// Метка 女性援助 канонизируется в women_support
	got := Filter(spaces, "", []string{"女性援助"})
	assert.Equal(t, spaces[:1], got)
}

func TestFilter_RegionSubstring(t *testing.T) {
	spaces := []*models.Space{
		space("Calle Mayor, Madrid, Spain", "shelter"),
		space("Rue de Rivoli, Paris, France", "shelter"),
	}

	got := Filter(spaces, "madrid", nil)
	assert.Equal(t, spaces[:1], got)

	// Регион без совпадений дает пустой список, не ошибку
	got = Filter(spaces, "berlin", nil)
	assert.Empty(t, got)
}

func TestFilter_TagSubstringBothWays(t *testing.T) {
	spaces := []*models.Space{
		space("Paris, France", "women_support_network"),
	}

	// Выбранный тег - подстрока тега пространства
	assert.Len(t, Filter(spaces, "", []string{"women_support"}), 1)
	// И наоборот
	assert.Len(t, Filter(spaces, "", []string{"women_support_network_eu"}), 1)
}

func TestFilter_UntaggedSpaceFailsTagFilter(t *testing.T) {
	spaces := []*models.Space{space("Paris, France", "")}

	assert.Empty(t, Filter(spaces, "", []string{"shelter"}))
}

func TestFilter_PreservesOrder(t *testing.T) {
	a := space("Madrid", "shelter")
	b := space("Madrid", "shelter,legal_aid")
	c := space("Madrid", "shelter")

	got := Filter([]*models.Space{a, b, c}, "madrid", []string{"shelter"})
	assert.Equal(t, []*models.Space{a, b, c}, got)
}
