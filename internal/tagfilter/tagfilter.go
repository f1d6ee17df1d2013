package tagfilter

import (
	"strings"

	"github.com/sinodiaspora/story-map-api/internal/models"
)

// Человеческие метки тегов поддержки и их машинные значения. В базе
// хранятся значения, но формы исторически присылали и то и другое,
// поэтому фильтр канонизирует вход перед сравнением.
var supportLabels = map[string]string{
	"友好空间": "friendly_space",
	"女性援助": "women_support",
	"酷儿空间": "queer_space",
	"法律援助": "legal_aid",
	"收容":   "shelter",
	"心理咨询": "counseling",
}

// CanonicalTag приводит тег к машинному значению: известная метка
// заменяется значением, остальное - в нижний регистр без пробелов по краям.
func CanonicalTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if value, ok := supportLabels[trimmed]; ok {
		return value
	}
	return strings.ToLower(trimmed)
}

// LabelFor возвращает человеческую метку для машинного значения тега,
// либо само значение, если метка неизвестна.
func LabelFor(value string) string {
	for label, v := range supportLabels {
		if v == value {
			return label
		}
	}
	return value
}

// matchesTags - нестрогое пересечение множеств тегов: выбранный тег
// совпадает с тегом пространства, если один является подстрокой другого
// (без учета регистра). Нестрогость намеренная - терпит мелкие
// расхождения меток между версиями форм.
func matchesTags(spaceTags string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if spaceTags == "" {
		return false
	}

	tokens := strings.Split(spaceTags, ",")
	for i, tok := range tokens {
		tokens[i] = CanonicalTag(tok)
	}

	for _, sel := range selected {
		want := CanonicalTag(sel)
		for _, tok := range tokens {
			if tok == "" || want == "" {
				continue
			}
			if strings.Contains(tok, want) || strings.Contains(want, tok) {
				return true
			}
		}
	}
	return false
}

// matchesRegion - подстрочное совпадение токена региона с адресом, без
// учета регистра. Пустой токен пропускает все.
func matchesRegion(address, token string) bool {
	if token == "" {
		return true
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(token))
}

// Filter отбирает пространства по региону (одиночный выбор) и тегам
// (множественный выбор). Оба фильтра должны пройти; порядок входного
// списка сохраняется.
func Filter(spaces []*models.Space, regionToken string, selectedTags []string) []*models.Space {
	out := make([]*models.Space, 0, len(spaces))
	for _, sp := range spaces {
		if !matchesRegion(sp.Address, regionToken) {
			continue
		}
		if !matchesTags(sp.Tags, selectedTags) {
			continue
		}
		out = append(out, sp)
	}
	return out
}
