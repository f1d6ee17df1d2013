package region

import "strings"

// Name - метка крупного региона, вычисленная из координат
type Name string

const (
	NorthAmerica  Name = "North America"
	Europe        Name = "Europe"
	EastAsia      Name = "East Asia"
	SoutheastAsia Name = "Southeast Asia"
	Australia     Name = "Australia"
	Other         Name = "Other"
)

// box - грубый прямоугольник региона. Точность здесь не нужна: метка
// используется только для группировки историй.
type box struct {
	name           Name
	minLat, maxLat float64
	minLng, maxLng float64
}

// boxes проверяются строго по порядку, первый совпавший выигрывает.
// Полоса Восточной/Юго-Восточной Азии пересекается, приоритет у первой.
var boxes = []box{
	{NorthAmerica, 15, 72, -168, -50},
	{Europe, 35, 71, -10, 40},
	{EastAsia, 20, 46, 95, 145},
	{SoutheastAsia, -10, 29, 95, 141},
	{Australia, -44, -10, 113, 154},
}

// FromCoordinates возвращает метку региона для точки. Тотальная функция:
// любая пара координат дает ровно одну из шести меток.
func FromCoordinates(lat, lng float64) Name {
	for _, b := range boxes {
		if lat >= b.minLat && lat <= b.maxLat && lng >= b.minLng && lng <= b.maxLng {
			return b.name
		}
	}
	return Other
}

// Viewport - центр и зум карты для фокусировки на регионе
type Viewport struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Zoom int     `json:"zoom"`
}

// FocusAll - вид по умолчанию (сброс фильтра региона)
var FocusAll = Viewport{Lat: 46.2276, Lng: 2.2137, Zoom: 6}

// focusTable - фиксированные вьюпорты для токенов селектора региона
var focusTable = map[string]Viewport{
	"madrid":    {Lat: 40.4168, Lng: -3.7038, Zoom: 12},
	"barcelona": {Lat: 41.3874, Lng: 2.1686, Zoom: 12},
	"paris":     {Lat: 48.8566, Lng: 2.3522, Zoom: 12},
	"london":    {Lat: 51.5072, Lng: -0.1276, Zoom: 12},
}

// Focus возвращает вьюпорт для токена региона. Токен "all" (или пустой)
// сбрасывает карту к виду по умолчанию.
func Focus(token string) (Viewport, bool) {
	switch token {
	case "", "all":
		return FocusAll, true
	}
	vp, ok := focusTable[strings.ToLower(token)]
	return vp, ok
}
