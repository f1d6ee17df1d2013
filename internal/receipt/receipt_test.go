package receipt

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestRender_ProducesValidPNG(t *testing.T) {
	sub := &models.Submission{
		ID:           uuid.New(),
		Lat:          ptr(48.8566),
		Lng:          ptr(2.3522),
		HereHappened: "咖啡馆",
		Description:  "有人帮了我，我想记下来。",
		FeelingScore: 40,
		Region:       "Europe",
		Address:      "Rue de Rivoli, Paris, France",
		CreatedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := Render(sub)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, cardWidth, img.Bounds().Dx())
	assert.Equal(t, cardHeight, img.Bounds().Dy())
}

func TestRender_WithoutLocation(t *testing.T) {
	// Квитанция рендерится и для записи без координат
	sub := &models.Submission{
		ID:           uuid.New(),
		Description:  "короткая история",
		FeelingScore: -10,
		Region:       "Other",
		CreatedAt:    time.Now(),
	}

	data, err := Render(sub)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
