package receipt

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/sinodiaspora/story-map-api/internal/models"
	"golang.org/x/image/font/basicfont"
)

// Фиксированная раскладка карточки-квитанции
const (
	cardWidth  = 640
	cardHeight = 800
	margin     = 48.0
)

const branding = "ARCHIVE OF THE SINO WOMEN'S DIASPORA"

// Render растеризует карточку истории в PNG. Раскладка фиксированная:
// шапка с брендингом, стилизованная булавка вместо снимка карты, текст
// истории, адрес и дата.
func Render(sub *models.Submission) ([]byte, error) {
	dc := gg.NewContext(cardWidth, cardHeight)

	// Фон и рамка
	dc.SetRGB255(255, 240, 245)
	dc.Clear()
	dc.SetRGB255(255, 0, 94)
	dc.SetLineWidth(6)
	dc.DrawRectangle(12, 12, cardWidth-24, cardHeight-24)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)

	// Шапка
	dc.SetRGB255(0, 0, 0)
	dc.DrawStringAnchored(branding, cardWidth/2, margin+10, 0.5, 0.5)
	dc.DrawLine(margin, margin+32, cardWidth-margin, margin+32)
	dc.SetLineWidth(1)
	dc.Stroke()

	// Стилизованная булавка с координатной сеткой вместо тайлов карты:
	// живые тайлы потребовали бы сетевого вызова при экспорте
	mapTop := margin + 56
	mapH := 180.0
	dc.SetRGB255(255, 255, 255)
	dc.DrawRectangle(margin, mapTop, cardWidth-2*margin, mapH)
	dc.Fill()
	dc.SetRGB255(220, 220, 220)
	for i := 1; i < 6; i++ {
		x := margin + float64(i)*(cardWidth-2*margin)/6
		dc.DrawLine(x, mapTop, x, mapTop+mapH)
	}
	for i := 1; i < 4; i++ {
		y := mapTop + float64(i)*mapH/4
		dc.DrawLine(margin, y, cardWidth-margin, y)
	}
	dc.Stroke()
	dc.SetRGB255(255, 0, 94)
	dc.DrawCircle(cardWidth/2, mapTop+mapH/2, 10)
	dc.Fill()

	y := mapTop + mapH + 36

	dc.SetRGB255(0, 0, 0)
	title := sub.HereHappened
	if title == "" {
		title = sub.Region
	}
	dc.DrawStringWrapped(title, margin, y, 0, 0, cardWidth-2*margin, 1.4, gg.AlignLeft)
	y += 48

	dc.DrawStringWrapped(sub.Description, margin, y, 0, 0, cardWidth-2*margin, 1.5, gg.AlignLeft)
	y = cardHeight - 180

	dc.DrawString(fmt.Sprintf("feeling: %d", sub.FeelingScore), margin, y)
	y += 24
	if sub.HasLocation() {
		dc.DrawString(fmt.Sprintf("%.4f, %.4f  (%s)", *sub.Lat, *sub.Lng, sub.Region), margin, y)
		y += 24
	}
	dc.DrawStringWrapped(sub.Address, margin, y, 0, 0, cardWidth-2*margin, 1.4, gg.AlignLeft)

	dc.SetRGB255(100, 100, 100)
	dc.DrawStringAnchored(sub.CreatedAt.Format(time.DateOnly), cardWidth/2, cardHeight-margin, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode receipt png: %w", err)
	}
	return buf.Bytes(), nil
}
