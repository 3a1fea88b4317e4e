package report

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"covid-triage-bot/internal/triage"
)

// Common font locations on Alpine and Debian images.
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Service renders a composed guidance card list into a printable care plan
// the user can hand to a provider.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// BuildCarePlan renders the cards to a single PDF document, most urgent
// first.
func (s *Service) BuildCarePlan(cards []triage.RenderedCard) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF, is ttf-dejavu installed? last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "COVID-19 Care Plan")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Generated: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(25)

	for _, card := range cards {
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return nil, err
		}
		titleLines, _ := pdf.SplitText(card.Title, 500)
		for _, line := range titleLines {
			pdf.Cell(nil, line)
			pdf.Br(16)
		}

		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return nil, err
		}
		lines, _ := pdf.SplitText(FlattenHTML(card.Text), 500)
		for _, line := range lines {
			pdf.Cell(nil, line)
			pdf.Br(12)
		}
		pdf.Br(15)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	htmlBreaks = strings.NewReplacer(
		"<br>", "\n",
		"<br/>", "\n",
		"<li>", "\n- ",
		"</ul>", "\n",
	)
	htmlTags       = regexp.MustCompile(`<[^>]+>`)
	blankCollapser = regexp.MustCompile(`[ \t]+`)
)

// FlattenHTML reduces a card's HTML body to plain text suitable for the PDF:
// list items become dashed lines, remaining tags are stripped.
func FlattenHTML(html string) string {
	text := htmlBreaks.Replace(html)
	text = htmlTags.ReplaceAllString(text, "")
	text = blankCollapser.ReplaceAllString(text, " ")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
