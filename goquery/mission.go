package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscout"
)

// MissionNotFound is returned when a page lacks the expected mission
// statement markup. Missing content is degradation, not an error.
const MissionNotFound = "Mission statement not found."

var _ jobscout.MissionExtractor = (*XULAExtractor)(nil)

// XULAExtractor extracts the Xavier University of Louisiana mission
// statement.
type XULAExtractor struct{}

// NewXULAExtractor creates a new XULAExtractor.
func NewXULAExtractor() *XULAExtractor {
	return &XULAExtractor{}
}

// ExtractMission returns the first paragraph inside div.editorarea that
// mentions the founding or the mission, falling back to the whole
// container text.
func (e *XULAExtractor) ExtractMission(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", jobscout.Errorf(jobscout.EINVALID, "failed to parse HTML: %v", err)
	}

	container := doc.Find("div.editorarea").First()
	if container.Length() == 0 {
		return MissionNotFound, nil
	}

	var found string
	container.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		t := strings.TrimSpace(p.Text())
		if strings.Contains(t, "founded by Saint") || strings.Contains(strings.ToLower(t), "mission") {
			found = t
			return false
		}
		return true
	})
	if found != "" {
		return found, nil
	}

	return strings.TrimSpace(container.Text()), nil
}

var _ jobscout.MissionExtractor = (*MorehouseExtractor)(nil)

// MorehouseExtractor extracts the Morehouse College mission statement.
type MorehouseExtractor struct{}

// NewMorehouseExtractor creates a new MorehouseExtractor.
func NewMorehouseExtractor() *MorehouseExtractor {
	return &MorehouseExtractor{}
}

// ExtractMission joins the non-empty p.paragraph texts on the page.
func (e *MorehouseExtractor) ExtractMission(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", jobscout.Errorf(jobscout.EINVALID, "failed to parse HTML: %v", err)
	}

	var parts []string
	doc.Find("p.paragraph").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	if len(parts) == 0 {
		return MissionNotFound, nil
	}
	return strings.Join(parts, " "), nil
}
