package jobscout

// MissionExtractor extracts a university mission statement from a page.
type MissionExtractor interface {
	// ExtractMission returns the mission statement text, or a fixed
	// placeholder when the expected content is absent. Missing content is
	// degradation, not an error.
	ExtractMission(html string) (string, error)
}
