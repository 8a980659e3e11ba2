package museum

// AnalysisSections are the four curatorial text sections the AI produces
// for one artwork in one language. All four are mandatory in a valid
// response.
type AnalysisSections struct {
	FullDescription   string `json:"full_description"`
	TechnicalAnalysis string `json:"technical_analysis"`
	HistoricalContext string `json:"historical_context"`
	Symbolism         string `json:"symbolism"`
}

// ArtworkAnalysis extends a localized artwork with its AI analysis. It is
// ephemeral: requested on detail-view entry, discarded on exit, and never
// cached across navigation or a language switch.
type ArtworkAnalysis struct {
	LocalizedArtwork
	AnalysisSections
}
