package gallery

import (
	"museum-app/internal/domain/museum"
	gallerystate "museum-app/internal/gallery"
)

// ---------- requests

type SetLanguageRequest struct {
	Language string `json:"language" binding:"required"`
}

type SetFilterRequest struct {
	Search string `json:"search"`
	Period string `json:"period"`
	Artist string `json:"artist"`
}

// ---------- responses

type FacetsDTO struct {
	Periods []string `json:"periods"`
	Artists []string `json:"artists"`
}

type CollectionDTO struct {
	Loading  bool                      `json:"loading"`
	Language museum.Language           `json:"language"`
	Criteria museum.Criteria           `json:"criteria"`
	Artworks []museum.LocalizedArtwork `json:"artworks"`
	Facets   FacetsDTO                 `json:"facets"`
}

type DetailDTO struct {
	State          gallerystate.State          `json:"state"`
	Artwork        *museum.LocalizedArtwork    `json:"artwork,omitempty"`
	AnalysisStatus gallerystate.AnalysisStatus `json:"analysis_status,omitempty"`
	Analysis       *museum.ArtworkAnalysis     `json:"analysis,omitempty"`
}
