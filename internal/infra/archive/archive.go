package archive

import (
	"context"

	"museum-app/internal/domain/museum"
)

// Archive is the backend collaborator handle: row storage plus blob
// storage. It is constructed once at startup; without configured
// credentials the in-memory mock variant is selected, so component code
// depends only on this interface, never on ambient global state.
type Archive interface {
	// ListArtworks returns the collection ordered by creation time
	// descending (most recent submission first).
	ListArtworks(ctx context.Context) ([]museum.ArtworkRecord, error)

	// UploadArtwork stores the image blob under a collision-resistant
	// name, resolves a public URL for it, inserts a row with the given
	// metadata and is_public=true, and returns the inserted row verbatim
	// including server-assigned identity and timestamp.
	UploadArtwork(ctx context.Context, image []byte, filename string, meta museum.UploadMetadata) (*museum.ArtworkRecord, error)

	// IncrementViewCount is best effort: errors are logged and swallowed,
	// never surfaced to the user.
	IncrementViewCount(ctx context.Context, id string)

	// ListTranslations returns UI text override rows, if the backend
	// carries any.
	ListTranslations(ctx context.Context) ([]museum.TranslationRow, error)
}
