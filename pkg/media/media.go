package media

import "context"

// Asset is what the media host reports back after an upload.
type Asset struct {
	URL string
}

// Uploader pushes a locally staged file to the external media host and
// returns its public location. The caller owns cleanup of the local file.
type Uploader interface {
	Upload(ctx context.Context, localPath string) (*Asset, error)
}
