package domain

import "context"

// MediaStore stores uploaded media and returns the URL it will be served
// from. Input is a base64 data URL as posted by the dashboard.
type MediaStore interface {
	Upload(ctx context.Context, dataURL string) (string, error)
}
