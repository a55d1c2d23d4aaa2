package port

import "context"

type FileDownloader interface {
	// Download returns the byte content of a file at the provided URL.
	Download(ctx context.Context, url string) ([]byte, error)
}
