package port

import "context"

// VideoStorage is the durable object-store boundary. DownloadRaw copies the
// raw object into a local staging file; UploadProcessed copies a finished
// rendition to the processed store. Neither call touches local files beyond
// the given paths, and neither deletes anything.
type VideoStorage interface {
	DownloadRaw(ctx context.Context, objectKey string, destPath string) error
	UploadProcessed(ctx context.Context, objectKey string, srcPath string) error
}
