package repository

import "context"

// ResourceRepository fetches overlay resources by location, either a file
// path or an http(s) URL.
type ResourceRepository interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}
