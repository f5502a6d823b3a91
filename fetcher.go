package pepper

import "context"

// Fetcher retrieves raw pages from the PEP host.
type Fetcher interface {
	// Fetch issues a GET for url and returns the response body.
	// A non-success status is reported as a *StatusError, so ErrorCode
	// returns ENOTFOUND for 404 and EREMOTE for everything else.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases transport resources.
	Close() error
}
