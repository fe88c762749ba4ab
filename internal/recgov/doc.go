// Package recgov provides a client for recreation.gov's camping APIs.
//
// The client fetches per-month campsite availability records and campground
// metadata. No authentication is required, but the service rejects requests
// without a browser-like User-Agent header, so the default client sends a
// randomized realistic one. Month fetches are sequential with no retries; a
// month that answers with a non-200 status is logged and skipped so the
// remaining months can still be reported.
package recgov
