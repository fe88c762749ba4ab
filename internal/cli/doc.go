// Package cli implements the command-line interface for camp-finder.
//
// The cli package provides the Cobra-based CLI that checks a campground's
// availability over a date range and prints a summary. It coordinates the
// recgov client and the availability filter, and supports text and JSON
// output, optional per-site date listings, and campground descriptions.
package cli
