// Package availability provides the domain types and filtering logic for
// campsite availability queries.
//
// The availability package models the inclusive query window, enumerates the
// first-of-month markers the recreation.gov API expects, and collapses raw
// per-month availability records into an ordered mapping from campsite id to
// the dates on which that site is bookable within the window.
package availability
