// Package jobscout provides a CLI-based job listing scraper.
// It fetches job board pages, extracts listing tuples, runs them through
// a query pipeline (filter, dedupe, sort, limit), and writes the result
// as a CSV artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, csv/).
package jobscout
