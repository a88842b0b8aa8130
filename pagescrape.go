// Package pagescrape extracts structured content from a single web page.
// It fetches one URL, parses the returned markup, and produces a normalized
// record holding the page title and its feature markers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package pagescrape
