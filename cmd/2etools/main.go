// Package main provides the entry point for the 2eTools scraper CLI.
//
// The scraper downloads Pathfinder 2e rule pages, assembles structured
// records from them and stores the records for the 2eTools web app.
//
// Usage:
//
//	2etools run creature
//	2etools run trait cache-only
//	2etools run ancestry --output ancestries.jsonl
//
// See --help for all available options.
package main

func main() {
	Execute()
}
