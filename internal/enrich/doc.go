// Package enrich fills record fields that only other pages know about:
// trait groups from the trait index and creature families from the monster
// family roster.
package enrich
