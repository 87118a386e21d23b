// Package event describes the agenda cards of the Universal Home meeting page.
//
// A card carries a title, speaker, description and a German date/time text
// such as "11.06.2025 | ca. 18:00". Cards have no explicit end; every entry
// is scheduled for one hour.
package event
