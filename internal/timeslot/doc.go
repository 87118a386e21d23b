// Package timeslot reads and writes the Markdown files kept for the meeting
// agenda: one file per agenda slot, one per exhibiting startup, plus two
// overview lists.
//
// Every file follows the same schema:
//
//	# <title>
//	Thema: <topic>
//	Agenda: <start> - <end>
//	Beteiligte Personen:
//	- <role, name or organization>
//
//	Start: <start>
//	End: <end>
//
// A file without participants has "Beteiligte Personen: n/a" instead of the
// list. Startup files carry their description after the footer.
//
// Participant lists can be annotated with generated "- Profil:" and
// "- Grund:" lines and refreshed from a profile search.
package timeslot
