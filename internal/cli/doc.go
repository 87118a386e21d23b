// Package cli implements the travelkit command-line interface.
//
// The cli package provides the Cobra-based commands that build the travel
// routes document, normalize and audit route images, export event cards as
// calendar files, and turn the agenda pages into Markdown timeslots. Every
// command reports a summary as text or JSON.
package cli
