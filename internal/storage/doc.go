// Package storage writes and reads the files travelkit produces.
//
// JSON documents are written with two-space indentation and without HTML
// escaping, so umlauts, emoji and "&" stay verbatim. Text outputs (calendar
// files, Markdown) go through the same directory handling. Every write
// replaces the previous file completely; nothing is appended or merged.
package storage
