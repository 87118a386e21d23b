// Package scraper fetches and parses the HTML sources of the meeting tools.
//
// It reads the event cards of the Universal Home page and rewrites their
// calendar links, fetches the agenda and exhibition pages from the WordPress
// REST API and splits them into timeslots and startups, and looks up short
// profile snippets for participants on a search results page.
//
// All HTML handling goes through goquery. Network calls take a context and
// fail on any status other than 200.
package scraper
