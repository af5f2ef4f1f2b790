// Package templates renders the leaderboard HTML.
//
// Components are written in leaderboard.templ; run `templ generate` after
// editing it to refresh leaderboard_templ.go. Page renders the full document
// and BoardSection the fragment swapped by HTMX refreshes.
package templates
