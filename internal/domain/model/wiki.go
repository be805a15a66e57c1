package model

import "time"

// WikiPage is a snapshot of a wiki page at the time of the event.
type WikiPage struct {
	Name    string
	Version int
	Author  string
	Comment string
}

// WikiChange describes a new version saved for an existing page.
type WikiChange struct {
	Page       WikiPage
	Version    int
	Time       time.Time
	Comment    string
	Author     string
	RemoteAddr string
}
