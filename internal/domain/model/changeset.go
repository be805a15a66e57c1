package model

import "time"

// Repository identifies a version-control repository known to the tracker.
type Repository struct {
	ID       int
	Name     string
	RepoName string
}

// Changeset is a single revision in a repository.
type Changeset struct {
	Rev     string
	Message string
	Author  string
	Date    time.Time
	Repos   string
}
