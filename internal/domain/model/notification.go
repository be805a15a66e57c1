package model

// Attachment represents a titled section appended to a chat message.
type Attachment struct {
	Title string
	Text  string
}

// Message is the transport-agnostic payload handed to downstream notifiers.
type Message struct {
	Channel     string
	Username    string
	Text        string
	Attachments []Attachment
}

// TicketNotification carries every value the ticket template references.
type TicketNotification struct {
	Project     string
	URL         string
	ID          string
	Type        string
	Summary     string
	Action      string
	Author      string
	Attributes  string
	Changes     string
	Description string
	Comment     string
}

// WikiNotification carries every value the wiki templates reference.
type WikiNotification struct {
	Project  string
	PageName string
	URL      string
	Action   string
	Author   string
	Comment  string
}

// ChangesetNotification carries every value the changeset template references.
type ChangesetNotification struct {
	Project  string
	Rev      string
	RevURL   string
	Action   string
	Author   string
	Message  string
	Date     string
	RepoName string
	Repos    string
}
