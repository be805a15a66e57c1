package httpapi

import (
	"time"

	"tracslack/internal/domain/model"
)

type ticketRequest struct {
	ID     int               `json:"id"`
	Values map[string]string `json:"values"`
}

func (r ticketRequest) model() model.Ticket {
	return model.Ticket{ID: r.ID, Values: r.Values}
}

type ticketChangeRequest struct {
	Ticket    ticketRequest     `json:"ticket"`
	Comment   string            `json:"comment"`
	Author    string            `json:"author"`
	OldValues map[string]string `json:"old_values"`
}

func (r ticketChangeRequest) model() model.TicketChange {
	return model.TicketChange{
		Ticket:    r.Ticket.model(),
		Comment:   r.Comment,
		Author:    r.Author,
		OldValues: r.OldValues,
	}
}

type wikiPageRequest struct {
	Name    string `json:"name"`
	Version int    `json:"version"`
	Author  string `json:"author"`
	Comment string `json:"comment"`
}

func (r wikiPageRequest) model() model.WikiPage {
	return model.WikiPage{Name: r.Name, Version: r.Version, Author: r.Author, Comment: r.Comment}
}

type wikiChangeRequest struct {
	Page       wikiPageRequest `json:"page"`
	Version    int             `json:"version"`
	Time       time.Time       `json:"time"`
	Comment    string          `json:"comment"`
	Author     string          `json:"author"`
	RemoteAddr string          `json:"remote_addr"`
}

func (r wikiChangeRequest) model() model.WikiChange {
	return model.WikiChange{
		Page:       r.Page.model(),
		Version:    r.Version,
		Time:       r.Time,
		Comment:    r.Comment,
		Author:     r.Author,
		RemoteAddr: r.RemoteAddr,
	}
}

type repositoryRequest struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RepoName string `json:"reponame"`
}

type changesetRequest struct {
	Rev     string    `json:"rev"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	Date    time.Time `json:"date"`
	Repos   string    `json:"repos"`
}

func (r changesetRequest) model() model.Changeset {
	return model.Changeset{Rev: r.Rev, Message: r.Message, Author: r.Author, Date: r.Date, Repos: r.Repos}
}

type changesetEventRequest struct {
	Repository   repositoryRequest `json:"repository"`
	Changeset    changesetRequest  `json:"changeset"`
	OldChangeset *changesetRequest `json:"old_changeset,omitempty"`
}

func (r changesetEventRequest) repository() model.Repository {
	return model.Repository{ID: r.Repository.ID, Name: r.Repository.Name, RepoName: r.Repository.RepoName}
}

func (r changesetEventRequest) old() *model.Changeset {
	if r.OldChangeset == nil {
		return nil
	}
	cs := r.OldChangeset.model()
	return &cs
}
