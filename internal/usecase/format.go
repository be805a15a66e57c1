package usecase

import (
	"fmt"
	"strings"

	"tracslack/internal/domain/model"
)

// Attachment titles, in the order they appear in a message.
const (
	TitleAttributes  = "Attributes"
	TitleChanges     = ":small_red_triangle: Changes"
	TitleDescription = "Description"
	TitleComment     = "Comment"
	TitleMessage     = "Message"
	TitleDate        = "Date"
	TitleRepoName    = "RepoName"
	TitleRepos       = "Repos"
)

// Icon tokens decorating each source kind and action.
const (
	iconTicket    = ":ticket:"
	iconClosed    = ":white_check_mark:"
	iconCreated   = ":pushpin:"
	iconWiki      = ":incoming_envelope:"
	iconDeleted   = ":x:"
	iconChangeset = ":heavy_plus_sign:"
)

var markupDelimiters = strings.NewReplacer("{{{", "", "}}}", "")

// StripMarkup removes {{{ and }}} block delimiters, which carry no meaning
// in chat messages.
func StripMarkup(text string) string {
	return markupDelimiters.Replace(text)
}

// FormatTicket renders a ticket notification.
func FormatTicket(n model.TicketNotification) (string, []model.Attachment) {
	text := fmt.Sprintf("_%s_ %s\n%s ticket <%s|%s>: %s [*%s* by %s]",
		n.Project, iconTicket, n.Type, n.URL, n.ID, n.Summary, n.Action, n.Author)

	switch n.Action {
	case model.ActionClosed:
		text += " " + iconClosed
	case model.ActionCreated:
		text += " " + iconCreated
	}

	var attachments []model.Attachment
	attachments = appendNonEmpty(attachments, TitleAttributes, n.Attributes)
	attachments = appendNonEmpty(attachments, TitleChanges, n.Changes)
	attachments = appendNonEmpty(attachments, TitleDescription, StripMarkup(n.Description))
	attachments = appendNonEmpty(attachments, TitleComment, StripMarkup(n.Comment))

	return text, attachments
}

// FormatWiki renders a wiki page notification. Deletions never mention the
// author or carry a comment.
func FormatWiki(n model.WikiNotification) (string, []model.Attachment) {
	if n.Action == model.ActionDeleted {
		return fmt.Sprintf("_%s_ %s\n<%s|%s> was *%s*",
			n.Project, iconDeleted, n.URL, n.PageName, n.Action), nil
	}

	text := fmt.Sprintf("_%s_ %s\n<%s|%s> was *%s* by %s",
		n.Project, iconWiki, n.URL, n.PageName, n.Action, n.Author)

	var attachments []model.Attachment
	if n.Action == model.ActionChanged {
		attachments = appendNonEmpty(attachments, TitleComment, StripMarkup(n.Comment))
	}
	return text, attachments
}

// FormatChangeset renders a repository changeset notification.
func FormatChangeset(n model.ChangesetNotification) (string, []model.Attachment) {
	text := fmt.Sprintf("_%s_ %s\n<%s|r%s> was *%s* by %s",
		n.Project, iconChangeset, n.RevURL, n.Rev, n.Action, n.Author)

	var attachments []model.Attachment
	attachments = appendNonEmpty(attachments, TitleMessage, n.Message)
	attachments = append(attachments,
		model.Attachment{Title: TitleDate, Text: n.Date},
		model.Attachment{Title: TitleRepoName, Text: n.RepoName},
		model.Attachment{Title: TitleRepos, Text: n.Repos},
	)
	return text, attachments
}

func appendNonEmpty(attachments []model.Attachment, title, text string) []model.Attachment {
	if text == "" {
		return attachments
	}
	return append(attachments, model.Attachment{Title: title, Text: text})
}
