package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tracslack/internal/domain/model"
)

type changesetFlags struct {
	rev      string
	author   string
	message  string
	date     string
	name     string
	repoName string
	repoID   int
	repos    string
}

func changesetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changeset",
		Short: "Announce repository changesets",
	}
	cmd.AddCommand(changesetActionCmd("added", "Announce a new changeset"))
	cmd.AddCommand(changesetActionCmd("modified", "Announce edited changeset metadata"))
	return cmd
}

func changesetActionCmd(action, short string) *cobra.Command {
	var f changesetFlags

	cmd := &cobra.Command{
		Use:   action,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, cs, err := f.build(cmd.InOrStdin(), time.Now)
			if err != nil {
				return err
			}

			listeners, err := loadListeners()
			if err != nil {
				return fmt.Errorf("initialize: %w", err)
			}

			ctx := cmd.Context()
			if action == model.ActionModified {
				listeners.Repository.ChangesetModified(ctx, repo, cs, nil)
			} else {
				listeners.Repository.ChangesetAdded(ctx, repo, cs)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.rev, "rev", "", "Revision identifier (required)")
	cmd.Flags().StringVar(&f.author, "author", "", "Changeset author")
	cmd.Flags().StringVar(&f.message, "message", "", `Commit message, or "-" to read it from stdin`)
	cmd.Flags().StringVar(&f.date, "date", "", "Commit time in RFC 3339 (defaults to now)")
	cmd.Flags().StringVar(&f.name, "repo-name", "", "Repository name as known to the tracker")
	cmd.Flags().StringVar(&f.repoName, "reponame", "", "Short repository name")
	cmd.Flags().IntVar(&f.repoID, "repo-id", 0, "Repository id")
	cmd.Flags().StringVar(&f.repos, "repos", "", "Repository label shown in the Repos attachment (defaults to --repo-name)")
	_ = cmd.MarkFlagRequired("rev")

	return cmd
}

func (f changesetFlags) build(stdin io.Reader, now func() time.Time) (model.Repository, model.Changeset, error) {
	message := f.message
	if message == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return model.Repository{}, model.Changeset{}, fmt.Errorf("read message from stdin: %w", err)
		}
		message = strings.TrimRight(string(data), "\n")
	}

	date := now()
	if f.date != "" {
		parsed, err := time.Parse(time.RFC3339, f.date)
		if err != nil {
			return model.Repository{}, model.Changeset{}, fmt.Errorf("invalid --date: %w", err)
		}
		date = parsed
	}

	repo := model.Repository{ID: f.repoID, Name: f.name, RepoName: f.repoName}
	cs := model.Changeset{
		Rev:     f.rev,
		Message: message,
		Author:  f.author,
		Date:    date,
		Repos:   f.repos,
	}
	return repo, cs, nil
}
