package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"tracslack/internal/adapter/httpapi"
	"tracslack/internal/adapter/logging"
	"tracslack/internal/adapter/slack"
	"tracslack/internal/config"
	"tracslack/internal/domain/model"
	"tracslack/internal/domain/ports"
	"tracslack/internal/usecase"
)

var notifierSet = wire.NewSet(
	config.Load,
	provideSlogLogger,
	logging.New,
	wire.Bind(new(ports.Logger), new(*logging.SLogger)),
	provideResolver,
	wire.Bind(new(ports.AuthorResolver), new(*usecase.IdentityResolver)),
	provideProject,
	provideTicketNotifier,
	provideWikiNotifier,
	provideRepositoryNotifier,
)

// Listeners groups the event adapters and the author resolver.
type Listeners struct {
	Tickets    *usecase.TicketNotifier
	Wiki       *usecase.WikiNotifier
	Repository *usecase.RepositoryNotifier
	Resolver   *usecase.IdentityResolver
	Logger     ports.Logger
}

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stderr, cfg.Log.Format, cfg.Log.Level))
}

func provideResolver(cfg *config.Config, logger ports.Logger) *usecase.IdentityResolver {
	return usecase.NewIdentityResolver(cfg.AuthMap, logger)
}

func provideProject(cfg *config.Config) usecase.Project {
	return usecase.Project{Name: cfg.Project.Name, BaseURL: cfg.Project.BaseURL}
}

func provideDispatcher(cfg *config.Config, target config.Target, source model.Source, logger ports.Logger) (*usecase.Dispatcher, error) {
	webhook, err := slack.NewWebhook(target.WebhookURL, cfg.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewDispatcher(webhook, logger, usecase.DispatcherConfig{
		Source:   source,
		Channel:  target.Channel,
		Username: target.Username,
	}), nil
}

func provideTicketNotifier(cfg *config.Config, project usecase.Project, resolver ports.AuthorResolver, logger ports.Logger) (*usecase.TicketNotifier, error) {
	dispatcher, err := provideDispatcher(cfg, cfg.Ticket.Target, model.SourceTicket, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewTicketNotifier(dispatcher, resolver, logger, usecase.TicketConfig{
		Project: project,
		Fields:  cfg.Ticket.Fields,
	}), nil
}

func provideWikiNotifier(cfg *config.Config, project usecase.Project, resolver ports.AuthorResolver, logger ports.Logger) (*usecase.WikiNotifier, error) {
	dispatcher, err := provideDispatcher(cfg, cfg.Wiki.Target, model.SourceWiki, logger)
	if err != nil {
		return nil, err
	}
	pages, err := cfg.WikiPagePattern()
	if err != nil {
		return nil, err
	}
	return usecase.NewWikiNotifier(dispatcher, resolver, logger, usecase.WikiConfig{
		Project:      project,
		NotifyAdd:    cfg.Wiki.NotifyAdd,
		NotifyDelete: cfg.Wiki.NotifyDelete,
		NotifyChange: cfg.Wiki.NotifyChange,
		Pages:        pages,
	}), nil
}

func provideRepositoryNotifier(cfg *config.Config, project usecase.Project, resolver ports.AuthorResolver, logger ports.Logger) (*usecase.RepositoryNotifier, error) {
	dispatcher, err := provideDispatcher(cfg, cfg.Repository.Target, model.SourceRepository, logger)
	if err != nil {
		return nil, err
	}
	return usecase.NewRepositoryNotifier(dispatcher, resolver, logger, usecase.RepositoryConfig{
		Project:      project,
		NotifyAdd:    cfg.Repository.NotifyAdd,
		NotifyModify: cfg.Repository.NotifyModify,
	}), nil
}

func provideServer(
	cfg *config.Config,
	tickets *usecase.TicketNotifier,
	wiki *usecase.WikiNotifier,
	repos *usecase.RepositoryNotifier,
	logger ports.Logger,
) *httpapi.Server {
	return httpapi.NewServer(httpapi.ServerConfig{
		Addr:           cfg.ListenAddr,
		MaxConnections: cfg.MaxConnections,
	}, tickets, wiki, repos, logger)
}
