//go:build wireinject

package di

import (
	"github.com/google/wire"

	"tracslack/internal/adapter/httpapi"
	"tracslack/internal/app"
)

// InitializeApp wires the long-running event receiver.
func InitializeApp() (*app.App, error) {
	wire.Build(
		notifierSet,
		provideServer,
		wire.Bind(new(app.Receiver), new(*httpapi.Server)),
		app.New,
	)
	return nil, nil
}

// InitializeListeners wires the notifiers without an inbound surface, for
// one-shot callers such as hook scripts.
func InitializeListeners() (*Listeners, error) {
	wire.Build(
		notifierSet,
		wire.Struct(new(Listeners), "*"),
	)
	return nil, nil
}
