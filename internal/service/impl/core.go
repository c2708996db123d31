package core

import (
	"github.com/rowanvale/templateboard/internal/config"
	"github.com/rowanvale/templateboard/internal/importer"
	"github.com/rowanvale/templateboard/internal/queue"
	"github.com/rowanvale/templateboard/internal/service"
	"github.com/rowanvale/templateboard/internal/state"
	"github.com/rowanvale/templateboard/internal/store"
)

const BcryptCost = 10

type AppService struct {
	Config   config.Configuration
	Store    store.Store
	Importer *importer.Importer
	Queue    queue.RefreshQueue
}

func New(state *state.State, imp *importer.Importer, queue queue.RefreshQueue) service.Service {
	return &AppService{
		Config:   state.Config,
		Store:    state.Store,
		Importer: imp,
		Queue:    queue,
	}
}
