package state

import (
	"github.com/rowanvale/templateboard/internal/config"
	"github.com/rowanvale/templateboard/internal/store"
)

type State struct {
	Store  store.Store
	Config config.Configuration
}
