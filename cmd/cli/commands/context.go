package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/lockerdesk/internal/config"
	"github.com/jakechorley/lockerdesk/pkg/clients/lockerapi"
	"github.com/jakechorley/lockerdesk/pkg/core/store"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Gateway *lockerapi.Client
	Store   *store.Store
	Logger  *zap.Logger
	Ctx     context.Context
}
