package app

import (
	"log/slog"

	"dashboard.demografia.org/internal/appconf"
	"dashboard.demografia.org/internal/dashboard"
)

// Application holds the dependencies shared by the HTTP handlers, helpers,
// and middleware: the process configuration, the dataset contract, a logger,
// and the Manager built over the loaded table.
type Application struct {
	Config  appconf.Config
	Dataset appconf.Dataset
	Logger  *slog.Logger
	Manager *dashboard.Manager
}
