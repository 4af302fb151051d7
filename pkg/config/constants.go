package config

import "time"

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	// SessionTTL is how long a login token stays valid.
	SessionTTL = 12 * time.Hour

	// MenuItemsPerPage is the menu page size.
	MenuItemsPerPage = 6
)

// Built-in demo credentials, seeded at startup unless disabled.
const (
	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin123"
	DemoUserUsername  = "user"
	DemoUserPassword  = "user123"
)
