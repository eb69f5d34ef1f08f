package model

// Scope carries the request-scoped user identity through the service.
type Scope struct {
	UserID    string
	Username  string
	SessionID string
}

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
