package api

import "github.com/grammatica/grammatica-server/internal/service"

// Services groups the business logic used by the API server.
type Services struct {
	Catalog *service.Catalog
	Auth    *service.AuthService
}
