package service

import (
	"github.com/abcall/user-management-gateway/internal/adapter"
	"github.com/abcall/user-management-gateway/internal/config"
	"github.com/abcall/user-management-gateway/internal/logger"
)

type Services struct {
	IdentityService IdentityService
	CompanyService  CompanyService
	UserService     UserService
}

func NewServices(adapters *adapter.Adapters, cfg config.App, logger *logger.Logger) *Services {
	identity := NewIdentityService(cfg, logger)

	return &Services{
		IdentityService: identity,
		CompanyService:  NewCompanyService(adapters.Company, logger),
		UserService:     NewUserService(adapters.User, adapters.Incident, identity, logger),
	}
}
