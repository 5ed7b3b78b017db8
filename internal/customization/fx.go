package customization

import (
	"github.com/smallbiznis/threadline/internal/customization/repository"
	"github.com/smallbiznis/threadline/internal/customization/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customization.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
