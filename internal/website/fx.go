package website

import (
	"github.com/smallbiznis/threadline/internal/website/repository"
	"github.com/smallbiznis/threadline/internal/website/service"
	"go.uber.org/fx"
)

var Module = fx.Module("website.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
