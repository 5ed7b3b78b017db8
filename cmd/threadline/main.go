package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/threadline/internal/catalog"
	"github.com/smallbiznis/threadline/internal/clock"
	"github.com/smallbiznis/threadline/internal/config"
	"github.com/smallbiznis/threadline/internal/customization"
	"github.com/smallbiznis/threadline/internal/member"
	"github.com/smallbiznis/threadline/internal/migration"
	"github.com/smallbiznis/threadline/internal/notify"
	"github.com/smallbiznis/threadline/internal/observability"
	"github.com/smallbiznis/threadline/internal/order"
	"github.com/smallbiznis/threadline/internal/providers/email"
	"github.com/smallbiznis/threadline/internal/report"
	"github.com/smallbiznis/threadline/internal/seed"
	"github.com/smallbiznis/threadline/internal/server"
	"github.com/smallbiznis/threadline/internal/website"
	"github.com/smallbiznis/threadline/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		email.Module,
		notify.Module,

		order.Module,
		catalog.Module,
		customization.Module,
		report.Module,
		website.Module,
		member.Module,

		server.Module,
		seed.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
