package controllers_fx

import (
	"go.uber.org/fx"

	"cargocal/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewChargeController),
	fx.Provide(controllers.NewTrackingController),
	fx.Provide(controllers.NewProgressController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewColorController),
	fx.Provide(controllers.NewWSController))
