package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/SaranshGupta02/TimeTable/core/timetable"
)

type timetableApi struct {
	svc        *timetable.Service
	validate   *validator.Validate
	translator ut.Translator
}

func registerTimetableAPI(g *echo.Group, jwt echo.MiddlewareFunc, opts *Options) {
	api := timetableApi{
		svc:        opts.TimetableSvc,
		validate:   opts.Validate,
		translator: opts.Translator,
	}

	// un-authed endpoints: grid reads carry no sensitive content
	g.GET("/classes", api.listClasses)
	g.GET("/timetable/:classId", api.getTimetable)

	// authed endpoints
	g.PUT("/timetable/:classId/slot", api.writeSlot, jwt)

	// admin endpoints
	adm := g.Group("/admin", jwt, adminMiddleware())
	adm.POST("/classes", api.createClass)
	adm.DELETE("/classes/:classId", api.deleteClass)
}

// Handlers

func (api *timetableApi) listClasses(ctx echo.Context) error {
	classes, err := api.svc.ListClasses()
	if err != nil {
		return errors.Wrap(err, "listing classes")
	}
	return ctx.JSON(http.StatusOK, ClassListResponse{Classes: classes})
}

func (api *timetableApi) getTimetable(ctx echo.Context) error {
	tt, err := api.svc.GetTimetable(ctx.Param("classId"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, tt)
}

func (api *timetableApi) createClass(ctx echo.Context) error {
	var data timetable.NewClass
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewClass")
	}
	if err := data.Validate(api.validate, api.translator); err != nil {
		return err
	}

	grid, err := api.svc.CreateClass(data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, grid)
}

func (api *timetableApi) deleteClass(ctx echo.Context) error {
	if err := api.svc.DeleteClass(ctx.Param("classId")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *timetableApi) writeSlot(ctx echo.Context) error {
	var data WriteSlotRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to WriteSlotRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	slot, err := api.svc.WriteSlot(claims.Actor(), ctx.Param("classId"), *data.PeriodIndex, *data.DayIndex, data.WriteSlot)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, WriteSlotResponse{OK: true, Slot: slot})
}
