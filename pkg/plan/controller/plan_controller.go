package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Capture(c echo.Context) error
	Inbox(c echo.Context) error
	Approve(c echo.Context) error
	Dismiss(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Delete(c echo.Context) error
}
