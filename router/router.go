package router

import (
	"github.com/labstack/echo/v4"

	"ada/pkg/middleware"
)

func New(
	e *echo.Echo,
	planCtrl interface {
		Capture(echo.Context) error
		Inbox(echo.Context) error
		Approve(echo.Context) error
		Dismiss(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
	},
	itemCtrl interface {
		List(echo.Context) error
		Patch(echo.Context) error
		Delete(echo.Context) error
	},
	ledgerCtrl interface {
		List(echo.Context) error
		Export(echo.Context) error
	},
	scanCtrl interface {
		Extract(echo.Context) error
		ExtractURL(echo.Context) error
	},
	briefCtrl interface{ Today(echo.Context) error },
	chatCtrl interface {
		Stream(echo.Context) error
		CreateConversation(echo.Context) error
		DeleteConversation(echo.Context) error
		Messages(echo.Context) error
	},
	permCtrl interface {
		Grant(echo.Context) error
		List(echo.Context) error
	},
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// Plan lifecycle
	api.POST("/capture", planCtrl.Capture)
	api.GET("/inbox", planCtrl.Inbox)
	api.GET("/plans", planCtrl.List)
	api.GET("/plans/:id", planCtrl.Get)
	api.POST("/plans/:id/approve", planCtrl.Approve)
	api.POST("/plans/:id/dismiss", planCtrl.Dismiss)
	api.DELETE("/plans/:id", planCtrl.Delete)

	// Items
	api.GET("/items", itemCtrl.List)
	api.PATCH("/items/:id", itemCtrl.Patch)
	api.DELETE("/items/:id", itemCtrl.Delete)

	// Ledger
	api.GET("/ledger", ledgerCtrl.List)
	api.GET("/ledger/export", ledgerCtrl.Export)

	// Scan & extract
	api.POST("/scan", scanCtrl.Extract)
	api.POST("/scan/url", scanCtrl.ExtractURL)

	// Daily brief
	api.GET("/brief", briefCtrl.Today)

	// Chat
	api.POST("/chat/stream", chatCtrl.Stream)
	api.POST("/conversations", chatCtrl.CreateConversation)
	api.DELETE("/conversations/:id", chatCtrl.DeleteConversation)
	api.GET("/conversations/:id/messages", chatCtrl.Messages)

	// Capabilities
	api.GET("/permissions", permCtrl.List)
	api.POST("/permissions/:capability", permCtrl.Grant)

	return e
}
