package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ConfirmPayment(c *ginext.Context)
	CancelPayment(c *ginext.Context)
	GetPayment(c *ginext.Context)
	DeletePayment(c *ginext.Context)
	GetUserNotifications(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Payments
		api.POST("/payments/confirm", h.ConfirmPayment)
		api.POST("/payments/:paymentKey/cancel", h.CancelPayment)
		api.GET("/payments/:paymentKey", h.GetPayment)
		api.DELETE("/payments/:paymentKey", h.DeletePayment)

		// Notifications
		api.GET("/users/:id/notifications", h.GetUserNotifications)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
