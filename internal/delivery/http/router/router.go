// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"checkin/config"
	httpmiddleware "checkin/internal/delivery/http/middleware"
	"checkin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	PairingHandler *handler.PairingHandler
	EntryHandler   *handler.EntryHandler
	DeviceHandler  *handler.DeviceHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *httpmiddleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	pairingHandler *handler.PairingHandler
	entryHandler   *handler.EntryHandler
	deviceHandler  *handler.DeviceHandler
	testHandler    *handler.TestHandler
	authMiddleware *httpmiddleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		pairingHandler: params.PairingHandler,
		entryHandler:   params.EntryHandler,
		deviceHandler:  params.DeviceHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Pairing routes, all behind JWT authentication
	pairingGroup := e.Group("/pairing")
	pairingGroup.Use(r.authMiddleware.Authenticate)
	{
		pairingGroup.POST("/couple", r.pairingHandler.EnsureCouple)
		pairingGroup.POST("/invite", r.pairingHandler.CreateInvite)
		pairingGroup.GET("/invite/qr", r.pairingHandler.InviteQR)
		pairingGroup.POST("/accept", r.pairingHandler.AcceptInvite)
		pairingGroup.GET("/status", r.pairingHandler.Status)
		pairingGroup.POST("/complete", r.pairingHandler.Complete)
		pairingGroup.POST("/watch", r.pairingHandler.StartWatch)
		pairingGroup.GET("/watch", r.pairingHandler.WatchStatus)
		pairingGroup.DELETE("/watch", r.pairingHandler.CancelWatch)
	}

	// Daily entry routes
	entryGroup := e.Group("/entries")
	entryGroup.Use(r.authMiddleware.Authenticate)
	{
		entryGroup.POST("", r.entryHandler.Save)
		entryGroup.GET("/today", r.entryHandler.Today)
		entryGroup.GET("/day/:date", r.entryHandler.Day)
	}

	// Device routes for push delivery
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.Register)
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.DELETE("/:id", r.deviceHandler.Deactivate)
	}

	// Test routes, only mounted when explicitly enabled
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		{
			testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
			testGroup.POST("/publish", r.testHandler.TestPublishEvent, r.authMiddleware.Authenticate)
		}
	}
}
