package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/NLynch19/Handover/internal/config"
	v1 "github.com/NLynch19/Handover/internal/delivery/http/v1"
	"github.com/NLynch19/Handover/internal/services"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.LoadHTMLGlob("web/templates/*.tmpl")
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router *gin.Engine) {
	registerCfg := config.Global().Register
	taskService := services.NewTaskService(
		globalLogger,
		globalRegister,
		registerCfg.WorkbookPath,
		registerCfg.Sheet,
	)
	reportService := services.NewReportService(globalLogger, globalRegister)
	handler := v1.New(globalLogger, taskService, reportService)

	router.GET("/", handler.HandleIndex)

	api := router.Group("/api/v1")

	taskRouter := api.Group("/tasks")
	taskRouter.GET("", handler.HandleListTasks)
	taskRouter.POST("", handler.HandleCreateTask)
	taskRouter.DELETE("", handler.HandleClearTasks)
	taskRouter.GET("/:id", handler.HandleGetTask)
	taskRouter.PATCH("/:id", handler.HandleUpdateTask)
	taskRouter.PUT("/:id/status", handler.HandleSetTaskStatus)
	taskRouter.DELETE("/:id", handler.HandleDeleteTask)

	registerRouter := api.Group("/register")
	registerRouter.POST("/import", handler.HandleImportRegister)
	registerRouter.GET("/export", handler.HandleExportRegister)
	registerRouter.POST("/save", handler.HandleSaveRegister)

	api.GET("/report", handler.HandleReport)
}
