// File: campwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campwise/config"
	"campwise/cron"
	"campwise/database"
	activityRepoPkg "campwise/database/repository/activity"
	dayRepoPkg "campwise/database/repository/day"
	entryRepoPkg "campwise/database/repository/entry"
	groupRepoPkg "campwise/database/repository/group"
	taskRepoPkg "campwise/database/repository/task"
	"campwise/handlers"
	"campwise/middleware"
	"campwise/routes"
	"campwise/services/activity"
	"campwise/services/notify"
	"campwise/services/schedule"
	"campwise/services/task"
	"campwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitEventClient()
	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":  utils.GetCacheClient(),
		"events": utils.GetEventClient(),
	}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	dayRepo := dayRepoPkg.NewMongoDayRepo()
	entryRepo := entryRepoPkg.NewMongoEntryRepo()
	groupRepo := groupRepoPkg.NewMongoGroupRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	taskRepo := taskRepoPkg.NewMongoTaskRepo()

	// change publisher + fan-out worker.
	publisher := notify.NewAsynqPublisher()
	defer publisher.Close()
	cron.InitChangeWorker()

	// services.
	scheduleService := &schedule.DefaultScheduleService{
		Days:       dayRepo,
		Entries:    entryRepo,
		Groups:     groupRepo,
		Activities: activityRepo,
		Notifier:   publisher,
	}
	activityService := &activity.DefaultActivityService{
		Repo:  activityRepo,
		Cache: utils.GetCacheClient(),
	}
	taskService := &task.DefaultTaskService{
		Repo: taskRepo,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService, logger)
	activityHandler := handlers.NewActivityHandler(activityService, logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Day endpoints.
		ListDaysHandler:  scheduleHandler.ListDaysHandler,
		CreateDayHandler: scheduleHandler.CreateDayHandler,
		GetDayHandler:    scheduleHandler.GetDayHandler,
		UpdateDayHandler: scheduleHandler.UpdateDayHandler,
		DeleteDayHandler: scheduleHandler.DeleteDayHandler,

		// Schedule entry endpoints.
		ListEntriesHandler: scheduleHandler.ListEntriesHandler,
		CreateEntryHandler: scheduleHandler.CreateEntryHandler,
		UpdateEntryHandler: scheduleHandler.UpdateEntryHandler,
		DeleteEntryHandler: scheduleHandler.DeleteEntryHandler,

		// Activity endpoints.
		CreateActivityHandler:     activityHandler.CreateActivityHandler,
		GetActivitySummaryHandler: activityHandler.GetActivitySummaryHandler,

		// Task endpoints.
		ListTasksHandler:  taskHandler.ListTasksHandler,
		GetTaskHandler:    taskHandler.GetTaskHandler,
		UpdateTaskHandler: taskHandler.UpdateTaskHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
