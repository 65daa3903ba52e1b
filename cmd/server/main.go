// main.go
//
// A scalable, high performance drop-in replacement for the trello-board koa data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of boardsdb.
// boardsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// boardsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with boardsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/boardsdb/internal/config"
	"github.com/localnerve/boardsdb/internal/database"
	"github.com/localnerve/boardsdb/internal/handlers"
	"github.com/localnerve/boardsdb/internal/middleware"
	"github.com/localnerve/boardsdb/internal/utils"

	_ "github.com/localnerve/boardsdb/docs/api" // Swagger docs
)

// @title BoardsDB API
// @version 1.0.0
// @description Go Fiber kanban board data service with multi-database support
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/boardsdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Attachment storage directory must exist before the first upload
	if err := os.MkdirAll(cfg.StorageDir, 0o755); err != nil {
		log.Fatalf("Failed to create storage directory: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.WriteError(c, err)
		},
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("boardsdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}
	app.Get("/health", healthHandler.Health)

	// Uploaded attachments served statically
	app.Static(cfg.StoragePrefix, cfg.StorageDir)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Bearer token resolution; routes decide whether identity is required
	api.Use(middleware.ResolveIdentity(cfg.JWTSecret))

	// Create handlers
	userHandler := &handlers.UserHandler{DB: db, Cfg: cfg}
	boardHandler := &handlers.BoardHandler{DB: db}
	listHandler := &handlers.ListHandler{DB: db}
	cardHandler := &handlers.CardHandler{DB: db, Cfg: cfg}
	commentHandler := &handlers.CommentHandler{DB: db}

	// Public user routes
	user := api.Group("/user")
	user.Post("/register", userHandler.Register)
	user.Post("/login", userHandler.Login)

	// Board routes
	board := api.Group("/board", middleware.RequireUser())
	board.Post("/", boardHandler.AddBoard)
	board.Get("/", boardHandler.GetBoards)
	board.Get("/:id", boardHandler.GetBoard)
	board.Put("/:id", boardHandler.UpdateBoard)
	board.Delete("/:id", boardHandler.DeleteBoard)

	// List routes
	list := api.Group("/list", middleware.RequireUser())
	list.Post("/", listHandler.AddList)
	list.Get("/", listHandler.GetLists)
	list.Get("/:id", listHandler.GetList)
	list.Put("/:id", listHandler.UpdateList)
	list.Delete("/:id", listHandler.DeleteList)

	// Card routes, attachment sub-resources before the :id wildcards
	card := api.Group("/card", middleware.RequireUser())
	card.Post("/attachment", cardHandler.AddAttachment)
	card.Put("/attachment/cover/:id", cardHandler.SetCover)
	card.Delete("/attachment/cover/:id", cardHandler.DeleteCover)
	card.Delete("/attachment/:id", cardHandler.DeleteAttachment)
	card.Post("/", cardHandler.AddCard)
	card.Get("/", cardHandler.GetCards)
	card.Get("/:id", cardHandler.GetCard)
	card.Put("/:id", cardHandler.UpdateCard)
	card.Delete("/:id", cardHandler.DeleteCard)

	// Comment routes
	comment := api.Group("/comment", middleware.RequireUser())
	comment.Post("/", commentHandler.AddComment)
	comment.Get("/", commentHandler.GetComments)

	// 404 handler
	app.Use(utils.NotFoundRoute)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
