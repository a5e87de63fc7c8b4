package main

import (
	"log"
	"os"

	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
	"app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "./uploads"
	}

	cfg := config.Config{
		JWTSecret: jwtSecret,
		UploadDir: uploadDir,
		Port:      port,
	}

	// Initialize database
	pool := database.Connect(databaseURL)
	defer pool.Close()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Serve uploaded files
	app.Static("/uploads", cfg.UploadDir)

	h := handlers.New(
		database.NewUserStore(pool),
		database.NewBasicStore(pool),
		storage.NewDiskStore(cfg.UploadDir),
		cfg,
	)

	// Setup routes
	routes.SetupRoutes(app, h)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
