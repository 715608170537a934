package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"Backend-OfficeReports/src/database"
	"Backend-OfficeReports/src/jobs"
	"Backend-OfficeReports/src/routes"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	if err := database.ConnectPostgres(); err != nil {
		log.Fatalf("Error connecting to PostgreSQL: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()
	if database.RedisClient != nil {
		jobs.StartWorker()
		jobs.StartScheduler()
	}

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}
}
