package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/s7eamy/learn2-api/config"
	"github.com/s7eamy/learn2-api/handlers"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("RAILWAY_ENVIRONMENT_NAME") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	config.LoadEnv()

	db, err := config.Connect()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	DBHandler := &handlers.DBHandler{DB: db}
	mux := handlers.Routes(DBHandler)

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Env.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(mux)

	serverAddr := "0.0.0.0:" + config.Env.Port
	log.Printf("Listening on %s", serverAddr)
	log.Fatal(http.ListenAndServe(serverAddr, corsHandler))
}
