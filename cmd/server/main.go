package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/marcus/talent-radar/internal/api"
	"github.com/marcus/talent-radar/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	srv := api.NewServer(sheets.NewClient(), api.ConfigFromEnv())
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
