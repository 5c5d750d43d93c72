package main

import (
	"log"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/internal/server"

	// Register migrations and seeders for starkctl-less deployments.
	_ "github.com/ganesh12122/Stark-Products-E-Commerce-Website/database/migrations"
	_ "github.com/ganesh12122/Stark-Products-E-Commerce-Website/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
