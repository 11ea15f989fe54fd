package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/yigit/uniregistry/internal/server"
)

// @title UniRegistry API
// @version 1.0
// @description In-memory university registry: departments, instructors, courses, students and class sessions
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		log.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	log.Info().Msg("Application finished gracefully.")
}
