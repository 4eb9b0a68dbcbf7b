package main

import (
	"fmt"
	"os"

	"github.com/contrabandkitchen/backend/configs"
	"github.com/contrabandkitchen/backend/middlewares"
	"github.com/contrabandkitchen/backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := configs.LoadConfig()

	// DB
	db, err := configs.OpenDB(cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Fatal().Err(err).Msg("seed menu failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("register routes failed")
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
