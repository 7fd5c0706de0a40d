package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/form3115-prep/backend/internal/config"
	v1 "github.com/form3115-prep/backend/internal/controllers/v1"
	"github.com/form3115-prep/backend/internal/dcn"
	"github.com/form3115-prep/backend/internal/models"
	"github.com/form3115-prep/backend/internal/pdf"
	"github.com/form3115-prep/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.Server.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.Server.LogFormat == "" && gin.IsDebugging()) || cfg.Server.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Upsert the change number reference data
	err = dcn.Seed(models.DB)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The PDF generator is usable without the template being present, it
	// fails per-request instead. This keeps the API available when only
	// the template is missing.
	v1.PDF = pdf.NewGenerator(cfg.PDF.TemplatePath)
	if err := v1.PDF.VerifyMapping(); err != nil {
		log.Warn().Err(err).Str("template", cfg.PDF.TemplatePath).Msg("form template not verified, PDF generation may fail")
	}

	r, err := router.New(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
