package main

import (
	"context"
	"embed"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"medconsult/internal/config"
	"medconsult/internal/database"
	"medconsult/internal/gateway"
	"medconsult/internal/i18n"
	"medconsult/internal/services"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	timeout, _ := cfg.API.RequestTimeout()

	app := NewApp()

	// Preferences fall back to memory when the database cannot be opened.
	var db *gorm.DB
	db, err = database.Init(database.Config{
		Path:     cfg.Database.Path,
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		db = nil
	} else if sqlDB, err := db.DB(); err == nil {
		app.dbClose = sqlDB.Close
	}

	keyringService := services.NewKeyringService(nil)
	client, err := gateway.New(gateway.Config{
		BaseURL:           cfg.API.BaseURL,
		WebSocketURL:      cfg.API.WebSocketURL,
		Timeout:           timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Credentials:       keyringService,
	})
	if err != nil {
		fmt.Println("Error creating backend client:", err)
		return
	}

	translator := i18n.NewTranslator(
		i18n.WithOverlayDir(cfg.I18n.TranslationsDir),
		i18n.WithMissingHandler(app.onMissingTranslation),
	)
	app.services = services.NewServices(db, client, keyringService, translator)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Medical Consultation",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Medconsult",
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		OnStartup: func(ctx context.Context) {
			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind:       append([]interface{}{app}, app.services.Bindings()...),
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
