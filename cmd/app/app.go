package main

import (
	"os"

	"github.com/DRSN-tech/lca-catalog/internal/app"
	config "github.com/DRSN-tech/lca-catalog/internal/cfg"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
)

// main
//
//	@title			LCA Catalog API
//	@version		1.0
//	@description	Загрузка каталога продуктов, изображений и AI-классификация для оценки углеродного следа.
//	@BasePath		/api/v1
func main() {
	log := logger.NewFromEnv()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
