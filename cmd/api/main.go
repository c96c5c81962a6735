package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/aguamarina/pos-tienda/pkg/logger"
)

func main() {
	log := logger.NewLogger()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Warn("arquivo .env não encontrado", "error", err)
	}

	app, err := NewApp(log)
	if err != nil {
		log.Error("falha ao inicializar a aplicação", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.SetupRoutes("/api/v1")

	if err := app.Start(); err != nil {
		log.Error("servidor encerrado com erro", "error", err)
		os.Exit(1)
	}
}
