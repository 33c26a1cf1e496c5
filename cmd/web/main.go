package main

import (
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/school-management/sm-console/internal/web"
	zlog "github.com/school-management/sm-console/pkg/log"
)

func run() error {
	var logger = zlog.InitDev()
	if path := os.Getenv("SM_LOG_FILE"); path != "" {
		logger = zlog.InitProdFile(path, 100, 5)
	}
	defer zlog.Sync()

	return web.Run(logger)
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("%+v\n", err)
	}
}
