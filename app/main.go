package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"minshuku/config"
	"minshuku/services/lodging"
	"minshuku/services/lodging/delivery"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file loaded, using process environment")
	}

	log = config.GetLogrusInstance()

	db, err := config.BootDB()
	if err != nil {
		log.WithError(err).Fatal("Failed to boot DB")
	}
	defer func() {
		if err := config.CloseDB(); err != nil {
			log.WithError(err).Error("Failed to close DB")
		}
	}()

	services := lodging.NewServices(lodging.NewRepositories(db), config.GetContextTimeout())

	if !config.GetHTTPEnabled() {
		log.Info("HTTP disabled, schema is up to date")
		return
	}
	startHTTP(services.HTTP())
}

func startHTTP(uc delivery.UseCases) {
	log.Info("Starting HTTP")
	app := delivery.NewApp(uc)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Errorf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
