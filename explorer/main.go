package main

import (
	"context"
	"os"

	"bikeshare/communication"
	"bikeshare/explorer/config"
	"bikeshare/report"
	"bikeshare/utils"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	logLevelEnv    = "LOG_LEVEL"
	configPathEnv  = "CONFIG_PATH"
	datasetsDirEnv = "DATASETS_DIR"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}

func getEnv(name string, defaultValue string) string {
	value := os.Getenv(name)
	if value == "" {
		return defaultValue
	}
	return value
}

// initPublisher returns nil when publishing is disabled
func initPublisher(publisherConfig report.PublisherConfig) (*report.Publisher, error) {
	if !publisherConfig.Enabled {
		return nil, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(os.Getenv(publisherConfig.URLEnv))
	if err != nil {
		return nil, err
	}

	publisher, err := report.NewPublisher(rabbitMQ, publisherConfig)
	if err != nil {
		_ = rabbitMQ.Close()
		return nil, err
	}
	return publisher, nil
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	if err := InitLogger(getEnv(logLevelEnv, "info")); err != nil {
		log.Fatalf("%s", err)
	}

	explorerConfig, err := config.LoadConfig(getEnv(configPathEnv, config.DefaultConfigFilepath))
	if err != nil {
		log.Errorf("[stage: explorer] error loading config: %s", err.Error())
		return
	}
	explorerConfig.DatasetsDir = getEnv(datasetsDirEnv, explorerConfig.DatasetsDir)

	publisher, err := initPublisher(explorerConfig.Publisher)
	if err != nil {
		log.Errorf("[stage: explorer] error initializing report publisher: %s", err.Error())
		return
	}

	var explorer *Explorer
	if publisher != nil {
		defer func(publisher *report.Publisher) {
			err := publisher.Kill()
			if err != nil {
				log.Errorf("[stage: explorer] error closing report publisher: %s", err.Error())
			}
		}(publisher)
		explorer = NewExplorer(explorerConfig, os.Stdin, os.Stdout, publisher)
	} else {
		explorer = NewExplorer(explorerConfig, os.Stdin, os.Stdout, nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- explorer.Run(ctx)
	}()

	signalChannel := utils.GetSignalChannel()
	select {
	case err = <-done:
		if err != nil {
			log.Errorf("[stage: explorer] %s", err.Error())
		}
	case sig := <-signalChannel:
		log.Infof("[stage: explorer] %s received, exiting", sig)
	}

	log.Debug("[stage: explorer] finish main.go")
}
