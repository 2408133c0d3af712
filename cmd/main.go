package main

import (
	"os"

	"github.com/Anthya1104/coercion-quiz/internal/cobra"
	"github.com/Anthya1104/coercion-quiz/internal/config"
	"github.com/Anthya1104/coercion-quiz/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {

	if err := logger.InitLogger(config.LogLevelInfo); err != nil {
		logrus.Fatalf(("Error initializing Logger : %v"), err)
	}

	if err := cobra.ExecuteCmd(); err != nil {
		logrus.Errorf("Error executing command: %v", err)
		os.Exit(1)
	}

}
