package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"charity-care-portal/cmd/bootstrap"
)

func main() {
	// Initialize application with all dependencies
	app, err := bootstrap.New(os.Args[1:])
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %v", err)
	}

	// Run the application
	app.Run()
}
