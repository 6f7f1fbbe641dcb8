package main

import (
	"fmt"
	"os"

	"github.com/gridcal/gridcal/internal/app"
	log "github.com/sirupsen/logrus"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	command := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	switch command {
	case "serve":
		runServe()
	case "validate":
		os.Exit(runValidate(args, os.Stdout, os.Stderr))
	case "generate":
		os.Exit(runGenerate(args, os.Stdout, os.Stderr))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\nusage: gridcal [serve|validate|generate] [flags]\n", command)
		os.Exit(2)
	}
}

func runServe() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	if err := application.Run(); err != nil {
		log.Fatal(err)
	}
}
