package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/homevine/propman/tests/helpers"
	"github.com/joho/godotenv"
)

const usage = `Boot the propman stack in containers: the database, the API server, and
optionally a builder image for debugging. Containers run until interrupted.

Usage:

  testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to a .env file applied before startup

example
  testcontainers -f deploy/local.env
`

func main() {
	showHelp := flag.Bool("h", false, "show help")
	envFile := flag.String("f", "", "path to the .env file")
	flag.Parse()

	if *showHelp {
		fmt.Print(usage)
		return
	}

	if *envFile != "" {
		log.Printf("Loading environment variables from %s", *envFile)
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("Failed to load environment variables: %v", err)
		}
	} else {
		log.Print("No environment file specified, using current environment variables")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var containers *helpers.TestContainers
	go func() {
		var err error
		containers, err = helpers.CreateAllTestContainers(nil)
		if err != nil {
			log.Fatalf("Failed to create test containers: %v", err)
		}
		log.Print("Containers are up, interrupt to tear down")
	}()

	sig := <-stop
	log.Printf("Received signal: %v, terminating test containers", sig)
	if containers != nil {
		containers.Terminate(nil)
	}
}
