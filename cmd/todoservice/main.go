package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/todoitems/api-contract-tests/framework"
	"github.com/todoitems/api-contract-tests/todoservice"
)

const defaultPort = 5089

func main() {
	var port int
	var quiet bool

	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.IntVar(&port, "port", defaultPort, "port to listen on")
	fs.BoolVar(&quiet, "quiet", false, "do not log requests")
	if err := fs.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid parameters: %s\n", err)
		os.Exit(1)
	}

	logger := log.New(os.Stdout, "[todoservice] ", log.LstdFlags)
	var requestLogger framework.Logger = logger
	if quiet {
		requestLogger = framework.NullLogger()
	}
	service := todoservice.NewService(requestLogger)

	addr := fmt.Sprintf(":%d", port)
	logger.Printf("Listening on %s", addr)
	if err := http.ListenAndServe(addr, service.Handler()); err != nil {
		logger.Fatalf("Server stopped: %s", err)
	}
}
