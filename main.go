package main

import (
	"fmt"
	"log"
	"os"

	"github.com/todoitems/api-contract-tests/client"
	"github.com/todoitems/api-contract-tests/framework"
	"github.com/todoitems/api-contract-tests/todotests"
)

func allOptionNames() []string {
	return todotests.AllOptions
}

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}
	mainDebugLogger.Printf("Service URL: %s, request timeout: %s, enabled options: [%s]",
		params.serviceURL, params.requestTimeout, params.options)

	if err := client.AwaitService(params.serviceURL, params.waitTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Test service error: %s\n", err)
		os.Exit(1)
	}
	serviceClient := client.NewTodoItemsClient(params.serviceURL, params.requestTimeout, mainDebugLogger)

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters, params.options, todotests.AllOptions)

	fmt.Println("Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	config := todotests.SuiteConfig{
		Options:        params.options,
		LenientCleanup: params.lenientCleanup,
	}

	results := todotests.RunTestSuite(serviceClient, config, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the failed tests again:")
		fmt.Printf("  %s\n", params.rerunCommand(os.Args[0], results))
		os.Exit(1)
	}
}
