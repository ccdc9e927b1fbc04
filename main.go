package main

import (
	"log"
	"os"
	"os/signal"

	"globitex-client/config"
	"globitex-client/exchange/globitex"
	"globitex-client/stream"

	"github.com/logrusorgru/aurora"
)

func main() {
	//
	// Register a kill signal handler with the operating system so that we can gracefully shutdown
	// if necessary.
	//
	osInterrupt := make(chan os.Signal, 1)

	signal.Notify(osInterrupt, os.Interrupt)

	//
	// Load the configuration and build an authenticated client.
	//
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load the configuration. (Error: %s)", err)
	}

	client := globitex.NewClient(cfg.Credentials.Key, cfg.Credentials.Secret)

	//
	// Exercise a few endpoints so that a credential or clock problem is obvious before the stream
	// comes up.
	//
	at, err := client.GetTime()
	if err != nil {
		log.Fatalf("Failed to retrieve the exchange time. (Error: %s)", err)
	}

	log.Printf("Exchange time is %s.", at)

	for _, symbol := range cfg.Stream.Symbols {
		ticker, err := client.GetTicker(symbol)
		if err != nil {
			log.Fatalf("Failed to retrieve the %s ticker. (Error: %s)", symbol, err)
		}

		log.Printf(
			"%s last traded at %s (bid %s / ask %s).",
			symbol,
			aurora.Bold(aurora.Yellow(ticker.Last())),
			aurora.Red(ticker.Bid()),
			aurora.Green(ticker.Ask()),
		)
	}

	accounts, err := client.GetAccountBalance()
	if err != nil {
		log.Fatalf("Failed to retrieve account balances. (Error: %s)", err)
	}

	for _, account := range accounts {
		for _, balance := range account.Balance {
			log.Printf(
				"Account %s holds %s (available %s, reserved %s).",
				account.Account, balance.Currency,
				aurora.Bold(aurora.Green(balance.Available)),
				aurora.Blue(balance.Reserved),
			)
		}
	}

	//
	// Start up the market-data stream service.
	//
	streamURL := cfg.Stream.URL

	if streamURL == "" {
		streamURL = stream.DefaultURL
	}

	feed := stream.NewService(streamURL, cfg.Stream.Symbols, cfg.Stream.HistorySize)

	chStarted, err := feed.Start()
	if err != nil {
		log.Fatalf("Failed to start the stream service. (Error: %s)", err)
	}

	<-chStarted

	//
	// Block until we are shut down by the operating system.
	//
	<-osInterrupt

	log.Print("An operating system interrupt has been received. Shutting down all services...")

	chStopped, err := feed.Stop()
	if err != nil {
		log.Fatalf("Failed to stop the stream service. (Error: %s)", err)
	}

	<-chStopped

	//
	// Wrap everything up.
	//
	log.Print("Goodbye.")
}
