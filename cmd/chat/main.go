package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/rowanvale/toolloop/internal/client"
	"github.com/rowanvale/toolloop/internal/config"
	"github.com/rowanvale/toolloop/internal/runner"
	"github.com/rowanvale/toolloop/tools"
)

func main() {
	// .env is optional; real environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("TL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	reg := tools.NewRegistry()
	for _, def := range []tools.ToolDefinition{
		tools.ReadFileDefinition,
		tools.ListFilesDefinition,
		WeatherDefinition,
		CalculateDefinition,
	} {
		if err := reg.Register(def); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	c := client.New(cfg.Endpoint(), client.WithTimeout(cfg.Timeout()))
	r := runner.New(c, reg, cfg.Model)

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Chat with %s (Ctrl-C to quit)\n", cfg.Model)

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

outer:
	for {
		fmt.Print("[94mYou[0m: ")
		var (
			user string
			ok   bool
		)
		select {
		case <-ctx.Done():
			break outer
		case user, ok = <-inputCh:
			if !ok {
				break outer
			}
		}
		if strings.TrimSpace(user) == "" {
			continue
		}

		answer, err := r.RunTurn(ctx, user)
		if err != nil {
			// Turn-fatal failures end the cycle; the next prompt starts fresh.
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("[93m%s[0m: %s\n", cfg.Model, answer)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
	}
}
