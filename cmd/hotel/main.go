package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"hotel/config"
	"hotel/di"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/timezone"
	"hotel/transport/cli"
	"hotel/transport/cli/console"

	"github.com/rs/zerolog/log"
)

const argLength = 4

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != argLength {
		fmt.Fprintf(os.Stderr, "Usage: %s <dbname> <port> <user>\n", filepath.Base(os.Args[0]))

		return 1
	}

	logger.InitLogger()

	cfg := config.Get()
	cfg.ApplyArgs(os.Args[1], os.Args[2], os.Args[3])

	logger.SetLogLevel(cfg)

	if err := timezone.Init(cfg.App.Timezone); err != nil {
		log.Warn().Err(err).Msg("Falling back to local timezone")
	}

	cli.Greet(os.Stdout)

	fmt.Print("Connecting to database...")

	app, cleanup, err := di.InitializeApp(cfg, console.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error - Unable to Connect to Database:", err)
		fmt.Println("Make sure you started postgres on this machine")
		logger.ErrorWithStack(failure.Fatal(err))

		return 1
	}

	fmt.Println("Done")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	go func() {
		done <- app.Run(ctx)
	}()

	code := 0

	select {
	case err = <-done:
		if err != nil {
			log.Error().Err(err).Msg("Client stopped")
			fmt.Fprintln(os.Stderr, err)

			code = 1
		}
	case <-ctx.Done():
		log.Warn().Msg("Received interrupt")
		fmt.Println()
	}

	fmt.Print("Disconnecting from database...")
	cleanup()
	fmt.Println("Done\n\nBye !")

	return code
}
