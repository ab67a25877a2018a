package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chat-rooms/auth"
	"chat-rooms/contract"
	"chat-rooms/domain/event"
	"chat-rooms/runtime"
	"chat-rooms/runtime/workers"
	"chat-rooms/sink"
	"chat-rooms/web"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting so that every defer executes before the
// process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Core state: registry, subscriptions, pipeline channels
	registry := runtime.NewRegistry(config.RoomCodeLength, config.LimitMessages)
	subs := runtime.NewSubscriptions()
	rawEvents := make(chan event.DomainEvent, config.BufferSize)
	broadcasts := make(chan event.DomainEvent, config.BufferSize)
	router := runtime.NewRouter(log, registry, subs, rawEvents, broadcasts, config.SinkTimeout)

	// 3. Permanent sinks fed by every broadcast
	timeline := sink.NewTimeline(config.TimelineCapacity)
	permanent := []contract.EventSink{
		sink.NewHistorySink(registry, log),
		timeline,
	}

	// 4. Supervised workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewSanitizeWorker(rawEvents, broadcasts, log))
	sup.Add(workers.NewFanoutWorker(log, subs, permanent, broadcasts, config.SinkTimeout))
	sup.Add(workers.NewHeartbeatWorker(log, config.HeartbeatInterval, func() (int, int) {
		return registry.RoomCount(), router.BoundCount()
	}))
	sup.Add(workers.NewReaperWorker(log, registry, subs, config.RoomIdleTTL, config.ReapInterval))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sup.Run(ctx)

	// 6. HTTP front-end
	sessions := auth.NewSessions(config.SessionSecret, config.SessionDuration)
	server := web.NewServer(log, registry, router, sessions, timeline, config.ConnectionBufferSize)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{
		Addr:              address,
		Handler:           server.Routes(config.CSRFKey, config.CSRFSecure),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	log.Info("Chat room server listening", "address", address)

	select {
	case <-ctx.Done():
		log.Info("Shutdown requested")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}
