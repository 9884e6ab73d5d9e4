package main

import (
	"context"
	"log"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	kvjetstream "github.com/go-monolith/mono/plugin/kv-jetstream"
	"github.com/megha-ranjith/To-Do/config"
	"github.com/megha-ranjith/To-Do/modules/activity"
	"github.com/megha-ranjith/To-Do/modules/api"
	"github.com/megha-ranjith/To-Do/modules/task"
	"github.com/megha-ranjith/To-Do/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("=== To-Do ===")
	log.Printf("HTTP Address: %s", cfg.HTTPAddr)
	log.Printf("Storage Driver: %s", cfg.Storage.Driver)

	// Create mono application with embedded NATS JetStream
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(cfg.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithJetStreamStorageDir(cfg.JetStreamDir),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// The kv driver keeps the document in a JetStream KV bucket. The framework
	// hands the plugin to the task module through SetPlugin("kv", ...).
	if cfg.Storage.Driver == config.DriverKV {
		kvPlugin, err := kvjetstream.New(kvjetstream.Config{
			Buckets: []kvjetstream.BucketConfig{storage.KVBucketConfig()},
		})
		if err != nil {
			log.Fatalf("Failed to create KV plugin: %v", err)
		}
		if err := app.RegisterPlugin(kvPlugin, "kv"); err != nil {
			log.Fatalf("Failed to register KV plugin: %v", err)
		}
	}

	// Order: independent modules first, then modules with dependencies
	app.Register(activity.NewModule(app.Logger()))                              // Event consumer
	app.Register(task.NewModule(cfg.Storage, app.Logger()))                     // Core domain + event emitter
	app.Register(api.NewModule(cfg.HTTPAddr, cfg.AllowedOrigins, app.Logger())) // HTTP pages + JSON API

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg *config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("Pages (%s):", cfg.HTTPAddr)
	log.Println("  GET    /                       - Dashboard")
	log.Println("  GET    /list                   - Task list")
	log.Println("  GET    /kanban                 - Kanban board")
	log.Println("  GET    /calendar               - Calendar")
	log.Println("")
	log.Println("JSON API:")
	log.Println("  GET    /api/tasks              - List tasks")
	log.Println("  POST   /api/tasks              - Create a task")
	log.Println("  PUT    /api/tasks/:id          - Update a task")
	log.Println("  DELETE /api/tasks/:id          - Delete a task")
	log.Println("  POST   /api/tasks/:id/toggle   - Toggle completion")
	log.Println("  GET    /api/stats              - Dashboard statistics")
	log.Println("  GET    /api/settings           - Read settings")
	log.Println("  PUT    /api/settings           - Change theme")
	log.Println("  GET    /api/activity           - Recent activity")
	log.Println("  GET    /health                 - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
