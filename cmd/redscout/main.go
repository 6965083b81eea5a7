// redscout agent launcher. One binary runs any of the five agent
// variants; the coordinator process additionally hosts the monitoring
// scheduler and the recovery daemon.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/redscout/redscout/pkg/a2a"
	"github.com/redscout/redscout/pkg/agents"
	"github.com/redscout/redscout/pkg/alert"
	"github.com/redscout/redscout/pkg/breaker"
	"github.com/redscout/redscout/pkg/config"
	"github.com/redscout/redscout/pkg/coordinator"
	"github.com/redscout/redscout/pkg/database"
	"github.com/redscout/redscout/pkg/recovery"
	"github.com/redscout/redscout/pkg/registry"
	"github.com/redscout/redscout/pkg/runtime"
	"github.com/redscout/redscout/pkg/taskstore"
	"github.com/redscout/redscout/pkg/version"
)

const usageText = `Usage: redscout <command> [flags]

Commands:
  migrate              apply pending database migrations and exit
  serve <agent_type>   run one agent (coordinator|retrieval|filter|summarize|alert)
  run-cycle            run a single monitoring cycle and print the result
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	loadDotenv(os.Args[2:])

	switch os.Args[1] {
	case "migrate":
		os.Exit(runMigrate())
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "run-cycle":
		os.Exit(runCycle())
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usageText)
		os.Exit(2)
	}
}

// loadDotenv loads the .env file named by -env (default "./.env")
// before any subcommand reads the environment. A missing file is fine.
func loadDotenv(args []string) {
	envPath := ".env"
	for i, arg := range args {
		if (arg == "-env" || arg == "--env") && i+1 < len(args) {
			envPath = args[i+1]
		}
	}
	if err := godotenv.Load(envPath); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Could not load .env file", "path", envPath, "error", err)
		}
		return
	}
	slog.Info("Loaded environment", "path", envPath)
}

func runMigrate() int {
	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return 2
	}

	// NewClient pings and applies pending migrations.
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Migration failed", "error", err)
		return 1
	}
	defer dbClient.Close()

	slog.Info("Migrations applied")
	return 0
}

func runServe(args []string) int {
	if len(args) < 1 {
		fmt.Fprint(os.Stderr, "serve requires an agent type\n\n"+usageText)
		return 2
	}
	agentType := config.AgentType(args[0])

	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return 2
	}
	// Unless A2A_PORT overrides it, each agent listens on its
	// conventional port so a single .env serves all five processes.
	if os.Getenv("A2A_PORT") == "" {
		if port, ok := defaultPorts[agentType]; ok {
			cfg.A2A.Port = port
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return 2
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return 1
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	store := taskstore.New(dbClient.Client)

	reg := connectRegistry(ctx, cfg)
	if reg != nil {
		defer reg.Close()
	}

	breakers := breaker.NewRegistry(breaker.Config{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
	})
	client := a2a.NewClient(cfg.A2A.APIKey, cfg.A2A.RequestTimeout, breakers)

	g, ctx := errgroup.WithContext(ctx)

	var agent runtime.Agent
	switch agentType {
	case config.AgentCoordinator:
		coord := coordinator.New(cfg, store, reg, client)
		agent = coord
		g.Go(func() error { return coord.Run(ctx) })
		daemon := recovery.New(cfg.Recovery, store)
		g.Go(func() error { return daemon.Run(ctx) })

	case config.AgentRetrieval:
		agent = agents.NewRetrieval(agents.NewRedditFetcher(version.Full()))

	case config.AgentFilter:
		scorer := agents.NewBlendedScorer(cfg.Workflow.KeywordWeight, cfg.Workflow.SemanticWeight)
		agent = agents.NewFilter(scorer, store, cfg.Workflow.RelevanceThreshold)

	case config.AgentSummarize:
		agent = agents.NewSummarize(agents.TruncatingSummarizer{})

	case config.AgentAlert:
		agent = alert.New(cfg.Alert, store, nil, nil)

	default:
		fmt.Fprintf(os.Stderr, "unknown agent type %q\n\n%s", agentType, usageText)
		return 2
	}

	server, err := runtime.NewServer(cfg, agent, reg, store)
	if err != nil {
		slog.Error("Failed to build agent server", "error", err)
		return 2
	}
	server.AttachDB(dbClient.DB())
	g.Go(func() error { return server.Run(ctx) })

	slog.Info("redscout agent started",
		"agent_type", agentType,
		"agent_id", server.AgentID(),
		"port", cfg.A2A.Port,
		"version", version.Full())

	if err := g.Wait(); err != nil {
		slog.Error("Agent exited with error", "error", err)
		return 1
	}
	slog.Info("Shutdown complete")
	return 0
}

func runCycle() int {
	cfg, err := config.Initialize()
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return 2
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return 1
	}
	defer dbClient.Close()

	store := taskstore.New(dbClient.Client)
	reg := connectRegistry(ctx, cfg)
	if reg != nil {
		defer reg.Close()
	}
	breakers := breaker.NewRegistry(breaker.Config{
		FailureThreshold: cfg.Breaker.FailureThreshold,
		RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
	})
	client := a2a.NewClient(cfg.A2A.APIKey, cfg.A2A.RequestTimeout, breakers)

	coord := coordinator.New(cfg, store, reg, client)
	result, err := coord.RunMonitoringCycle(ctx, nil, nil)
	if result != nil {
		encoded, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(encoded))
	}
	if err != nil {
		slog.Error("Monitoring cycle failed", "error", err)
		return 1
	}
	return 0
}

// connectRegistry returns a live registry or nil. A down Redis degrades
// discovery to the configured static agent URLs instead of failing the
// process.
func connectRegistry(ctx context.Context, cfg *config.Config) *registry.Registry {
	reg, err := registry.New(cfg.Registry.RedisURL, cfg.A2A.HeartbeatInterval)
	if err != nil {
		slog.Warn("Invalid Redis URL, using static agent URLs", "error", err)
		return nil
	}
	if err := reg.Ping(ctx); err != nil {
		slog.Warn("Redis unreachable, using static agent URLs", "error", err)
		_ = reg.Close()
		return nil
	}
	return reg
}

var defaultPorts = map[config.AgentType]int{
	config.AgentCoordinator: 8000,
	config.AgentRetrieval:   8001,
	config.AgentFilter:      8002,
	config.AgentSummarize:   8003,
	config.AgentAlert:       8004,
}
