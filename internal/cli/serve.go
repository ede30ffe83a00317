package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mira-care/mira-agent/internal/audit"
	"github.com/mira-care/mira-agent/internal/cache"
	"github.com/mira-care/mira-agent/internal/chat"
	"github.com/mira-care/mira-agent/internal/config"
	"github.com/mira-care/mira-agent/internal/notify"
	"github.com/mira-care/mira-agent/internal/policy"
	"github.com/mira-care/mira-agent/internal/provider"
	"github.com/mira-care/mira-agent/internal/reply"
	"github.com/mira-care/mira-agent/internal/severity"
	"github.com/mira-care/mira-agent/internal/store"
	"github.com/mira-care/mira-agent/internal/web"
)

// shutdownTimeout bounds graceful HTTP shutdown
const shutdownTimeout = 5 * time.Second

// NewServeCmd creates the serve command
func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the chat mediation HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(app.configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

// runServe constructs every collaborator once and serves until SIGINT
// or SIGTERM. Optional collaborators (storage, redis, gateway) come up
// nil when unconfigured and the pipeline degrades accordingly.
func runServe(cfg *config.Config) error {
	db, err := store.FromConfig(cfg.Storage)
	if err != nil {
		return fmt.Errorf("open audit store: %w", err)
	}
	if db == nil {
		log.Printf("serve: storage not configured, audit logging disabled")
	} else {
		defer db.Close()
	}

	// Keep the interface nil when the gateway is unconfigured; a typed
	// nil pointer would defeat the notifier's nil check.
	var gateway notify.Gateway
	if tw := notify.NewTwilio(cfg.Gateway); tw != nil {
		gateway = tw
	} else {
		log.Printf("serve: gateway not configured, notifications disabled")
	}

	transcript := cache.NewTranscript(cfg.Redis.Addr)
	if transcript != nil {
		defer transcript.Close()
	}

	sink := audit.NewSink(256)
	defer sink.Close()
	go drainAuditFailures(sink)

	var auditStore audit.Store
	var contacts chat.ContactDirectory
	if db != nil {
		auditStore = db
		contacts = db
	}

	mediator := chat.NewMediator(
		reply.NewGenerator(provider.Chain(cfg.Inference)),
		severity.NewClassifier(provider.ClassifierModel(cfg.Inference)),
		contacts,
		notify.NewNotifier(gateway),
		audit.NewLogger(auditStore, sink),
		transcript,
		policy.Thresholds{SMS: cfg.Policy.SMSThreshold, Call: cfg.Policy.CallThreshold},
	)

	server := web.New(cfg.Server, mediator, contacts, transcript)
	if err := server.Start(); err != nil {
		return err
	}
	log.Printf("serve: listening on %s", server.Addr())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("serve: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Stop(ctx)
}

// drainAuditFailures keeps the failure sink from filling. The normal
// log line was already written at the failure site; this loop is the
// hook for a future metrics forwarder.
func drainAuditFailures(sink *audit.Sink) {
	for range sink.Failures() {
	}
}
