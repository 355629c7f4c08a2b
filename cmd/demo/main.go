// Command demo walks through the adapter against the in-memory SDK: connect,
// subscribe to a few streams, run some operations, replay callbacks and dump
// the dispatcher trace.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/ro"
	"github.com/spf13/cobra"
	"github.com/xpanvictor/rxconversations/internal/config"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
	"github.com/xpanvictor/rxconversations/pkg/bridge"
	"github.com/xpanvictor/rxconversations/pkg/conversations"
	"github.com/xpanvictor/rxconversations/pkg/conversations/fake"
	"github.com/xpanvictor/rxconversations/pkg/deferred"
	"gopkg.in/yaml.v3"
)

var (
	configPath string
	timeout    time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:          "demo",
	Short:        "Drive the reactive conversations adapter against an in-memory SDK",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		// fetch cfg
		cfg, err := loadSettings()
		if err != nil {
			return err
		}
		logger := Logger.New(cfg.Debug || verbose)
		logger.Infow("Logger initialized", "env", cfg.Env)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		adapter := conversations.New(cfg.BridgeOptions(), logger)
		defer adapter.Close()

		if err := run(ctx, adapter, logger); err != nil {
			return err
		}
		logger.Info("Shutdown demo")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: config_<ENV>.yaml in the working directory)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Deadline for the whole walkthrough")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadSettings() (*config.Settings, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func run(ctx context.Context, adapter *conversations.Adapter, logger *Logger.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sdkClient := fake.NewClient(nil)
	connector := &fake.Connector{Client: sdkClient}
	connector.Reply("connect", fake.OK, sdkClient)

	client, err := deferred.Await(ctx, adapter.Connect(connector, "demo-token", &conversations.ClientProperties{Region: "us1"}, nil))
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	clientRx := adapter.Client(client)

	subs := []ro.Subscription{
		clientRx.ConnectionStateUpdated().Subscribe(ro.NewObserver(
			func(s conversations.ConnectionState) { logger.Infow("connection state", "state", s.String()) },
			func(err error) { logger.Warnw("connection stream failed", "error", err) },
			func() { logger.Debugw("connection stream completed") },
		)),
		clientRx.ConversationAdded().Subscribe(ro.NewObserver(
			func(c conversations.Conversation) { logger.Infow("conversation added", "sid", c.SID()) },
			func(err error) { logger.Warnw("conversation stream failed", "error", err) },
			func() {},
		)),
	}
	defer func() {
		for _, s := range subs {
			s.Unsubscribe()
		}
	}()

	general := fake.NewConversation("CH0001", "general", "General")
	sdkClient.Reply("conversation", fake.OK, general)
	conv, err := deferred.Await(ctx, clientRx.ConversationWithSIDOrUniqueName("general"))
	if err != nil {
		return fmt.Errorf("conversation: %w", err)
	}
	convRx := adapter.Conversation(conv)
	subs = append(subs, convRx.MessageAdded().Subscribe(ro.NewObserver(
		func(m conversations.Message) {
			logger.Infow("message added", "index", m.Index(), "author", m.Author(), "body", m.Body())
		},
		func(err error) { logger.Warnw("message stream failed", "error", err) },
		func() {},
	)))

	general.Reply("join", fake.OK, nil)
	if err := deferred.AwaitCompletion(ctx, convRx.Join()); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	// replay what the SDK would deliver after joining
	client.Delegate().ConnectionStateUpdated(client, int(conversations.ConnectionConnected))
	client.Delegate().ConversationAdded(client, conv)
	for i, body := range []string{"hello", "anyone here?"} {
		conv.Delegate().MessageAdded(client, conv, fake.NewMessage(fmt.Sprintf("IM%04d", i), uint(i), "demo", body))
	}

	general.Reply("unreadMessagesCount", fake.OK, nil)
	if _, err := deferred.Await(ctx, convRx.UnreadMessagesCount()); err != nil {
		logger.Infow("unread count unavailable", "error", err)
	}
	general.Reply("messagesCount", fake.OK, uint(2))
	count, err := deferred.Await(ctx, convRx.MessagesCount())
	if err != nil {
		return fmt.Errorf("messages count: %w", err)
	}
	logger.Infow("messages count", "count", count)

	dispatchers := map[string]*bridge.Dispatcher{
		"client":       clientRx.Dispatcher(),
		"conversation": convRx.Dispatcher(),
	}
	if err := dumpTrace(os.Stdout, dispatchers); err != nil {
		return fmt.Errorf("dump trace: %w", err)
	}
	for name, d := range dispatchers {
		logger.Infow("dispatcher stats", "name", name, "id", d.ID().String(), "stats", d.Stats())
	}
	return ctx.Err()
}

type traceLine struct {
	Dispatcher string    `yaml:"dispatcher"`
	Seq        uint64    `yaml:"seq"`
	Event      string    `yaml:"event"`
	Args       int16     `yaml:"args"`
	At         time.Time `yaml:"at"`
}

// dumpTrace writes each dispatcher's recent invocations as one YAML document.
func dumpTrace(w io.Writer, dispatchers map[string]*bridge.Dispatcher) error {
	out := make(map[string][]traceLine, len(dispatchers))
	for name, d := range dispatchers {
		id := d.ID().String()
		for _, rec := range d.Recent(16) {
			out[name] = append(out[name], traceLine{Dispatcher: id, Seq: rec.Seq, Event: rec.Event, Args: rec.Arity, At: rec.At})
		}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
