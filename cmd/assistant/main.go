package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spec-kit/ops-portal/internal/assistant"
	"github.com/spec-kit/ops-portal/internal/config"
	"github.com/spec-kit/ops-portal/internal/events"
	"github.com/spec-kit/ops-portal/internal/observability"
)

type session struct {
	cfg        *config.Config
	logger     *zap.Logger
	client     *assistant.Client
	tokens     *assistant.TokenCache
	dispatcher events.Dispatcher
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	client := assistant.NewClient(cfg.Assistant.BaseURL, nil)

	store, err := assistant.NewFileTokenStore(cfg.Assistant.TokenStorePath)
	if err != nil {
		logger.Warn("token file store unavailable, falling back to memory", zap.Error(err))
		store = &assistant.MemoryTokenStore{}
	}

	return &session{
		cfg:        cfg,
		logger:     logger,
		client:     client,
		tokens:     assistant.NewTokenCache(client, store, cfg.Assistant.OperatorEmail, cfg.Assistant.OperatorPassword),
		dispatcher: events.NewInMemoryDispatcher(),
	}, nil
}

func main() {
	root := &cobra.Command{
		Use:   "assistant",
		Short: "Admin assistant for the operations portal",
		Long:  "Interactive assistant that turns free-text commands into portal operations: bulk leave approval and employee status changes.",
	}

	root.AddCommand(newChatCmd(), newRosterCmd(), newRunCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive assistant session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			conversation := assistant.NewConversation(printMessage)
			executor := assistant.NewExecutor(sess.client, sess.tokens, sess.dispatcher, sess.logger)
			controller := assistant.NewController(conversation, executor)

			fmt.Println("Admin assistant ready. Type a command or 'quit' to exit.")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}
				if err := controller.Submit(ctx, line); err != nil {
					fmt.Println("busy, wait for the current command to finish")
				}
				if ctx.Err() != nil {
					break
				}
			}
			return scanner.Err()
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [command...]",
		Short: "Execute a single assistant command and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.logger.Sync() //nolint:errcheck

			conversation := assistant.NewConversation(printMessage)
			executor := assistant.NewExecutor(sess.client, sess.tokens, sess.dispatcher, sess.logger)
			controller := assistant.NewController(conversation, executor)

			return controller.Submit(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func newRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Print the cached employee directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			defer sess.logger.Sync() //nolint:errcheck

			roster := assistant.NewRoster(sess.client, sess.tokens, sess.dispatcher, sess.logger)
			entries, err := roster.Entries(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "EMP ID\tNAME\tEMAIL\tSTATUS")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.EmpID, e.Name, e.Email, e.Status)
			}
			return w.Flush()
		},
	}
}

func printMessage(m assistant.Message) {
	switch m.Origin {
	case assistant.OriginOperator:
		fmt.Printf("you: %s\n", m.Text)
	default:
		fmt.Printf("assistant: %s\n", m.Text)
	}
}
