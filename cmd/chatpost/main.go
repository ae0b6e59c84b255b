package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/chatpost/internal/app"
	"github.com/bft-labs/chatpost/internal/cliconfig"
	"github.com/bft-labs/chatpost/internal/payload"
	"github.com/bft-labs/chatpost/pkg/chat"
	"github.com/bft-labs/chatpost/pkg/log"
	"github.com/bft-labs/chatpost/pkg/sender"
)

const longHelp = `
Send a JSON payload to a chatbot endpoint and print the reply.

Each run performs one POST. A failed send is logged and the process still
exits 0; only invalid flags or unreadable config/payload files fail the run.

Config precedence: flags > CHATPOST_* env (.env is loaded first) > config file > defaults.
`

var exampleUsage = strings.TrimSpace(`
  chatpost conversation
  chatpost conversation --msg "user=What is Qdrant?" --msg "assistant=A vector database." --msg "user=Thanks"
  chatpost message --text Hello --url http://localhost:5000/chatbot_agent
  chatpost message --payload ./payload.yaml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// commonFlags are shared by both subcommands.
type commonFlags struct {
	cfgPath     string
	envFile     string
	url         string
	payloadFile string
	watch       bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "chatpost: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var flags commonFlags

	root := &cobra.Command{
		Use:           "chatpost",
		Short:         "Send a JSON payload to a chatbot endpoint",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.cfgPath, "config", "", "path to config file (default: $HOME/.chatpost/config.toml)")
	pf.StringVar(&flags.envFile, "env-file", ".env", "dotenv file loaded before reading CHATPOST_* variables")
	pf.StringVar(&flags.payloadFile, "payload", "", "send this JSON/YAML/TOML document instead of the built-in payload")
	pf.BoolVar(&flags.watch, "watch", false, "resend whenever the --payload file changes")
	pf.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP timeout")
	pf.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay after a payload change before resending")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	pf.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also write JSON logs to this rotating file")

	var msgs []string
	conv := &cobra.Command{
		Use:   "conversation",
		Short: `POST {"messages": [...]} (default endpoint ` + cliconfig.DefaultConversationURL + `)`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg, flags, cliconfig.FlagConversationURL, func() string { return cfg.ConversationURL },
				func() (any, error) { return payload.Conversation(msgs) })
		},
	}
	conv.Flags().StringVar(&flags.url, "url", cfg.ConversationURL, "endpoint URL")
	conv.Flags().StringArrayVar(&msgs, "msg", nil, `conversation turn as role=content, repeatable (default "user=Hello." "assistant=Hi.")`)

	var text string
	msg := &cobra.Command{
		Use:   "message",
		Short: `POST {"message": "..."} (default endpoint ` + cliconfig.DefaultMessageURL + `)`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg, flags, cliconfig.FlagMessageURL, func() string { return cfg.MessageURL },
				func() (any, error) { return chat.NewSimplePayload(text), nil })
		},
	}
	msg.Flags().StringVar(&flags.url, "url", cfg.MessageURL, "endpoint URL")
	msg.Flags().StringVar(&text, "text", payload.DefaultText, "message text")

	root.AddCommand(conv, msg)
	return root
}

// run resolves configuration for one subcommand and performs the send.
// urlKey is the precedence key of the subcommand's --url flag.
func run(cmd *cobra.Command, cfg *cliconfig.Config, flags commonFlags, urlKey string, endpoint func() string, build func() (any, error)) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
	if changed["url"] {
		changed[urlKey] = true
		switch urlKey {
		case cliconfig.FlagConversationURL:
			cfg.ConversationURL = flags.url
		case cliconfig.FlagMessageURL:
			cfg.MessageURL = flags.url
		}
	}

	if err := cliconfig.LoadDotEnv(flags.envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}

	cfgFile := flags.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && (flags.cfgPath != "" || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := log.New(log.Options{Level: cfg.LogLevel, Output: cmd.ErrOrStderr(), File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Debug("configuration",
		log.String("url", endpoint()),
		log.Duration("timeout", cfg.Timeout),
		log.String("payload", flags.payloadFile),
		log.Bool("watch", flags.watch))

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := sender.New(sender.WithTimeout(cfg.Timeout), sender.WithLogger(logger))
	return app.New(s, logger).Run(ctx, app.Request{
		URL:         endpoint(),
		Build:       build,
		PayloadFile: flags.payloadFile,
		Watch:       flags.watch,
		Debounce:    cfg.Debounce,
	})
}
