package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"capbot/internal/adapters/file"
	"capbot/internal/adapters/generator"
	"capbot/internal/adapters/handler"
	"capbot/internal/adapters/sender"
	"capbot/internal/adapters/storage/memory"
	"capbot/internal/core/domain/commands"
	"capbot/internal/core/port"
	"capbot/internal/core/service"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting capbot...")

	viper.AddConfigPath(".")
	viper.SetConfigType("toml")

	viper.SetDefault("bot.rate_limit", "10s")
	viper.SetDefault("anthropic.model", "claude-2.1")
	viper.SetDefault("handler.timeout", "2m")

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	token := viper.GetString("telegram.bot_token")
	if token == "" {
		log.Fatal().Msg("telegram.bot_token not set")
	}

	var messageHandler *handler.Message

	opts := []bot.Option{
		bot.WithDefaultHandler(func(ctx context.Context, b *bot.Bot, update *models.Update) {
			messageHandler.Handle(ctx, b, update)
		}),
	}

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing telegram bot")
	}

	s := sender.NewTelegram(b)

	var completer port.TextCompleter

	apiKey := viper.GetString("anthropic.api_key")
	if apiKey == "" {
		log.Warn().Msg("anthropic.api_key not set, captions come from the local generator only")
	} else {
		completer = generator.NewClaude(apiKey, viper.GetString("anthropic.model"))
	}

	captionService := service.NewCaptionService(completer)
	sessions := memory.NewSessionStore()
	limiter := service.NewRateLimiter()

	registry := &commands.Registry{}
	registry.Register(commands.NewStart(s, "/start"))
	registry.Register(commands.NewStart(s, "/help"))
	registry.Register(commands.NewPlatform(s, sessions, "/platform"))
	registry.Register(commands.NewRegenerate(captionService, s, sessions, limiter, "/regenerate"))
	registry.Register(commands.NewRegenerate(captionService, s, sessions, limiter, "regenerate"))
	registry.Register(commands.NewSelect(s, sessions, "select"))
	registry.Register(commands.NewEdit(s, sessions, "edit"))

	submissions := commands.NewSubmission(captionService, s, file.NewDownloader(), sessions, limiter)

	handlerTimeout, err := time.ParseDuration(viper.GetString("handler.timeout"))
	if err != nil {
		log.Panic().Err(err).Msg("invalid timeout for handler in config")
	}

	messageHandler = handler.NewMessage(registry, submissions, handlerTimeout)
	callbackHandler := handler.NewCallback(registry, handlerTimeout)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, callbackHandler.Handle)

	log.Info().Msg("bot listening")
	b.Start(ctx)
}
