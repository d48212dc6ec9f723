// voice-agent: HTTP service turning a spoken question into a spoken answer.
// Audio uploads are transcribed, answered against the shared conversation
// history, and synthesized back to speech.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/daroloh/voice-agent/internal/config"
	"github.com/daroloh/voice-agent/internal/log"
	"github.com/daroloh/voice-agent/pkg/agent"
	"github.com/daroloh/voice-agent/pkg/convo"
	"github.com/daroloh/voice-agent/pkg/reply"
	"github.com/daroloh/voice-agent/pkg/stt"
	"github.com/daroloh/voice-agent/pkg/tts"
	"github.com/daroloh/voice-agent/pkg/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Init(cfg.LogLevel)
	logger := log.Component("main")

	// Transcription
	sttProvider, err := stt.NewAssemblyAI(stt.WithAPIKey(cfg.AssemblyAPIKey))
	if err != nil {
		logger.Error("stt provider init failed", "error", err)
		os.Exit(1)
	}
	transcriber := stt.NewTranscriber(sttProvider, stt.DefaultPollPolicy())

	// Reply generation: hosted model, optional local model, rule-based floor.
	remote, err := reply.NewClient(
		reply.WithAPIKey(cfg.OpenAIAPIKey),
		reply.WithModel(cfg.ChatModel),
	)
	if err != nil {
		logger.Error("chat provider init failed", "error", err)
		os.Exit(1)
	}

	tiers := []reply.Provider{remote}
	if cfg.OllamaURL != "" {
		local, err := reply.NewLocalClient(
			reply.WithBaseURL(cfg.OllamaURL),
			reply.WithModel(cfg.OllamaModel),
		)
		if err != nil {
			logger.Warn("local chat tier disabled", "error", err)
		} else {
			tiers = append(tiers, local)
		}
	}
	tiers = append(tiers, reply.NewRules())

	chain, err := reply.NewChain(tiers...)
	if err != nil {
		logger.Error("reply chain init failed", "error", err)
		os.Exit(1)
	}

	store := convo.NewStore()
	generator := reply.NewGenerator(chain, store, reply.WithWindow(cfg.HistoryWindow))

	// Speech synthesis with silent fallback
	ttsProvider, err := tts.NewOpenAI(
		tts.WithAPIKey(cfg.OpenAIAPIKey),
		tts.WithModel(cfg.TTSModel),
		tts.WithVoice(cfg.TTSVoice),
	)
	if err != nil {
		logger.Error("tts provider init failed", "error", err)
		os.Exit(1)
	}
	synthesizer := tts.NewSynthesizer(ttsProvider)

	a := agent.New(transcriber, generator, synthesizer, store)
	server := web.NewServer(a, web.Options{
		FrontendURL: cfg.FrontendURL,
		StaticDir:   cfg.StaticDir,
		Logger:      log.L(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(":" + cfg.Port)
	}()

	logger.Info("voice agent started",
		"port", cfg.Port,
		"chat_model", cfg.ChatModel,
		"tts_voice", cfg.TTSVoice,
		"history_window", cfg.HistoryWindow,
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("shutting down", "signal", s.String())
	case err := <-errCh:
		logger.Error("server stopped", "error", err)
	}

	if err := server.Shutdown(); err != nil {
		logger.Warn("shutdown error", "error", err)
	}
	if err := a.Close(); err != nil {
		logger.Warn("close error", "error", err)
	}
}
