// Package web exposes the voice agent over HTTP.
//
// The main endpoint is POST /talk: a multipart audio upload that runs a
// full voice turn and streams the synthesized reply back, with the
// transcript and reply text carried in response headers.
package web

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/daroloh/voice-agent/pkg/agent"
)

// Upload cap for audio files. Browser recordings of a spoken question
// stay well under this.
const maxUploadBytes = 25 * 1024 * 1024

// Options configures the HTTP server.
type Options struct {
	// FrontendURL is the CORS allow-origin, "*" for development.
	FrontendURL string

	// StaticDir serves the web client when non-empty.
	StaticDir string

	// Logger is the structured logger. Defaults to slog.Default.
	Logger *slog.Logger
}

// Server is the HTTP front of the voice agent.
type Server struct {
	app    *fiber.App
	agent  *agent.Agent
	logger *slog.Logger
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(a *agent.Agent, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		agent:  a,
		logger: logger.With("component", "web"),
	}

	app := fiber.New(fiber.Config{
		AppName:               "voice-agent",
		DisableStartupMessage: true,
		BodyLimit:             maxUploadBytes,
	})

	app.Use(recover.New())

	allowOrigins := opts.FrontendURL
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		ExposeHeaders: "X-Request-ID, X-User-Text, X-Reply-Text, X-Speech-Status",
	}))

	if opts.StaticDir != "" {
		app.Static("/", opts.StaticDir)
	}

	app.Get("/api", s.handleInfo)
	app.Post("/talk", s.handleTalk)
	app.Post("/reset", s.handleReset)
	app.Get("/health", s.handleHealth)

	s.app = app
	return s
}

// Start listens on the given address and blocks.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}
