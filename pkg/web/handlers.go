package web

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/daroloh/voice-agent/pkg/agent"
	"github.com/daroloh/voice-agent/pkg/reply"
	"github.com/daroloh/voice-agent/pkg/stt"
)

// handleInfo describes the service for API discovery.
func (s *Server) handleInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name": "voice-agent",
		"endpoints": fiber.Map{
			"talk":   "POST /talk (multipart field: file)",
			"reset":  "POST /reset",
			"health": "GET /health",
		},
	})
}

// handleTalk runs one voice turn: audio upload in, synthesized reply out.
// The transcript and reply text ride along as response headers.
func (s *Server) handleTalk(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing multipart field: file",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable upload",
		})
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unreadable upload",
		})
	}

	mimeType := fileHeader.Header.Get("Content-Type")

	result, err := s.agent.SubmitTurn(c.Context(), audio, mimeType)
	if err != nil {
		status, message := errorResponse(err)
		s.logger.Warn("turn failed", "status", status, "error", err)
		return c.Status(status).JSON(fiber.Map{
			"error": message,
		})
	}

	c.Set("X-Request-ID", result.RequestID)
	c.Set("X-User-Text", headerSafe(result.UserText))
	c.Set("X-Reply-Text", headerSafe(result.ReplyText))
	c.Set("X-Speech-Status", string(result.SpeechStatus))
	c.Set(fiber.HeaderContentType, result.MediaType)
	return c.Send(result.Audio)
}

// handleReset clears the shared conversation history.
func (s *Server) handleReset(c *fiber.Ctx) error {
	s.agent.Reset()
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleHealth reports per-stage backend availability.
func (s *Server) handleHealth(c *fiber.Ctx) error {
	report := s.agent.Health(c.Context())

	status := "ok"
	if !report.Transcription || !report.Generation || !report.GenerationBackend {
		status = "degraded"
	}

	return c.JSON(fiber.Map{
		"status":             status,
		"transcription":      report.Transcription,
		"generation":         report.Generation,
		"generation_backend": report.GenerationBackend,
		"synthesis":          report.Synthesis,
		"turns":              s.agent.Turns(),
	})
}

// errorResponse maps pipeline errors to an HTTP status and client-facing
// message. Classified transcription and generation errors carry their
// provider diagnostic to the caller; only unclassified failures collapse
// to a generic internal error.
func errorResponse(err error) (int, string) {
	var uploadErr *stt.UploadError
	var pollErr *stt.PollError
	var jobErr *stt.JobError
	var apiErr *reply.APIError
	var chainErr *reply.ChainError

	switch {
	case errors.Is(err, stt.ErrEmptyAudio):
		return fiber.StatusBadRequest, "empty audio upload"
	case errors.Is(err, stt.ErrPollTimeout):
		return fiber.StatusRequestTimeout, err.Error()
	case errors.Is(err, stt.ErrEmptyTranscript):
		return fiber.StatusInternalServerError, err.Error()
	case errors.As(err, &uploadErr), errors.As(err, &pollErr), errors.As(err, &jobErr):
		return fiber.StatusBadGateway, err.Error()
	case errors.As(err, &apiErr), errors.As(err, &chainErr):
		return fiber.StatusBadGateway, err.Error()
	case errors.Is(err, agent.ErrInternal):
		return fiber.StatusInternalServerError, "internal error"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}

// headerSafe folds text onto one line so it survives as a header value.
func headerSafe(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
