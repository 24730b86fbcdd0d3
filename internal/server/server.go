package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"bedrock-bridge/internal/codec"
	"bedrock-bridge/internal/config"
	"bedrock-bridge/internal/provider/bedrock"
)

const (
	maxBodyBytes        = 1 << 20 // 1 MiB
	shutdownGracePeriod = 10 * time.Second
	readTimeout         = 30 * time.Second
	writeTimeout        = 45 * time.Second
	idleTimeout         = 120 * time.Second
)

// Server exposes the Bedrock mappers over HTTP. It never contacts Bedrock itself.
type Server struct {
	cfg     config.Config
	mapper  *bedrock.Mapper
	app     *echo.Echo
	log     zerolog.Logger
	address string
}

// New constructs an HTTP server wired with routing and middleware.
func New(cfg config.Config, mapper *bedrock.Mapper, log zerolog.Logger) (*Server, error) {
	if mapper == nil {
		return nil, errors.New("mapper must not be nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = openAIErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogLatency: true,
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Int64("latency_ms", v.Latency.Milliseconds()).
				Msg("request")
			return nil
		},
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		HSTSMaxAge:            31536000,
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'; form-action 'none'",
	}))

	srv := &Server{
		cfg:     cfg,
		mapper:  mapper,
		app:     e,
		log:     log,
		address: fmt.Sprintf(":%d", cfg.Server.Port),
	}

	srv.registerRoutes()

	return srv, nil
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.app
}

// Run starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	printStartupBanner(s.cfg.Server.Port)
	s.log.Info().Str("addr", s.address).Msg("starting server")

	httpServer := &http.Server{
		Addr:         s.address,
		Handler:      s.app,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.app.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := s.app.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.log.Info().Msg("server shutdown complete")
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) registerRoutes() {
	s.app.GET("/health", s.handleHealth)

	g := s.app.Group("/v1/bedrock")
	g.POST("/chat/request", translate(s.mapper.ChatRequest))
	g.POST("/chat/response", translate(s.mapper.ChatCompletion))
	g.POST("/completions/request", translate(s.mapper.CompletionsRequest))
	g.POST("/completions/response", translate(s.mapper.Completion))
	g.POST("/embeddings/request", translate(s.mapper.EmbeddingsRequest))
	g.POST("/embeddings/response", translate(s.mapper.Embeddings))
	g.POST("/stream", s.handleStream)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// translate decodes one In document, maps it and writes the Out document.
func translate[In, Out any](mapFn func(In) Out) echo.HandlerFunc {
	return func(c echo.Context) error {
		var in In
		if err := decodeRequestBody(c, &in); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, mapFn(in))
	}
}

func (s *Server) handleStream(c echo.Context) error {
	var chunks []bedrock.StreamChunk
	if err := decodeRequestBody(c, &chunks); err != nil {
		return err
	}

	writer := c.Response().Writer
	flusher, ok := writer.(http.Flusher)
	if !ok {
		s.log.Error().Msg("http writer does not support flushing")
		return requestError{
			Status:  http.StatusInternalServerError,
			Message: "server does not support streaming responses",
			Type:    "server_error",
		}
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	stream := s.mapper.NewStream()
	for _, chunk := range chunks {
		if err := writeSSEData(c.Response(), stream.Chunk(chunk)); err != nil {
			s.log.Error().Err(err).Str("stream_id", stream.ID()).Msg("failed to write SSE chunk")
			return err
		}
		flusher.Flush()
	}

	if _, err := io.WriteString(c.Response(), "data: [DONE]\n\n"); err != nil {
		return fmt.Errorf("write SSE terminator: %w", err)
	}
	flusher.Flush()
	return nil
}

func decodeRequestBody[T any](c echo.Context, target *T) error {
	req := c.Request()
	defer req.Body.Close()

	body := http.MaxBytesReader(c.Response(), req.Body, maxBodyBytes)
	if err := codec.DecodeSingle(body, target); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, codec.ErrEmptyDocument):
			return requestError{
				Status:  http.StatusBadRequest,
				Message: "request body is required",
				Type:    "invalid_request_error",
			}
		case errors.As(err, &tooLarge):
			return requestError{
				Status:  http.StatusRequestEntityTooLarge,
				Message: fmt.Sprintf("request body must not exceed %d bytes", maxBodyBytes),
				Type:    "invalid_request_error",
			}
		default:
			return requestError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("invalid JSON payload: %v", err),
				Type:    "invalid_request_error",
			}
		}
	}
	return nil
}

func writeSSEData(w io.Writer, payload any) error {
	data, err := codec.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal SSE payload: %w", err)
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return fmt.Errorf("write SSE data: %w", err)
	}
	return nil
}

func printStartupBanner(port int) {
	host := "127.0.0.1"
	fmt.Println()
	fmt.Println("bedrock-bridge ready")
	fmt.Printf("Listening on http://%s:%d\n", host, port)
	fmt.Println("Endpoints:")
	fmt.Println("  GET  /health")
	fmt.Println("  POST /v1/bedrock/chat/request         unified chat request -> bedrock")
	fmt.Println("  POST /v1/bedrock/chat/response        bedrock chat response -> unified")
	fmt.Println("  POST /v1/bedrock/completions/request")
	fmt.Println("  POST /v1/bedrock/completions/response")
	fmt.Println("  POST /v1/bedrock/embeddings/request")
	fmt.Println("  POST /v1/bedrock/embeddings/response")
	fmt.Println("  POST /v1/bedrock/stream               bedrock chunks -> unified SSE")
	fmt.Printf("Example:\n  curl http://%s:%d/v1/bedrock/chat/request -H 'Content-Type: application/json' -d '{\"model\":\"any\",\"messages\":[{\"role\":\"user\",\"content\":\"hello\"}]}'\n\n", host, port)
}
