package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	restDelivery "skill-tracking-assistant/internal/assistant/delivery/http"
	tgDelivery "skill-tracking-assistant/internal/assistant/delivery/telegram"
	"skill-tracking-assistant/internal/middleware"
	"skill-tracking-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Assistant surfaces
	telegramHandler tgDelivery.Handler
	restHandler     restDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Assistant surfaces
	TelegramHandler tgDelivery.Handler
	RESTHandler     restDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		restHandler:     cfg.RESTHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
