package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/DRSN-tech/lca-catalog/internal/cfg"
)

// readHeaderTimeout ограничивает медленную отправку заголовков; тело загрузок
// ограничено отдельно через ReadTimeout и лимит multipart.
const readHeaderTimeout = 10 * time.Second

type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

// Run блокируется до остановки сервера. Штатная остановка через Stop ошибкой не считается.
func (s *Server) Run() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
