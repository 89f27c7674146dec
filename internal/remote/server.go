// Package remote exposes a small HTTP surface for driving the display over
// the network: push a message, set the brightness, or blank it.
package remote

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
)

// maxBodyLen bounds the message body; the driver caps text at 16
// characters anyway.
const maxBodyLen = 64

// Controller is the part of the display driver the HTTP surface drives.
type Controller interface {
	Clear() error
	Brightness(level byte) error
	DisplayText(text string, rightJustify bool) error
}

// Server serves the remote control endpoints. The display driver does no
// locking of its own, so all handlers funnel through one mutex.
type Server struct {
	mu     sync.Mutex
	disp   Controller
	server *http.Server
}

// NewServer creates a remote control server for disp listening on addr.
func NewServer(addr string, disp Controller) *Server {
	s := &Server{disp: disp}

	router := httprouter.New()
	router.PUT("/text", s.setText)
	router.POST("/brightness/:level", s.setBrightness)
	router.POST("/clear", s.clear)
	router.GET("/healthz", s.health)

	s.server = &http.Server{Addr: addr, Handler: router}
	return s
}

// Listen serves until Close is called.
func (s *Server) Listen() {
	log.Infof("Starting remote control server on %v", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("Remote control server failed: ", err)
	}
}

// Close shuts the server down, waiting up to a second for in-flight
// requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	log.Debug("Closing remote control server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) setText(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyLen))
	if err != nil {
		http.Error(w, "unable to read message", http.StatusBadRequest)
		return
	}
	text := strings.TrimRight(string(body), "\r\n")
	right := r.URL.Query().Get("align") == "right"

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.disp.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := s.disp.DisplayText(text, right); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debugf("Displayed %q", text)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setBrightness(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	level, err := strconv.Atoi(ps.ByName("level"))
	if err != nil || level < 0 || level > 15 {
		http.Error(w, "brightness must be between 0 and 15", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.disp.Brightness(byte(level)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.disp.Clear(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.WriteHeader(http.StatusOK)
}
