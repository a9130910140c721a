// Package server exposes the rig sessions over a WebSocket bridge: the
// host engine streams one frame message per rendered frame and gets the
// corrected root pose back on the same connection.
package server

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/rigsync/rigsync/internal/core/observability/log"
	"github.com/rigsync/rigsync/internal/core/scene"
	"github.com/rigsync/rigsync/internal/session"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server is the pose bridge. Each /track connection owns one session
// and one set of simulated scene objects; stepping stays
// single-threaded per connection.
type Server struct {
	cfg Config
	lg  log.Log

	sessions     sync.Map // map[string]*session.Session
	sessionCount int64    // atomic

	httpServer *http.Server
}

func NewServer(cfg Config, lg log.Log) *Server {
	s := &Server{cfg: cfg, lg: lg}

	mux := http.NewServeMux()
	mux.HandleFunc("/track", s.handleTrack)
	s.httpServer = &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	return s
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.lg.Info("bridge listening", log.String("addr", s.cfg.ListenAddr))
		err := s.httpServer.ListenAndServe()
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		return s.httpServer.Shutdown(context.Background())
	})

	return g.Wait()
}

// SessionCount reports the number of live sessions.
func (s *Server) SessionCount() int {
	return int(atomic.LoadInt64(&s.sessionCount))
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	if int(atomic.LoadInt64(&s.sessionCount)) >= s.cfg.MaxSessions {
		http.Error(w, "session limit reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.lg.Error("websocket upgrade failed", log.Err(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.cfg.ReadLimit)

	sess := session.New(s.cfg.Session, s.newHandles(), s.lg)
	key := sess.ID().String()
	s.sessions.Store(key, sess)
	atomic.AddInt64(&s.sessionCount, 1)
	defer func() {
		s.sessions.Delete(key)
		atomic.AddInt64(&s.sessionCount, -1)
		snap := sess.Metrics()
		s.lg.Info("session closed",
			log.String("session", key),
			log.Uint64("frames", snap.Frames),
			log.Uint64("toggles", snap.Toggles),
			log.Duration("mean_step", snap.MeanStepTime))
	}()

	s.lg.Info("session opened",
		log.String("session", key),
		log.String("remote", conn.RemoteAddr().String()))

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.lg.Error("frame read failed", log.String("session", key), log.Err(err))
			}
			return
		}

		out := sess.Step(msg.frame())

		if err := conn.WriteJSON(encodeOutput(out)); err != nil {
			s.lg.Error("pose write failed", log.String("session", key), log.Err(err))
			return
		}
	}
}

// newHandles builds the simulated scene a bridge session operates on.
// An embedded host would inject its own handles here instead.
func (s *Server) newHandles() session.Handles {
	return session.Handles{
		Rig:            scene.NewSimObject("rig"),
		MirrorTarget:   scene.NewSimObject("mirror-target"),
		StimulusTarget: scene.NewSimObject("stimulus-target"),
		StimulusRef:    scene.NewSimObject("stimulus-reference"),
	}
}
