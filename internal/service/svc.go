package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"desknotify/internal/event"
	"desknotify/internal/notification"
	"desknotify/internal/repository"
)

// Config controls a watch Service.
type Config struct {
	// Defaults fill in fields an event leaves unset.
	Defaults event.Event
	// Replace makes each notification replace the previous one, where the
	// platform reports notification ids.
	Replace bool
	// Interval is the minimum spacing between notifications; 0 disables
	// rate limiting.
	Interval time.Duration
	Burst    int
	// NotificationOptions are passed to every notification built.
	NotificationOptions []notification.Option
}

// Service reads events from a repository and shows each as a desktop
// notification.
type Service struct {
	repo         repository.EventRepository
	cfg          Config
	limiter      *rate.Limiter
	log          zerolog.Logger
	lastID       uint32
	shutdownChan chan struct{}
	stopOnce     sync.Once
}

type readResult struct {
	ev  event.Event
	err error
}

// NewService creates a new watch service
func NewService(repo repository.EventRepository, cfg Config, logger zerolog.Logger) *Service {
	limit := rate.Inf
	if cfg.Interval > 0 {
		limit = rate.Every(cfg.Interval)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Service{
		repo:         repo,
		cfg:          cfg,
		limiter:      rate.NewLimiter(limit, burst),
		log:          logger.With().Str("component", "watch").Logger(),
		shutdownChan: make(chan struct{}),
	}
}

// Start runs until the input is exhausted, ctx is cancelled or Stop is
// called. A failed notification is logged and the next event is processed.
// Stop also interrupts a pending rate-limit wait. When ctx has a deadline
// that the next slot would miss, the event is dropped instead of delayed.
func (s *Service) Start(ctx context.Context) error {
	s.log.Info().
		Dur("interval", s.cfg.Interval).
		Bool("replace", s.cfg.Replace).
		Msg("Starting notification watch service")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.shutdownChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	events := make(chan readResult)
	go s.read(ctx, events)

	for {
		select {
		case r, ok := <-events:
			if !ok {
				s.log.Info().Msg("Input closed, stopping service")
				return nil
			}
			if r.err != nil {
				var lineErr *repository.LineError
				if errors.As(r.err, &lineErr) {
					s.log.Warn().Err(r.err).Msg("Skipping malformed event")
					continue
				}
				return r.err
			}
			if err := s.notify(ctx, r.ev); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				s.log.Error().Err(err).Str("summary", r.ev.Summary).Msg("Error sending notification")
				continue
			}
		case <-ctx.Done():
			s.log.Info().Msg("Context cancelled, stopping service")
			return nil
		case <-s.shutdownChan:
			s.log.Info().Msg("Shutdown requested, stopping service")
			return nil
		}
	}
}

// Stop gracefully stops the service. It is safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.shutdownChan) })
}

func (s *Service) read(ctx context.Context, out chan<- readResult) {
	defer close(out)
	for {
		ev, err := s.repo.Next(ctx)
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return
		}

		select {
		case out <- readResult{ev: ev, err: err}:
		case <-ctx.Done():
			return
		}

		var lineErr *repository.LineError
		if err != nil && !errors.As(err, &lineErr) {
			return
		}
	}
}

func (s *Service) notify(ctx context.Context, ev event.Event) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit error: %w", err)
	}

	if s.cfg.Replace && ev.ID == nil && s.lastID != 0 {
		id := s.lastID
		ev.ID = &id
	}

	n, err := Build(ev, s.cfg.Defaults, s.cfg.NotificationOptions...)
	if err != nil {
		return err
	}

	id, hasID, err := Deliver(n)
	if err != nil {
		return err
	}
	if hasID {
		s.lastID = id
	}

	s.log.Debug().Str("summary", ev.Summary).Uint32("id", id).Msg("Sent notification")
	return nil
}
