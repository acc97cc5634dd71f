package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/staffhub-dev/hrms-backend-go/internal/domain/notification"
	"github.com/staffhub-dev/hrms-backend-go/internal/domain/user"
)

// Config holds dispatcher tuning knobs.
type Config struct {
	BatchSize     int           // default: 100
	FlushInterval time.Duration // default: 5 seconds
	WorkerCount   int           // default: 2
	QueueSize     int           // default: 1000
}

type service struct {
	repo     notification.Repository
	userRepo user.Repository
	config   Config
	logger   *slog.Logger

	queue  chan *notification.Notification
	wg     sync.WaitGroup
	stopCh chan struct{}
	once   sync.Once
}

// NewService creates the notification dispatcher and starts its
// background workers.
func NewService(repo notification.Repository, userRepo user.Repository, cfg Config, logger *slog.Logger) notification.Service {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 1000
	}

	s := &service{
		repo:     repo,
		userRepo: userRepo,
		config:   cfg,
		logger:   logger,
		queue:    make(chan *notification.Notification, cfg.QueueSize),
		stopCh:   make(chan struct{}),
	}

	for i := 0; i < cfg.WorkerCount; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	logger.Info("notification dispatcher started",
		slog.Int("workers", cfg.WorkerCount),
		slog.Int("batch_size", cfg.BatchSize),
		slog.Duration("flush_interval", cfg.FlushInterval))

	return s
}

func (s *service) worker(id int) {
	defer s.wg.Done()

	batch := make([]*notification.Notification, 0, s.config.BatchSize)
	ticker := time.NewTicker(s.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.repo.CreateBatch(ctx, batch); err != nil {
			s.logger.Error("notification batch insert failed",
				slog.Int("worker", id),
				slog.Int("count", len(batch)),
				slog.Any("error", err))
		}

		batch = batch[:0]
	}

	for {
		select {
		case n := <-s.queue:
			batch = append(batch, n)
			if len(batch) >= s.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-s.stopCh:
			// Drain whatever is still queued before the final flush.
			for {
				select {
				case n := <-s.queue:
					batch = append(batch, n)
					if len(batch) >= s.config.BatchSize {
						flush()
					}
				default:
					flush()
					return
				}
			}
		}
	}
}

func (s *service) enqueue(n *notification.Notification) {
	select {
	case s.queue <- n:
	default:
		s.logger.Warn("notification queue full, dropping",
			slog.String("user_id", n.UserID.String()),
			slog.String("type", string(n.Type)))
	}
}

func (s *service) Notify(userIDs []uuid.UUID, typ notification.Type, title, message string) {
	now := time.Now()
	for _, id := range userIDs {
		s.enqueue(&notification.Notification{
			ID:        uuid.New(),
			UserID:    id,
			Type:      typ,
			Title:     title,
			Message:   message,
			CreatedAt: now,
		})
	}
}

func (s *service) NotifyRoles(roles []user.Role, typ notification.Type, title, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ids, err := s.userRepo.ListIDsByRoles(ctx, roles)
	if err != nil {
		s.logger.Error("role fan-out lookup failed",
			slog.String("type", string(typ)),
			slog.Any("error", err))
		return
	}

	s.Notify(ids, typ, title, message)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, limit int) ([]*notification.NotificationResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]*notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.ToNotificationResponse(n))
	}

	return responses, nil
}

func (s *service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// Shutdown stops the workers after flushing queued notifications.
func (s *service) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.stopCh) })

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
