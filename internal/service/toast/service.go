// Package toast keeps an ordered queue of transient notifications
// with automatic expiry.
package toast

import (
	"sync"
	"time"

	"github.com/aleviannaf/laboratory-app/config"
	"github.com/aleviannaf/laboratory-app/internal/model"
)

type Service struct {
	mu     sync.Mutex
	nextID int64
	items  []model.ToastItem
	timers map[int64]*time.Timer
	cfg    config.ToastConfig
}

func NewService(cfg config.ToastConfig) *Service {
	return &Service{
		nextID: 1,
		timers: make(map[int64]*time.Timer),
		cfg:    cfg,
	}
}

func (s *Service) Success(message string) model.ToastItem {
	return s.Show(model.ToastTypeSuccess, message, s.cfg.SuccessDuration)
}

func (s *Service) Error(message string) model.ToastItem {
	return s.Show(model.ToastTypeError, message, s.cfg.ErrorDuration)
}

func (s *Service) Info(message string) model.ToastItem {
	return s.Show(model.ToastTypeInfo, message, s.cfg.InfoDuration)
}

// Show appends a toast with a strictly increasing id and schedules
// its removal. Identical messages are not coalesced; display order is
// append order.
func (s *Service) Show(typ model.ToastType, message string, duration time.Duration) model.ToastItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.ToastItem{
		ID:      s.nextID,
		Message: message,
		Type:    typ,
	}
	s.nextID++
	s.items = append(s.items, item)

	if duration > 0 {
		id := item.ID
		s.timers[id] = time.AfterFunc(duration, func() {
			s.Dismiss(id)
		})
	}

	return item
}

// Dismiss removes a toast immediately. A timer firing after an
// explicit dismissal finds nothing and is a no-op.
func (s *Service) Dismiss(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}

	remaining := make([]model.ToastItem, 0, len(s.items))
	for _, item := range s.items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}
	s.items = remaining
}

// Items returns the current toasts in display order.
func (s *Service) Items() []model.ToastItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]model.ToastItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

// Close stops all pending expiry timers.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}
