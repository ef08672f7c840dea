// Package alert surfaces and acknowledges health alerts. Alerts are created
// elsewhere (the seeder, follow-up scheduling); this slice only filters,
// ranks and marks them read.
package alert

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
)

var ErrAlertNotFound = errors.New("alert not found")

type Service struct {
	store      store.Store
	displayMax int
	now        func() time.Time
}

func NewService(st store.Store, displayMax int) *Service {
	return &Service{store: st, displayMax: displayMax, now: time.Now}
}

// Active returns the unread, already-due alerts ranked by priority, capped
// at the configured display count.
func (s *Service) Active(ctx context.Context, userID uuid.UUID) ([]health.HealthAlert, error) {
	alerts := []health.HealthAlert{}
	if err := s.store.Read(ctx, store.UserKey(store.KeyAlerts, userID.String()), &alerts); err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	return health.ActiveAlerts(alerts, s.now(), s.displayMax), nil
}

// All returns every alert for the user in stored order.
func (s *Service) All(ctx context.Context, userID uuid.UUID) ([]health.HealthAlert, error) {
	alerts := []health.HealthAlert{}
	if err := s.store.Read(ctx, store.UserKey(store.KeyAlerts, userID.String()), &alerts); err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	return alerts, nil
}

// MarkRead acknowledges one alert. The alert stays in the collection; it
// simply stops counting as active.
func (s *Service) MarkRead(ctx context.Context, userID, alertID uuid.UUID) (*health.HealthAlert, error) {
	key := store.UserKey(store.KeyAlerts, userID.String())

	alerts := []health.HealthAlert{}
	if err := s.store.Read(ctx, key, &alerts); err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}

	for i := range alerts {
		if alerts[i].ID == alertID {
			alerts[i].IsRead = true
			if err := s.store.Write(ctx, key, alerts); err != nil {
				return nil, fmt.Errorf("save alerts: %w", err)
			}
			return &alerts[i], nil
		}
	}
	return nil, ErrAlertNotFound
}
