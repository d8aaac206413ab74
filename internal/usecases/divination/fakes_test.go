package divination

import (
	"context"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/admin/lucky-shop/divination-api/internal/adapters/secondary/catalog"
	"github.com/admin/lucky-shop/divination-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// scriptedRNG отдаёт заранее заданные значения, после исчерпания нули
type scriptedRNG struct {
	values []int
	pos    int
}

func (r *scriptedRNG) Intn(n int) int {
	if r.pos >= len(r.values) {
		return 0
	}
	v := r.values[r.pos]
	r.pos++
	return v % n
}

type memoryHistory struct {
	readings map[string][]domain.TarotReading
	saveErr  error
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{readings: make(map[string][]domain.TarotReading)}
}

func (h *memoryHistory) Save(_ context.Context, deviceID string, reading domain.TarotReading) error {
	if h.saveErr != nil {
		return h.saveErr
	}
	h.readings[deviceID] = append([]domain.TarotReading{reading}, h.readings[deviceID]...)
	return nil
}

func (h *memoryHistory) List(_ context.Context, deviceID string) ([]domain.TarotReading, error) {
	return h.readings[deviceID], nil
}

func (h *memoryHistory) Clear(_ context.Context, deviceID string) error {
	delete(h.readings, deviceID)
	return nil
}

type memoryProfiles struct {
	profiles map[string]domain.UserProfile
}

func newMemoryProfiles() *memoryProfiles {
	return &memoryProfiles{profiles: make(map[string]domain.UserProfile)}
}

func (p *memoryProfiles) Save(_ context.Context, deviceID string, profile domain.UserProfile) error {
	p.profiles[deviceID] = profile
	return nil
}

func (p *memoryProfiles) Get(_ context.Context, deviceID string) (domain.UserProfile, error) {
	profile, ok := p.profiles[deviceID]
	if !ok {
		return domain.UserProfile{}, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (p *memoryProfiles) Delete(_ context.Context, deviceID string) error {
	delete(p.profiles, deviceID)
	return nil
}

type capturingProducer struct {
	events []domain.ReadingCreatedEvent
}

func (p *capturingProducer) SendReadingCreated(_ context.Context, event domain.ReadingCreatedEvent) error {
	p.events = append(p.events, event)
	return nil
}

func (p *capturingProducer) Close() error {
	return nil
}

// newTestService собирает сервис на реальном каталоге и фейковых хранилищах
func newTestService(t *testing.T, rng domain.RNG) (*Service, *memoryHistory, *memoryProfiles) {
	t.Helper()

	cat, err := catalog.NewEmbeddedCatalog()
	require.NoError(t, err)

	history := newMemoryHistory()
	profiles := newMemoryProfiles()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := New(cat, history, profiles, nil, rng, log)
	svc.now = func() time.Time {
		return time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc, history, profiles
}
