package geocache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saarthi-api/internal/models"
	"saarthi-api/internal/safety"

	"github.com/rs/zerolog/log"
)

// Store is a key/value store with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Provider caches POI counts and reverse-geocoded addresses of nearby points.
// Traffic flow is live data and always goes to the wrapped provider.
type Provider struct {
	next  safety.GeoProvider
	store Store
	ttl   time.Duration
}

var _ safety.GeoProvider = (*Provider)(nil)

// NewProvider wraps next with a cache held in store.
func NewProvider(next safety.GeoProvider, store Store, ttl time.Duration) *Provider {
	return &Provider{next: next, store: store, ttl: ttl}
}

// Key identifies a cached answer. Coordinates are rounded to three decimals (about 110 m).
func Key(kind, category string, lat, lon float64) string {
	return fmt.Sprintf("%s:%s:%.3f,%.3f", kind, category, lat, lon)
}

func (p *Provider) CountPOIs(ctx context.Context, category string, lat, lon float64) (int, error) {
	key := Key("poi", category, lat, lon)

	var n int
	if p.load(ctx, key, &n) {
		return n, nil
	}

	n, err := p.next.CountPOIs(ctx, category, lat, lon)
	if err != nil {
		return 0, err
	}
	p.save(ctx, key, n)
	return n, nil
}

func (p *Provider) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Address, error) {
	key := Key("reverse", "", lat, lon)

	var addr models.Address
	if p.load(ctx, key, &addr) {
		return &addr, nil
	}

	found, err := p.next.ReverseGeocode(ctx, lat, lon)
	if err != nil {
		return nil, err
	}
	if found != nil {
		p.save(ctx, key, found)
	}
	return found, nil
}

func (p *Provider) TrafficFlow(ctx context.Context, lat, lon float64) (*models.TrafficFlow, error) {
	return p.next.TrafficFlow(ctx, lat, lon)
}

func (p *Provider) load(ctx context.Context, key string, out interface{}) bool {
	data, ok, err := p.store.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("signal cache read failed")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("signal cache entry is corrupt")
		return false
	}
	return true
}

func (p *Provider) save(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("signal cache encode failed")
		return
	}
	if err := p.store.Put(ctx, key, data, p.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("signal cache write failed")
	}
}
