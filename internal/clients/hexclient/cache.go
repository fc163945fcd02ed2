package hexclient

import (
	"context"
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru"
)

// hexClientWithCache serves daily words from memory. Every word returned by
// dailyDataRange lies below dailyDataCount and never changes afterwards, so
// entries are never invalidated.
type hexClientWithCache struct {
	HexInterface
	daily *lru.Cache
}

func NewHexClientWithCache(hex HexInterface, size int) (*hexClientWithCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily data cache: %w", err)
	}

	return &hexClientWithCache{
		HexInterface: hex,
		daily:        cache,
	}, nil
}

func (h *hexClientWithCache) GetDailyDataRange(ctx context.Context, beginDay, endDay uint64) ([]*big.Int, error) {
	if beginDay >= endDay {
		return []*big.Int{}, nil
	}

	if words, ok := h.cached(beginDay, endDay); ok {
		return words, nil
	}

	words, err := h.HexInterface.GetDailyDataRange(ctx, beginDay, endDay)
	if err != nil {
		return nil, err
	}
	for i, w := range words {
		h.daily.Add(beginDay+uint64(i), new(big.Int).Set(w))
	}
	return words, nil
}

func (h *hexClientWithCache) cached(beginDay, endDay uint64) ([]*big.Int, bool) {
	words := make([]*big.Int, 0, endDay-beginDay)
	for day := beginDay; day < endDay; day++ {
		v, ok := h.daily.Get(day)
		if !ok {
			return nil, false
		}
		words = append(words, new(big.Int).Set(v.(*big.Int)))
	}
	return words, true
}
