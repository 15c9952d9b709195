package catalog

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// seedEpoch is the creation time of the oldest seeded product.
//
//nolint:gochecknoglobals // Fixed reference time for deterministic seeds.
var seedEpoch = time.Date(2025, time.November, 15, 8, 0, 0, 0, time.UTC)

//nolint:gochecknoglobals // Word lists for generated names.
var (
	seedAdjectives = []string{"Vintage", "Restored", "Signed", "Limited", "Antique", "Handmade", "Rare", "Mint"}
	seedNouns      = []string{"Camera", "Guitar", "Watch", "Bicycle", "Lamp", "Vase", "Typewriter", "Radio", "Globe"}
)

// Seed returns a catalog of n generated products. The same n always yields
// the same products. Product i is created one hour after product i-1.
func Seed(n int) *Catalog {
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewSource(int64(n))) //nolint:gosec // Demo data, not security sensitive.
	entropy := ulid.Monotonic(rng, 0)

	products := make([]Product, n)
	for i := range products {
		created := seedEpoch.Add(time.Duration(i) * time.Hour)
		adj := seedAdjectives[rng.Intn(len(seedAdjectives))]
		noun := seedNouns[rng.Intn(len(seedNouns))]
		products[i] = Product{
			ID:          ulid.MustNew(ulid.Timestamp(created), entropy).String(),
			Name:        fmt.Sprintf("%s %s #%d", adj, noun, i+1),
			Description: fmt.Sprintf("A %s %s in good condition, lot %d.", strings.ToLower(adj), strings.ToLower(noun), i+1),
			OpenPrice:   float64(10 + rng.Intn(990)),
			PricePerBid: float64(1 + rng.Intn(25)),
			CreatedAt:   created,
		}
	}
	return &Catalog{products: products}
}

