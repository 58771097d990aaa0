// Command seed generates the synthetic catalog dataset consumed by the file
// source. Generation is deterministic for a given -seed value, so test and
// dev environments can share an identical catalog.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/light-bringer/catalog-browse-service/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-browse-service/internal/pkg/clock"
)

var brands = []string{
	"Acme", "Zenova", "HyperTech", "K-Craft", "NeoLife", "SunLabs", "Cloud9", "K-Home", "FitGo", "ProSound",
}

var (
	titleAdjectives = []string{
		"Handcrafted", "Ergonomic", "Sleek", "Rustic", "Modern", "Compact", "Premium", "Durable", "Lightweight", "Portable",
	}
	titleMaterials = []string{
		"Steel", "Wooden", "Cotton", "Ceramic", "Leather", "Bamboo", "Aluminum", "Glass", "Carbon", "Wool",
	}
	titleNouns = []string{
		"Chair", "Lamp", "Speaker", "Keyboard", "Bottle", "Backpack", "Blanket", "Charger", "Organizer", "Headset",
	}
)

func main() {
	var (
		count = flag.Int("count", 10000, "number of products to generate")
		out   = flag.String("out", filepath.Join("data", "products.json"), "output file path")
		seed  = flag.Int64("seed", 42, "RNG seed for deterministic output")
	)
	flag.Parse()

	if err := run(*count, *out, *seed); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func run(count int, out string, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	now := clock.NewRealClock().Now()

	products := make([]seedProduct, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, generate(rng, now, i+1))
	}

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}

	log.Printf("Wrote %d products -> %s", len(products), out)
	return nil
}

// seedProduct mirrors the JSON shape the file source reads back.
type seedProduct struct {
	ID              int64       `json:"id"`
	Slug            string      `json:"slug"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	PriceKRW        int64       `json:"priceKRW"`
	DiscountPercent int64       `json:"discountPercent"`
	Category        string      `json:"category"`
	Brand           string      `json:"brand"`
	Rating          float64     `json:"rating"`
	RatingCount     int64       `json:"ratingCount"`
	Stock           int64       `json:"stock"`
	Images          []seedImage `json:"images"`
	CreatedAt       time.Time   `json:"createdAt"`
}

type seedImage struct {
	URL string `json:"url"`
	W   int    `json:"w"`
	H   int    `json:"h"`
}

func generate(rng *rand.Rand, now time.Time, ordinal int) seedProduct {
	adjective := titleAdjectives[rng.Intn(len(titleAdjectives))]
	material := titleMaterials[rng.Intn(len(titleMaterials))]
	noun := titleNouns[rng.Intn(len(titleNouns))]
	title := adjective + " " + material + " " + noun

	category := domain.Categories[rng.Intn(len(domain.Categories))]
	brand := brands[rng.Intn(len(brands))]

	// createdAt falls within the past two years.
	age := time.Duration(rng.Int63n(int64(2 * 365 * 24 * time.Hour)))

	return seedProduct{
		ID:              int64(ordinal),
		Slug:            fmt.Sprintf("%s-%05d", slugify(title), ordinal),
		Title:           title,
		Description:     fmt.Sprintf("The %s %s %s combines everyday utility with a refined finish.", strings.ToLower(adjective), strings.ToLower(material), strings.ToLower(noun)),
		PriceKRW:        5000 + rng.Int63n(994001),
		DiscountPercent: rng.Int63n(41),
		Category:        category,
		Brand:           brand,
		Rating:          float64(30+rng.Intn(21)) / 10,
		RatingCount:     rng.Int63n(5001),
		Stock:           rng.Int63n(201),
		Images:          imageSet(ordinal),
		CreatedAt:       now.Add(-age).UTC().Truncate(time.Second),
	}
}

// slugify lowercases and collapses non-alphanumeric runs into hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func imageSet(seed int) []seedImage {
	base := fmt.Sprintf("https://picsum.photos/seed/%d", seed)
	return []seedImage{
		{URL: base + "/320/320", W: 320, H: 320},
		{URL: base + "/640/640", W: 640, H: 640},
		{URL: base + "/1200/1200", W: 1200, H: 1200},
	}
}
