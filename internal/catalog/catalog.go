package catalog

import (
	"fmt"
	"sort"
)

// Product represents a single item in the store catalog
type Product struct {
	Slug        string
	Name        string
	Description string
	PriceCents  int64
	ImageURL    string
}

// DisplayPrice formats the price for rendering, e.g. "$29.99"
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("$%d.%02d", p.PriceCents/100, p.PriceCents%100)
}

// Sort options accepted by the inventory listing
const (
	SortNameAsc   = "az"
	SortNameDesc  = "za"
	SortPriceAsc  = "lohi"
	SortPriceDesc = "hilo"
)

// Default returns the fixed store catalog. The listing always contains
// exactly these six products.
func Default() []Product {
	return []Product{
		{
			Slug:        "trail-backpack",
			Name:        "Trail Backpack",
			Description: "Carry all the things with the sleek, streamlined backpack. Padded laptop sleeve and water-resistant shell.",
			PriceCents:  2999,
			ImageURL:    "/static/images/trail-backpack.svg",
		},
		{
			Slug:        "bolt-bike-light",
			Name:        "Bolt Bike Light",
			Description: "A red light isn't the desired state in testing, but it sure is bright on the road. USB rechargeable.",
			PriceCents:  999,
			ImageURL:    "/static/images/bolt-bike-light.svg",
		},
		{
			Slug:        "logo-tee",
			Name:        "Logo Tee",
			Description: "Get your testing superhero cape with this classic ringspun combed cotton tee.",
			PriceCents:  1599,
			ImageURL:    "/static/images/logo-tee.svg",
		},
		{
			Slug:        "fleece-jacket-onyx",
			Name:        "Fleece Jacket Onyx",
			Description: "It's not every day that you come across a midweight quarter-zip fleece jacket capable of handling everything.",
			PriceCents:  4999,
			ImageURL:    "/static/images/fleece-jacket-onyx.svg",
		},
		{
			Slug:        "canvas-onesie",
			Name:        "Canvas Onesie",
			Description: "Rib snap infant onesie for the junior automation engineer in development.",
			PriceCents:  799,
			ImageURL:    "/static/images/canvas-onesie.svg",
		},
		{
			Slug:        "rainbow-socks",
			Name:        "Rainbow Socks",
			Description: "Keep your feet as colorful as your test reports. One size fits most.",
			PriceCents:  1299,
			ImageURL:    "/static/images/rainbow-socks.svg",
		},
	}
}

// BySlug looks a product up in the catalog. The second return value reports
// whether the slug exists.
func BySlug(slug string) (Product, bool) {
	for _, p := range Default() {
		if p.Slug == slug {
			return p, true
		}
	}
	return Product{}, false
}

// Sorted returns a copy of products ordered by the given sort option.
// Unknown options fall back to name ascending, matching the listing default.
func Sorted(products []Product, option string) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch option {
	case SortNameDesc:
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name > sorted[j].Name })
	case SortPriceAsc:
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].PriceCents < sorted[j].PriceCents })
	case SortPriceDesc:
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].PriceCents > sorted[j].PriceCents })
	default:
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	}

	return sorted
}
