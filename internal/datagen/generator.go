// Package datagen writes synthetic input feeds for the back-office
// pipelines. All randomness comes from one seeded source, so a given seed
// always produces identical feeds.
package datagen

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/yanun0323/errors"

	"main/internal/model"
	"main/internal/refdata"
	"main/internal/treasury"
)

// Tick counts for the price band feeds oscillate in. Prices walk between
// 99 and 101 on the 1/256 grid.
const (
	lowTicks  = 99 * 256
	highTicks = 101 * 256
)

// Generator writes the four input feeds for a catalog of products.
type Generator struct {
	catalog *refdata.Catalog
	rng     *rand.Rand
}

// NewGenerator creates a generator over the catalog with a seeded source.
func NewGenerator(catalog *refdata.Catalog, seed int64) *Generator {
	return &Generator{catalog: catalog, rng: rand.New(rand.NewSource(seed))}
}

// WriteAll writes every feed into dir with the given per-product record
// counts.
func (g *Generator) WriteAll(dir string, trades, prices, books, inquiries int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create input dir")
	}
	if err := g.WriteTrades(filepath.Join(dir, "trades.txt"), trades); err != nil {
		return err
	}
	if err := g.WritePrices(filepath.Join(dir, "prices.txt"), prices); err != nil {
		return err
	}
	if err := g.WriteMarketData(filepath.Join(dir, "marketdata.txt"), books); err != nil {
		return err
	}
	return g.WriteInquiries(filepath.Join(dir, "inquiries.txt"), inquiries)
}

// WriteTrades writes n trades per product: sides alternate starting BUY,
// books cycle, quantities cycle 1M through 5M.
func (g *Generator) WriteTrades(path string, n int) error {
	var b strings.Builder
	b.WriteString("CUSIP,TradeId,Book,Price,Quantity,Side\n")
	tradeID := 0
	for _, id := range g.catalog.ProductIDs() {
		for i := 0; i < n; i++ {
			tradeID++
			side := "BUY"
			if i%2 == 1 {
				side = "SELL"
			}
			fmt.Fprintf(&b, "%s,TRADE%d,%s,%s,%d,%s\n",
				id, tradeID, model.Books[i%len(model.Books)],
				g.gridPrice(), int64(i%5+1)*1_000_000, side)
		}
	}
	return writeFile(path, b.String())
}

// WritePrices writes n prices per product: the mid oscillates across the
// band one tick at a time, the spread alternates 1/128 and 1/64.
func (g *Generator) WritePrices(path string, n int) error {
	var b strings.Builder
	b.WriteString("CUSIP,Mid,Spread\n")
	for _, id := range g.catalog.ProductIDs() {
		ticks, step := int64(lowTicks), int64(1)
		for i := 0; i < n; i++ {
			spreadTicks := int64(2)
			if i%2 == 1 {
				spreadTicks = 4
			}
			fmt.Fprintf(&b, "%s,%s,%s\n", id, mustFrac(ticks), mustFrac(spreadTicks))
			ticks, step = bounce(ticks, step)
		}
	}
	return writeFile(path, b.String())
}

// WriteMarketData writes n books per product, five levels each. The top
// spread cycles 1/128, 1/64, 3/128, 1/32 and every deeper level widens by
// a further 1/128 per side, so the tightest level is always on top.
func (g *Generator) WriteMarketData(path string, n int) error {
	var b strings.Builder
	b.WriteString("CUSIP,Bid1,BidQty1,Bid2,BidQty2,Bid3,BidQty3,Bid4,BidQty4,Bid5,BidQty5,Offer1,OfferQty1,Offer2,OfferQty2,Offer3,OfferQty3,Offer4,OfferQty4,Offer5,OfferQty5\n")
	for _, id := range g.catalog.ProductIDs() {
		mid, step := int64(lowTicks), int64(1)
		for i := 0; i < n; i++ {
			topHalf := int64(i%4 + 1) // half-spread in ticks
			fields := []string{id}
			for level := int64(0); level < 5; level++ {
				half := topHalf + level
				fields = append(fields,
					mustFrac(mid-half), fmt.Sprintf("%d", (level+1)*10_000_000))
			}
			for level := int64(0); level < 5; level++ {
				half := topHalf + level
				fields = append(fields,
					mustFrac(mid+half), fmt.Sprintf("%d", (level+1)*10_000_000))
			}
			b.WriteString(strings.Join(fields, ",") + "\n")
			mid, step = bounce(mid, step)
		}
	}
	return writeFile(path, b.String())
}

// WriteInquiries writes n inquiries per product, all in RECEIVED state
// with alternating sides and cycling quantities.
func (g *Generator) WriteInquiries(path string, n int) error {
	var b strings.Builder
	b.WriteString("CUSIP,Side,Quantity,Price,State\n")
	for _, id := range g.catalog.ProductIDs() {
		for i := 0; i < n; i++ {
			side := "BUY"
			if i%2 == 1 {
				side = "SELL"
			}
			fmt.Fprintf(&b, "%s,%s,%d,%s,RECEIVED\n",
				id, side, int64(i%5+1)*1_000_000, g.gridPrice())
		}
	}
	return writeFile(path, b.String())
}

// gridPrice draws a uniform on-grid price inside the band.
func (g *Generator) gridPrice() string {
	ticks := lowTicks + g.rng.Int63n(highTicks-lowTicks+1)
	return mustFrac(ticks)
}

// bounce advances an oscillating tick walk, reversing at the band edges.
func bounce(ticks, step int64) (int64, int64) {
	next := ticks + step
	if next >= highTicks || next <= lowTicks {
		step = -step
	}
	return next, step
}

func mustFrac(ticks int64) string {
	s, err := treasury.Format(treasury.FromTicks(ticks))
	if err != nil {
		panic(err)
	}
	return s
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrap(err, "write input feed")
	}
	return nil
}
