package datagen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/codec"
	"main/internal/refdata"
)

func TestWriteAllProducesParseableFeeds(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(refdata.DefaultCatalog(), 1)
	require.NoError(t, gen.WriteAll(dir, 4, 6, 5, 3))

	trades := 0
	require.NoError(t, codec.EachRow(filepath.Join(dir, "trades.txt"), func(row []string) {
		_, err := codec.ParseTrade(row)
		require.NoError(t, err, "row %v", row)
		trades++
	}))
	assert.Equal(t, 6*4, trades)

	prices := 0
	require.NoError(t, codec.EachRow(filepath.Join(dir, "prices.txt"), func(row []string) {
		_, err := codec.ParsePrice(row)
		require.NoError(t, err, "row %v", row)
		prices++
	}))
	assert.Equal(t, 6*6, prices)

	books := 0
	require.NoError(t, codec.EachRow(filepath.Join(dir, "marketdata.txt"), func(row []string) {
		_, err := codec.ParseOrderBook(row)
		require.NoError(t, err, "row %v", row)
		books++
	}))
	assert.Equal(t, 6*5, books)

	inquiries := 0
	require.NoError(t, codec.EachRow(filepath.Join(dir, "inquiries.txt"), func(row []string) {
		_, err := codec.ParseInquiry(row, "INQ1")
		require.NoError(t, err, "row %v", row)
		inquiries++
	}))
	assert.Equal(t, 6*3, inquiries)
}

func TestBooksAreTightestOnTop(t *testing.T) {
	dir := t.TempDir()
	gen := NewGenerator(refdata.DefaultCatalog(), 1)
	require.NoError(t, gen.WriteMarketData(filepath.Join(dir, "marketdata.txt"), 8))

	require.NoError(t, codec.EachRow(filepath.Join(dir, "marketdata.txt"), func(row []string) {
		book, err := codec.ParseOrderBook(row)
		require.NoError(t, err)
		for i := 1; i < book.Depth(); i++ {
			assert.True(t, book.SpreadAt(i).GreaterThan(book.SpreadAt(i-1)),
				"level %d must be wider than level %d", i, i-1)
		}
	}))
}

func TestSameSeedSameFeeds(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	require.NoError(t, NewGenerator(refdata.DefaultCatalog(), 5).WriteAll(dirA, 3, 3, 3, 3))
	require.NoError(t, NewGenerator(refdata.DefaultCatalog(), 5).WriteAll(dirB, 3, 3, 3, 3))

	for _, name := range []string{"trades.txt", "prices.txt", "marketdata.txt", "inquiries.txt"} {
		a, err := os.ReadFile(filepath.Join(dirA, name))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, name))
		require.NoError(t, err)
		assert.Equal(t, string(a), string(b), name)
	}
}
