package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	// Local Packages
	models "pos-engine/models"

	// External Packages
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSource struct {
	data  *models.TransactionData
	err   error
	calls int
}

func (s *countingSource) FetchTransactionData(context.Context) (*models.TransactionData, error) {
	s.calls++
	return s.data, s.err
}

func snapshot() *models.TransactionData {
	return &models.TransactionData{
		Organization: &models.Organization{
			ID:                           1,
			Name:                         "Clinic",
			TotalProcessingFeeFixed:      models.Cents(10),
			TotalProcessingFeePercentage: decimal.RequireFromString("0.035"),
		},
		Locations: []models.Location{{ID: 10, Name: "Main St", TaxRate: decimal.RequireFromString("0.06")}},
		Readers:   []models.PaymentReader{{ID: 100, Label: "Front desk", LocationID: 10, Status: models.ReaderStatusOnline}},
	}
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return srv, client
}

// unreachableClient points at a port nothing listens on, so every command fails fast.
func unreachableClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestNewCatalogCache_Defaults(t *testing.T) {
	c := NewCatalogCache(unreachableClient(), &countingSource{}, "", 0, zap.NewNop())
	assert.Equal(t, defaultCatalogKey, c.key)
	assert.Equal(t, defaultCatalogTTL, c.ttl)
}

func TestFetchTransactionData_MissStoresSnapshotWithTTL(t *testing.T) {
	srv, client := newMiniredis(t)
	source := &countingSource{data: snapshot()}
	c := NewCatalogCache(client, source, "test:catalog", 2*time.Minute, zap.NewNop())

	data, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Clinic", data.Organization.Name)
	assert.Equal(t, 1, source.calls)

	require.True(t, srv.Exists("test:catalog"))
	assert.Equal(t, 2*time.Minute, srv.TTL("test:catalog"))

	raw, err := srv.Get("test:catalog")
	require.NoError(t, err)
	var stored models.TransactionData
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, int64(10), stored.Locations[0].ID)
}

func TestFetchTransactionData_HitSkipsSource(t *testing.T) {
	_, client := newMiniredis(t)
	source := &countingSource{data: snapshot()}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	_, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)

	source.data = nil
	data, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)

	require.NotNil(t, data.Organization)
	assert.True(t, data.Organization.TotalProcessingFeePercentage.Equal(decimal.RequireFromString("0.035")))
	assert.True(t, data.Organization.TotalProcessingFeeFixed.Equal(models.Cents(10)))
	require.Len(t, data.Locations, 1)
	assert.True(t, data.Locations[0].TaxRate.Equal(decimal.RequireFromString("0.06")))
	require.Len(t, data.Readers, 1)
	assert.Equal(t, "Front desk", data.Readers[0].Label)
	assert.True(t, data.Readers[0].IsOnline())
}

func TestFetchTransactionData_ExpiredEntryRefetches(t *testing.T) {
	srv, client := newMiniredis(t)
	source := &countingSource{data: snapshot()}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	_, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)

	srv.FastForward(2 * time.Minute)
	_, err = c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestFetchTransactionData_CorruptEntryFallsThrough(t *testing.T) {
	srv, client := newMiniredis(t)
	require.NoError(t, srv.Set("test:catalog", "{not json"))

	source := &countingSource{data: snapshot()}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	data, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Clinic", data.Organization.Name)
	assert.Equal(t, 1, source.calls)
}

func TestInvalidate(t *testing.T) {
	srv, client := newMiniredis(t)
	source := &countingSource{data: snapshot()}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	_, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(context.Background()))
	assert.False(t, srv.Exists("test:catalog"))

	_, err = c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestFetchTransactionData_FallsBackWhenRedisIsDown(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	source := &countingSource{data: &models.TransactionData{Organization: &models.Organization{ID: 1}}}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	data, err := c.FetchTransactionData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.Organization.ID)
	assert.Equal(t, 1, source.calls)
}

func TestFetchTransactionData_SourceErrorIsReturned(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	source := &countingSource{err: fmt.Errorf("mongo down")}
	c := NewCatalogCache(client, source, "test:catalog", time.Minute, zap.NewNop())

	_, err := c.FetchTransactionData(context.Background())
	assert.EqualError(t, err, "mongo down")
}

func TestInvalidate_ReportsRedisError(t *testing.T) {
	client := unreachableClient()
	defer client.Close()

	c := NewCatalogCache(client, &countingSource{}, "test:catalog", time.Minute, zap.NewNop())
	assert.Error(t, c.Invalidate(context.Background()))
}
