package kafka

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

func TestRecord(t *testing.T) {
	p := &Publisher{Config: &ProducerConfig{Topic: "pos-transactions"}}

	payload := models.NewPayload()
	payload.ReferenceID = "ref-1"
	payload.AmountInCents = models.Cents(10000)
	payload.PaymentMethod = models.PaymentMethodCard
	payload.TransactionMethod = models.TransactionMethodReader
	payload.SelectedReaderID = models.ID(100)

	rec, err := p.record(&payload)
	require.NoError(t, err)
	assert.Equal(t, "pos-transactions", rec.Topic)
	assert.Equal(t, []byte("ref-1"), rec.Key)
	assert.Equal(t, "reader", rec.Headers["transaction_method"])
	assert.Equal(t, "card", rec.Headers["payment_method"])

	var decoded models.Payload
	require.NoError(t, json.Unmarshal(rec.Value, &decoded))
	assert.Equal(t, "ref-1", decoded.ReferenceID)
	assert.True(t, decoded.AmountInCents.Equal(models.Cents(10000)))
	assert.Equal(t, int64(100), *decoded.SelectedReaderID)
}

func TestToKgo(t *testing.T) {
	rec := toKgo(models.Record{
		Key:     []byte("k"),
		Value:   []byte("v"),
		Topic:   "t",
		Headers: map[string]string{"payment_method": "cash"},
	})
	assert.Equal(t, "t", rec.Topic)
	assert.Equal(t, []byte("k"), rec.Key)
	require.Len(t, rec.Headers, 1)
	assert.Equal(t, "payment_method", rec.Headers[0].Key)
	assert.Equal(t, []byte("cash"), rec.Headers[0].Value)
}

func TestPostTransaction_BrokerUnavailable(t *testing.T) {
	conf := &ProducerConfig{Brokers: []string{"127.0.0.1:1"}, ClientID: "pos-engine-test", Topic: "pos-transactions"}
	p, err := NewTxPublisher(conf, kprom.NewMetrics("pos_test"), zap.NewNop())
	require.NoError(t, err)
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	payload := models.NewPayload()
	payload.ReferenceID = "ref-1"
	res, err := p.PostTransaction(ctx, &payload)
	assert.Nil(t, res)
	require.Error(t, err)

	var e *errors.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, errors.Submission, e.Kind)
	assert.Equal(t, http.StatusBadGateway, e.Status)
	assert.Equal(t, "Error posting transaction", e.Error())
	assert.NotNil(t, e.Err)
}
