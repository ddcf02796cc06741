package kafka

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"net/http"

	// Local Packages
	errors "pos-engine/errors"
	models "pos-engine/models"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

type ProducerConfig struct {
	Brokers  []string
	ClientID string
	Topic    string
}

// Publisher hands finalized transactions to the payment backend through a
// Kafka topic. It implements submission.Backend.
type Publisher struct {
	Client *kgo.Client
	Config *ProducerConfig
	Logger *zap.Logger
}

// NewTxPublisher creates a producer client for the transactions topic.
func NewTxPublisher(conf *ProducerConfig, metrics *kprom.Metrics, logger *zap.Logger) (*Publisher, error) {
	opts := []kgo.Opt{
		kgo.SeedBrokers(conf.Brokers...),    // Connects to Kafka brokers
		kgo.ClientID(conf.ClientID),         // Identifies this engine to the brokers
		kgo.DefaultProduceTopic(conf.Topic), // Every record goes to the transactions topic
		kgo.RequiredAcks(kgo.AllISRAcks()),  // A record counts only once all replicas have it
		kgo.WithHooks(metrics),              // Attaches monitoring hooks
	}

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &Publisher{Client: client, Config: conf, Logger: logger}, nil
}

// PostTransaction produces the payload and waits for the broker's ack.
func (p *Publisher) PostTransaction(ctx context.Context, payload *models.Payload) (*models.SubmissionResult, error) {
	record, err := p.record(payload)
	if err != nil {
		return nil, errors.SubmissionErr(http.StatusBadRequest, "Error encoding transaction", nil, err)
	}

	results := p.Client.ProduceSync(ctx, toKgo(record))
	if err := results.FirstErr(); err != nil {
		p.Logger.Error("failed to publish transaction",
			zap.String("topic", record.Topic),
			zap.String("reference_id", payload.ReferenceID),
			zap.Error(err),
		)
		return nil, errors.SubmissionErr(http.StatusBadGateway, "Error posting transaction", err.Error(), err)
	}

	rec, _ := results.First()
	p.Logger.Debug("transaction published",
		zap.String("topic", rec.Topic),
		zap.Int32("partition", rec.Partition),
		zap.Int64("offset", rec.Offset),
	)
	return &models.SubmissionResult{Status: http.StatusAccepted, Message: "Transaction posted successfully"}, nil
}

// Close releases the producer client.
func (p *Publisher) Close() {
	p.Client.Close()
}

func (p *Publisher) record(payload *models.Payload) (models.Record, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return models.Record{}, err
	}
	return models.Record{
		Key:   []byte(payload.ReferenceID),
		Value: value,
		Topic: p.Config.Topic,
		Headers: map[string]string{
			"transaction_method": string(payload.TransactionMethod),
			"payment_method":     string(payload.PaymentMethod),
		},
	}, nil
}

func toKgo(r models.Record) *kgo.Record {
	rec := &kgo.Record{Key: r.Key, Value: r.Value, Topic: r.Topic}
	for k, v := range r.Headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}
	return rec
}
