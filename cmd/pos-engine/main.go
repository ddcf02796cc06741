package main

import (
	// Go Internal Packages
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	// Local Packages
	clients "pos-engine/clients"
	config "pos-engine/config"
	errors "pos-engine/errors"
	helpers "pos-engine/helpers"
	kafka "pos-engine/kafka"
	models "pos-engine/models"
	mongodb "pos-engine/repositories/mongodb"
	redis "pos-engine/repositories/redis"
	engine "pos-engine/services/engine"
	submission "pos-engine/services/submission"
	validation "pos-engine/services/validation"

	// External Packages
	"github.com/alecthomas/kingpin/v2"
	_ "github.com/jsternberg/zap-logfmt"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/shopspring/decimal"
	"github.com/twmb/franz-go/plugin/kprom"
	"go.uber.org/zap"
)

var (
	locationSet bool
	readerSet   bool

	configPath     = kingpin.Flag("config", "Path to the application config file").Short('c').Default("config.yml").String()
	refreshCatalog = kingpin.Flag("refresh-catalog", "Drop the cached catalog before loading it").Bool()

	amount            = kingpin.Flag("amount", "Base charge in cents").Short('a').Default("0").String()
	paymentMethod     = kingpin.Flag("payment-method", "Payment method").Default("cash").Enum("cash", "card")
	transactionMethod = kingpin.Flag("transaction-method", "Transaction channel").Default("cash").Enum("manually", "reader", "cash")
	locationID        = kingpin.Flag("location", "Location id, the first location when omitted").IsSetByUser(&locationSet).Int64()
	readerID          = kingpin.Flag("reader", "Payment reader id").IsSetByUser(&readerSet).Int64()
	description       = kingpin.Flag("description", "Payment description").String()

	cardName    = kingpin.Flag("card-name", "Cardholder name").String()
	cardNumber  = kingpin.Flag("card-number", "Card number").String()
	cardExpiry  = kingpin.Flag("card-expiry", "Card expiration date, MM/YY").String()
	cardCVC     = kingpin.Flag("card-cvc", "Card CVC").String()
	cardCountry = kingpin.Flag("card-country", "Card billing country").Default("US").String()
	cardZip     = kingpin.Flag("card-zip", "Card billing zip code").String()

	quoteCmd  = kingpin.Command("quote", "Compute tax, processing fee and total for a charge")
	chargeCmd = kingpin.Command("charge", "Compute a charge and submit it to the payment backend")
)

// LoadSecrets Loads the secret variables and overrides the config
func LoadSecrets(k config.Config) config.Config {
	if mongoURI := os.Getenv("MONGO_URI"); mongoURI != "" {
		k.Mongo.URI = mongoURI
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		k.Redis.Password = redisPassword
	}
	if kafkaBrokers := os.Getenv("KAFKA_BROKERS"); kafkaBrokers != "" {
		k.Kafka.Brokers = strings.Split(kafkaBrokers, ",")
	}
	if apiKey := os.Getenv("PAYMENT_API_KEY"); apiKey != "" {
		k.PaymentAPI.APIKey = apiKey
	}
	if isProdMode := os.Getenv("IS_PROD_MODE"); isProdMode != "" {
		k.IsProdMode = isProdMode == "true"
	}
	return k
}

// LoadConfig loads the default configuration and overrides it with the config
// file at path
func LoadConfig(path string) *koanf.Koanf {
	k := koanf.New(".")
	_ = k.Load(rawbytes.Provider(config.DefaultConfig), yaml.Parser())
	if path != "" {
		_ = k.Load(file.Provider(path), yaml.Parser())
	}
	return k
}

func main() {
	command := kingpin.Parse()

	k := LoadConfig(*configPath)
	appKonf := config.Config{}

	// Unmarshalling config into struct
	err := k.Unmarshal("", &appKonf)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Update and Validate config before starting
	appKonf = LoadSecrets(appKonf)
	if err = appKonf.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "logfmt"
	_ = cfg.Level.UnmarshalText([]byte(appKonf.Logger.Level))
	cfg.InitialFields = make(map[string]any)
	cfg.InitialFields["host"], _ = os.Hostname()
	cfg.InitialFields["service"] = appKonf.Application
	cfg.OutputPaths = []string{"stderr"}
	logger, _ := cfg.Build()
	defer func() {
		_ = logger.Sync()
	}()

	if !appKonf.IsProdMode && cfg.Level.Enabled(zap.DebugLevel) {
		k.Print()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := buildSource(ctx, appKonf, logger)
	if err != nil {
		logger.Fatal("cannot create transaction data source", zap.Error(err))
	}
	defer closeSource()

	backend, closeBackend, err := buildBackend(appKonf, logger)
	if err != nil {
		logger.Fatal("cannot create submission backend", zap.Error(err))
	}
	defer closeBackend()

	eng := engine.New(logger, source, backend)
	if err := run(ctx, command, eng, appKonf); err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		closeBackend()
		closeSource()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, eng *engine.Engine, appKonf config.Config) error {
	if err := eng.LoadInitialData(ctx); err != nil {
		return err
	}
	if err := applyFlags(eng, appKonf.Limits); err != nil {
		return err
	}

	quote := newSummary(eng)
	switch command {
	case quoteCmd.FullCommand():
		return helpers.PrintStruct(os.Stdout, quote)

	case chargeCmd.FullCommand():
		total := eng.Transaction().TotalAmountInCents
		if err := validation.IsAboveMinimumTotal(total, appKonf.Limits.MinimumTotalCents); err != nil {
			return err
		}
		if err := eng.Submit(ctx); err != nil {
			return err
		}
		return helpers.PrintStruct(os.Stdout, chargeResult{Status: "submitted", Charge: quote})
	}
	return nil
}

// applyFlags drives the engine through its setters in the order an operator
// would fill in the payment form.
func applyFlags(eng *engine.Engine, limits config.Limits) error {
	if locationSet {
		if err := eng.SelectLocation(models.ID(*locationID)); err != nil {
			return err
		}
	}

	if err := validation.IsValidAmountInput(*amount, limits.MaxAmountDigits); err != nil {
		return err
	}
	cents, err := decimal.NewFromString(*amount)
	if err != nil {
		return errors.FieldErr("Amount must contain digits only")
	}

	eng.SetPaymentMethod(models.PaymentMethod(*paymentMethod))
	eng.SetTransactionMethod(models.TransactionMethod(*transactionMethod))
	eng.SetAmount(cents)
	eng.SetDescription(*description)

	if readerSet {
		if err := eng.SelectReader(models.ID(*readerID)); err != nil {
			return err
		}
	}

	if models.TransactionMethod(*transactionMethod) == models.TransactionMethodManually {
		card := models.CreditCardDetails{
			Name:           *cardName,
			CardNumber:     *cardNumber,
			ExpirationDate: *cardExpiry,
			CVC:            *cardCVC,
			Country:        *cardCountry,
			Zip:            *cardZip,
		}
		if err := validateCard(card, time.Now()); err != nil {
			return err
		}
		eng.SetCardDetails(card)
	}
	return nil
}

func validateCard(card models.CreditCardDetails, now time.Time) error {
	ve := errors.ValidationErrs()
	check := func(field string, err error) {
		if err != nil {
			ve.Add(field, err.Error())
		}
	}

	check("card-name", validation.IsRequired(card.Name))
	check("card-number", validation.IsValidCardNumber(card.CardNumber))
	check("card-expiry", validation.IsValidExpirationDate(card.ExpirationDate, now))
	check("card-cvc", validation.IsValidCvc(card.CVC))
	check("card-country", validation.IsRequired(card.Country))
	check("card-zip", validation.IsRequired(card.Zip))

	if err := ve.Err(); err != nil {
		return errors.ValidationFailedErr(err)
	}
	return nil
}

func buildSource(ctx context.Context, appKonf config.Config, logger *zap.Logger) (engine.DataSource, func(), error) {
	if appKonf.Source.Kind == config.SourceHTTP {
		client := clients.NewHTTPPaymentClient(paymentAPIConfig(appKonf), logger)
		return client, func() {}, nil
	}

	mongoClient, err := mongodb.Connect(ctx, appKonf.Mongo.URI, appKonf.Mongo.Timeout)
	if err != nil {
		return nil, nil, err
	}
	closeMongo := func() { _ = mongoClient.Disconnect(context.Background()) }

	catalog := mongodb.NewCatalogRepository(mongoClient, appKonf.Mongo.Database, appKonf.Mongo.OrganizationID, logger)
	if !appKonf.Redis.Enabled {
		return catalog, closeMongo, nil
	}

	redisClient, err := redis.Connect(ctx, appKonf.Redis.URI, appKonf.Redis.Password)
	if err != nil {
		closeMongo()
		return nil, nil, err
	}
	cache := redis.NewCatalogCache(redisClient, catalog, appKonf.Redis.CatalogKey, appKonf.Redis.CatalogTTL, logger)
	if *refreshCatalog {
		if err := cache.Invalidate(ctx); err != nil {
			logger.Warn("cannot drop cached catalog", zap.Error(err))
		}
	}

	return cache, func() {
		_ = redisClient.Close()
		closeMongo()
	}, nil
}

func buildBackend(appKonf config.Config, logger *zap.Logger) (submission.Backend, func(), error) {
	if appKonf.Backend.Kind == config.BackendHTTP {
		client := clients.NewHTTPPaymentClient(paymentAPIConfig(appKonf), logger)
		return client, func() {}, nil
	}

	metrics := kprom.NewMetrics("pos")
	conf := &kafka.ProducerConfig{
		Brokers:  appKonf.Kafka.Brokers,
		ClientID: appKonf.Kafka.ClientID,
		Topic:    appKonf.Kafka.Topic,
	}
	publisher, err := kafka.NewTxPublisher(conf, metrics, logger)
	if err != nil {
		return nil, nil, err
	}
	return publisher, publisher.Close, nil
}

func paymentAPIConfig(appKonf config.Config) clients.ServiceConfig {
	return clients.ServiceConfig{
		BaseURL: appKonf.PaymentAPI.BaseURL,
		APIKey:  appKonf.PaymentAPI.APIKey,
		Timeout: appKonf.PaymentAPI.Timeout,
	}
}
