package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/gateway"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/scid"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	SCIDs         []string      `long:"scid" description:"short channel id as HxTxO or integer, repeatable" required:"true"`
	Network       model.Network `long:"network" env:"CHAIN_VERIFIER_NETWORK" description:"network name" default:"mainnet"`
	GatewayURL    string        `long:"gateway-url" env:"CHAIN_VERIFIER_GATEWAY_URL" description:"data gateway base URL" required:"true"`
	GatewayRPS    int           `long:"gateway-rps" env:"CHAIN_VERIFIER_GATEWAY_RPS" description:"max gateway requests per second, 0 for unlimited" default:"0"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"CHAIN_VERIFIER_HTTP_TIMEOUT" description:"HTTP timeout for gateway requests" default:"30s"`
	Workers       int           `long:"workers" env:"CHAIN_VERIFIER_WORKERS" description:"parallel lookups" default:"8"`
	Retries       int           `long:"retries" env:"CHAIN_VERIFIER_RETRIES" description:"extra attempts after a failed gateway lookup, 0 disables retries" default:"0"`
	RetryInterval time.Duration `long:"retry-interval" env:"CHAIN_VERIFIER_RETRY_INTERVAL" description:"delay before the first retry" default:"500ms"`
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		logger.Error("failed to parse flags", zap.Error(err))
		return 2
	}

	failed, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Error("verify channels failed", zap.Error(err))
		return 1
	}
	if failed > 0 {
		logger.Warn("some channels could not be verified", zap.Int("failed", failed), zap.Int("total", len(cfg.SCIDs)))
		return 1
	}
	return 0
}

// run resolves every configured id and returns how many lookups failed.
func run(ctx context.Context, cfg config, logger *zap.Logger) (int, error) {
	ids, err := parseIDs(cfg.SCIDs)
	if err != nil {
		return 0, err
	}
	describer, err := bitcoin.NewOutputDescriber(cfg.Network)
	if err != nil {
		return 0, err
	}

	client, err := gateway.NewClient(gateway.Config{
		Endpoint:          cfg.GatewayURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.GatewayRPS,
	}, metrics.NewGatewayClient(cfg.Network), logger)
	if err != nil {
		return 0, fmt.Errorf("init gateway client: %w", err)
	}
	verifierMetrics := metrics.NewVerifier(cfg.Network)
	v, err := verifier.New(client, verifierMetrics, logger)
	if err != nil {
		return 0, fmt.Errorf("init verifier: %w", err)
	}
	resolver, err := verifier.NewRetryingResolver(v, cfg.Retries, cfg.RetryInterval, verifierMetrics, logger)
	if err != nil {
		return 0, fmt.Errorf("init retrying resolver: %w", err)
	}

	results, err := verifier.ResolveBatch(ctx, resolver, cfg.Workers, ids)
	if err != nil {
		return 0, err
	}
	return report(results, describer, logger), nil
}

func parseIDs(raw []string) ([]scid.ShortChannelID, error) {
	ids := make([]scid.ShortChannelID, 0, len(raw))
	for _, s := range raw {
		id, err := scid.Parse(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func report(results []verifier.Result, describer *bitcoin.OutputDescriber, logger *zap.Logger) int {
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Error("channel not verified", zap.Stringer("scid", res.ChannelID), zap.Error(res.Err))
			continue
		}
		out, err := describer.Describe(res.Funding)
		if err != nil {
			failed++
			logger.Error("describe funding output", zap.Stringer("scid", res.ChannelID), zap.Error(err))
			continue
		}
		logger.Info("channel verified",
			zap.String("scid", out.ShortChannelID),
			zap.String("txid", out.TxID),
			zap.Int64("value_sat", out.ValueSat),
			zap.String("value", out.Value),
			zap.String("script_class", out.ScriptClass),
			zap.Strings("addresses", out.Addresses),
		)
	}
	return failed
}
