package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/gateway"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/transport"
	"github.com/goodnatureofminers/blockinsight7000-chainverifier/internal/verifier"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type config struct {
	Addr          string        `long:"addr" env:"CHAIN_VERIFIER_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"CHAIN_VERIFIER_REST_ADDR" description:"REST listen address" default:":8001"`
	Network       model.Network `long:"network" env:"CHAIN_VERIFIER_NETWORK" description:"network name" default:"mainnet"`
	GatewayURL    string        `long:"gateway-url" env:"CHAIN_VERIFIER_GATEWAY_URL" description:"data gateway base URL" required:"true"`
	GatewayRPS    int           `long:"gateway-rps" env:"CHAIN_VERIFIER_GATEWAY_RPS" description:"max gateway requests per second, 0 for unlimited" default:"0"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"CHAIN_VERIFIER_HTTP_TIMEOUT" description:"HTTP timeout for gateway requests" default:"30s"`
	Retries       int           `long:"retries" env:"CHAIN_VERIFIER_RETRIES" description:"extra attempts after a failed gateway lookup, 0 disables retries" default:"0"`
	RetryInterval time.Duration `long:"retry-interval" env:"CHAIN_VERIFIER_RETRY_INTERVAL" description:"delay before the first retry" default:"500ms"`
}

func main() {
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("chain verifier failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := bitcoin.ParamsForNetwork(cfg.Network)
	if err != nil {
		return err
	}
	describer := bitcoin.NewOutputDescriberForParams(params)

	client, err := gateway.NewClient(gateway.Config{
		Endpoint:          cfg.GatewayURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.GatewayRPS,
	}, metrics.NewGatewayClient(cfg.Network), logger)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}
	verifierMetrics := metrics.NewVerifier(cfg.Network)
	v, err := verifier.New(client, verifierMetrics, logger)
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}
	resolver, err := verifier.NewRetryingResolver(v, cfg.Retries, cfg.RetryInterval, verifierMetrics, logger)
	if err != nil {
		return fmt.Errorf("init retrying resolver: %w", err)
	}
	explorer, err := transport.NewExplorerHandler(client, logger)
	if err != nil {
		return err
	}
	utxoHandler, err := transport.NewUTXOHandler(resolver, describer, logger)
	if err != nil {
		return err
	}

	logger.Info("serving chain",
		zap.String("network", params.Name),
		zap.Stringer("genesis", params.GenesisHash),
		zap.String("gateway", cfg.GatewayURL),
	)

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	blockinsight7000v1.RegisterExplorerServiceServer(grpcServer, explorer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("shutting down gRPC server")
		grpcServer.GracefulStop()
	}()

	gw := gwruntime.NewServeMux()
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if err := blockinsight7000v1.RegisterExplorerServiceHandlerFromEndpoint(ctx, gw, cfg.Addr, opts); err != nil {
		return fmt.Errorf("register explorer handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())
	utxoHandler.Register(mux)

	srv := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}
