package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/logger"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/record"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/report"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-shortid/internal/shortid/service/reconciler"
)

type config struct {
	Root          string        `long:"root" env:"SHORTID_ROOT" description:"directory holding one sub-directory of observation files per block" required:"true"`
	OutputRoot    string        `long:"output-root" env:"SHORTID_OUTPUT_ROOT" description:"directory receiving out/<block hash> results (defaults to --root)"`
	Workers       int           `long:"workers" env:"SHORTID_WORKERS" description:"blocks resolved in parallel" default:"8"`
	QueueSize     int           `long:"queue-size" env:"SHORTID_QUEUE_SIZE" description:"scanned blocks buffered ahead of the workers" default:"64"`
	BlockSource   string        `long:"block-source" env:"SHORTID_BLOCK_SOURCE" description:"where blocks are read from" choice:"rpc" choice:"file" default:"rpc"`
	BlocksDir     string        `long:"blocks-dir" env:"SHORTID_BLOCKS_DIR" description:"directory of <hash>.blk or <hash>.hex files for --block-source=file"`
	RPCURL        string        `long:"rpc-url" env:"SHORTID_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"SHORTID_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"SHORTID_RPC_PASSWORD" description:"Bitcoin RPC password"`
	Retries       int           `long:"retries" env:"SHORTID_RETRIES" description:"extra attempts for blocks the node does not know yet" default:"2"`
	RetryDelay    time.Duration `long:"retry-delay" env:"SHORTID_RETRY_DELAY" description:"pause between attempts" default:"2s"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"SHORTID_CLICKHOUSE_DSN" description:"ClickHouse DSN; when set every block outcome is stored"`
	MetricsAddr   string        `long:"metrics-addr" env:"SHORTID_METRICS_ADDR" description:"address for metrics server, disabled when empty"`
	Network       string        `long:"network" env:"SHORTID_NETWORK" description:"network name used in metrics and stored outcomes" default:"mainnet"`
	LogLevel      string        `long:"log-level" env:"SHORTID_LOG_LEVEL" description:"log level" default:"info"`
	LogFile       string        `long:"log-file" env:"SHORTID_LOG_FILE" description:"also write logs to this rotating file"`
}

func main() {
	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := logger.New(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer func() {
		_ = l.Sync()
	}()

	if err := run(ctx, cfg, l); err != nil {
		l.Fatal("short id resolver failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	store, closeStore, err := newBlockStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	var recorder reconciler.OutcomeRecorder
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.Network, metrics.NewClickhouseRepository(cfg.Network))
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Warn("close clickhouse connection", zap.Error(err))
			}
		}()
		recorder = reconciler.NewBatchOutcomeRecorder(repo, logger.Named("outcomeRecorder"))
	}

	svc, err := reconciler.NewReconcilerService(
		reconciler.Config{
			Root:        cfg.Root,
			OutputRoot:  cfg.OutputRoot,
			WorkerCount: cfg.Workers,
			Retries:     cfg.Retries,
			RetryDelay:  cfg.RetryDelay,
		},
		record.NewScanner(logger.Named("scanner"), cfg.QueueSize),
		store,
		bitcoin.ShortID,
		recorder,
		metrics.NewReconciler(cfg.Network),
		logger.Named("reconciler"),
	)
	if err != nil {
		return err
	}

	summary, err := svc.Reconcile(ctx)
	if summary != nil {
		if renderErr := report.Render(os.Stdout, summary); renderErr != nil {
			logger.Warn("render summary", zap.Error(renderErr))
		}
	}
	return err
}

func newBlockStore(cfg config) (reconciler.BlockStore, func(), error) {
	switch cfg.BlockSource {
	case "file":
		store, err := bitcoin.NewFileBlockStore(cfg.BlocksDir)
		if err != nil {
			return nil, nil, fmt.Errorf("init file block store: %w", err)
		}
		return store, func() {}, nil
	default:
		rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
		if err != nil {
			return nil, nil, fmt.Errorf("init btc rpc client: %w", err)
		}
		shutdown := func() {
			rpcClient.Shutdown()
			rpcClient.WaitForShutdown()
		}
		rpc := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network))
		return bitcoin.NewRPCBlockStore(rpc), shutdown, nil
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
