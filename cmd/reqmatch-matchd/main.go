// Command reqmatch-matchd runs one matching request from the command line:
// requisition JSON in, ranked results on stdout
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"reqmatch/internal/core/version"
	"reqmatch/internal/modkit"
	"reqmatch/internal/modkit/module"
	"reqmatch/internal/platform/config"
	"reqmatch/internal/platform/logger"
	"reqmatch/internal/platform/store"

	matchdom "reqmatch/internal/services/matching/domain"
	matchmod "reqmatch/internal/services/matching/module"
	rldom "reqmatch/internal/services/runlog/domain"
	runlogmod "reqmatch/internal/services/runlog/module"
)

func main() {
	root := config.New()
	esCfg := root.Prefix("SERVICE_ES_")
	rdsCfg := root.Prefix("SERVICE_REDIS_")
	chCfg := root.Prefix("SERVICE_CLICKHOUSE_")
	l := logger.Get()
	l.Info().Interface("build", version.Info()).Msg("starting")

	var (
		reqFile         = flag.String("requisition", "", "path to requisition JSON (required)")
		minScore        = flag.Float64("min-score", 0, "drop candidates scoring below this")
		maxResults      = flag.Int("max-results", 0, "cap on returned candidates (0 = module default)")
		includeInactive = flag.Bool("include-inactive", false, "widen the status filter to INACTIVE")
		dryRun          = flag.Bool("dry-run", false, "skip the result cache")
		timeout         = flag.Duration("timeout", 30*time.Second, "overall matching budget")
	)
	flag.Parse()

	if *reqFile == "" {
		log.Fatal("-requisition is required")
	}
	raw, err := os.ReadFile(*reqFile)
	if err != nil {
		log.Fatalf("read requisition: %v", err)
	}
	var in matchdom.RequisitionMatchInput
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Fatalf("parse requisition: %v", err)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, store.Config{
		AppName: "reqmatch-matchd",
		ES: store.ESConfig{
			Enabled:        true,
			Addresses:      esCfg.MayCSV("ADDRESSES", []string{"http://localhost:9200"}),
			Username:       esCfg.MayString("USERNAME", ""),
			Password:       esCfg.MayString("PASSWORD", ""),
			ConnectRetries: esCfg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    esCfg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		RDS: store.RedisConfig{
			Enabled:  rdsCfg.MayBool("ENABLED", true),
			Addr:     rdsCfg.MayString("ADDR", "localhost:6379"),
			Password: rdsCfg.MayString("PASSWORD", ""),
			DB:       rdsCfg.MayInt("DB", 0),
		},
		CH: store.CHConfig{
			Enabled: chCfg.MayBool("ENABLED", false),
			Addr:    chCfg.MayString("ADDR", ""),
			DB:      chCfg.MayString("DB", "default"),
			Role:    "matchd",
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	if err := st.Guard(ctx); err != nil {
		l.Fatal().Err(err).Msg("store guard failed")
	}

	deps := modkit.Deps{
		Cfg:       root,
		Log:       *l,
		Search:    st.Search,
		Cache:     st.Cache,
		Warehouse: st.Warehouse,
	}

	// Build dependency modules first, then cross-wire ports
	rl := runlogmod.New(deps)

	var matchOpts []modkit.Option
	if st.Warehouse != nil {
		matchOpts = append(matchOpts, modkit.WithPorts(module.MustPortsOf[rldom.RecorderPort](rl)))
	}
	mm := matchmod.New(deps, matchOpts...)

	module.Register(rl.Name(), rl.Ports())
	module.Register(mm.Name(), mm.Ports())

	opts := matchdom.MatchOptions{
		MinimumScore:    *minScore,
		MaxResults:      *maxResults,
		IncludeInactive: *includeInactive,
		CacheResults:    !*dryRun,
		Timeout:         *timeout,
	}

	matcher := module.MustPortsOf[matchdom.MatcherPort](mm)
	results, err := matcher.Match(ctx, in, opts)
	if err != nil {
		l.Fatal().Err(err).Msg("matching failed")
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		l.Fatal().Err(err).Msg("encode results")
	}
	_, _ = os.Stdout.Write(append(out, '\n'))
}
