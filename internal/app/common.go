package app

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/renewstat/internal/config"
	"github.com/blackwell-systems/renewstat/internal/dataset"
	"github.com/blackwell-systems/renewstat/internal/logging"
	"github.com/blackwell-systems/renewstat/internal/store"
)

// session holds everything one command invocation shares: the resolved
// config, the logger, the dataset and, once needed, the query store.
type session struct {
	cfg *config.Config
	log *zap.Logger
	ds  *dataset.Dataset
	st  *store.Store
}

// newSession resolves config from flags and loads the dataset once.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log := logging.New(verbose)
	log.Debug("config resolved",
		zap.String("data", cfg.Data.Path),
		zap.Int("start_year", cfg.Line.StartYear),
		zap.Int("end_year", cfg.Line.EndYear),
		zap.Int("top", cfg.Line.Top))

	ds, err := dataset.Load(cfg.Data.Path, cfg.DelimiterRune())
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded",
		zap.String("path", cfg.Data.Path),
		zap.Int("rows", ds.Nrow()),
		zap.Int("columns", len(ds.Names())),
		zap.Int("numeric", len(ds.NumericColumns())))

	return &session{cfg: cfg, log: log, ds: ds}, nil
}

// store opens the in-memory query store on first use.
func (s *session) store() (*store.Store, error) {
	if s.st != nil {
		return s.st, nil
	}

	st, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}

	n, err := st.Load(s.ds, storeColumns(s))
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to load query store: %w", err)
	}
	s.log.Debug("query store loaded", zap.Int("observations", n))

	s.st = st
	return st, nil
}

// Close releases the query store and flushes the logger.
func (s *session) Close() {
	if s.st != nil {
		s.st.Close()
	}
	_ = s.log.Sync()
}

// humanize splits a CamelCase column name into words:
// "TotalRenewableEnergy" becomes "Total Renewable Energy" and
// "CO2Emissions" becomes "CO2 Emissions".
func humanize(name string) string {
	var sb strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || ((unicode.IsUpper(prev) || unicode.IsDigit(prev)) && nextLower) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteRune(r)
	}
	return strings.ReplaceAll(sb.String(), "_", " ")
}
