package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
)

var batchConcurrency int

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Score every offer file in a directory",
	Long:  "Evaluates all .yaml, .yml and .json offer files in a directory concurrently and persists the results. Files that fail validation are reported and skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := zap.L().With(zap.String("dir", args[0]))

		paths, err := offerFiles(args[0])
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return eris.Errorf("batch: no offer files in %s", args[0])
		}

		s, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		concurrency := batchConcurrency
		if concurrency <= 0 {
			concurrency = cfg.Batch.MaxConcurrent
		}

		log.Info("batch scoring", zap.Int("files", len(paths)), zap.Int("concurrency", concurrency))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)

		var (
			mu     sync.Mutex
			evals  []*diagnostic.Evaluation
			failed atomic.Int64
		)

		for _, path := range paths {
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}

				input, err := loadOfferFile(path)
				if err != nil {
					failed.Add(1)
					log.Warn("read offer failed", zap.String("path", path), zap.Error(err))
					return nil
				}

				eval, err := diagnostic.Evaluate(input.Normalized())
				if err != nil {
					failed.Add(1)
					log.Warn("offer incomplete", zap.String("path", path), zap.Error(err))
					return nil
				}

				mu.Lock()
				evals = append(evals, eval)
				mu.Unlock()

				log.Debug("scored",
					zap.String("path", path),
					zap.Int("alignment_score", eval.Score.AlignmentScore),
					zap.Bool("outbound_ready", eval.Score.OutboundReady),
				)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		saved, err := s.SaveEvaluations(ctx, evals)
		if err != nil {
			return eris.Wrap(err, "batch: save evaluations")
		}

		log.Info("batch complete",
			zap.Int64("saved", saved),
			zap.Int64("failed", failed.Load()),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Scored %d offers (%d failed), saved %d\n",
			len(evals), failed.Load(), saved)
		return nil
	},
}

// offerFiles lists the offer files in a directory, sorted for deterministic
// processing order.
func offerFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read dir %s", dir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml", ".json":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max concurrent files (default from config)")
	rootCmd.AddCommand(batchCmd)
}
