package detector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"srcmetrics/src/config"
	"srcmetrics/src/model"
	"srcmetrics/src/util"
)

// Runner manages and runs all detectors.
// It handles detector registration, parallel execution, and result aggregation.
type Runner struct {
	detectors   []Detector
	maxParallel int
}

// NewRunner creates a new detector runner with all detectors registered
func NewRunner(cfg config.LimitsConfig) *Runner {
	detectors := []Detector{
		NewLimitDetector(model.UnitFile, cfg, cfg.File),
		NewLimitDetector(model.UnitFunction, cfg, cfg.Function),
	}

	util.Debug("Detector runner initialized with %d detectors", len(detectors))
	for _, d := range detectors {
		status := "disabled"
		if d.IsEnabled() {
			status = "enabled"
		}
		util.Debug("  - %s: %s", d.Name(), status)
	}

	maxParallel := cfg.MaxParallel
	if maxParallel <= 0 {
		maxParallel = 1
	}

	return &Runner{
		detectors:   detectors,
		maxParallel: maxParallel,
	}
}

// RunAll executes all enabled detectors and returns combined findings,
// ordered by file, entity and rule.
func (r *Runner) RunAll(ctx context.Context, project *model.Unit) ([]model.Finding, error) {
	startTime := time.Now()

	var (
		all     []model.Finding
		mu      sync.Mutex
		wg      sync.WaitGroup
		errChan = make(chan error, len(r.detectors))
		sem     = make(chan struct{}, r.maxParallel)
	)

	for _, d := range r.detectors {
		if !d.IsEnabled() {
			util.Debug("Skipping disabled detector: %s", d.Name())
			continue
		}

		wg.Add(1)
		go func(detector Detector) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			findings, err := detector.Detect(ctx, project)
			if err != nil {
				errChan <- fmt.Errorf("detector %s: %w", detector.Name(), err)
				return
			}

			mu.Lock()
			all = append(all, findings...)
			mu.Unlock()
		}(d)
	}

	wg.Wait()
	close(errChan)

	if err, ok := <-errChan; ok {
		util.Error("Limit checks aborted: %v", err)
		return nil, err
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].FilePath != all[j].FilePath {
			return all[i].FilePath < all[j].FilePath
		}
		if all[i].Entity != all[j].Entity {
			return all[i].Entity < all[j].Entity
		}
		return all[i].Rule < all[j].Rule
	})

	util.Info("Limit checks complete: %d findings (took %v)", len(all), time.Since(startTime))
	return all, nil
}

// ListDetectors returns names of all registered detectors
func (r *Runner) ListDetectors() []string {
	names := make([]string, len(r.detectors))
	for i, d := range r.detectors {
		names[i] = d.Name()
	}
	return names
}
