package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/san-kum/sciunits/internal/config"
	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/scientific"
	"gopkg.in/yaml.v3"
)

// Job is one named computation in a batch file.
type Job struct {
	Name          string `yaml:"name"`
	config.Preset `yaml:",inline"`
}

type Result struct {
	Job       Job
	Converter *converter.Converter
	Left      scientific.Value
	Right     scientific.Value
	Value     scientific.Value
	Err       error
}

// Load reads a YAML list of jobs.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err := yaml.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("batch file %s: %w", path, err)
	}
	return jobs, nil
}

// Runner evaluates jobs concurrently against one catalog.
type Runner struct {
	catalog *converter.Catalog
	workers int
}

func NewRunner(cat *converter.Catalog, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{catalog: cat, workers: workers}
}

// Run returns one result per job, in job order. A failing job records its
// error and does not stop the others; only cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	results := make([]Result, len(jobs))
	next := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				results[idx] = r.run(jobs[idx])
			}
		}()
	}

	var err error
feed:
	for i := range jobs {
		select {
		case next <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(next)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) run(job Job) Result {
	res := Result{Job: job}
	conv, left, right, err := job.Resolve(r.catalog)
	if err != nil {
		res.Err = err
		return res
	}
	res.Converter, res.Left, res.Right = conv, left, right
	res.Value, res.Err = conv.Compute(left, right)
	return res
}
