package msxgfx

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultWorkers is the number of concurrent conversions used by batches.
const DefaultWorkers = 4

type manifestJob struct {
	Input          string `yaml:"input"`
	Output         string `yaml:"output"`
	Mode           string `yaml:"mode"`
	Format         string `yaml:"format"`
	Palette        string `yaml:"palette"`
	IncludePalette bool   `yaml:"include_palette"`
	Label          string `yaml:"label"`
}

// Manifest is a list of conversions read from a YAML file:
//
//	workers: 2
//	jobs:
//	  - input: hero.bmp
//	    mode: sprite2
//	    format: asm
//	    palette: hero.pal
type Manifest struct {
	Workers int
	Jobs    []*Job
}

func resolve(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

// LoadManifest reads a manifest. Relative paths are resolved against the
// directory containing the manifest.
func LoadManifest(file string) (*Manifest, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var y struct {
		Workers int           `yaml:"workers"`
		Jobs    []manifestJob `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(b, &y); err != nil {
		return nil, err
	}

	dir := filepath.Dir(file)
	manifest := &Manifest{
		Workers: y.Workers,
	}

	for i, j := range y.Jobs {
		if j.Input == "" {
			return nil, fmt.Errorf("job %d: no input", i+1)
		}
		mode, err := ParseMode(j.Mode)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		format := ASM
		if j.Format != "" {
			if format, err = ParseFormat(j.Format); err != nil {
				return nil, fmt.Errorf("job %d: %w", i+1, err)
			}
		}
		manifest.Jobs = append(manifest.Jobs, &Job{
			Input:          resolve(dir, j.Input),
			Output:         resolve(dir, j.Output),
			Mode:           mode,
			Format:         format,
			Palette:        resolve(dir, j.Palette),
			IncludePalette: j.IncludePalette,
			Label:          j.Label,
		})
	}

	return manifest, nil
}

func emitJobs(ctx context.Context, jobs []*Job) (<-chan *Job, <-chan error, error) {
	out := make(chan *Job)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, job := range jobs {
			select {
			case out <- job:
			case <-ctx.Done():
				errc <- errors.New("batch cancelled")
				return
			}
		}
	}()
	return out, errc, nil
}

func findBitmaps(ctx context.Context, base string, template Job) (<-chan *Job, <-chan error, error) {
	out := make(chan *Job)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' && file != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(file), ".bmp") {
				return nil
			}

			job := template
			job.Input, job.Output, job.Label = file, "", ""

			select {
			case out <- &job:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (m *Converter) convertWorker(ctx context.Context, in <-chan *Job) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for job := range in {
			if _, err := m.Convert(job); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

type source func(ctx context.Context) (<-chan *Job, <-chan error, error)

func (m *Converter) run(src source, workers int) error {
	if workers < 1 {
		workers = DefaultWorkers
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	jobs, errc, err := src(ctx)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errc, err := m.convertWorker(ctx, jobs)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

// Run converts every job in the manifest, stopping at the first failure.
func (m *Converter) Run(manifest *Manifest, workers int) error {
	if workers < 1 {
		workers = manifest.Workers
	}
	m.logger.Printf("Running %d jobs\n", len(manifest.Jobs))
	return m.run(func(ctx context.Context) (<-chan *Job, <-chan error, error) {
		return emitJobs(ctx, manifest.Jobs)
	}, workers)
}

// Scan converts every .bmp file found under path using template for the
// remaining job settings, stopping at the first failure.
func (m *Converter) Scan(path string, template Job, workers int) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	return m.run(func(ctx context.Context) (<-chan *Job, <-chan error, error) {
		return findBitmaps(ctx, dir, template)
	}, workers)
}
