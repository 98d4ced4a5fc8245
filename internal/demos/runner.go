package demos

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/proximal-testing/overlaydemos/internal/clip"
	"github.com/proximal-testing/overlaydemos/internal/config"
	"github.com/proximal-testing/overlaydemos/internal/encoder"
	"github.com/proximal-testing/overlaydemos/internal/scene"
	"github.com/proximal-testing/overlaydemos/internal/system"
)

type Runner struct {
	Config  *config.Config
	Encoder encoder.VideoEncoder
}

func NewRunner(cfg *config.Config, enc encoder.VideoEncoder) *Runner {
	return &Runner{Config: cfg, Encoder: enc}
}

// OutputPath is where a scene's fixture lands: the hard-coded scene name
// plus the run suffix.
func (r *Runner) OutputPath(s *scene.Scene) string {
	return filepath.Join(r.Config.OutDir, s.Name+r.Config.Suffix+".mp4")
}

// Run flattens and encodes the given scenes. Workers defaults to 1, so
// fixtures render strictly in order unless parallelism is requested.
func (r *Runner) Run(ctx context.Context, scenes []*scene.Scene) error {
	start := time.Now()

	if err := os.MkdirAll(r.Config.OutDir, 0755); err != nil {
		return err
	}

	workers := r.Config.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	outputs := make([]string, len(scenes))
	for i, s := range scenes {
		g.Go(func() error {
			frame, err := scene.Build(s)
			if err != nil {
				return err
			}
			if r.Config.Label {
				clip.Caption(frame, s.Name)
			}

			p := config.EncodeParams{
				FPS:       r.fps(s),
				Duration:  s.Duration,
				Encoder:   r.Config.VideoEncoder,
				Quality:   r.Config.Quality,
				Bitrate:   r.Config.Bitrate,
				Preset:    r.Config.Preset,
				AudioPath: r.Config.AudioPath,
			}

			out := r.OutputPath(s)
			if err := r.Encoder.EncodeStill(ctx, frame, out, p); err != nil {
				return fmt.Errorf("fixture %s: %w", s.Name, err)
			}
			outputs[i] = out
			fmt.Printf("[>] Ready: %s\n", out)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Every fixture must exist on disk before the run counts as a success.
	for i, out := range outputs {
		if out == "" {
			return fmt.Errorf("fixture %s was not rendered", scenes[i].Name)
		}
		if _, err := os.Stat(out); err != nil {
			return fmt.Errorf("fixture %s missing at %s: %w", scenes[i].Name, out, err)
		}
	}

	if r.Config.ShowStats {
		fmt.Print(system.RunReport(time.Since(start), len(scenes), r.Config.BuildVersion))
	}
	return nil
}

func (r *Runner) fps(s *scene.Scene) int {
	if s.FPS > 0 {
		return s.FPS
	}
	if r.Config.FPS > 0 {
		return r.Config.FPS
	}
	return FPS
}

// ExportScenes writes every built-in scene to dir as YAML so it can be
// tweaked and rendered back with -scene.
func ExportScenes(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, s := range All() {
		path := filepath.Join(dir, s.Name+".yaml")
		if err := scene.Write(s, path); err != nil {
			return err
		}
		fmt.Printf("[+] Scene written: %s\n", path)
	}
	return nil
}
