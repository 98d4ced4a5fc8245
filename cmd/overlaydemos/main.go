package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/proximal-testing/overlaydemos/internal/config"
	"github.com/proximal-testing/overlaydemos/internal/demos"
	"github.com/proximal-testing/overlaydemos/internal/encoder"
	"github.com/proximal-testing/overlaydemos/internal/scene"
	"github.com/proximal-testing/overlaydemos/internal/system"
)

var buildVersion = "dev"

func main() {
	suffixPtr := flag.String("suffix", "", "Suffix to add to video filenames (e.g. '_v2' results in 'opaque_overlay_demo_v2.mp4')")
	outPtr := flag.String("out", "out", "Output directory")
	fpsPtr := flag.Int("fps", demos.FPS, "FPS")
	qualityPtr := flag.Int("quality", 0, "Quality (0 - auto, x264: CRF 1-51, VideoToolbox: bitrate = Q*100kbit/s)")
	bitratePtr := flag.String("bitrate", "500k", "Target bitrate for libx264 (empty switches to CRF)")
	presetPtr := flag.String("preset", "ultrafast", "x264 preset")
	workersPtr := flag.Int("workers", 1, "Parallel fixture renders (1 keeps the original sequential order)")
	onlyPtr := flag.String("only", "", "Comma-separated fixture names to render")
	scenePtr := flag.String("scene", "", "Render a YAML scene file instead of the built-in fixtures (a directory picks its newest scene)")
	exportPtr := flag.String("export-scenes", "", "Write the built-in fixtures as YAML scenes to this directory and exit")
	audioPtr := flag.String("audio", "", "Attach an audio track to each fixture (trimmed with -shortest)")
	labelPtr := flag.Bool("label", false, "Burn the fixture name into the frames")
	statsPtr := flag.Bool("stats", false, "Print a performance report")

	flag.Parse()

	if *exportPtr != "" {
		if err := demos.ExportScenes(*exportPtr); err != nil {
			log.Fatalf("[-] Scene export failed: %v", err)
		}
		return
	}

	encoderName := system.BestH264Encoder()
	if encoderName != "libx264" {
		fmt.Printf("[*] Обнаружено аппаратное ускорение: %s\n", encoderName)
	}

	quality := *qualityPtr
	if quality == 0 {
		switch encoderName {
		case "h264_videotoolbox":
			quality = 75
		case "h264_nvenc":
			quality = 28
		default:
			quality = 23
		}
	}

	cfg := &config.Config{
		OutDir:       *outPtr,
		Suffix:       *suffixPtr,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		Only:         *onlyPtr,
		ScenePath:    *scenePtr,
		AudioPath:    *audioPtr,
		Label:        *labelPtr,
		VideoEncoder: encoderName,
		Quality:      quality,
		Bitrate:      *bitratePtr,
		Preset:       *presetPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	if cfg.AudioPath != "" {
		if dur, err := system.AudioDuration(cfg.AudioPath); err == nil {
			fmt.Printf("[*] Soundtrack: %s (%.2fs, trimmed to each fixture)\n", cfg.AudioPath, dur)
		} else {
			log.Printf("[!] Could not probe audio duration: %v", err)
		}
	}

	var scenes []*scene.Scene
	if cfg.ScenePath != "" {
		path := cfg.ScenePath
		if fi, err := os.Stat(path); err == nil && fi.IsDir() {
			latest, err := scene.FindLatest(path)
			if err != nil {
				log.Fatalf("[-] Ошибка: %v", err)
			}
			path = latest
			fmt.Printf("[*] Выбран файл: %s\n", path)
		}
		s, err := scene.Read(path)
		if err != nil {
			log.Fatalf("[-] Scene read failed: %v", err)
		}
		normalizeScene(s, path)
		scenes = []*scene.Scene{s}
	} else {
		scenes = demos.Select(demos.All(), cfg.Only)
		if len(scenes) == 0 {
			log.Fatalf("[-] No fixtures match -only=%q", cfg.Only)
		}
	}

	r := demos.NewRunner(cfg, &encoder.FFmpegEncoder{})
	if err := r.Run(context.Background(), scenes); err != nil {
		log.Fatalf("[-] Ошибка проекта: %v", err)
	}

	fmt.Printf("[+++] Успех! Результат: %s\n", cfg.OutDir)
}

// normalizeScene fills in the fields a hand-written scene file may omit.
func normalizeScene(s *scene.Scene, path string) {
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if s.Duration <= 0 {
		s.Duration = demos.Duration
	}
	if s.Width <= 0 {
		s.Width = demos.Width
	}
	if s.Height <= 0 {
		s.Height = demos.Height
	}
}
