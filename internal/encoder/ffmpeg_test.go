package encoder

import (
	"strings"
	"testing"

	"github.com/proximal-testing/overlaydemos/internal/config"
)

func TestBuildArgsDefaults(t *testing.T) {
	p := config.EncodeParams{
		FPS:      24,
		Duration: 2,
		Encoder:  "libx264",
		Quality:  23,
		Bitrate:  "500k",
		Preset:   "ultrafast",
	}

	args := BuildArgs(320, 240, "out/opaque_overlay_demo.mp4", p)
	joined := strings.Join(args, " ")

	for _, want := range []string{
		"-f rawvideo",
		"-pixel_format rgba",
		"-video_size 320x240",
		"-framerate 24",
		"-an",
		"-pix_fmt yuv420p",
		"-c:v libx264",
		"-preset ultrafast",
		"-b:v 500k",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("args missing %q: %s", want, joined)
		}
	}

	if args[len(args)-1] != "out/opaque_overlay_demo.mp4" {
		t.Errorf("output path should be last, got %q", args[len(args)-1])
	}
}

func TestBuildArgsHardwareQuality(t *testing.T) {
	p := config.EncodeParams{FPS: 24, Duration: 2, Encoder: "h264_nvenc", Quality: 28}
	joined := strings.Join(BuildArgs(320, 240, "o.mp4", p), " ")
	if !strings.Contains(joined, "-cq 28") {
		t.Errorf("nvenc should use -cq: %s", joined)
	}

	p = config.EncodeParams{FPS: 24, Duration: 2, Encoder: "h264_videotoolbox", Quality: 75}
	joined = strings.Join(BuildArgs(320, 240, "o.mp4", p), " ")
	if !strings.Contains(joined, "-b:v 7500k") {
		t.Errorf("videotoolbox should use bitrate Q*100k: %s", joined)
	}
}

func TestBuildArgsCRFWithoutBitrate(t *testing.T) {
	p := config.EncodeParams{FPS: 24, Duration: 2, Encoder: "libx264", Quality: 23}
	joined := strings.Join(BuildArgs(320, 240, "o.mp4", p), " ")
	if !strings.Contains(joined, "-crf 23") {
		t.Errorf("empty bitrate should fall back to CRF: %s", joined)
	}
	if strings.Contains(joined, "-b:v") {
		t.Errorf("CRF mode should not set a bitrate: %s", joined)
	}
}

func TestBuildArgsSoundtrack(t *testing.T) {
	p := config.EncodeParams{FPS: 24, Duration: 2, Encoder: "libx264", Bitrate: "500k", AudioPath: "media/beat.mp3"}
	joined := strings.Join(BuildArgs(320, 240, "o.mp4", p), " ")

	if !strings.Contains(joined, "-i media/beat.mp3") {
		t.Errorf("audio input missing: %s", joined)
	}
	if !strings.Contains(joined, "-shortest") {
		t.Errorf("audio should be trimmed with -shortest: %s", joined)
	}
	if strings.Contains(joined, "-an") {
		t.Errorf("audio run should not disable audio: %s", joined)
	}
}
