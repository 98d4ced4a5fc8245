package encoder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	"os/exec"

	"golang.org/x/sync/errgroup"

	"github.com/proximal-testing/overlaydemos/internal/config"
)

type VideoEncoder interface {
	EncodeStill(ctx context.Context, frame *image.RGBA, outPath string, p config.EncodeParams) error
}

type FFmpegEncoder struct{}

// EncodeStill streams the frame fps*duration times into ffmpeg as raw
// RGBA over stdin and writes the encoded video to outPath. The scenes are
// static, so repeating one flattened frame is the whole video.
func (e *FFmpegEncoder) EncodeStill(ctx context.Context, frame *image.RGBA, outPath string, p config.EncodeParams) error {
	frames := int(p.Duration*float64(p.FPS) + 0.5)
	if frames < 1 {
		frames = 1
	}

	args := BuildArgs(frame.Bounds().Dx(), frame.Bounds().Dy(), outPath, p)

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("ffmpeg start error: %w", err)
	}

	// The writer runs alongside cmd.Wait so a failed encoder does not
	// leave the pipe writer blocked.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stdin.Close()
		pix := rawRGBA(frame)
		for i := 0; i < frames; i++ {
			if _, err := stdin.Write(pix); err != nil {
				return fmt.Errorf("write raw error: %w", err)
			}
		}
		return nil
	})

	werr := g.Wait()
	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("ffmpeg wait error: %w, output: %s", err, out.String())
	}
	return werr
}

// BuildArgs assembles the ffmpeg invocation: raw RGBA on stdin, H.264 out
// at yuv420p, audio disabled unless a soundtrack is attached.
func BuildArgs(inputW, inputH int, outPath string, p config.EncodeParams) []string {
	args := []string{
		"-y",
		"-f", "rawvideo",
		"-pixel_format", "rgba",
		"-video_size", fmt.Sprintf("%dx%d", inputW, inputH),
		"-framerate", fmt.Sprintf("%d", p.FPS),
		"-i", "-",
	}

	if p.AudioPath != "" {
		args = append(args, "-i", p.AudioPath, "-shortest", "-c:a", "aac")
	} else {
		args = append(args, "-an")
	}

	args = append(args,
		"-t", fmt.Sprintf("%f", p.Duration),
		"-r", fmt.Sprintf("%d", p.FPS),
		"-pix_fmt", "yuv420p",
		"-c:v", p.Encoder,
	)

	// Качество в зависимости от энкодера
	switch p.Encoder {
	case "h264_videotoolbox":
		bitrate := p.Quality * 100
		args = append(args, "-b:v", fmt.Sprintf("%dk", bitrate))
	case "h264_nvenc":
		args = append(args, "-cq", fmt.Sprintf("%d", p.Quality))
	default: // libx264
		preset := p.Preset
		if preset == "" {
			preset = "ultrafast"
		}
		args = append(args, "-preset", preset)
		if p.Bitrate != "" {
			args = append(args, "-b:v", p.Bitrate)
		} else {
			args = append(args, "-crf", fmt.Sprintf("%d", p.Quality))
		}
	}

	args = append(args, outPath)
	return args
}

func rawRGBA(img *image.RGBA) []byte {
	bounds := img.Bounds()
	// Проверяем, является ли изображение уже RGBA и имеет ли стандартный шаг (stride)
	if img.Stride != bounds.Dx()*4 || bounds.Min.X != 0 || bounds.Min.Y != 0 {
		norm := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(norm, norm.Bounds(), img, bounds.Min, draw.Src)
		return norm.Pix
	}
	return img.Pix
}
