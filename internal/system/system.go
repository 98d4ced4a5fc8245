package system

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/process"
)

// BestH264Encoder probes ffmpeg for hardware H.264 support.
// Приоритеты:
// 1. MacOS (VideoToolbox)
// 2. NVIDIA (NVENC)
// 3. Software (libx264)
func BestH264Encoder() string {
	out, err := exec.Command("ffmpeg", "-encoders").CombinedOutput()
	if err != nil {
		return "libx264"
	}

	for _, enc := range []string{"h264_videotoolbox", "h264_nvenc"} {
		if strings.Contains(string(out), enc) {
			return enc
		}
	}
	return "libx264"
}

// AudioDuration returns the duration of an audio file in seconds.
func AudioDuration(path string) (float64, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, err
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration)
	if err != nil {
		return 0, err
	}

	return duration, nil
}

// RunReport summarizes a finished run: wall time plus process resource
// usage sampled through gopsutil.
func RunReport(elapsed time.Duration, rendered int, build string) string {
	var rssMB float64
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			rssMB = float64(mem.RSS) / (1024 * 1024)
		}
	}
	cores, _ := cpu.Counts(true)

	return fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Fixtures: %d\n"+
			"Total Time: %.2fs\n"+
			"RSS: %.1f MB\n"+
			"Logical CPUs: %d\n"+
			"----------------------------\n",
		build, rendered, elapsed.Seconds(), rssMB, cores,
	)
}
