package config

type Config struct {
	OutDir       string
	Suffix       string
	FPS          int
	Workers      int
	Only         string
	ScenePath    string
	AudioPath    string
	Label        bool
	VideoEncoder string
	Quality      int
	Bitrate      string
	Preset       string
	ShowStats    bool
	BuildVersion string
}

type EncodeParams struct {
	FPS       int
	Duration  float64
	Encoder   string
	Quality   int
	Bitrate   string
	Preset    string
	AudioPath string
}
