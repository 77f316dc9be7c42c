package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Default geometry: a 64 KB logical space split into 256-byte pages,
// one physical frame per page and a 16-slot translation cache.
const (
	DefaultPageCount  = 256
	DefaultPageSize   = 256 // bytes
	DefaultFrameCount = 256
	DefaultFrameSize  = 256 // bytes
	DefaultTLBSize    = 16

	DefaultBackingStorePath = "BACKING_STORE.bin"
)

type Config struct {
	BackingStorePath string `json:"BACKING_STORE_PATH"`
	PageCount        int    `json:"PAGE_COUNT"`
	PageSize         int    `json:"PAGE_SIZE"`
	FrameCount       int    `json:"FRAME_COUNT"`
	FrameSize        int    `json:"FRAME_SIZE"`
	TLBSize          int    `json:"TLB_SIZE"`
	LogLevel         string `json:"LOG_LEVEL,omitempty"`
}

func Default() Config {
	return Config{
		BackingStorePath: DefaultBackingStorePath,
		PageCount:        DefaultPageCount,
		PageSize:         DefaultPageSize,
		FrameCount:       DefaultFrameCount,
		FrameSize:        DefaultFrameSize,
		TLBSize:          DefaultTLBSize,
		LogLevel:         "info",
	}
}

// Load decodes a JSON config file on top of the defaults, so a partial
// file only overrides the fields it names.
func Load(path string) (Config, error) {
	cfg := Default()
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("Could not open config file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("Could not decode config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BackingStorePath == "" {
		return errors.New("Backing store path is required")
	}
	if c.PageCount <= 0 || c.PageSize <= 0 {
		return errors.New("Page count and page size must be positive")
	}
	if c.FrameCount <= 0 || c.FrameSize <= 0 {
		return errors.New("Frame count and frame size must be positive")
	}
	if c.TLBSize <= 0 {
		return errors.New("TLB size must be positive")
	}
	// A frame holds exactly one page.
	if c.PageSize != c.FrameSize {
		return fmt.Errorf("Page size %d does not match frame size %d", c.PageSize, c.FrameSize)
	}
	return nil
}
