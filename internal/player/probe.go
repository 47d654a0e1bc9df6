package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// FFProbe reads durations with the ffprobe binary.
type FFProbe struct {
	binary  string
	timeout time.Duration
	run     func(ctx context.Context, bin string, args ...string) ([]byte, error)
}

// NewFFProbe creates a prober. An empty binary resolves "ffprobe" on PATH.
func NewFFProbe(binary string, timeout time.Duration) *FFProbe {
	if binary == "" {
		binary = "ffprobe"
	}
	return &FFProbe{
		binary:  binary,
		timeout: timeout,
		run: func(ctx context.Context, bin string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, bin, args...).Output()
		},
	}
}

type probeOutput struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe returns the duration of path, or a *MediaError.
func (p *FFProbe) Probe(ctx context.Context, path string) (time.Duration, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, &MediaError{Code: CodeUnknown, Extra: ExtraIO, Err: err}
	}

	bin, err := exec.LookPath(p.binary)
	if err != nil {
		return 0, &MediaError{Code: CodeServerDied, Extra: ExtraNone, Err: err}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	out, err := p.run(ctx, bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return 0, &MediaError{Code: CodeUnknown, Extra: ExtraTimedOut, Err: ctx.Err()}
	}
	if err != nil {
		return 0, &MediaError{Code: CodeUnknown, Extra: ExtraMalformed, Err: fmt.Errorf("ffprobe: %w", err)}
	}

	return parseProbe(out)
}

func parseProbe(out []byte) (time.Duration, error) {
	var po probeOutput
	if err := json.Unmarshal(out, &po); err != nil {
		return 0, &MediaError{Code: CodeUnknown, Extra: ExtraMalformed, Err: err}
	}

	hasVideo := false
	for _, s := range po.Streams {
		if s.CodecType == "video" {
			hasVideo = true
			break
		}
	}
	if !hasVideo {
		return 0, &MediaError{Code: CodeUnknown, Extra: ExtraUnsupported, Err: errors.New("no video stream")}
	}

	secs, err := strconv.ParseFloat(po.Format.Duration, 64)
	if err != nil || secs <= 0 {
		return 0, &MediaError{
			Code:  CodeNotValidForProgressive,
			Extra: ExtraNone,
			Err:   fmt.Errorf("duration %q", po.Format.Duration),
		}
	}
	return time.Duration(secs * float64(time.Second)), nil
}
