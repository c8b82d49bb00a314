package ghostscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"pdfsqueeze/internal/services"
)

var commandContext = exec.CommandContext

// Request describes a single compression invocation.
type Request struct {
	Input     string
	Output    string
	Preset    string
	TargetDPI int
}

// Compressor defines PDF compression behaviour.
type Compressor interface {
	Compress(ctx context.Context, req Request) error
}

// Option configures the CLI client.
type Option func(*Client)

// WithBinary overrides the resolved binary path.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// Client wraps the Ghostscript command-line engine.
type Client struct {
	binary string
}

// NewClient constructs a client. Callers normally pass WithBinary with a path
// obtained from Locate; without it the generic "gs" name is handed straight
// to the OS.
func NewClient(opts ...Option) *Client {
	client := &Client{binary: "gs"}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Compress runs Ghostscript synchronously to rewrite req.Input into
// req.Output. The preset is validated before any process is spawned. A
// non-zero exit surfaces as an external tool error embedding the captured
// stderr and stdout.
func (c *Client) Compress(ctx context.Context, req Request) error {
	if strings.TrimSpace(req.Input) == "" {
		return services.Wrap(services.ErrValidation, "ghostscript", "compress", "input path required", nil)
	}
	if strings.TrimSpace(req.Output) == "" {
		return services.Wrap(services.ErrValidation, "ghostscript", "compress", "output path required", nil)
	}
	if req.TargetDPI < 0 {
		return services.Wrap(services.ErrValidation, "ghostscript", "compress", "target dpi must be positive", nil)
	}

	preset := req.Preset
	if strings.TrimSpace(preset) == "" {
		preset = DefaultPreset
	}
	token, err := Token(preset)
	if err != nil {
		return err
	}

	args := buildArgs(token, req)

	cmd := commandContext(ctx, c.binary, args...) //nolint:gosec
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return services.Wrap(
				services.ErrExternalTool,
				"ghostscript",
				"compress",
				fmt.Sprintf("exit status %d\nstderr: %s\nstdout: %s",
					exitErr.ExitCode(),
					strings.TrimSpace(stderr.String()),
					strings.TrimSpace(stdout.String())),
				nil,
			)
		}
		return services.Wrap(services.ErrExternalTool, "ghostscript", "compress", "start process", err)
	}
	return nil
}

// buildArgs assembles the Ghostscript argument vector. The -sOutputFile flag
// must immediately precede the input path, and both stay last; downsampling
// flags are spliced in just before them.
func buildArgs(token string, req Request) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + token,
		"-dNOPAUSE",
		"-dBATCH",
		"-dQUIET",
		"-dDetectDuplicateImages=true",
		"-dCompressFonts=true",
		"-dSubsetFonts=true",
	}
	if req.TargetDPI > 0 {
		args = append(args,
			"-dDownsampleColorImages=true",
			fmt.Sprintf("-dColorImageResolution=%d", req.TargetDPI),
			"-dDownsampleGrayImages=true",
			fmt.Sprintf("-dGrayImageResolution=%d", req.TargetDPI),
			"-dDownsampleMonoImages=true",
			fmt.Sprintf("-dMonoImageResolution=%d", req.TargetDPI),
		)
	}
	args = append(args, "-sOutputFile="+req.Output, req.Input)
	return args
}

var _ Compressor = (*Client)(nil)
