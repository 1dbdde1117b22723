package invoke

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Conventional build locations for the parsm binary, relative to the
// parsm project root.
const (
	ReleaseBinary = "target/release/parsm"
	DebugBinary   = "target/debug/parsm"

	projectMarker = "Cargo.toml"
)

// RequireProjectRoot verifies the current directory is the parsm
// project root. Conformance runs refuse to start anywhere else.
func RequireProjectRoot() error {
	if _, err := os.Stat(projectMarker); err != nil {
		return fmt.Errorf(
			"must be run from the parsm project root (no %s in %s)",
			projectMarker, cwdOrDot(),
		)
	}

	return nil
}

// ResolveBinary locates the parsm binary under test. An explicit path,
// when given, must exist. Otherwise the release build is preferred,
// then the debug build, then a release build is triggered and its
// output required. All failure modes collapse into one terminal error.
func ResolveBinary(
	ctx context.Context,
	logger *slog.Logger,
	explicit string,
) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf(
				"parsm binary not found at %s (build it with `cargo build --release`): %w",
				explicit, err,
			)
		}

		return explicit, nil
	}

	if _, err := os.Stat(ReleaseBinary); err == nil {
		return ReleaseBinary, nil
	}

	if _, err := os.Stat(DebugBinary); err == nil {
		return DebugBinary, nil
	}

	logger.InfoContext(ctx, "building parsm",
		slog.String("command", "cargo build --release"),
	)

	cmd := exec.CommandContext(ctx, "cargo", "build", "--release")
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("cargo build --release: %w", err)
	}

	if _, err := os.Stat(ReleaseBinary); err != nil {
		return "", fmt.Errorf(
			"parsm binary not found at %s after build", ReleaseBinary,
		)
	}

	return ReleaseBinary, nil
}

func cwdOrDot() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}

	return filepath.Clean(wd)
}
