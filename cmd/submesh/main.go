// Command submesh meshes a box assembly and exports the result, or
// inspects and verifies an earlier export.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PawelekPro/MeshGeneratingTool-sub001/mesh"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logFormat, logLevel string

	root := &cobra.Command{
		Use:          "submesh",
		Short:        "Mesh box assemblies into a submesh registry and export them",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text|json")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")

	logger := func() (*mesh.Logger, error) {
		return newLogger(stderr, logFormat, logLevel)
	}

	root.AddCommand(
		newMeshCmd(logger),
		newInspectCmd(logger),
		newVerifyCmd(logger),
	)
	return root
}

func newLogger(w io.Writer, format, level string) (*mesh.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lv}
	switch strings.ToLower(format) {
	case "text":
		return mesh.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return mesh.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}
