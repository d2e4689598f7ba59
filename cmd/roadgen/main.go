// Package main is the entry point for roadgen, which builds the sample road,
// smooths its joints and exports the surface mesh.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roadsmith/internal/config"
	"github.com/Faultbox/roadsmith/internal/editor"
	"github.com/Faultbox/roadsmith/internal/export"
	"github.com/Faultbox/roadsmith/internal/logger"
	"github.com/Faultbox/roadsmith/pkg/road"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== roadgen ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("roadgen failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	policy, err := editor.ParsePolicy(cfg.Mesh.SmoothPolicy)
	if err != nil {
		return err
	}

	ed := editor.New(editor.Config{
		MinWidth:   cfg.Editor.MinWidth,
		MinLength:  cfg.Editor.MinLength,
		DefaultMiu: cfg.Editor.DefaultMiu,
	})
	if err := ed.BuildDemo(); err != nil {
		return fmt.Errorf("building demo road: %w", err)
	}

	var mesh *road.Mesh
	if cfg.Mesh.Raw {
		mesh = ed.RawMesh(cfg.Mesh.Subdivision)
	} else {
		mesh = ed.SmoothMesh(cfg.Mesh.Subdivision, road.SmoothOptions{
			Percent: cfg.Mesh.Smooth,
			Policy:  policy,
		})
	}

	opts := export.Options{Format: cfg.Export.Format, Scale: cfg.Export.Scale}
	if err := export.Save(cfg.Export.Path, mesh, opts); err != nil {
		return fmt.Errorf("exporting mesh: %w", err)
	}

	bounds := mesh.Bounds()
	logger.Info("mesh exported",
		zap.String("path", cfg.Export.Path),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Any("min", bounds.Min),
		zap.Any("max", bounds.Max),
	)
	return nil
}
