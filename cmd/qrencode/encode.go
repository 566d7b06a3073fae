/*
 * Copyright © 2026, the qrcode project authors.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zyq-roxanne/qrcode"
	"github.com/zyq-roxanne/qrcode/qrcfg"
	"github.com/zyq-roxanne/qrcode/render"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text into a QR symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagConfig  string
	flagEC      string
	flagVersion int
	flagMask    int
	flagBorder  int
	flagBoxSize int
	flagOut     string
	flagSVG     bool
	flagLogLvl  string
)

func init() {
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "config file (YAML)")
	encodeCmd.Flags().StringVar(&flagEC, "ec", "", "error correction level: L, M, Q, or H (overrides config)")
	encodeCmd.Flags().IntVar(&flagVersion, "version", 0, "pin the symbol version 1-40 (0 = auto-fit)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -2, "pin the mask pattern 0-7 (unset = auto-select)")
	encodeCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet-zone width in modules (overrides config)")
	encodeCmd.Flags().IntVar(&flagBoxSize, "box-size", -1, "pixels per module in SVG output (overrides config)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output file (default: stdout)")
	encodeCmd.Flags().BoolVar(&flagSVG, "svg", false, "render SVG instead of a terminal sketch")
	encodeCmd.Flags().StringVar(&flagLogLvl, "loglevel", "", "debug, info, warn, or error (overrides config)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	var cfg *qrcfg.Config
	if flagConfig != "" {
		loaded, err := qrcfg.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = qrcfg.Defaults()
	}

	if flagEC != "" {
		cfg.ECLevel = flagEC
	}
	if flagVersion != 0 {
		cfg.Version = flagVersion
	}
	if flagMask != -2 {
		cfg.Mask = flagMask
	}
	if flagBorder >= 0 {
		cfg.Border = flagBorder
	}
	if flagBoxSize > 0 {
		cfg.BoxSize = flagBoxSize
	}
	if flagLogLvl != "" {
		cfg.LogLevel = flagLogLvl
	}

	setupLogging(cfg.LogLevel)

	ec, err := qrcode.ParseECLevel(cfg.ECLevel)
	if err != nil {
		return err
	}

	opts := []qrcode.Option{
		qrcode.WithBorder(cfg.Border),
		qrcode.WithMask(cfg.Mask),
	}
	if cfg.Version != 0 {
		opts = append(opts, qrcode.WithVersion(cfg.Version))
	}

	q := qrcode.New(ec, opts...)
	q.AddData([]byte(args[0]))
	if err := q.Build(); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	slog.Info("encoded symbol", "version", q.Version(), "ec", ec, "mask", q.Mask())

	matrix := q.Matrix()
	var output string
	if flagSVG {
		output, err = render.SVG(matrix, render.SVGOptions{BoxSize: cfg.BoxSize, IncludeDocType: true})
		if err != nil {
			return err
		}
	} else {
		output = render.Terminal(matrix)
	}

	if flagOut == "" {
		fmt.Print(output)
		return nil
	}
	return os.WriteFile(flagOut, []byte(output), 0644)
}

// setupLogging configures the default slog handler's minimum level.
func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
