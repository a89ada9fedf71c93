// Copyright (c) Kotoba Lab. All rights reserved.
// SPDX-License-Identifier: MIT

// vvsay renders a line of text to a WAV file with a local VOICEVOX core.
//
// Paths come from the environment:
//
//	VOICEVOX_CORE_LIB   explicit path to the core shared library
//	VOICEVOX_CORE_DIR   directory holding the platform default filename
//	OPEN_JTALK_DICT_DIR Open JTalk dictionary directory
//	VOICEVOX_MODEL      path to a .vvm voice model file
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lmittmann/tint"

	voicevoxcore "github.com/kotoba-lab/voicevoxcore-go"
)

type config struct {
	LibPath   string `env:"VOICEVOX_CORE_LIB"`
	LibDir    string `env:"VOICEVOX_CORE_DIR" envDefault:"."`
	DictDir   string `env:"OPEN_JTALK_DICT_DIR" envDefault:"open_jtalk_dic_utf_8-1.11"`
	ModelPath string `env:"VOICEVOX_MODEL" envDefault:"model.vvm"`
}

func main() {
	text := flag.String("text", "こんにちは", "text to synthesize")
	styleID := flag.Uint("style", 0, "style id")
	out := flag.String("out", "out.wav", "output WAV path")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}))
	slog.SetDefault(log)

	if err := run(*text, uint32(*styleID), *out, *timeout, log); err != nil {
		log.Error("vvsay failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(text string, styleID uint32, out string, timeout time.Duration, log *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	lib, err := voicevoxcore.Open(voicevoxcore.Config{
		Path:   cfg.LibPath,
		Dir:    cfg.LibDir,
		Logger: log,
	})
	if err != nil {
		return err
	}
	defer lib.Close()
	log.Info("core loaded", slog.String("version", lib.Version()))

	ort, err := lib.LoadOnnxruntime(ctx)
	if err != nil {
		return err
	}

	synth, err := lib.NewSynthesizerWithDict(ctx, ort, cfg.DictDir)
	if err != nil {
		return err
	}
	defer synth.Close()

	model, err := lib.OpenVoiceModelFile(ctx, cfg.ModelPath)
	if err != nil {
		return err
	}
	if err := synth.LoadVoiceModel(ctx, model); err != nil {
		model.Close()
		return err
	}
	// The synthesizer keeps its own copy of the model data.
	model.Close()
	log.Info("voice model loaded", slog.String("id", model.ID().String()))

	wav, err := synth.Tts(ctx, text, styleID)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, wav, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	log.Info("done", slog.String("out", out), slog.Int("bytes", len(wav)))
	return nil
}
