package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"cvtune/config"
	telegram "cvtune/internal/api"
	"cvtune/internal/container"
	"cvtune/internal/domain/port"
	"cvtune/internal/infrastructure/storage"
	"cvtune/internal/infrastructure/surface"
	"cvtune/internal/infrastructure/vision"
)

const appID = "io.cvtune.tuner"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Logger()

	preset, err := config.LoadPreset(cfg.PresetPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PresetPath).Msg("failed to load preset")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		surf port.Surface
		loop port.Dispatcher
		run  func(c *container.Container) error
	)
	switch cfg.Surface {
	case config.SurfaceHighGUI:
		hg := surface.NewHighGUISurface(log)
		defer hg.Close()
		surf, loop = hg, hg
		run = func(c *container.Container) error {
			return hg.Run(ctx, previewFrame(cfg, c, hg, preset.Window, log))
		}
	case config.SurfaceFyne:
		fy := surface.NewFyneSurface(appID)
		surf, loop = fy, fy
		run = func(*container.Container) error { return fy.Run() }
	case config.SurfaceMemory:
		mem := surface.NewMemorySurface()
		surf, loop = mem, mem
		run = func(*container.Container) error {
			<-ctx.Done()
			return nil
		}
	default:
		log.Fatal().Str("surface", cfg.Surface).Msg("unknown surface")
	}

	// Собираем доску и сервисы приложения
	appContainer, err := container.New(surf, loop, preset, storage.NewMemorySnapshotRepository(), vision.NewProcessor(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build board")
	}

	if cfg.TelegramToken != "" {
		bot, err := telegram.NewBot(cfg.TelegramToken, appContainer, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create bot")
		}
		go func() {
			if err := bot.Run(ctx); err != nil {
				log.Error().Err(err).Msg("bot stopped")
			}
		}()
	}

	log.Info().Str("surface", cfg.Surface).Str("window", preset.Window).Msg("tuner is running")
	if err := run(appContainer); err != nil {
		log.Fatal().Err(err).Msg("surface loop failed")
	}
}

// previewFrame возвращает обработчик кадра highgui: предпросмотр изображения
// с текущими параметрами. Без PREVIEW_IMAGE кадр пустой.
func previewFrame(cfg *config.Config, c *container.Container, hg *surface.HighGUISurface, window string, log zerolog.Logger) func() error {
	if cfg.PreviewImage == "" {
		return nil
	}
	src, err := imaging.Open(cfg.PreviewImage)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.PreviewImage).Msg("preview image is not loaded")
		return nil
	}

	previewWindow := window + " preview"
	if err := hg.CreateWindow(previewWindow); err != nil {
		log.Error().Err(err).Msg("preview window is not created")
		return nil
	}

	return func() error {
		out, err := c.PreviewService.Render(src, c.TunerService.ReadOnLoop)
		if err != nil {
			return err
		}
		return hg.Show(previewWindow, out.Image)
	}
}
