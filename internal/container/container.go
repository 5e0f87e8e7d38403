package container

import (
	"github.com/rs/zerolog"

	"cvtune/config"
	app "cvtune/internal/application"
	"cvtune/internal/domain/port"
)

type Container struct {
	Board          *app.Board
	TunerService   *app.TunerService
	PreviewService *app.PreviewService
}

func New(surface port.Surface, loop port.Dispatcher, preset *config.Preset, snapshots port.SnapshotRepository, processor port.ImageProcessor, log zerolog.Logger) (*Container, error) {
	board, err := app.BuildBoard(surface, preset, log)
	if err != nil {
		return nil, err
	}
	tunerService := app.NewTunerService(board, loop, snapshots, log)
	previewService := app.NewPreviewService(processor, preset.Preview, log)

	return &Container{
		Board:          board,
		TunerService:   tunerService,
		PreviewService: previewService,
	}, nil
}
