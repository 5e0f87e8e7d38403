package app

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"cvtune/internal/domain/entity"
	"cvtune/internal/domain/port"
)

// TunerService даёт доступ к доске из других горутин: каждый вызов
// выполняется в потоке поверхности через Dispatcher.
type TunerService struct {
	board     *Board
	loop      port.Dispatcher
	snapshots port.SnapshotRepository
	log       zerolog.Logger
	now       func() time.Time
}

// NewTunerService создаёт сервис над доской
func NewTunerService(board *Board, loop port.Dispatcher, snapshots port.SnapshotRepository, log zerolog.Logger) *TunerService {
	return &TunerService{
		board:     board,
		loop:      loop,
		snapshots: snapshots,
		log:       log.With().Str("component", "tuner").Logger(),
		now:       time.Now,
	}
}

// ErrLoopStopped цикл поверхности завершился и больше не принимает вызовы
var ErrLoopStopped = errors.New("surface loop is stopped")

func (s *TunerService) do(fn func() error) error {
	err := ErrLoopStopped
	s.loop.Do(func() { err = fn() })
	return err
}

// Read читает ползунок или группу
func (s *TunerService) Read(name string) (entity.Reading, error) {
	var r entity.Reading
	err := s.do(func() (err error) {
		r, err = s.board.Read(name)
		return err
	})
	return r, err
}

// ReadOnLoop читает без перехода в поток поверхности.
// Вызывать только из самого потока поверхности (например, из кадра цикла highgui).
func (s *TunerService) ReadOnLoop(name string) (entity.Reading, error) {
	return s.board.Read(name)
}

// Set задаёт значение ползунка или группы: одно значение раздаётся всем
// участникам, несколько раздаются по одному на участника.
func (s *TunerService) Set(name string, values ...int) error {
	v := entity.Ints(values...)
	if len(values) == 1 {
		v = entity.Scalar(values[0])
	}
	return s.do(func() error {
		return s.board.SetValue(entity.Name(name), v)
	})
}

// Reset сбрасывает доску
func (s *TunerService) Reset() error {
	return s.do(func() error {
		s.board.Reset()
		return nil
	})
}

// Format печатает значения доски
func (s *TunerService) Format(names ...string) (string, error) {
	var text string
	err := s.do(func() (err error) {
		text, err = s.board.Format(names...)
		return err
	})
	return text, err
}

// SaveSnapshot сохраняет текущие значения всех ползунков под меткой
func (s *TunerService) SaveSnapshot(ctx context.Context, label string) error {
	values := make(map[string]int)
	err := s.do(func() error {
		for _, name := range s.board.Names() {
			v, err := s.board.Value(name)
			if err != nil {
				return err
			}
			values[name] = v
		}
		return nil
	})
	if err != nil {
		return err
	}

	snapshot := &entity.Snapshot{Label: label, Values: values, SavedAt: s.now()}
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.log.Error().Err(err).Str("label", label).Msg("save snapshot")
		return err
	}
	s.log.Info().Str("label", label).Int("sliders", len(values)).Msg("snapshot saved")
	return nil
}

// LoadSnapshot возвращает ползунки к сохранённым значениям.
// Имена, которых нет на доске, пропускаются.
func (s *TunerService) LoadSnapshot(ctx context.Context, label string) error {
	snapshot, err := s.snapshots.Get(ctx, label)
	if err != nil {
		return err
	}

	return s.do(func() error {
		var names []string
		var values []int
		for _, name := range s.board.Names() {
			if v, ok := snapshot.Values[name]; ok {
				names = append(names, name)
				values = append(values, v)
			}
		}
		if len(names) == 0 {
			return nil
		}
		return s.board.SetValue(entity.Names(names...), entity.Ints(values...))
	})
}

// Snapshots возвращает метки сохранённых снимков
func (s *TunerService) Snapshots(ctx context.Context) ([]string, error) {
	return s.snapshots.List(ctx)
}
