package bulksheet

import (
	"context"
	"fmt"

	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
)

const (
	MessageFormatStarted  = "Iniciando a formatação da planilha do SA360.."
	MessageFormatFinished = "Concluído. Os dados foram copiados para a aba Upload."
)

type Formatter interface {
	FormatBulkSheet(ctx context.Context) (int, error)
}

type Service struct {
	sheet  spreadsheet.BulkSheet
	runLog spreadsheet.RunLog
}

func NewService(sheet spreadsheet.BulkSheet, runLog spreadsheet.RunLog) *Service {
	return &Service{
		sheet:  sheet,
		runLog: runLog,
	}
}

// FormatBulkSheet copia as linhas "location target" da aba do SA360 para a aba Upload.
// Devolve a quantidade de linhas gravadas (sem o cabeçalho).
func (s *Service) FormatBulkSheet(ctx context.Context) (int, error) {
	logger := log.ForContext(ctx)

	if err := s.runLog.Clear(ctx); err != nil {
		logger.WithError(err).Warn("Erro ao limpar o log da planilha")
	}

	source, err := s.sheet.ReadSourceGrid(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao ler a exportação do SA360: %w", err)
	}

	s.logRun(ctx, MessageFormatStarted)

	rows := Format(source)
	if err := s.sheet.ReplaceUploadRows(ctx, rows); err != nil {
		return 0, fmt.Errorf("erro ao gravar a aba Upload: %w", err)
	}

	logger.WithField("rows", len(rows)).Info("Bulk sheet formatado")
	s.logRun(ctx, MessageFormatFinished)

	return len(rows), nil
}

func (s *Service) logRun(ctx context.Context, message string) {
	if err := s.runLog.Append(ctx, message); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar no log da planilha")
	}
}
