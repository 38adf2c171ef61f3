package bulksheet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	sheetmocks "github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/bulksheet"
)

func TestService_FormatBulkSheet(t *testing.T) {
	t.Run("Formata e substitui a aba Upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sheet := sheetmocks.NewMockBulkSheet(ctrl)
		runLog := sheetmocks.NewMockRunLog(ctrl)

		source := [][]string{
			{"Row Type", "Location"},
			{"location target", "Milano"},
			{"campaign", ""},
		}

		gomock.InOrder(
			runLog.EXPECT().Clear(gomock.Any()).Return(nil),
			sheet.EXPECT().ReadSourceGrid(gomock.Any()).Return(source, nil),
			runLog.EXPECT().Append(gomock.Any(), bulksheet.MessageFormatStarted).Return(nil),
			sheet.EXPECT().ReplaceUploadRows(gomock.Any(), []*domain.BulkUploadRow{
				{RowType: "location target", Location: "Milano"},
			}).Return(nil),
			runLog.EXPECT().Append(gomock.Any(), bulksheet.MessageFormatFinished).Return(nil),
		)

		count, err := bulksheet.NewService(sheet, runLog).FormatBulkSheet(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Erro de leitura interrompe antes de gravar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sheet := sheetmocks.NewMockBulkSheet(ctrl)
		runLog := sheetmocks.NewMockRunLog(ctrl)

		runLog.EXPECT().Clear(gomock.Any()).Return(nil)
		sheet.EXPECT().ReadSourceGrid(gomock.Any()).Return(nil, errors.New("not found"))
		sheet.EXPECT().ReplaceUploadRows(gomock.Any(), gomock.Any()).Times(0)

		_, err := bulksheet.NewService(sheet, runLog).FormatBulkSheet(context.Background())
		assert.Error(t, err)
	})
}
