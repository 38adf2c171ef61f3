package uploading

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/gcs/gcsclient"
	gcsmocks "github.com/vfg2006/weather-bid-manager/infrastructure/integrator/gcs/mocks"
	sheetmocks "github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	configmocks "github.com/vfg2006/weather-bid-manager/internal/usecases/configuring/mocks"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

var fixedNow = time.UnixMilli(1700000000000)

type fixture struct {
	credentials  *configmocks.MockCredentialManager
	storage      *gcsmocks.MockClient
	weatherSheet *sheetmocks.MockWeatherSheet
	bulkSheet    *sheetmocks.MockBulkSheet
	runLog       *sheetmocks.MockRunLog
	service      *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		credentials:  configmocks.NewMockCredentialManager(ctrl),
		storage:      gcsmocks.NewMockClient(ctrl),
		weatherSheet: sheetmocks.NewMockWeatherSheet(ctrl),
		bulkSheet:    sheetmocks.NewMockBulkSheet(ctrl),
		runLog:       sheetmocks.NewMockRunLog(ctrl),
	}

	f.service = NewService(f.credentials, f.storage, f.weatherSheet, f.bulkSheet, f.runLog)
	f.service.now = func() time.Time { return fixedNow }
	return f
}

func validCredentials() *domain.AdvertiserCredentials {
	return &domain.AdvertiserCredentials{
		Host:        "sftp.example.com",
		Port:        "22",
		Username:    "user",
		Password:    "secret",
		Bucket:      "bucket",
		CallbackURL: "https://transfer.example.com",
	}
}

func sampleGrid() [][]string {
	return [][]string{
		{"Row Type", "Location"},
		{"location target", "Milano"},
		{"location target", "Roma"},
	}
}

func TestService_Send(t *testing.T) {
	t.Run("Envia o CSV e aciona a transferência", func(t *testing.T) {
		f := newFixture(t)

		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(validCredentials(), nil)
		gomock.InOrder(
			f.storage.EXPECT().
				UploadObject(gomock.Any(), "bucket", "42-1700000000000.csv", "Row Type,Location\r\nlocation target,Milano\r\nlocation target,Roma").
				Return(&gcsclient.UploadResponse{ID: "bucket/42-1700000000000.csv/1"}, nil).
				Times(1),
			f.storage.EXPECT().
				TriggerTransfer(gomock.Any(), "https://transfer.example.com", gcsclient.TransferPayload{
					FileName:     "42-1700000000000.csv",
					Bucket:       "bucket",
					SFTPHost:     "sftp.example.com",
					SFTPPort:     22,
					SFTPUsername: "user",
					SFTPPassword: "secret",
				}).
				Return(nil).
				Times(1),
		)
		f.runLog.EXPECT().
			Append(gomock.Any(), "Bulk sheet do anunciante Acme [42] enviado ao GCS/SFTP: 2 campanhas, arquivo 42-1700000000000.csv").
			Return(nil)

		result, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		require.NoError(t, err)
		assert.Equal(t, &domain.UploadResult{
			Advertiser:   "Acme",
			AdvertiserID: "42",
			FileName:     "42-1700000000000.csv",
			ObjectID:     "bucket/42-1700000000000.csv/1",
			Rows:         2,
		}, result)
	})

	t.Run("Sem acesso SFTP não faz chamadas externas", func(t *testing.T) {
		f := newFixture(t)
		creds := validCredentials()
		creds.Password = ""

		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(creds, nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.storage.EXPECT().TriggerTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.runLog.EXPECT().Append(gomock.Any(), "Nenhuma informação de acesso SFTP encontrada para o anunciante Acme").Return(nil)

		result, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		require.NoError(t, err)
		assert.True(t, result.Skipped)
	})

	t.Run("Porta não numérica falha antes de qualquer chamada", func(t *testing.T) {
		f := newFixture(t)
		creds := validCredentials()
		creds.Port = "vinte e dois"

		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(creds, nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.storage.EXPECT().TriggerTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrInvalidPort)
	})

	t.Run("Falha no upload não aciona a transferência", func(t *testing.T) {
		f := newFixture(t)

		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(validCredentials(), nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, gcsclient.ErrMissingObjectID).Times(1)
		f.storage.EXPECT().TriggerTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		result, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrStorageUpload)

		var uploadErr *UploadError
		require.ErrorAs(t, err, &uploadErr)
		assert.Equal(t, apiErrors.ErrStorageUpload, uploadErr.Code)
		assert.Contains(t, uploadErr.Error(), gcsclient.ErrMissingObjectID.Error())
	})

	t.Run("Falha na transferência é fatal e não repete", func(t *testing.T) {
		f := newFixture(t)

		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(validCredentials(), nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&gcsclient.UploadResponse{ID: "x"}, nil).Times(1)
		f.storage.EXPECT().TriggerTransfer(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(gcsclient.ErrTransferStatus).Times(1)

		result, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrTransferTrigger)
	})

	t.Run("Erro ao obter credenciais é devolvido", func(t *testing.T) {
		f := newFixture(t)
		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(nil, errors.New("db down"))

		_, err := f.service.Send(context.Background(), sampleGrid(), "Acme", "42")
		assert.EqualError(t, err, "db down")
	})
}

func TestService_CopyBidAdjustments(t *testing.T) {
	f := newFixture(t)

	locations := []*domain.LocationRow{
		{SA360LocationName: "Milano", BidAdjustment: "0.125"},
		{SA360LocationName: "Roma", BidAdjustment: ""},
	}
	uploadRows := []*domain.BulkUploadRow{
		{Location: "Milano", LocationBidAdjustmentPct: "3%"},
		{Location: "Firenze", LocationBidAdjustmentPct: "7%"},
		{Location: "Roma"},
	}

	f.weatherSheet.EXPECT().ReadLocationRows(gomock.Any()).Return(locations, nil)
	f.bulkSheet.EXPECT().ReadUploadRows(gomock.Any()).Return(uploadRows, nil)
	f.bulkSheet.EXPECT().WriteBidAdjustments(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*domain.BulkUploadRow) error {
			assert.Equal(t, "12%", rows[0].LocationBidAdjustmentPct)
			assert.Equal(t, "7%", rows[1].LocationBidAdjustmentPct)
			assert.Equal(t, "0%", rows[2].LocationBidAdjustmentPct)
			return nil
		})

	rows, err := f.service.CopyBidAdjustments(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestService_SendUpdate(t *testing.T) {
	t.Run("Usa anunciante da primeira linha e registra conclusão", func(t *testing.T) {
		f := newFixture(t)

		uploadRows := []*domain.BulkUploadRow{
			{RowType: "location target", Location: "Milano", AdvertiserID: "42", Advertiser: "Acme"},
			{},
			{RowType: "location target", Location: "Roma", AdvertiserID: "42", Advertiser: "Acme"},
		}

		f.weatherSheet.EXPECT().ReadLocationRows(gomock.Any()).Return([]*domain.LocationRow{
			{SA360LocationName: "Milano", BidAdjustment: "0.2"},
		}, nil)
		f.bulkSheet.EXPECT().ReadUploadRows(gomock.Any()).Return(uploadRows, nil)
		f.bulkSheet.EXPECT().WriteBidAdjustments(gomock.Any(), uploadRows).Return(nil)
		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), "Acme").Return(validCredentials(), nil)
		f.storage.EXPECT().UploadObject(gomock.Any(), "bucket", "42-1700000000000.csv", gomock.Any()).
			Return(&gcsclient.UploadResponse{ID: "obj"}, nil)
		f.storage.EXPECT().TriggerTransfer(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			f.runLog.EXPECT().Append(gomock.Any(), "Bulk sheet do anunciante Acme [42] enviado ao GCS/SFTP: 2 campanhas, arquivo 42-1700000000000.csv").Return(nil),
			f.runLog.EXPECT().Append(gomock.Any(), MessageJobCompleted).Return(nil),
		)

		result, err := f.service.SendUpdate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, result.Rows)
	})

	t.Run("Aba Upload vazia", func(t *testing.T) {
		f := newFixture(t)

		f.weatherSheet.EXPECT().ReadLocationRows(gomock.Any()).Return(nil, nil)
		f.bulkSheet.EXPECT().ReadUploadRows(gomock.Any()).Return([]*domain.BulkUploadRow{}, nil)
		f.bulkSheet.EXPECT().WriteBidAdjustments(gomock.Any(), gomock.Any()).Return(nil)
		f.credentials.EXPECT().GetOrPrompt(gomock.Any(), gomock.Any()).Times(0)

		_, err := f.service.SendUpdate(context.Background())
		assert.ErrorIs(t, err, ErrNoUploadRows)
	})

	t.Run("Erro ao ler a planilha", func(t *testing.T) {
		f := newFixture(t)

		f.weatherSheet.EXPECT().ReadLocationRows(gomock.Any()).Return(nil, errors.New("forbidden"))

		_, err := f.service.SendUpdate(context.Background())
		assert.ErrorIs(t, err, ErrSpreadsheet)
	})
}
