package uploading

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vfg2006/weather-bid-manager/infrastructure/integrator/gcs/gcsclient"
	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/bidding"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
	"github.com/vfg2006/weather-bid-manager/pkg/utils"
)

const MessageJobCompleted = "Job concluído."

type Uploader interface {
	Send(ctx context.Context, grid [][]string, advertiser, advertiserID string) (*domain.UploadResult, error)
	CopyBidAdjustments(ctx context.Context) ([]*domain.BulkUploadRow, error)
	SendUpdate(ctx context.Context) (*domain.UploadResult, error)
}

type Service struct {
	credentials  configuring.CredentialManager
	storage      gcsclient.Client
	weatherSheet spreadsheet.WeatherSheet
	bulkSheet    spreadsheet.BulkSheet
	runLog       spreadsheet.RunLog
	now          func() time.Time
}

func NewService(
	credentials configuring.CredentialManager,
	storage gcsclient.Client,
	weatherSheet spreadsheet.WeatherSheet,
	bulkSheet spreadsheet.BulkSheet,
	runLog spreadsheet.RunLog,
) *Service {
	return &Service{
		credentials:  credentials,
		storage:      storage,
		weatherSheet: weatherSheet,
		bulkSheet:    bulkSheet,
		runLog:       runLog,
		now:          time.Now,
	}
}

// Send envia a grade como CSV ao bucket e aciona a transferência para o SFTP do SA360.
// Sem acesso SFTP configurado o envio é pulado (Skipped) sem erro.
// Nenhuma das duas chamadas é repetida em caso de falha.
func (s *Service) Send(ctx context.Context, grid [][]string, advertiser, advertiserID string) (*domain.UploadResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"advertiser":    advertiser,
		"advertiser_id": advertiserID,
	})

	result := &domain.UploadResult{
		Advertiser:   advertiser,
		AdvertiserID: advertiserID,
	}

	creds, err := s.credentials.GetOrPrompt(ctx, advertiser)
	if err != nil {
		return nil, err
	}

	if !creds.HasSFTPAccess() {
		logger.Warn("Anunciante sem acesso SFTP configurado")
		s.logRun(ctx, "Nenhuma informação de acesso SFTP encontrada para o anunciante "+advertiser)
		result.Skipped = true
		return result, nil
	}

	port, err := strconv.Atoi(strings.TrimSpace(creds.Port))
	if err != nil {
		return nil, NewUploadError(ErrInvalidPort, apiErrors.ErrInvalidPort, fmt.Sprintf("porta %q", creds.Port))
	}

	fileName := fmt.Sprintf("%s-%d.csv", advertiserID, s.now().UnixMilli())

	uploaded, err := s.storage.UploadObject(ctx, creds.Bucket, fileName, utils.ToCSV(grid))
	if err != nil {
		logger.WithError(err).Error("Falha no upload do bulk sheet")
		return nil, NewUploadError(ErrStorageUpload, apiErrors.ErrStorageUpload, err.Error())
	}

	err = s.storage.TriggerTransfer(ctx, creds.CallbackURL, gcsclient.TransferPayload{
		FileName:     fileName,
		Bucket:       creds.Bucket,
		SFTPHost:     creds.Host,
		SFTPPort:     port,
		SFTPUsername: creds.Username,
		SFTPPassword: creds.Password,
	})
	if err != nil {
		logger.WithError(err).Error("Falha ao acionar a transferência SFTP")
		return nil, NewUploadError(ErrTransferTrigger, apiErrors.ErrTransferTrigger, err.Error())
	}

	rows := len(grid) - 1
	if rows < 0 {
		rows = 0
	}

	result.FileName = fileName
	result.ObjectID = uploaded.ID
	result.Rows = rows

	logger.WithField("file", fileName).Info("Bulk sheet enviado")
	s.logRun(ctx, fmt.Sprintf("Bulk sheet do anunciante %s [%s] enviado ao GCS/SFTP: %d campanhas, arquivo %s",
		advertiser, advertiserID, rows, fileName))

	return result, nil
}

// CopyBidAdjustments leva as porcentagens da aba Weather para a coluna de ajuste da aba Upload
func (s *Service) CopyBidAdjustments(ctx context.Context) ([]*domain.BulkUploadRow, error) {
	locations, err := s.weatherSheet.ReadLocationRows(ctx)
	if err != nil {
		return nil, NewUploadError(ErrSpreadsheet, apiErrors.ErrSpreadsheet, err.Error())
	}

	uploadRows, err := s.bulkSheet.ReadUploadRows(ctx)
	if err != nil {
		return nil, NewUploadError(ErrSpreadsheet, apiErrors.ErrSpreadsheet, err.Error())
	}

	matched := bidding.Apply(uploadRows, bidding.ComputeAdjustments(locations))
	log.ForContext(ctx).WithFields(log.Fields{
		"rows":    len(uploadRows),
		"matched": matched,
	}).Info("Ajustes de lance copiados para a aba Upload")

	if err := s.bulkSheet.WriteBidAdjustments(ctx, uploadRows); err != nil {
		return nil, NewUploadError(ErrSpreadsheet, apiErrors.ErrSpreadsheet, err.Error())
	}

	return uploadRows, nil
}

// SendUpdate copia os ajustes e envia a aba Upload; anunciante e ID vêm da primeira linha de dados
func (s *Service) SendUpdate(ctx context.Context) (*domain.UploadResult, error) {
	uploadRows, err := s.CopyBidAdjustments(ctx)
	if err != nil {
		return nil, err
	}

	rows := nonEmptyRows(uploadRows)
	if len(rows) == 0 {
		return nil, NewUploadError(ErrNoUploadRows, apiErrors.ErrNoUploadRows, "")
	}

	result, err := s.Send(ctx, domain.BulkSheetGrid(rows), rows[0].Advertiser, rows[0].AdvertiserID)
	if err != nil {
		return nil, err
	}

	s.logRun(ctx, MessageJobCompleted)

	return result, nil
}

func (s *Service) logRun(ctx context.Context, message string) {
	if err := s.runLog.Append(ctx, message); err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao registrar no log da planilha")
	}
}

func nonEmptyRows(rows []*domain.BulkUploadRow) []*domain.BulkUploadRow {
	filtered := make([]*domain.BulkUploadRow, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		if strings.Join(row.Values(), "") == "" {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
