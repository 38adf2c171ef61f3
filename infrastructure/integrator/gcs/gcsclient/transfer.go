package gcsclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrTransferStatus = errors.New("chamada de transferência falhou")

// TransferPayload é o corpo enviado ao endpoint que move o arquivo do bucket para o SFTP do SA360
type TransferPayload struct {
	FileName     string `json:"filename"`
	Bucket       string `json:"bucket"`
	SFTPHost     string `json:"sftp-host"`
	SFTPPort     int    `json:"sftp-port"`
	SFTPUsername string `json:"sftp-username"`
	SFTPPassword string `json:"sftp-password"`
}

func (c *GCSClient) TriggerTransfer(ctx context.Context, url string, payload TransferPayload) error {
	resp, err := c.transfer.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w com status: %s", ErrTransferStatus, resp.Status())
	}

	return nil
}
