package gcsclient

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrMissingObjectID = errors.New("resposta do GCS sem id do objeto")
	ErrUploadStatus    = errors.New("upload para o GCS falhou")
)

// UploadResponse contém os campos usados do recurso de objeto do GCS
type UploadResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Bucket string `json:"bucket"`
	Size   string `json:"size"`
}

// UploadObject envia o conteúdo como objeto text/csv para o bucket (upload simples, sem retentativa)
func (c *GCSClient) UploadObject(ctx context.Context, bucket, name, content string) (*UploadResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("erro ao obter token de acesso: %w", err)
	}

	resp, err := c.storage.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetHeader("Content-Type", "text/csv").
		SetPathParam("bucket", bucket).
		SetQueryParam("uploadType", "media").
		SetQueryParam("name", name).
		SetBody(content).
		Post("/{bucket}/o")
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w com status: %s", ErrUploadStatus, resp.Status())
	}

	var uploaded UploadResponse
	if err := json.Unmarshal(resp.Body(), &uploaded); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if uploaded.ID == "" {
		return nil, ErrMissingObjectID
	}

	return &uploaded, nil
}
