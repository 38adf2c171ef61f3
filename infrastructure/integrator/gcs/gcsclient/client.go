package gcsclient

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/vfg2006/weather-bid-manager/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const storageScope = "https://www.googleapis.com/auth/devstorage.read_write"

type Client interface {
	UploadObject(ctx context.Context, bucket, name, content string) (*UploadResponse, error)
	TriggerTransfer(ctx context.Context, url string, payload TransferPayload) error
}

type GCSClient struct {
	storage  *resty.Client
	transfer *resty.Client
	tokens   oauth2.TokenSource
}

// NewClient cria o client resolvendo o token de acesso pela configuração:
// token fixo, arquivo de conta de serviço ou credenciais padrão do ambiente.
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	tokens, err := newTokenSource(ctx, &cfg.Storage)
	if err != nil {
		return nil, err
	}

	return NewClientWithTokenSource(cfg, tokens), nil
}

func NewClientWithTokenSource(cfg *config.Config, tokens oauth2.TokenSource) Client {
	timeout := cfg.Storage.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	storage := resty.New().
		SetBaseURL(cfg.Storage.UploadBaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	transfer := resty.New().
		SetTimeout(timeout)
	transfer.JSONMarshal = json.Marshal
	transfer.JSONUnmarshal = json.Unmarshal

	return &GCSClient{
		storage:  storage,
		transfer: transfer,
		tokens:   tokens,
	}
}

func newTokenSource(ctx context.Context, cfg *config.Storage) (oauth2.TokenSource, error) {
	if cfg.AccessToken != "" {
		logrus.Debug("Usando token de acesso fixo para o GCS")
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken}), nil
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler credenciais do GCS: %w", err)
		}

		creds, err := google.CredentialsFromJSON(ctx, data, storageScope)
		if err != nil {
			return nil, fmt.Errorf("erro ao interpretar credenciais do GCS: %w", err)
		}

		return creds.TokenSource, nil
	}

	tokens, err := google.DefaultTokenSource(ctx, storageScope)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter credenciais padrão do GCS: %w", err)
	}

	return tokens, nil
}
