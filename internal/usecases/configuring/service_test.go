package configuring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/vfg2006/weather-bid-manager/infrastructure/repository/mocks"
	sheetmocks "github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet/mocks"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring/mocks"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

func fullFields() map[string]string {
	return map[string]string{
		domain.CredentialFieldHost:     "sftp.example.com",
		domain.CredentialFieldPort:     "22",
		domain.CredentialFieldUsername: "user",
		domain.CredentialFieldPassword: "secret",
		domain.CredentialFieldBucket:   "bucket",
		domain.CredentialFieldURL:      "https://transfer.example.com",
	}
}

func TestService_IsConfigured(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   bool
	}{
		{name: "Todos os campos presentes", values: fullFields(), want: true},
		{name: "Armazenamento vazio", values: map[string]string{}, want: false},
		{name: "Falta a URL", values: func() map[string]string {
			v := fullFields()
			delete(v, domain.CredentialFieldURL)
			return v
		}(), want: false},
		{name: "Campo presente mas vazio conta como gravado", values: func() map[string]string {
			v := fullFields()
			v[domain.CredentialFieldPassword] = ""
			return v
		}(), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockCredentialRepository(ctrl)
			repo.EXPECT().GetAll(gomock.Any()).Return(tt.values, nil)

			service := configuring.NewService(repo, nil, nil)

			got, err := service.IsConfigured(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetOrPrompt(t *testing.T) {
	t.Run("Configuração existente não pergunta nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		prompter := mocks.NewMockPrompter(ctrl)

		repo.EXPECT().GetAll(gomock.Any()).Return(fullFields(), nil)
		prompter.EXPECT().Prompt(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		service := configuring.NewService(repo, prompter, nil)

		creds, err := service.GetOrPrompt(context.Background(), "Acme")
		require.NoError(t, err)
		assert.Equal(t, "sftp.example.com", creds.Host)
		assert.Equal(t, "https://transfer.example.com", creds.CallbackURL)
	})

	t.Run("Pergunta os seis campos em ordem e grava", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		prompter := mocks.NewMockPrompter(ctrl)
		runLog := sheetmocks.NewMockRunLog(ctrl)

		answers := fullFields()
		calls := make([]any, 0, len(domain.CredentialFields))
		for _, field := range domain.CredentialFields {
			calls = append(calls, prompter.EXPECT().Prompt(gomock.Any(), "Acme", field).Return(answers[field], true, nil))
		}
		gomock.InOrder(calls...)

		gomock.InOrder(
			repo.EXPECT().GetAll(gomock.Any()).Return(map[string]string{}, nil),
			repo.EXPECT().SetAll(gomock.Any(), answers).Return(nil),
			repo.EXPECT().GetAll(gomock.Any()).Return(answers, nil),
		)
		runLog.EXPECT().Append(gomock.Any(), "Salvando configuração SFTP do anunciante Acme").Return(nil)

		service := configuring.NewService(repo, prompter, runLog)

		creds, err := service.GetOrPrompt(context.Background(), "Acme")
		require.NoError(t, err)
		assert.True(t, creds.HasSFTPAccess())
		assert.Equal(t, "bucket", creds.Bucket)
	})

	t.Run("Cancelamento no terceiro campo não grava nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		prompter := mocks.NewMockPrompter(ctrl)
		runLog := sheetmocks.NewMockRunLog(ctrl)

		repo.EXPECT().GetAll(gomock.Any()).Return(map[string]string{}, nil)
		repo.EXPECT().SetAll(gomock.Any(), gomock.Any()).Times(0)
		runLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		gomock.InOrder(
			prompter.EXPECT().Prompt(gomock.Any(), "Acme", domain.CredentialFieldHost).Return("host", true, nil),
			prompter.EXPECT().Prompt(gomock.Any(), "Acme", domain.CredentialFieldPort).Return("22", true, nil),
			prompter.EXPECT().Prompt(gomock.Any(), "Acme", domain.CredentialFieldUsername).Return("", false, nil),
		)

		service := configuring.NewService(repo, prompter, runLog)

		creds, err := service.GetOrPrompt(context.Background(), "Acme")
		require.NoError(t, err)
		assert.False(t, creds.HasSFTPAccess())
	})

	t.Run("Erro do prompter é devolvido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		prompter := mocks.NewMockPrompter(ctrl)

		repo.EXPECT().GetAll(gomock.Any()).Return(map[string]string{}, nil)
		prompter.EXPECT().Prompt(gomock.Any(), gomock.Any(), gomock.Any()).Return("", false, context.Canceled)

		service := configuring.NewService(repo, prompter, nil)

		creds, err := service.GetOrPrompt(context.Background(), "Acme")
		assert.Nil(t, creds)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Falha no armazenamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection refused"))

		service := configuring.NewService(repo, nil, nil)

		_, err := service.GetOrPrompt(context.Background(), "Acme")
		assert.ErrorIs(t, err, configuring.ErrStoreOperation)

		var configErr *configuring.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, configErr.Code)
	})
}

func TestService_Save(t *testing.T) {
	t.Run("Grava credenciais válidas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockCredentialRepository(ctrl)
		repo.EXPECT().SetAll(gomock.Any(), fullFields()).Return(nil)

		service := configuring.NewService(repo, nil, nil)

		err := service.Save(context.Background(), domain.CredentialsFromFields(fullFields()))
		assert.NoError(t, err)
	})

	tests := []struct {
		name  string
		creds *domain.AdvertiserCredentials
	}{
		{name: "Credenciais ausentes", creds: nil},
		{name: "Porta não numérica", creds: func() *domain.AdvertiserCredentials {
			c := domain.CredentialsFromFields(fullFields())
			c.Port = "vinte"
			return c
		}()},
		{name: "URL inválida", creds: func() *domain.AdvertiserCredentials {
			c := domain.CredentialsFromFields(fullFields())
			c.CallbackURL = "not a url"
			return c
		}()},
		{name: "Host vazio", creds: func() *domain.AdvertiserCredentials {
			c := domain.CredentialsFromFields(fullFields())
			c.Host = ""
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockCredentialRepository(ctrl)
			repo.EXPECT().SetAll(gomock.Any(), gomock.Any()).Times(0)

			service := configuring.NewService(repo, nil, nil)

			err := service.Save(context.Background(), tt.creds)
			assert.ErrorIs(t, err, configuring.ErrInvalidCredentials)
		})
	}
}

func TestService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockCredentialRepository(ctrl)
	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	service := configuring.NewService(repo, nil, nil)
	assert.NoError(t, service.Clear(context.Background()))
}
