package configuring

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/repository"
	"github.com/vfg2006/weather-bid-manager/infrastructure/spreadsheet"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

type CredentialManager interface {
	IsConfigured(ctx context.Context) (bool, error)
	GetOrPrompt(ctx context.Context, advertiser string) (*domain.AdvertiserCredentials, error)
	Save(ctx context.Context, credentials *domain.AdvertiserCredentials) error
	Load(ctx context.Context) (*domain.AdvertiserCredentials, error)
	Clear(ctx context.Context) error
}

type Service struct {
	repo     repository.CredentialRepository
	prompter Prompter
	runLog   spreadsheet.RunLog
}

func NewService(repo repository.CredentialRepository, prompter Prompter, runLog spreadsheet.RunLog) CredentialManager {
	return &Service{
		repo:     repo,
		prompter: prompter,
		runLog:   runLog,
	}
}

// IsConfigured indica se os seis campos estão gravados
func (s *Service) IsConfigured(ctx context.Context) (bool, error) {
	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return false, NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return hasAllFields(values), nil
}

// GetOrPrompt devolve a configuração gravada. Se estiver incompleta, pergunta
// cada campo em ordem; um cancelamento interrompe tudo sem gravar nada.
func (s *Service) GetOrPrompt(ctx context.Context, advertiser string) (*domain.AdvertiserCredentials, error) {
	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if hasAllFields(values) || s.prompter == nil {
		return domain.CredentialsFromFields(values), nil
	}

	s.logRun(ctx, "Salvando configuração SFTP do anunciante "+advertiser)

	answers := make(map[string]string, len(domain.CredentialFields))
	for _, field := range domain.CredentialFields {
		value, ok, err := s.prompter.Prompt(ctx, advertiser, field)
		if err != nil {
			return nil, err
		}

		if !ok {
			logrus.WithFields(logrus.Fields{
				"advertiser": advertiser,
				"field":      field,
			}).Info("Configuração do anunciante cancelada pelo usuário")
			return domain.CredentialsFromFields(values), nil
		}

		answers[field] = value
	}

	if err := s.repo.SetAll(ctx, answers); err != nil {
		return nil, NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return s.Load(ctx)
}

// Save valida e grava todos os campos de uma vez
func (s *Service) Save(ctx context.Context, credentials *domain.AdvertiserCredentials) error {
	if credentials == nil {
		return NewConfigError(ErrInvalidCredentials, apiErrors.ErrMissingRequiredData, "configuração ausente")
	}

	if err := credentials.Validate(); err != nil {
		return NewConfigError(ErrInvalidCredentials, apiErrors.ErrInvalidFormat, err.Error())
	}

	if err := s.repo.SetAll(ctx, credentials.Fields()); err != nil {
		return NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) Load(ctx context.Context) (*domain.AdvertiserCredentials, error) {
	values, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return domain.CredentialsFromFields(values), nil
}

func (s *Service) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return NewConfigError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) logRun(ctx context.Context, message string) {
	if s.runLog == nil {
		return
	}

	if err := s.runLog.Append(ctx, message); err != nil {
		logrus.WithError(err).Warn("Erro ao registrar no log da planilha")
	}
}

func hasAllFields(values map[string]string) bool {
	for _, field := range domain.CredentialFields {
		if _, ok := values[field]; !ok {
			return false
		}
	}
	return true
}
