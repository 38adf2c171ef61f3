package workflow

import (
	"context"
	"errors"

	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/uploading"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

var (
	ErrUnknownJob = errors.New("tipo de job desconhecido")
	ErrJobTimeout = errors.New("tempo limite do job excedido")
)

// ErrorCode traduz o erro de uma execução no código usado pela API
func ErrorCode(err error) string {
	var uploadErr *uploading.UploadError
	if errors.As(err, &uploadErr) {
		return uploadErr.Code
	}

	var configErr *configuring.ConfigError
	if errors.As(err, &configErr) {
		return configErr.Code
	}

	switch {
	case errors.Is(err, ErrUnknownJob):
		return apiErrors.ErrUnknownJob
	case errors.Is(err, ErrJobTimeout), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apiErrors.ErrJobCanceled
	default:
		return apiErrors.ErrInternalServer
	}
}
