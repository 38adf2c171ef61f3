package configuring

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("configuração do anunciante inválida")
	ErrStoreOperation     = errors.New("erro ao acessar a configuração do anunciante")
)

// ConfigError é um erro com contexto adicional para a configuração do anunciante
type ConfigError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ConfigError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfigError(err error, code string, details string) *ConfigError {
	return &ConfigError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
