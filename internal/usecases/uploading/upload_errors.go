package uploading

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidPort     = errors.New("porta SFTP inválida")
	ErrStorageUpload   = errors.New("erro ao enviar o arquivo CSV ao GCS, verifique as permissões")
	ErrTransferTrigger = errors.New("erro na chamada HTTP de transferência, verifique a URL")
	ErrNoUploadRows    = errors.New("aba Upload sem linhas de dados")
	ErrSpreadsheet     = errors.New("erro ao acessar a planilha")
)

// UploadError é um erro fatal do envio, com contexto para a API
type UploadError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *UploadError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError cria o erro a partir do sentinela, registrando o stack com pkg/errors
func NewUploadError(sentinel error, code string, details string) *UploadError {
	return &UploadError{
		Err:     errors.WithStack(sentinel),
		Code:    code,
		Details: details,
	}
}
