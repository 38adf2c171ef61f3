package domain

import (
	"github.com/go-playground/validator/v10"
)

// Campos gravados no armazenamento de configuração do anunciante
const (
	CredentialFieldHost     = "Host"
	CredentialFieldPort     = "Port"
	CredentialFieldUsername = "Username"
	CredentialFieldPassword = "Password"
	CredentialFieldBucket   = "Bucket"
	CredentialFieldURL      = "Url"
)

// CredentialFields é a ordem em que os campos são solicitados ao usuário
var CredentialFields = []string{
	CredentialFieldHost,
	CredentialFieldPort,
	CredentialFieldUsername,
	CredentialFieldPassword,
	CredentialFieldBucket,
	CredentialFieldURL,
}

// CredentialPrompts são os textos exibidos para cada campo de CredentialFields
var CredentialPrompts = map[string]string{
	CredentialFieldHost:     "SFTP Host:",
	CredentialFieldPort:     "SFTP Port:",
	CredentialFieldUsername: "SFTP Username:",
	CredentialFieldPassword: "SFTP Password:",
	CredentialFieldBucket:   "GCS Bucket:",
	CredentialFieldURL:      "Cloud Function URL:",
}

var validate = validator.New()

// AdvertiserCredentials reúne o acesso SFTP do SA360 e a configuração do GCS
type AdvertiserCredentials struct {
	Host        string `json:"host" validate:"required"`
	Port        string `json:"port" validate:"required,numeric"`
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Bucket      string `json:"bucket" validate:"required"`
	CallbackURL string `json:"callback_url" validate:"required,url"`
}

// CredentialsFromFields monta as credenciais a partir dos campos armazenados
func CredentialsFromFields(values map[string]string) *AdvertiserCredentials {
	return &AdvertiserCredentials{
		Host:        values[CredentialFieldHost],
		Port:        values[CredentialFieldPort],
		Username:    values[CredentialFieldUsername],
		Password:    values[CredentialFieldPassword],
		Bucket:      values[CredentialFieldBucket],
		CallbackURL: values[CredentialFieldURL],
	}
}

// Fields devolve as credenciais no formato do armazenamento
func (c *AdvertiserCredentials) Fields() map[string]string {
	return map[string]string{
		CredentialFieldHost:     c.Host,
		CredentialFieldPort:     c.Port,
		CredentialFieldUsername: c.Username,
		CredentialFieldPassword: c.Password,
		CredentialFieldBucket:   c.Bucket,
		CredentialFieldURL:      c.CallbackURL,
	}
}

// Validate valida todos os campos
func (c *AdvertiserCredentials) Validate() error {
	return validate.Struct(c)
}

// HasSFTPAccess indica se os quatro campos de SFTP estão preenchidos
func (c *AdvertiserCredentials) HasSFTPAccess() bool {
	if c == nil {
		return false
	}

	return c.Host != "" && c.Port != "" && c.Username != "" && c.Password != ""
}
