package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/weather-bid-manager/internal/domain"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/configuring"
	"github.com/vfg2006/weather-bid-manager/internal/usecases/workflow"
	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
	"github.com/vfg2006/weather-bid-manager/pkg/log"
)

// ConfigStatusResponse nunca inclui usuário ou senha do SFTP
type ConfigStatusResponse struct {
	Configured  bool   `json:"configured"`
	SFTPAccess  bool   `json:"sftp_access"`
	Host        string `json:"host,omitempty"`
	Port        string `json:"port,omitempty"`
	Bucket      string `json:"bucket,omitempty"`
	CallbackURL string `json:"callback_url,omitempty"`
}

func GetConfigStatus(credentials configuring.CredentialManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		configured, err := credentials.IsConfigured(r.Context())
		if err != nil {
			writeConfigError(w, err)
			return
		}

		stored, err := credentials.Load(r.Context())
		if err != nil {
			writeConfigError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConfigStatusResponse{
			Configured:  configured,
			SFTPAccess:  stored.HasSFTPAccess(),
			Host:        stored.Host,
			Port:        stored.Port,
			Bucket:      stored.Bucket,
			CallbackURL: stored.CallbackURL,
		})
	})
}

func SaveConfig(credentials configuring.CredentialManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body domain.AdvertiserCredentials
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := credentials.Save(r.Context(), &body); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("Erro ao salvar a configuração do anunciante")
			writeConfigError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// ClearConfig roda a ação de apagar a configuração de forma síncrona
func ClearConfig(runner workflow.Runner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := runner.ClearConfig(r.Context()); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao apagar a configuração do anunciante")
			writeErrorFrom(w, err, workflow.ErrorCode(err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func writeConfigError(w http.ResponseWriter, err error) {
	var configErr *configuring.ConfigError
	if errors.As(err, &configErr) {
		apiErrors.WriteError(w, configErr.Code, configErr.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao acessar a configuração do anunciante", nil)
}
