package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func writeErrorFrom(w http.ResponseWriter, err error, code string) {
	apiErr := apiErrors.FromError(err, code)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}
