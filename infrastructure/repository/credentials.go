package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/weather-bid-manager/infrastructure/database/postgres"
)

const advertiserConfigTable = "advertiser_config"

// CredentialRepository guarda a configuração do anunciante como pares chave/valor.
// Existe um único conjunto de campos (não há separação por anunciante).
type CredentialRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetAll(ctx context.Context, values map[string]string) error
	Clear(ctx context.Context) error
}

type credentialRepository struct {
	conn postgres.Conn
	now  func() time.Time
}

func NewCredentialRepository(conn postgres.Conn) CredentialRepository {
	return &credentialRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *credentialRepository) GetAll(ctx context.Context) (map[string]string, error) {
	query, args, err := selectAllQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// SetAll grava todos os campos numa única transação
func (r *credentialRepository) SetAll(ctx context.Context, values map[string]string) error {
	now := r.now().UTC()

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for key, value := range values {
			query, args, err := upsertQuery(key, value, now)
			if err != nil {
				return err
			}

			if _, err := q.Exec(ctx, query, args...); err != nil {
				logrus.WithError(err).WithField("key", key).Error("Erro ao gravar configuração do anunciante")
				return err
			}
		}

		return nil
	})
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	query, args, err := deleteAllQuery()
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(ctx, query, args...)
	return err
}

func selectAllQuery() (string, []interface{}, error) {
	return squirrel.
		Select("key", "value").
		From(advertiserConfigTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func upsertQuery(key, value string, updatedAt time.Time) (string, []interface{}, error) {
	return squirrel.
		Insert(advertiserConfigTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func deleteAllQuery() (string, []interface{}, error) {
	return squirrel.
		Delete(advertiserConfigTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}
