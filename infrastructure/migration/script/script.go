package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/vfg2006/weather-bid-manager/internal/config"
)

const createAdvertiserConfig = `CREATE TABLE IF NOT EXISTS advertiser_config (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func createAdvertiserConfigTable(ctx context.Context, db *sql.DB) {
	log.Println("Criando tabela advertiser_config...")

	if _, err := db.ExecContext(ctx, createAdvertiserConfig); err != nil {
		log.Fatalf("ERRO ao criar tabela advertiser_config: %v", err)
	}

	log.Println("Tabela advertiser_config pronta")
}

func main() {
	setupLogger()
	startTime := time.Now()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createAdvertiserConfigTable(ctx, db)

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
