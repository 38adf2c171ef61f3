package configuring

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vfg2006/weather-bid-manager/internal/config"
	"github.com/vfg2006/weather-bid-manager/internal/domain"
)

// Prompter pede ao usuário o valor de um campo da configuração.
// ok=false indica que o usuário cancelou.
type Prompter interface {
	Prompt(ctx context.Context, advertiser, field string) (value string, ok bool, err error)
}

// TerminalPrompter pergunta no terminal; linha vazia grava valor vazio e só EOF cancela
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *TerminalPrompter) Prompt(ctx context.Context, advertiser, field string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fmt.Fprintf(p.out, "Informações necessárias para o anunciante %s\n%s ", advertiser, domain.CredentialPrompts[field])

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}

	// EOF sem nada digitado equivale ao botão Cancelar
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}

	value := strings.TrimSpace(line)

	return value, true, nil
}

// StaticPrompter responde com valores fixos vindos da configuração; valor vazio cancela
type StaticPrompter struct {
	values map[string]string
}

func NewStaticPrompter(values map[string]string) *StaticPrompter {
	return &StaticPrompter{values: values}
}

// NewStaticPrompterFromConfig usa as variáveis SFTP_* / GCS_BUCKET / TRANSFER_CALLBACK_URL
func NewStaticPrompterFromConfig(cfg *config.Config) *StaticPrompter {
	return NewStaticPrompter(map[string]string{
		domain.CredentialFieldHost:     cfg.Advertiser.SFTPHost,
		domain.CredentialFieldPort:     cfg.Advertiser.SFTPPort,
		domain.CredentialFieldUsername: cfg.Advertiser.SFTPUsername,
		domain.CredentialFieldPassword: cfg.Advertiser.SFTPPassword,
		domain.CredentialFieldBucket:   cfg.Advertiser.Bucket,
		domain.CredentialFieldURL:      cfg.Advertiser.CallbackURL,
	})
}

func (p *StaticPrompter) Prompt(_ context.Context, _ string, field string) (string, bool, error) {
	value := strings.TrimSpace(p.values[field])
	if value == "" {
		return "", false, nil
	}
	return value, true, nil
}
