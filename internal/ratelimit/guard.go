// internal/ratelimit/guard.go
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"
)

// Acao é a operação sensível protegida pelo guard.
type Acao string

const (
	AcaoLogin  Acao = "login"
	AcaoSignup Acao = "signup"
)

// Janela é o período deslizante de contagem das tentativas.
const Janela = 15 * time.Minute

// limiteDaAcao devolve o teto de tentativas por janela.
func limiteDaAcao(a Acao) int {
	if a == AcaoSignup {
		return 3
	}
	return 5
}

// AcaoValida reconhece as ações aceitas pelo contrato HTTP.
func AcaoValida(a Acao) bool {
	return a == AcaoLogin || a == AcaoSignup
}

// Decisao é o resultado de uma verificação, no formato do contrato JSON.
type Decisao struct {
	Allowed           bool   `json:"allowed"`
	RemainingAttempts *int   `json:"remainingAttempts,omitempty"`
	ResetTime         *int64 `json:"resetTime,omitempty"` // epoch ms
	Message           string `json:"message,omitempty"`
	Error             string `json:"error,omitempty"`
}

// Guard limita tentativas de login/cadastro por (identificador, ação)
// numa janela deslizante. Qualquer erro de infraestrutura resulta em
// allowed=true: indisponibilidade não pode trancar usuário legítimo
// para fora.
type Guard struct {
	store Store
	agora func() time.Time
}

func NewGuard(store Store) *Guard {
	return &Guard{store: store, agora: time.Now}
}

// NewGuardComRelogio injeta o relógio, para testes determinísticos.
func NewGuardComRelogio(store Store, agora func() time.Time) *Guard {
	return &Guard{store: store, agora: agora}
}

// Verificar conta as tentativas na janela e decide. A leitura e a
// gravação não são atômicas entre si: duas chamadas simultâneas do mesmo
// identificador podem passar uma tentativa além do teto. Imprecisão
// aceita; o guard é freio, não fronteira de segurança.
func (g *Guard) Verificar(ctx context.Context, identificador string, acao Acao) Decisao {
	limite := limiteDaAcao(acao)
	agora := g.agora()
	inicioJanela := agora.Add(-Janela)

	total, err := g.store.ContarDesde(ctx, identificador, acao, inicioJanela)
	if err != nil {
		slog.Warn("rate limit: falha ao contar tentativas, liberando", "acao", acao, "err", err)
		return Decisao{Allowed: true}
	}

	if total >= int64(limite) {
		reset := agora.Add(Janela)
		if maisAntiga, err := g.store.MaisAntigaDesde(ctx, identificador, acao, inicioJanela); err == nil {
			reset = maisAntiga.Add(Janela)
		} else {
			slog.Warn("rate limit: falha ao buscar tentativa mais antiga", "acao", acao, "err", err)
		}

		minutos := int(math.Ceil(reset.Sub(agora).Minutes()))
		if minutos < 1 {
			minutos = 1
		}
		resetMs := reset.UnixMilli()
		return Decisao{
			Allowed:   false,
			ResetTime: &resetMs,
			Message:   fmt.Sprintf("Muitas tentativas de %s. Tente novamente em %d minuto(s).", acao, minutos),
		}
	}

	if err := g.store.Registrar(ctx, identificador, acao, agora); err != nil {
		slog.Warn("rate limit: falha ao registrar tentativa, liberando", "acao", acao, "err", err)
		return Decisao{Allowed: true}
	}

	restantes := limite - int(total) - 1
	return Decisao{Allowed: true, RemainingAttempts: &restantes}
}
