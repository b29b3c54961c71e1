package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeStore guarda tentativas em memória e permite injetar falhas de
// infraestrutura em cada operação.
type fakeStore struct {
	tentativas []TentativaAcesso

	errContar     error
	errMaisAntiga error
	errRegistrar  error
}

func (f *fakeStore) ContarDesde(_ context.Context, identificador string, acao Acao, desde time.Time) (int64, error) {
	if f.errContar != nil {
		return 0, f.errContar
	}
	var total int64
	for _, t := range f.tentativas {
		if t.Identificador == identificador && t.Acao == string(acao) && !t.CreatedAt.Before(desde) {
			total++
		}
	}
	return total, nil
}

func (f *fakeStore) MaisAntigaDesde(_ context.Context, identificador string, acao Acao, desde time.Time) (time.Time, error) {
	if f.errMaisAntiga != nil {
		return time.Time{}, f.errMaisAntiga
	}
	var maisAntiga time.Time
	for _, t := range f.tentativas {
		if t.Identificador != identificador || t.Acao != string(acao) || t.CreatedAt.Before(desde) {
			continue
		}
		if maisAntiga.IsZero() || t.CreatedAt.Before(maisAntiga) {
			maisAntiga = t.CreatedAt
		}
	}
	if maisAntiga.IsZero() {
		return time.Time{}, errors.New("nenhuma tentativa na janela")
	}
	return maisAntiga, nil
}

func (f *fakeStore) Registrar(_ context.Context, identificador string, acao Acao, em time.Time) error {
	if f.errRegistrar != nil {
		return f.errRegistrar
	}
	f.tentativas = append(f.tentativas, TentativaAcesso{
		Identificador: identificador,
		Acao:          string(acao),
		CreatedAt:     em,
	})
	return nil
}

func TestGuardLoginCincoPermitidasSextaBloqueada(t *testing.T) {
	inicio := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	agora := inicio
	store := &fakeStore{}
	guard := NewGuardComRelogio(store, func() time.Time { return agora })

	querRestantes := []int{4, 3, 2, 1, 0}
	for i, quer := range querRestantes {
		agora = inicio.Add(time.Duration(i) * time.Minute)
		d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
		if !d.Allowed {
			t.Fatalf("tentativa %d devia ser permitida", i+1)
		}
		if d.RemainingAttempts == nil || *d.RemainingAttempts != quer {
			t.Fatalf("tentativa %d: esperava %d restantes, veio %v", i+1, quer, d.RemainingAttempts)
		}
	}

	agora = inicio.Add(5 * time.Minute)
	d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
	if d.Allowed {
		t.Fatal("sexta tentativa na janela devia ser bloqueada")
	}
	if d.Message == "" {
		t.Fatal("bloqueio devia vir com mensagem de espera")
	}

	// resetTime = tentativa mais antiga na janela + 15min
	querReset := inicio.Add(Janela).UnixMilli()
	if d.ResetTime == nil || *d.ResetTime != querReset {
		t.Fatalf("esperava resetTime %d, veio %v", querReset, d.ResetTime)
	}

	// bloqueio não registra tentativa nova
	if len(store.tentativas) != 5 {
		t.Fatalf("esperava 5 tentativas gravadas, veio %d", len(store.tentativas))
	}
}

func TestGuardJanelaDeslizanteExpira(t *testing.T) {
	inicio := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	agora := inicio
	store := &fakeStore{}
	guard := NewGuardComRelogio(store, func() time.Time { return agora })

	for i := 0; i < 5; i++ {
		guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
	}

	// dentro da janela: bloqueado
	agora = inicio.Add(14 * time.Minute)
	if d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin); d.Allowed {
		t.Fatal("ainda dentro da janela, devia bloquear")
	}

	// janela escoou: libera de novo
	agora = inicio.Add(16 * time.Minute)
	d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
	if !d.Allowed {
		t.Fatal("depois da janela devia permitir de novo")
	}
	if d.RemainingAttempts == nil || *d.RemainingAttempts != 4 {
		t.Fatalf("janela nova devia zerar a contagem, veio %v", d.RemainingAttempts)
	}
}

func TestGuardSignupTetoMenor(t *testing.T) {
	store := &fakeStore{}
	guard := NewGuard(store)

	for i := 0; i < 3; i++ {
		if d := guard.Verificar(context.Background(), "203.0.113.9", AcaoSignup); !d.Allowed {
			t.Fatalf("cadastro %d devia ser permitido", i+1)
		}
	}
	if d := guard.Verificar(context.Background(), "203.0.113.9", AcaoSignup); d.Allowed {
		t.Fatal("quarto cadastro na janela devia ser bloqueado")
	}
}

func TestGuardIdentificadoresIndependentes(t *testing.T) {
	store := &fakeStore{}
	guard := NewGuard(store)

	for i := 0; i < 5; i++ {
		guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
	}
	if d := guard.Verificar(context.Background(), "c@d.com", AcaoLogin); !d.Allowed {
		t.Fatal("identificador diferente não devia ser afetado")
	}
	// mesma conta, ação diferente, contagem separada
	if d := guard.Verificar(context.Background(), "a@b.com", AcaoSignup); !d.Allowed {
		t.Fatal("ação diferente não devia ser afetada")
	}
}

func TestGuardFailOpen(t *testing.T) {
	// falha na leitura libera, mesmo com histórico acima do teto
	store := &fakeStore{errContar: errors.New("connection refused")}
	guard := NewGuard(store)
	for i := 0; i < 10; i++ {
		store.tentativas = append(store.tentativas, TentativaAcesso{
			Identificador: "a@b.com", Acao: string(AcaoLogin), CreatedAt: time.Now(),
		})
	}
	if d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin); !d.Allowed {
		t.Fatal("falha de leitura devia liberar (fail-open)")
	}

	// falha na gravação também libera
	store = &fakeStore{errRegistrar: errors.New("timeout")}
	guard = NewGuard(store)
	if d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin); !d.Allowed {
		t.Fatal("falha de gravação devia liberar (fail-open)")
	}
}

func TestGuardBloqueioComFalhaNaMaisAntiga(t *testing.T) {
	inicio := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	agora := inicio.Add(2 * time.Minute)
	store := &fakeStore{errMaisAntiga: errors.New("query cancelada")}
	guard := NewGuardComRelogio(store, func() time.Time { return agora })

	for i := 0; i < 5; i++ {
		store.tentativas = append(store.tentativas, TentativaAcesso{
			Identificador: "a@b.com", Acao: string(AcaoLogin), CreatedAt: inicio,
		})
	}

	d := guard.Verificar(context.Background(), "a@b.com", AcaoLogin)
	if d.Allowed {
		t.Fatal("teto atingido devia bloquear mesmo sem a tentativa mais antiga")
	}
	// sem a mais antiga, o reset cai no pior caso: agora + janela
	quer := agora.Add(Janela).UnixMilli()
	if d.ResetTime == nil || *d.ResetTime != quer {
		t.Fatalf("esperava resetTime %d, veio %v", quer, d.ResetTime)
	}
}
