package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/VivazImoveis/api-vendas/internal/academia"
	"github.com/VivazImoveis/api-vendas/internal/auth"
	"github.com/VivazImoveis/api-vendas/internal/corretor"
	"github.com/VivazImoveis/api-vendas/internal/enquete"
	"github.com/VivazImoveis/api-vendas/internal/moeda"
	"github.com/VivazImoveis/api-vendas/internal/playbook"
	"github.com/VivazImoveis/api-vendas/internal/proposta"
	"github.com/VivazImoveis/api-vendas/internal/ratelimit"
	"github.com/VivazImoveis/api-vendas/internal/reuniao"
	"github.com/VivazImoveis/api-vendas/internal/tarefa"
	"github.com/VivazImoveis/api-vendas/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	conexao, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(&auth.RefreshToken{}); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}
	migracoes := []func(*gorm.DB) error{
		corretor.Migrate,
		moeda.Migrate,
		proposta.Migrate,
		ratelimit.Migrate,
		playbook.Migrate,
		academia.Migrate,
		tarefa.Migrate,
		reuniao.Migrate,
		enquete.Migrate,
	}
	for _, migrar := range migracoes {
		if err := migrar(conexao); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}
	if err := moeda.SeedBRL(conexao); err != nil {
		log.Fatal("Erro ao semear moeda base:", err)
	}

	// Guard de tentativas: Redis quando configurado, senão Postgres.
	var store ratelimit.Store
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cliente := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		store = ratelimit.NewRedisStore(cliente)
		slog.Info("guard de tentativas usando Redis", "addr", addr)
	} else {
		store = ratelimit.NewGormStore(conexao)
	}
	guard := ratelimit.NewGuard(store)

	// Handlers
	corretorHandler := corretor.NewHandler(conexao, guard)
	moedaRepo := moeda.NewRepository(conexao)
	moedaHandler := moeda.NewHandler(moedaRepo)
	propostaHandler := proposta.NewHandler(proposta.NewRepository(conexao), moedaRepo)
	playbookHandler := playbook.NewHandler(playbook.NewRepository(conexao))
	academiaHandler := academia.NewHandler(academia.NewRepository(conexao))
	tarefaHandler := tarefa.NewHandler(tarefa.NewRepository(conexao))
	reuniaoHandler := reuniao.NewHandler(reuniao.NewRepository(conexao))
	enqueteHandler := enquete.NewHandler(enquete.NewRepository(conexao))
	ratelimitHandler := ratelimit.NewHandler(guard)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", corretorHandler.Login).Methods("POST")
	r.HandleFunc("/corretores", corretorHandler.CriarCorretor).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(conexao)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(conexao)).Methods("POST")
	r.HandleFunc("/rate-limit/check", ratelimitHandler.Check).Methods("POST", "OPTIONS")
	r.HandleFunc("/propostas/compartilhada/{token}", propostaHandler.BuscarPorToken).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Corretores (list/update/delete checam o papel dentro do handler)
	api.HandleFunc("/corretores", corretorHandler.ListarCorretores).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/corretores/{id}", corretorHandler.AtualizarCorretor).Methods("PUT")
	api.HandleFunc("/corretores/{id}", corretorHandler.DeletarCorretor).Methods("DELETE")
	api.Handle("/corretores/{id}/senha-temporaria", auth.RequireAdmin(http.HandlerFunc(corretorHandler.GerarSenhaTemporaria))).Methods("POST")
	api.HandleFunc("/me", corretorHandler.Me).Methods("GET")

	// Moedas
	api.HandleFunc("/moedas", moedaHandler.Listar).Methods("GET")
	api.Handle("/moedas", auth.RequireAdmin(http.HandlerFunc(moedaHandler.Criar))).Methods("POST")
	api.Handle("/moedas/{id}", auth.RequireAdmin(http.HandlerFunc(moedaHandler.Atualizar))).Methods("PUT")
	api.Handle("/moedas/{id}", auth.RequireAdmin(http.HandlerFunc(moedaHandler.Deletar))).Methods("DELETE")

	// Propostas
	api.HandleFunc("/propostas", propostaHandler.Criar).Methods("POST")
	api.HandleFunc("/propostas", propostaHandler.Listar).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/propostas/{id}", propostaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/propostas/{id}", propostaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/propostas/{id}/submeter", propostaHandler.Submeter).Methods("POST")
	api.HandleFunc("/propostas/{id}/cronograma", propostaHandler.Cronograma).Methods("GET")

	// Playbook de mensagens
	api.HandleFunc("/playbook/categorias", playbookHandler.ListarCategorias).Methods("GET")
	api.Handle("/playbook/categorias", auth.RequireAdmin(http.HandlerFunc(playbookHandler.CriarCategoria))).Methods("POST")
	api.Handle("/playbook/categorias/{id}", auth.RequireAdmin(http.HandlerFunc(playbookHandler.DeletarCategoria))).Methods("DELETE")
	api.HandleFunc("/playbook/categorias/{id}/mensagens", playbookHandler.ListarMensagens).Methods("GET")
	api.Handle("/playbook/mensagens", auth.RequireAdmin(http.HandlerFunc(playbookHandler.CriarMensagem))).Methods("POST")
	api.Handle("/playbook/mensagens/{id}", auth.RequireAdmin(http.HandlerFunc(playbookHandler.AtualizarMensagem))).Methods("PUT")
	api.Handle("/playbook/mensagens/{id}", auth.RequireAdmin(http.HandlerFunc(playbookHandler.DeletarMensagem))).Methods("DELETE")
	api.HandleFunc("/playbook/mensagens/{id}/copiar", playbookHandler.RegistrarCopia).Methods("POST")

	// Academia de vendas
	api.HandleFunc("/academia/cursos", academiaHandler.ListarCursos).Methods("GET")
	api.Handle("/academia/cursos", auth.RequireAdmin(http.HandlerFunc(academiaHandler.CriarCurso))).Methods("POST")
	api.Handle("/academia/cursos/{id}", auth.RequireAdmin(http.HandlerFunc(academiaHandler.AtualizarCurso))).Methods("PUT")
	api.Handle("/academia/cursos/{id}", auth.RequireAdmin(http.HandlerFunc(academiaHandler.DeletarCurso))).Methods("DELETE")
	api.Handle("/academia/aulas", auth.RequireAdmin(http.HandlerFunc(academiaHandler.CriarAula))).Methods("POST")
	api.Handle("/academia/aulas/{id}", auth.RequireAdmin(http.HandlerFunc(academiaHandler.DeletarAula))).Methods("DELETE")
	api.HandleFunc("/academia/aulas/{id}/progresso", academiaHandler.SalvarProgresso).Methods("PUT")
	api.HandleFunc("/academia/cursos/{id}/progresso", academiaHandler.ProgressoDoCurso).Methods("GET")

	// Quadros de tarefas
	api.HandleFunc("/quadros", tarefaHandler.ListarQuadros).Methods("GET")
	api.HandleFunc("/quadros", tarefaHandler.CriarQuadro).Methods("POST")
	api.HandleFunc("/quadros/{id}", tarefaHandler.DeletarQuadro).Methods("DELETE")
	api.HandleFunc("/tarefas", tarefaHandler.CriarTarefa).Methods("POST")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.AtualizarTarefa).Methods("PUT")
	api.HandleFunc("/tarefas/{id}/mover", tarefaHandler.MoverTarefa).Methods("PATCH")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.DeletarTarefa).Methods("DELETE")

	// Reuniões
	api.HandleFunc("/reunioes", reuniaoHandler.Listar).Methods("GET")
	api.HandleFunc("/reunioes", reuniaoHandler.Criar).Methods("POST")
	api.HandleFunc("/reunioes/{id}", reuniaoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/reunioes/{id}", reuniaoHandler.Deletar).Methods("DELETE")

	// Enquetes
	api.HandleFunc("/enquetes", enqueteHandler.Listar).Methods("GET")
	api.HandleFunc("/enquetes/{id}", enqueteHandler.BuscarPorID).Methods("GET")
	api.Handle("/enquetes", auth.RequireAdmin(http.HandlerFunc(enqueteHandler.Criar))).Methods("POST")
	api.Handle("/enquetes/{id}", auth.RequireAdmin(http.HandlerFunc(enqueteHandler.Atualizar))).Methods("PUT")
	api.Handle("/enquetes/{id}", auth.RequireAdmin(http.HandlerFunc(enqueteHandler.Deletar))).Methods("DELETE")
	api.Handle("/enquetes/{id}/abrir", auth.RequireAdmin(http.HandlerFunc(enqueteHandler.Abrir))).Methods("POST")
	api.Handle("/enquetes/{id}/encerrar", auth.RequireAdmin(http.HandlerFunc(enqueteHandler.Encerrar))).Methods("POST")
	api.HandleFunc("/enquetes/{id}/votar", enqueteHandler.Votar).Methods("POST")
	api.HandleFunc("/enquetes/{id}/resultados", enqueteHandler.Resultados).Methods("GET")

	// CORS liberado para o front; o preflight do guard já responde sozinho.
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "X-Client-Info", "Apikey", "Content-Type"},
		AllowCredentials: false,
	})

	burst := ratelimit.NewBurstLimiter(20, 40)
	handler := c.Handler(burst.Middleware(r))

	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
