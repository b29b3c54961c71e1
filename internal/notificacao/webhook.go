package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// Falha de webhook nunca derruba a operação que o disparou: loga e segue.
func enviar(payload map[string]string) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}

// EnviarAlertaProposta avisa o canal de vendas que uma proposta foi submetida.
func EnviarAlertaProposta(nomeCliente, empreendimento string) {
	enviar(map[string]string{
		"mensagem":       "Nova proposta submetida",
		"cliente":        nomeCliente,
		"empreendimento": empreendimento,
	})
}

// EnviarAlertaReuniao avisa o canal de vendas que uma reunião foi agendada.
func EnviarAlertaReuniao(titulo string, inicio time.Time) {
	enviar(map[string]string{
		"mensagem": "Nova reunião agendada",
		"titulo":   titulo,
		"inicio":   inicio.Format(time.RFC3339),
	})
}
