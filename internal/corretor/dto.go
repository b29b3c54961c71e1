package corretor

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createCorretorRequest struct {
	Nome      string `json:"nome" validate:"required"`
	Sobrenome string `json:"sobrenome"`
	CRECI     string `json:"creci" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Telefone  string `json:"telefone"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha" validate:"required,min=8"`
}
