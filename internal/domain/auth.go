package domain

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"senha" binding:"required"`
}

// LoginResult é o que a API devolve no login; o shell guarda o token e os
// dados do usuário para montar a navegação.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"usuario"`
}

type RegisterRequest struct {
	FullName         string            `json:"nome_completo" binding:"required"`
	SocialName       string            `json:"nome_social,omitempty"`
	Email            string            `json:"email" binding:"required,email"`
	Password         string            `json:"senha" binding:"required,min=8"`
	CPF              string            `json:"cpf" binding:"required"`
	BirthDate        string            `json:"data_nascimento,omitempty"`
	GenderIdentity   string            `json:"identidade_genero,omitempty"`
	Orientation      string            `json:"orientacao_sexual,omitempty"`
	Pronouns         string            `json:"pronomes,omitempty"`
	MainPhone        string            `json:"telefone_principal,omitempty"`
	Type             UserType          `json:"tipo_usuario" binding:"required,oneof=CLIENTE ATENDENTE"`
	Address          *Address          `json:"endereco,omitempty"`
	AttendantDetails *AttendantDetails `json:"detalhes_atendente,omitempty"`
}

type RegisterResult struct {
	Message string `json:"message"`
	UserID  int64  `json:"id_usuario"`
}
