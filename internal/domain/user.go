package domain

import (
	"time"
)

type UserType string

const (
	UserTypeClient    UserType = "CLIENTE"
	UserTypeAttendant UserType = "ATENDENTE"
	UserTypeAdmin     UserType = "ADMIN"
)

type UserStatus string

const (
	UserStatusPendingApproval UserStatus = "PENDENTE_APROVACAO"
	UserStatusActive          UserStatus = "ATIVO"
	UserStatusBlocked         UserStatus = "BLOQUEADO"
)

// User segue o contrato JSON da API do marketplace (campos em pt-BR).
type User struct {
	ID             int64      `json:"id_usuario"`
	FullName       string     `json:"nome_completo"`
	SocialName     string     `json:"nome_social,omitempty"`
	Email          string     `json:"email"`
	CPF            string     `json:"cpf,omitempty"`
	BirthDate      string     `json:"data_nascimento,omitempty"`
	GenderIdentity string     `json:"identidade_genero,omitempty"`
	Orientation    string     `json:"orientacao_sexual,omitempty"`
	Pronouns       string     `json:"pronomes,omitempty"`
	Type           UserType   `json:"tipo_usuario,omitempty"`
	Status         UserStatus `json:"situacao,omitempty"`
	CreatedAt      *time.Time `json:"data_criacao,omitempty"`
}

type Phone struct {
	Number    string `json:"numero_telefone"`
	Type      string `json:"tipo_telefone,omitempty"`
	Principal bool   `json:"is_principal,omitempty"`
}

type ClientProfile struct {
	User      User      `json:"usuario"`
	Phones    []Phone   `json:"telefones,omitempty"`
	Addresses []Address `json:"enderecos,omitempty"`
}

type UserFilter struct {
	Type   *UserType   `json:"tipo"`
	Status *UserStatus `json:"situacao"`
	Search string      `json:"busca"`
}

type UpdateUserDTO struct {
	FullName       *string `json:"nome_completo"`
	SocialName     *string `json:"nome_social"`
	BirthDate      *string `json:"data_nascimento"`
	GenderIdentity *string `json:"identidade_genero"`
	Orientation    *string `json:"orientacao_sexual"`
	Pronouns       *string `json:"pronomes"`
	MainPhone      *string `json:"telefone_principal"`
}

type PasswordUpdateDTO struct {
	CurrentPassword string `json:"senha_atual" binding:"required"`
	NewPassword     string `json:"nova_senha" binding:"required,min=8"`
}

// ChangeUserStatusDTO é a ação administrativa de bloquear/reativar contas.
type ChangeUserStatusDTO struct {
	NewStatus UserStatus `json:"novo_status" binding:"required,oneof=ATIVO BLOQUEADO"`
	Reason    string     `json:"motivo" binding:"required"`
	AdminID   int64      `json:"id_admin_responsavel"`
}
