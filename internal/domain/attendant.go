package domain

type PracticeArea string

const (
	PracticeAreaHealth     PracticeArea = "SAUDE"
	PracticeAreaLegal      PracticeArea = "JURIDICO"
	PracticeAreaCareer     PracticeArea = "CARREIRA"
	PracticeAreaAccounting PracticeArea = "CONTABIL"
	PracticeAreaSocialWork PracticeArea = "ASSISTENCIA_SOCIAL"
)

// Attendant é o item de listagem retornado por GET /atendentes: dados do
// usuário achatados com os detalhes profissionais e agregados de avaliação.
type Attendant struct {
	UserID             int64        `json:"id_usuario"`
	FullName           string       `json:"nome_completo"`
	SocialName         string       `json:"nome_social,omitempty"`
	Email              string       `json:"email,omitempty"`
	GenderIdentity     string       `json:"identidade_genero,omitempty"`
	Area               PracticeArea `json:"area_atuacao"`
	Qualification      string       `json:"qualificacao_descricao"`
	Specialties        string       `json:"especialidades,omitempty"`
	ProfessionalRecord string       `json:"registro_profissional,omitempty"`
	YearsOfExperience  int          `json:"anos_experiencia,omitempty"`
	ResumeLink         string       `json:"curriculo_link,omitempty"`
	AcceptsOnline      bool         `json:"aceita_atendimento_online"`
	AcceptsInPerson    bool         `json:"aceita_atendimento_presencial"`
	DefaultDurationMin int          `json:"duracao_padrao_atendimento_min"`
	AverageRating      float64      `json:"media_avaliacoes"`
	TotalRatings       int          `json:"total_avaliacoes"`
	Status             UserStatus   `json:"situacao_usuario,omitempty"`
}

// DisplayName devolve o nome social quando informado, como o front exibe.
func (a Attendant) DisplayName() string {
	if a.SocialName != "" {
		return a.SocialName
	}
	return a.FullName
}

// AttendantDetails é o bloco profissional do perfil (tabela própria na API).
type AttendantDetails struct {
	Area               PracticeArea `json:"area_atuacao"`
	Qualification      string       `json:"qualificacao_descricao"`
	Specialties        string       `json:"especialidades,omitempty"`
	ProfessionalRecord string       `json:"registro_profissional,omitempty"`
	YearsOfExperience  int          `json:"anos_experiencia,omitempty"`
	ResumeLink         string       `json:"curriculo_link,omitempty"`
	AcceptsOnline      bool         `json:"aceita_atendimento_online"`
	AcceptsInPerson    bool         `json:"aceita_atendimento_presencial"`
	DefaultDurationMin int          `json:"duracao_padrao_atendimento_min"`
}

type AttendantProfile struct {
	User      User             `json:"usuario"`
	Details   AttendantDetails `json:"detalhes"`
	Phones    []Phone          `json:"telefones,omitempty"`
	Addresses []Address        `json:"enderecos,omitempty"`
}

type AttendantFilter struct {
	Status string
	Area   string
	Search string
	Limit  int
}

type UpdateAttendantProfileDTO struct {
	User    *UpdateUserDTO          `json:"usuario"`
	Details *UpdateAttendantDetails `json:"detalhes"`
}

type UpdateAttendantDetails struct {
	Area               *PracticeArea `json:"area_atuacao"`
	Qualification      *string       `json:"qualificacao_descricao"`
	Specialties        *string       `json:"especialidades"`
	ProfessionalRecord *string       `json:"registro_profissional"`
	YearsOfExperience  *int          `json:"anos_experiencia"`
	ResumeLink         *string       `json:"curriculo_link"`
	AcceptsOnline      *bool         `json:"aceita_atendimento_online"`
	AcceptsInPerson    *bool         `json:"aceita_atendimento_presencial"`
	DefaultDurationMin *int          `json:"duracao_padrao_atendimento_min"`
}

// ModerateAttendantDTO cobre aprovar, reprovar e bloquear no painel admin.
type ModerateAttendantDTO struct {
	Reason string `json:"motivo"`
}
