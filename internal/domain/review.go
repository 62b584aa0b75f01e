package domain

type Review struct {
	ID              int64   `json:"id_avaliacao"`
	Rating          int     `json:"nota"`
	Comment         string  `json:"comentario,omitempty"`
	Anonymous       bool    `json:"anonima"`
	CreatedAt       string  `json:"data_avaliacao,omitempty"`
	AppointmentDate string  `json:"data_agendamento_avaliado,omitempty"`
	ReviewerName    *string `json:"nome_avaliador,omitempty"`
}

// ReviewSummary agrega média e total junto com a lista, como a API devolve
// em GET /atendentes/{id}/avaliacoes.
type ReviewSummary struct {
	Average float64  `json:"media_geral"`
	Total   int      `json:"total_avaliacoes"`
	Reviews []Review `json:"avaliacoes"`
}

// CreateReviewDTO é enviado pelo cliente após um atendimento REALIZADO.
type CreateReviewDTO struct {
	AppointmentID int64  `json:"id_agendamento" binding:"required"`
	ReviewerID    int64  `json:"id_avaliador"`
	ReviewedID    int64  `json:"id_avaliado" binding:"required"`
	Rating        int    `json:"nota" binding:"required,min=1,max=5"`
	Comment       string `json:"comentario,omitempty"`
	Anonymous     bool   `json:"anonima"`
}
