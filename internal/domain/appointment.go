package domain

type AppointmentStatus string

const (
	AppointmentStatusRequested       AppointmentStatus = "SOLICITADO"
	AppointmentStatusConfirmed       AppointmentStatus = "CONFIRMADO"
	AppointmentStatusCompleted       AppointmentStatus = "REALIZADO"
	AppointmentStatusCancelledClient AppointmentStatus = "CANCELADO_CLIENTE"
	AppointmentStatusCancelledAttend AppointmentStatus = "CANCELADO_ATENDENTE"
	AppointmentStatusCancelledAdmin  AppointmentStatus = "CANCELADO_ADMIN"
	AppointmentStatusClientNoShow    AppointmentStatus = "NAO_COMPARECEU_CLIENTE"
	AppointmentStatusAttendantNoShow AppointmentStatus = "NAO_COMPARECEU_ATENDENTE"
)

type Modality string

const (
	ModalityOnline   Modality = "ONLINE"
	ModalityInPerson Modality = "PRESENCIAL"
)

type Appointment struct {
	ID             int64             `json:"id_agendamento"`
	ClientID       int64             `json:"id_cliente"`
	AttendantID    int64             `json:"id_atendente"`
	StartDateTime  string            `json:"data_hora_inicio"`
	DurationMin    int               `json:"duracao_minutos"`
	Modality       Modality          `json:"modalidade"`
	Status         AppointmentStatus `json:"status_agendamento"`
	Subject        string            `json:"assunto_solicitacao,omitempty"`
	OnlineLink     string            `json:"link_atendimento_online,omitempty"`
	AttendantNotes string            `json:"observacoes_atendente,omitempty"`
	ClientName     string            `json:"nome_cliente,omitempty"`
	AttendantName  string            `json:"nome_atendente,omitempty"`
	AttendantArea  PracticeArea      `json:"area_atendente,omitempty"`
}

// CreateAppointmentDTO é o payload de POST /agendamentos montado pelo
// fluxo de agendamento a partir da sessão do calendário.
type CreateAppointmentDTO struct {
	ClientID      int64    `json:"id_cliente" binding:"required"`
	AttendantID   int64    `json:"id_atendente" binding:"required"`
	StartDateTime string   `json:"data_hora_inicio" binding:"required"`
	DurationMin   int      `json:"duracao_minutos" binding:"required"`
	Modality      Modality `json:"modalidade" binding:"required,oneof=ONLINE PRESENCIAL"`
	Subject       string   `json:"assunto_solicitacao,omitempty"`
}

// ConfirmBookingDTO completa a confirmação do fluxo de agendamento: a
// data e o horário vêm da sessão do calendário, aqui entram só a
// modalidade e o assunto digitado.
type ConfirmBookingDTO struct {
	Modality Modality `json:"modalidade" binding:"required,oneof=ONLINE PRESENCIAL"`
	Subject  string   `json:"assunto_solicitacao,omitempty"`
}

// ConfirmAppointmentDTO é enviado pelo atendente ao aceitar uma solicitação.
type ConfirmAppointmentDTO struct {
	OnlineLink     string `json:"link_atendimento_online,omitempty"`
	AttendantNotes string `json:"observacoes_atendente,omitempty"`
}

type RefuseAppointmentDTO struct {
	Reason string `json:"motivo_recusa" binding:"required"`
}

type AdminCancelDTO struct {
	Reason  string `json:"motivo" binding:"required"`
	AdminID int64  `json:"id_admin_responsavel"`
}

type UpdateNotesDTO struct {
	AttendantNotes string `json:"observacoes_atendente"`
}

type AppointmentFilter struct {
	AdminView    bool
	Status       string
	Area         string
	SelectedDate string
	Search       string
}
