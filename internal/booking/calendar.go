package booking

import (
	"fmt"
	"time"
)

// Date é uma data de calendário sem fuso horário nem hora do dia.
type Date struct {
	Year  int        `json:"ano"`
	Month time.Month `json:"mes"`
	Day   int        `json:"dia"`
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("formato de data inválido (use YYYY-MM-DD): %w", err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DisplayLabel formata a data como o front exibe (dd/mm/aaaa).
func (d Date) DisplayLabel() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, int(d.Month), d.Year)
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func dateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// daysInMonth usa a normalização do pacote time: o dia zero do mês
// seguinte é o último dia do mês, o que cobre anos bissextos.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// firstWeekdayOffset devolve o dia da semana do dia 1 (domingo = 0),
// que é o número de células vazias antes do primeiro dia no grid.
func firstWeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

var weekdayLabels = []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var monthNames = []string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// DayCell é uma posição do grid do calendário. Day zero marca as células
// vazias de preenchimento antes do dia 1.
type DayCell struct {
	Day      int  `json:"dia"`
	Past     bool `json:"passado,omitempty"`
	Today    bool `json:"hoje,omitempty"`
	Selected bool `json:"selecionado,omitempty"`
}

type CalendarView struct {
	Year          int        `json:"ano"`
	Month         time.Month `json:"mes"`
	Title         string     `json:"titulo"`
	WeekdayLabels []string   `json:"dias_semana"`
	Cells         []DayCell  `json:"celulas"`
}

// buildCalendar deriva o grid inteiro do cursor, do dia de hoje e da data
// selecionada. Nada é guardado: todo render recalcula a partir do estado
// atual, o que elimina closures presas a um render antigo.
func buildCalendar(cursor Date, today Date, selected *Date) CalendarView {
	view := CalendarView{
		Year:          cursor.Year,
		Month:         cursor.Month,
		Title:         fmt.Sprintf("%s %d", monthNames[cursor.Month-1], cursor.Year),
		WeekdayLabels: weekdayLabels,
	}

	offset := firstWeekdayOffset(cursor.Year, cursor.Month)
	total := daysInMonth(cursor.Year, cursor.Month)
	view.Cells = make([]DayCell, 0, offset+total)

	for i := 0; i < offset; i++ {
		view.Cells = append(view.Cells, DayCell{})
	}

	for day := 1; day <= total; day++ {
		cell := DayCell{Day: day}
		date := Date{Year: cursor.Year, Month: cursor.Month, Day: day}

		if date.Before(today) {
			cell.Past = true
		} else if date == today {
			cell.Today = true
		}
		if selected != nil && date == *selected {
			cell.Selected = true
		}

		view.Cells = append(view.Cells, cell)
	}

	return view
}
