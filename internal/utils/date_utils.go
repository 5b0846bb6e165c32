package utils

import (
	"fmt"
	"time"
)

// DateLayout é o formato de data usado em chaves e parâmetros de query
const DateLayout = "2006-01-02"

// DateKey retorna a data UTC no formato "YYYY-MM-DD"
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DisplayDate retorna o rótulo curto usado nos gráficos ("Jan 2")
func DisplayDate(t time.Time) string {
	return t.UTC().Format("Jan 2")
}

// StartOfDay normaliza t para o início do dia em UTC
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay retorna o último instante do dia de t em UTC
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// ParseDate interpreta uma data "YYYY-MM-DD" em UTC
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("formato de data inválido %q: %w", value, err)
	}
	return t, nil
}

// GenerateDateRange gera um array de strings de datas no formato "YYYY-MM-DD"
// para todas as datas no intervalo from até to (inclusive)
func GenerateDateRange(from, to time.Time) []string {
	if from.IsZero() || to.IsZero() || from.After(to) {
		return []string{}
	}

	from = StartOfDay(from)
	to = StartOfDay(to)

	days := int(to.Sub(from).Hours()/24) + 1
	result := make([]string, days)
	for i := range result {
		result[i] = from.AddDate(0, 0, i).Format(DateLayout)
	}
	return result
}
