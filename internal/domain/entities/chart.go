package entities

// ChartDataPoint é o contrato de saída de toda transformação de gráfico.
// Name e Value são obrigatórios; os demais campos são auxiliares.
type ChartDataPoint struct {
	Name       string `json:"name"`
	Value      int    `json:"value"`
	Count      *int   `json:"count,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
	Date       string `json:"date,omitempty"`
	Step       int    `json:"step,omitempty"`
	Type       string `json:"type,omitempty"`
}

// IntPtr é um atalho para os campos auxiliares opcionais
func IntPtr(v int) *int {
	return &v
}
