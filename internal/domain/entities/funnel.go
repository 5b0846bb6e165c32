package entities

// FunnelTotalSteps é o número fixo de etapas do funil de conversão
const FunnelTotalSteps = 4

// FunnelStage descreve uma etapa do funil
type FunnelStage struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	Number int    `json:"number"`
}

// FunnelStages são as etapas Landing → Pricing → Checkout → Confirmation
var FunnelStages = [FunnelTotalSteps]FunnelStage{
	{Name: "Landing", Key: "landing", Number: 1},
	{Name: "Pricing", Key: "pricing", Number: 2},
	{Name: "Checkout", Key: "checkout", Number: 3},
	{Name: "Confirmation", Key: "confirmation", Number: 4},
}

// FunnelPosition é a posição de uma conversão dentro do funil
type FunnelPosition struct {
	Step       string `json:"step"`
	StepNumber int    `json:"stepNumber"`
	TotalSteps int    `json:"totalSteps"`
}

// StageByNumber retorna a etapa para um número de 1 a 4
func StageByNumber(n int) (FunnelStage, bool) {
	if n < 1 || n > FunnelTotalSteps {
		return FunnelStage{}, false
	}
	return FunnelStages[n-1], true
}
