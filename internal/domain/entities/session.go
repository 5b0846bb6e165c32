package entities

import "time"

// DeviceType representa o tipo de dispositivo de uma sessão
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
)

// DeviceTypes lista os dispositivos conhecidos na ordem do vocabulário
var DeviceTypes = []DeviceType{DeviceDesktop, DeviceMobile, DeviceTablet}

// Valid informa se o valor pertence ao vocabulário
func (d DeviceType) Valid() bool {
	for _, known := range DeviceTypes {
		if d == known {
			return true
		}
	}
	return false
}

// Location contém os dados geográficos da sessão
type Location struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
}

// Session representa uma visita de um usuário
type Session struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty"`
	Duration   int        `json:"duration"` // minutos
	PageViews  int        `json:"pageViews"`
	BounceRate float64    `json:"bounceRate"`
	DeviceType DeviceType `json:"deviceType"`
	Browser    string     `json:"browser"`
	Location   Location   `json:"location"`
	Referrer   string     `json:"referrer,omitempty"`
	IsActive   bool       `json:"isActive"`
}

// HasReferrer informa se a sessão chegou por um link externo
func (s Session) HasReferrer() bool {
	return s.Referrer != ""
}
