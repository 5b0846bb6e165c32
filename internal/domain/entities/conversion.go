package entities

import "time"

// ConversionType representa o tipo de evento de conversão
type ConversionType string

const (
	ConversionPurchase   ConversionType = "purchase"
	ConversionSignup     ConversionType = "signup"
	ConversionDownload   ConversionType = "download"
	ConversionContact    ConversionType = "contact"
	ConversionNewsletter ConversionType = "newsletter"
)

var ConversionTypes = []ConversionType{
	ConversionPurchase,
	ConversionSignup,
	ConversionDownload,
	ConversionContact,
	ConversionNewsletter,
}

// Valid informa se o tipo pertence ao vocabulário
func (t ConversionType) Valid() bool {
	for _, known := range ConversionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ConversionSource representa o canal de aquisição
type ConversionSource string

const (
	SourceOrganic  ConversionSource = "organic"
	SourcePaid     ConversionSource = "paid"
	SourceDirect   ConversionSource = "direct"
	SourceReferral ConversionSource = "referral"
	SourceSocial   ConversionSource = "social"
)

var ConversionSources = []ConversionSource{
	SourceOrganic,
	SourcePaid,
	SourceDirect,
	SourceReferral,
	SourceSocial,
}

// Valid informa se a origem pertence ao vocabulário
func (s ConversionSource) Valid() bool {
	for _, known := range ConversionSources {
		if s == known {
			return true
		}
	}
	return false
}

// ConversionMetadata existe apenas para compras
type ConversionMetadata struct {
	ProductID string `json:"productId"`
	Category  string `json:"category"`
}

type Conversion struct {
	ID        string              `json:"id"`
	UserID    string              `json:"userId"`
	SessionID string              `json:"sessionId"`
	Type      ConversionType      `json:"type"`
	Value     float64             `json:"value"`
	Currency  string              `json:"currency,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
	Source    ConversionSource    `json:"source"`
	Campaign  string              `json:"campaign,omitempty"`
	Funnel    FunnelPosition      `json:"funnel"`
	Metadata  *ConversionMetadata `json:"metadata,omitempty"`
}

// IsPurchase informa se a conversão é monetizada
func (c Conversion) IsPurchase() bool {
	return c.Type == ConversionPurchase
}
