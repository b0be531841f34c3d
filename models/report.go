package models

// ClientRevenue pairs a client with their paid revenue for a period.
type ClientRevenue struct {
	ClientID string  `json:"clientId"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyReport is the computed financial summary for one calendar month.
// Revenue counts paid invoices only; the per-service breakdown comes from raw
// activity totals and is independent of invoice status.
type MonthlyReport struct {
	Year             int                  `json:"year"`
	Month            int                  `json:"month"`
	Revenue          float64              `json:"revenue"`
	TotalExpenses    float64              `json:"totalExpenses"`
	Profit           float64              `json:"profit"`
	InvoiceCount     int                  `json:"invoiceCount"`
	TopClients       []ClientRevenue      `json:"topClients"`
	RevenueByService map[WalkType]float64 `json:"revenueByService"`
}

// VolumeDiscount is the threshold-based discount for a monthly walk count.
// It is a standalone what-if utility, independent of package billing, and is
// never combined with the package discount inside an invoice.
type VolumeDiscount struct {
	Percent     float64 `json:"percent"`
	Description string  `json:"description"`
}
