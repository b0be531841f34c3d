package invoicing

import "pawplan/models"

// CalculateVolumeDiscount returns the threshold discount earned by a monthly
// walk count; the highest threshold met wins. This is a standalone what-if
// utility, independent of the package logic in CalculateInvoice — the two
// discount mechanisms must never be combined on one invoice.
func CalculateVolumeDiscount(walkCount int) models.VolumeDiscount {
	switch {
	case walkCount >= 16:
		return models.VolumeDiscount{Percent: 12, Description: "16 promenades ou plus : -12%"}
	case walkCount >= 12:
		return models.VolumeDiscount{Percent: 10, Description: "12 promenades ou plus : -10%"}
	case walkCount >= 8:
		return models.VolumeDiscount{Percent: 8, Description: "8 promenades ou plus : -8%"}
	case walkCount >= 4:
		return models.VolumeDiscount{Percent: 5, Description: "4 promenades ou plus : -5%"}
	default:
		return models.VolumeDiscount{Percent: 0, Description: "Aucune remise"}
	}
}
