package stock

import "time"

// ExpiryTier clasifica el riesgo de caducidad de una recepción.
type ExpiryTier string

const (
	ExpiryCritical ExpiryTier = "CRITICAL" // caduca en menos de 30 días (o ya caducó)
	ExpiryWarning  ExpiryTier = "WARNING"  // caduca entre 30 y 45 días
	ExpiryNone     ExpiryTier = "NONE"
)

// ClassifyExpiry clasifica una fecha de caducidad opcional frente a "hoy".
// Ambas fechas se tratan con granularidad de día; expiry nil devuelve
// ExpiryNone sin cálculo alguno.
func ClassifyExpiry(expiry *time.Time, today time.Time) ExpiryTier {
	if expiry == nil {
		return ExpiryNone
	}
	diffDays := int(truncateDay(*expiry).Sub(truncateDay(today)).Hours() / 24)
	switch {
	case diffDays < 30:
		return ExpiryCritical
	case diffDays <= 45:
		return ExpiryWarning
	default:
		return ExpiryNone
	}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
