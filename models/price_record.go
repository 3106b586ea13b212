// models/price_record.go
package models

// PriceRecord is one OHLCV bar as it lands in the destination table.
// Date and Time are kept as normalized strings (YYYYMMDD / HHMMSS) so the
// row round-trips exactly as stored.
type PriceRecord struct {
	Date   string  `gorm:"column:date"`
	Time   string  `gorm:"column:time"`
	Open   float64 `gorm:"column:open"`
	High   float64 `gorm:"column:high"`
	Low    float64 `gorm:"column:low"`
	Close  float64 `gorm:"column:close"`
	Volume int64   `gorm:"column:volume"`
}
