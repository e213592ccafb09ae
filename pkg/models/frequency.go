package models

// FrequencyPoint represents a single spectrum value
type FrequencyPoint struct {
	Frequency float64 `json:"frequency" exclusiveMinimum:"0" doc:"Frequency in Hz"`
	Value     float64 `json:"value" doc:"Value in SI units of the series quantity (m/s, m or m/s²)"`
}
