package model

// Shared defaults used by the CLI and the TUI.
const (
	DefaultSample = "Ciphered"
	DefaultProbe  = "not*base64!"
	DefaultXORKey = "k"
	DefaultSkin   = "default"
	AppTitle      = "Ciphered"
)
