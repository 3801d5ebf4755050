package common

// User-facing messages returned in JSON payloads. Existing clients match on
// these strings.
const (
	MessageRegistered    = "Kayıt başarılı!"
	MessageLoggedIn      = "Giriş başarılı!"
	MessageLanguageAdded = "Dil eklendi!"

	MessageEmailTaken         = "Bu e-posta ile zaten kayıt olmuşsunuz."
	MessageInvalidCredentials = "Bilgiler yanlış!"
	MessageInvalidBody        = "invalid request body"
	MessageInternal           = "internal error"
)

// RequestIDHeaderName carries the per-request id set by the HTTP middleware.
const RequestIDHeaderName = "X-Request-ID"
