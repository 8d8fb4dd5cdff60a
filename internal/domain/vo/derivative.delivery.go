package vo

import "io"

// DeliveryRequest is what the delivery route extracts from
// /{scheme}/styles/{style}/{scheme}/{target}?itok=.
type DeliveryRequest struct {
	Scheme  string
	StyleID string
	Target  string
	Token   string
}

// DerivativeFile is a ready-to-stream derivative. The caller owns Body.
type DerivativeFile struct {
	URI         string
	ContentType string
	Size        int64
	Body        io.ReadCloser
	Headers     map[string]string
	Public      bool
}
