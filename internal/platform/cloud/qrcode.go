package cloud

import qrcode "github.com/skip2/go-qrcode"

// EncodeQRCode renders a URL as a PNG QR code suitable for upload as a
// second asset next to the transformed image.
func EncodeQRCode(url string) ([]byte, error) {
	return qrcode.Encode(url, qrcode.Medium, 256)
}
