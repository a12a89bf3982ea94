package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// TableQRGenerator encodes the landing URL a guest scans at the table.
type TableQRGenerator struct {
	BaseURL string
	Size    int
}

var _ QRGenerator = TableQRGenerator{}

func (g TableQRGenerator) URL(restaurantID, tableID string) string {
	return fmt.Sprintf("%s/t/%s/%s", strings.TrimRight(g.BaseURL, "/"), restaurantID, tableID)
}

func (g TableQRGenerator) Generate(restaurantID, tableID string) ([]byte, error) {
	size := g.Size
	if size == 0 {
		size = 256
	}
	return qrcode.Encode(g.URL(restaurantID, tableID), qrcode.Medium, size)
}
