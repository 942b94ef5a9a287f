package sandbox

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// ReceiptScan renders a placeholder scan for a receipt.
func (s *Store) ReceiptScan(user, receiptID int) ([]byte, error) {
	s.mutex.Lock()
	_, err := s.receipt(user, receiptID)
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}
	return renderScan(120, 240, uint8(receiptID))
}

// ItemScan renders the cropped scan line of one item.
func (s *Store) ItemScan(user, receiptID, itemID int) ([]byte, error) {
	s.mutex.Lock()
	record, err := s.receipt(user, receiptID)
	found := false
	if err == nil {
		_, found = record.details.Item(itemID)
	}
	s.mutex.Unlock()
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	return renderScan(120, 16, uint8(itemID))
}

func renderScan(width, height int, shade uint8) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, width, height))
	paper := color.Gray{Y: 230 - shade%32}
	ink := color.Gray{Y: 40}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := paper
			if y%8 == 4 && x > 8 && x < width-8 {
				c = ink
			}
			img.SetGray(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode scan: %w", err)
	}
	return buf.Bytes(), nil
}
