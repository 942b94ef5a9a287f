package sandbox

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

const dateLayout = "2006-01-02"

// Receipts lists the user's receipts, newest first.
func (s *Store) Receipts(user int) []model.Receipt {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	receipts := []model.Receipt{}
	for _, record := range s.receipts {
		if record.owner == user {
			receipts = append(receipts, record.details.Summary())
		}
	}
	sort.Slice(receipts, func(i, j int) bool {
		if receipts[i].Date != receipts[j].Date {
			return receipts[i].Date > receipts[j].Date
		}
		return receipts[i].ID > receipts[j].ID
	})
	return receipts
}

func (s *Store) Receipt(user, receiptID int) (*model.ReceiptDetails, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.receipt(user, receiptID)
	if err != nil {
		return nil, err
	}
	return record.details.Clone(), nil
}

// UpdateReceipt replaces the receipt level fields. Items in details are
// ignored; they are changed through the item operations.
func (s *Store) UpdateReceipt(user int, details *model.ReceiptDetails) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.receipt(user, details.ID)
	if err != nil {
		return err
	}
	record.details.Merchant = details.Merchant
	record.details.Date = details.Date
	record.details.PaymentMethod = details.PaymentMethod
	record.details.Tax = details.Tax
	record.details.Clean = details.Clean
	return nil
}

func (s *Store) DeleteReceipt(user, receiptID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.receipt(user, receiptID); err != nil {
		return err
	}
	delete(s.receipts, receiptID)
	return nil
}

// Upload creates an unverified receipt from a JPEG scan. Anything that is
// not a JPEG is reported as an unsuccessful scan.
func (s *Store) Upload(user int, jpeg []byte) model.ScanResult {
	if len(jpeg) < 2 || jpeg[0] != 0xFF || jpeg[1] != 0xD8 {
		return model.ScanResult{Success: false}
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.nextReceipt++
	id := s.nextReceipt
	s.receipts[id] = &receiptRecord{
		owner: user,
		details: model.ReceiptDetails{
			ID:      id,
			OwnerID: user,
			Date:    s.now().Format(dateLayout),
			Items:   []model.ReceiptItem{},
			Tax:     decimal.Zero,
		},
	}
	return model.ScanResult{Success: true, ReceiptID: &id}
}

func (s *Store) CreateItem(user, receiptID int, item model.NewItem) (int, error) {
	if item.Description == "" {
		return 0, fmt.Errorf("%w: description is required", ErrInvalid)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.receipt(user, receiptID)
	if err != nil {
		return 0, err
	}
	if err := s.checkCategory(user, item.Category); err != nil {
		return 0, err
	}

	s.nextItem++
	auto := false
	record.details.Items = append(record.details.Items, model.ReceiptItem{
		ID:          s.nextItem,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Auto:        &auto,
	})
	return s.nextItem, nil
}

func (s *Store) UpdateItem(user, receiptID int, item model.ReceiptItem) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.receipt(user, receiptID)
	if err != nil {
		return err
	}
	if err := s.checkCategory(user, item.Category); err != nil {
		return err
	}
	for i, existing := range record.details.Items {
		if existing.ID == item.ID {
			updated := item.Clone()
			updated.Auto = existing.Auto
			record.details.Items[i] = updated
			return nil
		}
	}
	return fmt.Errorf("%w: item %d", ErrNotFound, item.ID)
}

func (s *Store) DeleteItem(user, receiptID, itemID int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record, err := s.receipt(user, receiptID)
	if err != nil {
		return err
	}
	for i, existing := range record.details.Items {
		if existing.ID == itemID {
			record.details.Items = append(record.details.Items[:i], record.details.Items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
}

// checkCategory must be called with the mutex held.
func (s *Store) checkCategory(user int, category *int) error {
	if category == nil {
		return nil
	}
	record, ok := s.categories[*category]
	if !ok || record.owner != user {
		return fmt.Errorf("%w: unknown category %d", ErrInvalid, *category)
	}
	return nil
}
