package model

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func sampleDetails() ReceiptDetails {
	return ReceiptDetails{
		ID:            42,
		OwnerID:       3,
		Clean:         true,
		Date:          "2025-03-14",
		Merchant:      Merchant{Name: "Schnucks", Address: "1 Market St", Domain: "schnucks.com"},
		PaymentMethod: "VISA 1234",
		Items: []ReceiptItem{
			{ID: 1, Description: "Milk", Price: decimal.RequireFromString("5.00"), Category: intPtr(2), Auto: boolPtr(true)},
			{ID: 2, Description: "Bread", Price: decimal.RequireFromString("3.25")},
		},
		Tax: decimal.RequireFromString("0.62"),
	}
}

// -- ReceiptDetails JSON tests --

func TestReceiptDetails_RoundTrip(t *testing.T) {
	cases := map[string]ReceiptDetails{
		"object merchant": sampleDetails(),
		"string merchant": func() ReceiptDetails {
			d := sampleDetails()
			d.Merchant = Merchant{Name: "Corner Shop"}
			return d
		}(),
		"no items": func() ReceiptDetails {
			d := sampleDetails()
			d.Items = nil
			return d
		}(),
	}

	for name, original := range cases {
		t.Run(name, func(t *testing.T) {
			encoded, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded ReceiptDetails
			require.NoError(t, json.Unmarshal(encoded, &decoded))

			reencoded, err := json.Marshal(decoded)
			require.NoError(t, err)

			var again ReceiptDetails
			require.NoError(t, json.Unmarshal(reencoded, &again))

			if diff := cmp.Diff(original, again, decimalComparer, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReceiptDetails_DecodeServerPayload(t *testing.T) {
	payload := `{
		"id": 42, "owner_id": 3, "clean": false, "date": "2025-03-14",
		"merchant": {"name": "Schnucks", "address": "", "domain": ""},
		"payment_method": "cash",
		"items": [{"id": 7, "description": "Eggs", "price": 4.5, "category": null, "auto": true}],
		"tax": 0.3
	}`

	var details ReceiptDetails
	require.NoError(t, json.Unmarshal([]byte(payload), &details))

	assert.Equal(t, "Schnucks", details.Merchant.Name)
	require.Len(t, details.Items, 1)
	assert.Nil(t, details.Items[0].Category)
	require.NotNil(t, details.Items[0].Auto)
	assert.True(t, *details.Items[0].Auto)
	assert.True(t, details.Items[0].Price.Equal(decimal.RequireFromString("4.50")))
}

func TestReceiptDetails_EncodesMoneyAsNumbers(t *testing.T) {
	encoded, err := json.Marshal(ReceiptItem{ID: 1, Description: "Milk", Price: decimal.RequireFromString("4.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"description":"Milk","price":4.5,"category":null}`, string(encoded))
}

// -- Merchant tests --

func TestMerchant_DecodeString(t *testing.T) {
	var m Merchant
	require.NoError(t, json.Unmarshal([]byte(`"Target"`), &m))
	assert.Equal(t, Merchant{Name: "Target"}, m)
}

func TestMerchant_DecodeNull(t *testing.T) {
	m := Merchant{Name: "stale"}
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, Merchant{}, m)
}

func TestMerchant_DecodeInvalid(t *testing.T) {
	var m Merchant
	assert.Error(t, json.Unmarshal([]byte(`42`), &m))
}

func TestMerchant_EncodeNameOnlyAsString(t *testing.T) {
	encoded, err := json.Marshal(Merchant{Name: "Target"})
	require.NoError(t, err)
	assert.Equal(t, `"Target"`, string(encoded))
}

func TestMerchant_EncodeFullAsObject(t *testing.T) {
	encoded, err := json.Marshal(Merchant{Name: "Target", Domain: "target.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Target","address":"","domain":"target.com"}`, string(encoded))
}

// -- Derived value tests --

func TestReceiptDetails_Total(t *testing.T) {
	d := sampleDetails()
	assert.True(t, d.Total().Equal(decimal.RequireFromString("8.87")))
}

func TestReceiptDetails_Summary(t *testing.T) {
	d := sampleDetails()
	summary := d.Summary()

	assert.Equal(t, 42, summary.ID)
	assert.Equal(t, "2025-03-14", summary.Date)
	assert.Equal(t, "Schnucks", summary.Merchant.Name)
	assert.True(t, summary.Total.Equal(d.Total()))
	assert.True(t, summary.Clean)
}

func TestReceiptDetails_CloneIsIndependent(t *testing.T) {
	d := sampleDetails()
	clone := d.Clone()

	clone.Items[0].Description = "Oat milk"
	*clone.Items[0].Category = 9

	assert.Equal(t, "Milk", d.Items[0].Description)
	assert.Equal(t, 2, *d.Items[0].Category)
}

func TestReceiptDetails_Item(t *testing.T) {
	d := sampleDetails()

	item, ok := d.Item(2)
	assert.True(t, ok)
	assert.Equal(t, "Bread", item.Description)

	_, ok = d.Item(99)
	assert.False(t, ok)
}

// -- ReceiptItem tests --

func TestReceiptItem_SameContent(t *testing.T) {
	base := ReceiptItem{ID: 1, Description: "Milk", Price: decimal.RequireFromString("5.00"), Category: intPtr(1)}

	same := base.Clone()
	same.Price = decimal.RequireFromString("5")
	assert.True(t, base.SameContent(same))

	priced := base.Clone()
	priced.Price = decimal.RequireFromString("5.01")
	assert.False(t, base.SameContent(priced))

	uncategorized := base.Clone()
	uncategorized.Category = nil
	assert.False(t, base.SameContent(uncategorized))

	renamed := base.Clone()
	renamed.Description = "Oat milk"
	assert.False(t, base.SameContent(renamed))
}

func TestReceiptItem_IsPlaceholder(t *testing.T) {
	assert.True(t, ReceiptItem{ID: 0}.IsPlaceholder())
	assert.True(t, ReceiptItem{ID: -3}.IsPlaceholder())
	assert.False(t, ReceiptItem{ID: 1}.IsPlaceholder())
}
