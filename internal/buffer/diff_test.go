package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm3197/CSE437s-group-4/internal/model"
)

func TestDiff_NoChanges(t *testing.T) {
	b := newTestBuffer(t)

	cs, err := b.Diff()
	assert.ErrorIs(t, err, ErrNoChanges)
	assert.True(t, cs.Empty())
}

func TestDiff_PriceChangeScenario(t *testing.T) {
	b := newTestBuffer(t)
	require.NoError(t, b.UpdateItem(model.ReceiptItem{ID: 2, Description: "Bread", Price: price("4.50")}))

	cs, err := b.Diff()
	require.NoError(t, err)

	assert.Nil(t, cs.Metadata)
	assert.Empty(t, cs.Created)
	require.Len(t, cs.Updated, 1)
	assert.Equal(t, 2, cs.Updated[0].ID)
	assert.True(t, cs.Updated[0].Price.Equal(price("4.50")))

	first, ok := cs.First()
	assert.True(t, ok)
	assert.Equal(t, 2, first.ID)
}

func TestDiff_SingleFieldChanges(t *testing.T) {
	cases := map[string]model.ReceiptItem{
		"description": {ID: 1, Description: "Oat milk", Price: price("5.00")},
		"price":       {ID: 1, Description: "Milk", Price: price("5.01")},
		"category":    {ID: 1, Description: "Milk", Price: price("5.00"), Category: intPtr(2)},
	}

	for name, edited := range cases {
		t.Run(name, func(t *testing.T) {
			b := newTestBuffer(t)
			require.NoError(t, b.UpdateItem(edited))

			cs, err := b.Diff()
			require.NoError(t, err)
			require.Len(t, cs.Updated, 1)
			assert.Equal(t, 1, cs.Updated[0].ID)
		})
	}
}

func TestDiff_PlaceholderIsCreatedNeverUpdated(t *testing.T) {
	b := newTestBuffer(t)
	id := b.AddItem("Eggs", price("4.00"), nil)

	cs, err := b.Diff()
	require.NoError(t, err)

	require.Len(t, cs.Created, 1)
	assert.Equal(t, id, cs.Created[0].ID)
	assert.Empty(t, cs.Updated)
}

func TestDiff_MultipleItems(t *testing.T) {
	b := newTestBuffer(t)
	b.AddItem("Eggs", price("4.00"), nil)
	b.AddItem("Jam", price("2.00"), nil)
	require.NoError(t, b.UpdateItem(model.ReceiptItem{ID: 1, Description: "Milk", Price: price("6.00")}))
	require.NoError(t, b.UpdateItem(model.ReceiptItem{ID: 2, Description: "Bagels", Price: price("3.00")}))

	cs, err := b.Diff()
	require.NoError(t, err)

	assert.Len(t, cs.Created, 2)
	assert.Equal(t, []int{1, 2}, []int{cs.Updated[0].ID, cs.Updated[1].ID})

	first, _ := cs.First()
	assert.Equal(t, -1, first.ID)
}

func TestDiff_MetadataOnly(t *testing.T) {
	b := newTestBuffer(t)
	b.SetMerchant(model.Merchant{Name: "Dierbergs"})
	b.SetClean(true)

	cs, err := b.Diff()
	require.NoError(t, err)

	require.NotNil(t, cs.Metadata)
	assert.Equal(t, "Dierbergs", cs.Metadata.Merchant.Name)
	assert.True(t, cs.Metadata.Clean)
	_, ok := cs.First()
	assert.False(t, ok)
}

func TestDiff_AutoFlagIgnored(t *testing.T) {
	b := newTestBuffer(t)
	current := b.Current()
	auto := true
	current.Items[0].Auto = &auto
	b.edit = current

	_, err := b.Diff()
	assert.ErrorIs(t, err, ErrNoChanges)
}
