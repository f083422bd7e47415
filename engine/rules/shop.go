package rules

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nathoo/pokesave/types"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// ShopSlots composes the shop grid: one synthetic egg slot, then every
// object entry of itemStock in index order. Null entries are skipped
// but the remaining slots keep their original stock index.
func ShopSlots(shop types.Shop) []types.ShopSlot {
	slots := make([]types.ShopSlot, 0, len(shop.ItemStock)+1)
	slots = append(slots, types.ShopSlot{Kind: types.SlotEgg, Index: -1, Price: shop.EggPrice})
	for i, item := range shop.ItemStock {
		if item == nil {
			continue
		}
		slots = append(slots, types.ShopSlot{Kind: types.SlotItem, Index: i, Price: item.Price, Item: item})
	}
	return slots
}

// FindStock returns the first stock entry whose id matches. itemList and
// itemStock are only related by id; there is no index correspondence.
func FindStock(stock []*types.GameItem, id string) (*types.GameItem, bool) {
	for _, item := range stock {
		if item != nil && item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// ItemDisplayName returns the first localized name, then the id, then "?".
func ItemDisplayName(item types.GameItem) string {
	if len(item.Name) > 0 && item.Name[0] != "" {
		return item.Name[0]
	}
	if item.ID != "" {
		return item.ID
	}
	return "?"
}

// FormatPrice renders a price tag such as "$1,234".
func FormatPrice(n int) string {
	return pricePrinter.Sprintf("$%d", n)
}
