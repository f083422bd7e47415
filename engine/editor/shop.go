package editor

import (
	"strings"

	"github.com/nathoo/pokesave/engine/schema"
	"github.com/nathoo/pokesave/types"
)

func setShop(doc types.Document, patch map[string]any) types.Document {
	return setSection(doc, types.KeyShop, patch)
}

func SetEggPrice(doc types.Document, n int) types.Document {
	return setShop(doc, map[string]any{"eggPrice": n})
}

// AddEgg appends a species to eggList. Blank input leaves the document
// unchanged.
func AddEgg(doc types.Document, species string) types.Document {
	return addString(doc, "eggList", species)
}

func RemoveEgg(doc types.Document, i int) (types.Document, error) {
	return removeAt(doc, "eggList", i)
}

// AddItemID appends an id to itemList. itemStock is not touched.
func AddItemID(doc types.Document, id string) types.Document {
	return addString(doc, "itemList", id)
}

// RemoveItemID removes entry i of itemList. A stock entry with the same id
// stays in itemStock.
func RemoveItemID(doc types.Document, i int) (types.Document, error) {
	return removeAt(doc, "itemList", i)
}

func addString(doc types.Document, key, s string) types.Document {
	s = strings.TrimSpace(s)
	if s == "" {
		return doc
	}
	return setShop(doc, map[string]any{key: schema.Append(sectionList(doc, types.KeyShop, key), s)})
}

func removeAt(doc types.Document, key string, i int) (types.Document, error) {
	list := sectionList(doc, types.KeyShop, key)
	if !schema.InRange(list, i) {
		return doc, outOfRange(key, i, len(list))
	}
	return setShop(doc, map[string]any{key: schema.RemoveAt(list, i)}), nil
}

// UpdateStockEntry merges patch into itemStock entry i. Null and
// non-object entries are left as they are.
func UpdateStockEntry(doc types.Document, i int, patch map[string]any) (types.Document, error) {
	stock := sectionList(doc, types.KeyShop, "itemStock")
	if !schema.InRange(stock, i) {
		return doc, outOfRange("stock", i, len(stock))
	}
	entry, ok := stock[i].(map[string]any)
	if !ok {
		return doc, nil
	}
	return setShop(doc, map[string]any{
		"itemStock": schema.ReplaceAt(stock, i, schema.Merge(entry, patch)),
	}), nil
}

// SetStockPrice sets the price of itemStock entry i.
func SetStockPrice(doc types.Document, i, n int) (types.Document, error) {
	return UpdateStockEntry(doc, i, map[string]any{"price": n})
}
