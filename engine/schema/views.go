package schema

import "github.com/nathoo/pokesave/types"

// PlayerOf returns the player view. Gold prefers the root-level mirror,
// then player.gold.
func PlayerOf(doc types.Document) types.Player {
	p := Section(doc, types.KeyPlayer)

	gold := Int(p, "gold")
	if v, ok := doc[types.KeyGold]; ok && v != nil {
		gold, _ = ToInt(v)
	}

	view := types.Player{
		Name:                String(p, "name"),
		Portrait:            Int(p, "portrait"),
		Gold:                gold,
		Stars:               Int(p, "stars"),
		TeamSlots:           IntOr(p, "teamSlots", DefaultTeamSlots),
		ExtraGold:           Int(p, "extraGold"),
		Ribbons:             Int(p, "ribbons"),
		Records:             Ints(p, "records"),
		AchievementProgress: map[string]int{},
		Stats:               map[string]types.StatValue{},
	}

	for _, a := range List(p, "achievements") {
		view.Achievements = append(view.Achievements, AchievementOf(a))
	}
	for k, v := range Map(p, "achievementProgress") {
		view.AchievementProgress[k], _ = ToInt(v)
	}
	for k, v := range Map(p, "stats") {
		view.Stats[k] = StatOf(v)
	}
	return view
}

// AchievementOf reads one achievement entry. Non-objects read as empty.
func AchievementOf(v any) types.Achievement {
	m, _ := v.(map[string]any)
	return types.Achievement{
		Description: Strings(m, "description"),
		Status:      Bool(m, "status"),
		Image:       String(m, "image"),
	}
}

// PokemonOf reads one team or box entry.
func PokemonOf(m map[string]any) types.Pokemon {
	p := types.Pokemon{
		SpecieKey:  String(m, "specieKey"),
		Lvl:        Int(m, "lvl"),
		IsShiny:    Bool(m, "isShiny"),
		HideShiny:  Bool(m, "hideShiny"),
		Favorite:   Bool(m, "favorite"),
		IsMega:     Bool(m, "isMega"),
		TargetMode: String(m, "targetMode"),
	}
	if p.TargetMode == "" {
		p.TargetMode = "first"
	}
	if item := Map(m, "item"); item != nil {
		it := ItemOf(item)
		p.Item = &it
	}
	return p
}

// PokemonListOf returns the views of the named list.
func PokemonListOf(doc types.Document, list types.PokemonList) []types.Pokemon {
	entries := List(doc, string(list))
	out := make([]types.Pokemon, len(entries))
	for i, e := range entries {
		m, _ := e.(map[string]any)
		out[i] = PokemonOf(m)
	}
	return out
}

// TeamOf returns the team views.
func TeamOf(doc types.Document) []types.Pokemon {
	return PokemonListOf(doc, types.Team)
}

// BoxOf returns the box views.
func BoxOf(doc types.Document) []types.Pokemon {
	return PokemonListOf(doc, types.Box)
}

// ItemOf reads a game item or shop stock entry.
func ItemOf(m map[string]any) types.GameItem {
	return types.GameItem{
		ID:          String(m, "id"),
		Name:        Strings(m, "name"),
		Sprite:      String(m, "sprite"),
		Price:       Int(m, "price"),
		Description: Strings(m, "description"),
		Restriction: Map(m, "restriction"),
	}
}

// AreaOf returns the area view.
func AreaOf(doc types.Document) types.Area {
	a := Section(doc, types.KeyArea)
	return types.Area{
		RouteNumber: Int(a, "routeNumber"),
		RouteWaves:  Ints(a, "routeWaves"),
	}
}

// ShopOf returns the shop view. Null or non-object stock entries are nil.
func ShopOf(doc types.Document) types.Shop {
	s := Section(doc, types.KeyShop)
	shop := types.Shop{
		EggPrice: Int(s, "eggPrice"),
		EggList:  Strings(s, "eggList"),
		ItemList: Strings(s, "itemList"),
	}
	stock := List(s, "itemStock")
	shop.ItemStock = make([]*types.GameItem, len(stock))
	for i, e := range stock {
		if m, ok := e.(map[string]any); ok {
			it := ItemOf(m)
			shop.ItemStock[i] = &it
		}
	}
	return shop
}
