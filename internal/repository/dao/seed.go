package dao

// SampleSlots returns the catalog the store starts with and falls back to whenever no slot is active.
func SampleSlots() []Slot {
	return []Slot{
		{Nome: "Fortune Tiger", Categoria: "Fortune", Imagem: "https://www.pgsoft.com/uploads/Games/Images/573dd356-c258-4f7d-b6a3-94c4ab44a780.png", Porcentagem: 90, Jogadores: 998},
		{Nome: "Fortune Rabbit", Categoria: "Fortune", Imagem: "https://www.pgsoft.com/uploads/Games/Images/1c66cd3b-e9e6-417a-a59e-74124af6ebc5.png", Porcentagem: 91, Jogadores: 843},
		{Nome: "Fortune Mouse", Categoria: "Fortune", Imagem: "https://www.pgsoft.com/uploads/Games/Images/dcb0a0c8-86e4-4f81-a738-46fb29bf7c6a.png", Porcentagem: 96, Jogadores: 723},
		{Nome: "Mahjong Ways 2", Categoria: "Mahjong", Imagem: "https://www.pgsoft.com/uploads/Games/Images/b29bec46-4cf1-4eb1-9b77-98ad9813410d.png", Porcentagem: 92, Jogadores: 1278},
		{Nome: "Lucky Neko", Categoria: "Temático", Imagem: "https://www.pgsoft.com/uploads/Games/Images/a0117f36-871d-4aef-a40c-c83d083c8dbd.png", Porcentagem: 89, Jogadores: 1112},
		{Nome: "Fortune Ox", Categoria: "Fortune", Imagem: "https://www.pgsoft.com/uploads/Games/Images/dad28553-b44b-41d9-9e8f-1188f7ffd995.png", Porcentagem: 87, Jogadores: 1365},
		{Nome: "Cash Mania", Categoria: "Clássico", Imagem: "https://www.pgsoft.com/uploads/Games/Images/a32fdc67-e0c0-4d7b-a211-53868866a0f7.png", Porcentagem: 88, Jogadores: 754},
		{Nome: "Fortune Dragon", Categoria: "Fortune", Imagem: "https://www.pgsoft.com/uploads/Games/Images/6db8b734-210d-4c7f-b427-0480a05a9e7d.png", Porcentagem: 93, Jogadores: 1102},
	}
}

func sampleSlotsActive() []Slot {
	seeds := SampleSlots()
	for i := range seeds {
		seeds[i].Ativo = true
	}

	return seeds
}
