package registry

// Built-in block ids. Ids 1-16 are cubes, 17-23 are plants.
const (
	BlockEmpty = iota
	BlockGrass
	BlockSand
	BlockStone
	BlockBrick
	BlockWood
	BlockCement
	BlockDirt
	BlockPlank
	BlockSnow
	BlockGlass
	BlockCobble
	BlockLightStone
	BlockDarkStone
	BlockChest
	BlockLeaves
	BlockCloud
	BlockTallGrass
	BlockYellowFlower
	BlockRedFlower
	BlockPurpleFlower
	BlockSunFlower
	BlockWhiteFlower
	BlockBlueFlower
)

var defaultBlocks = []BlockDefinition{
	{ID: BlockEmpty, Name: "empty"},
	{ID: BlockGrass, Name: "grass", Tiles: tiles(Column(16, 32, 0))},
	{ID: BlockSand, Name: "sand", Tiles: tiles(Uniform(1))},
	{ID: BlockStone, Name: "stone", Tiles: tiles(Uniform(2))},
	{ID: BlockBrick, Name: "brick", Tiles: tiles(Uniform(3))},
	{ID: BlockWood, Name: "wood", Tiles: tiles(Column(20, 36, 4))},
	{ID: BlockCement, Name: "cement", Tiles: tiles(Uniform(5))},
	{ID: BlockDirt, Name: "dirt", Tiles: tiles(Uniform(6))},
	{ID: BlockPlank, Name: "plank", Tiles: tiles(Uniform(7))},
	{ID: BlockSnow, Name: "snow", Tiles: tiles(Column(24, 40, 8))},
	{ID: BlockGlass, Name: "glass", Tiles: tiles(Uniform(9))},
	{ID: BlockCobble, Name: "cobble", Tiles: tiles(Uniform(10))},
	{ID: BlockLightStone, Name: "light_stone", Tiles: tiles(Uniform(11))},
	{ID: BlockDarkStone, Name: "dark_stone", Tiles: tiles(Uniform(12))},
	{ID: BlockChest, Name: "chest", Tiles: tiles(Uniform(13))},
	{ID: BlockLeaves, Name: "leaves", Tiles: tiles(Uniform(14))},
	{ID: BlockCloud, Name: "cloud", Tiles: tiles(Uniform(15))},
	{ID: BlockTallGrass, Name: "tall_grass", Tiles: tiles(Uniform(48)), Plant: true},
	{ID: BlockYellowFlower, Name: "yellow_flower", Tiles: tiles(Uniform(49)), Plant: true},
	{ID: BlockRedFlower, Name: "red_flower", Tiles: tiles(Uniform(50)), Plant: true},
	{ID: BlockPurpleFlower, Name: "purple_flower", Tiles: tiles(Uniform(51)), Plant: true},
	{ID: BlockSunFlower, Name: "sun_flower", Tiles: tiles(Uniform(52)), Plant: true},
	{ID: BlockWhiteFlower, Name: "white_flower", Tiles: tiles(Uniform(53)), Plant: true},
	{ID: BlockBlueFlower, Name: "blue_flower", Tiles: tiles(Uniform(54)), Plant: true},
}

func tiles(t FaceTiles) *FaceTiles { return &t }

// Default returns a registry holding the built-in blocks.
func Default() *Registry {
	r := New()
	for _, def := range defaultBlocks {
		// Built-in ids are in range and carry explicit tiles.
		_ = r.RegisterBlock(def)
	}
	return r
}
