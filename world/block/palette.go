package block

// Type is a block that can be selected for placement.
type Type struct {
	Name string
	ID   ID
}

var palette = []Type{
	{Name: "Grass", ID: Grass},
	{Name: "Dirt", ID: Dirt},
	{Name: "Stone", ID: Stone},
	{Name: "Cobblestone", ID: Cobblestone},
	{Name: "Sand", ID: Sand},
	{Name: "Oak Log", ID: OakLog},
	{Name: "Oak Leaves", ID: OakLeaves},
	{Name: "Oak Planks", ID: OakPlanks},
	{Name: "Glass", ID: Glass},
}

// Palette returns the block types offered to the player, in selection order.
func Palette() []Type {
	out := make([]Type, len(palette))
	copy(out, palette)
	return out
}
