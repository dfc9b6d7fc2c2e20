package story

import "slices"

// Tool describes an acquirable support tool.
type Tool struct {
	ID    string
	Name  string
	Icon  string
	Color string
	Lore  string
}

const (
	ToolAAC     = "aac"
	ToolHeadset = "headset"
	ToolTimer   = "timer"
	ToolSquishy = "squishy"
	ToolPECS    = "pecs"
	ToolMap     = "map"
	ToolRibbon  = "ribbon"
)

var tools = []Tool{
	{
		ID:    ToolAAC,
		Name:  "AAC Tablet",
		Icon:  "tablet",
		Color: "blue",
		Lore:  "An AAC (augmentative and alternative communication) tablet lets a friend who finds speaking hard share thoughts with pictures and symbols.",
	},
	{
		ID:    ToolHeadset,
		Name:  "Noise-Cancelling Headset",
		Icon:  "headphones",
		Color: "purple",
		Lore:  "A headset that turns loud sounds down for a friend who is very sensitive to noise. It helps when a sudden bang is overwhelming.",
	},
	{
		ID:    ToolTimer,
		Name:  "Visual Timer",
		Icon:  "hourglass",
		Color: "amber",
		Lore:  "A timer you can see. Knowing ahead of time when an activity ends makes a change much easier to prepare for.",
	},
	{
		ID:    ToolSquishy,
		Name:  "Squishy (Fidget Toy)",
		Icon:  "hand",
		Color: "pink",
		Lore:  "A soft toy to squeeze when feeling anxious or restless. It helps with sensory regulation and calming down.",
	},
	{
		ID:    ToolPECS,
		Name:  "PECS Cards",
		Icon:  "images",
		Color: "green",
		Lore:  "PECS (Picture Exchange Communication System) means handing over picture cards to say what you want.",
	},
	{
		ID:    ToolMap,
		Name:  "Trail Map",
		Icon:  "map",
		Color: "teal",
		Lore:  "The trail map from the forest entrance. Some friends remember pictures like this in perfect detail.",
	},
	{
		ID:    ToolRibbon,
		Name:  "Yellow Ribbon",
		Icon:  "ribbon",
		Color: "yellow",
		Lore:  "A yellow ribbon tied to a tree marks the right path. Small details like this are easy to notice for a friend with a strong visual memory.",
	},
}

// Tools returns the tool catalog in display order.
func Tools() []Tool {
	return slices.Clone(tools)
}

// LookupTool returns the catalog entry for id.
func LookupTool(id string) (Tool, bool) {
	for _, t := range tools {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// KnownTool reports whether id is in the catalog.
func KnownTool(id string) bool {
	_, ok := LookupTool(id)
	return ok
}
