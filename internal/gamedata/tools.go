package gamedata

// NoTool is the ID of the bare-hands tool every player starts with.
const NoTool = "none"

// ToolDef defines a mining tool loaded from JSON.
type ToolDef struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MiningSpeed float64 `json:"miningSpeed"` // Divides the base mining time
	Attack      int     `json:"attack"`      // Damage dealt to enemies
}

// ToolsFile represents the structure of tools.json.
type ToolsFile struct {
	Tools []ToolDef `json:"tools"`
}

// LoadTools loads tool definitions from the embedded tools.json file.
func LoadTools() ([]ToolDef, error) {
	file, err := Load[ToolsFile]("tools.json")
	if err != nil {
		return nil, err
	}
	return file.Tools, nil
}
