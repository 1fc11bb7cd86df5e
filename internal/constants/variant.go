package constants

import "gopkg.in/yaml.v3"

// overlayDoc is the on-disk shape of a mod/variant patch file: a thin,
// all-optional YAML document merged onto the base EngineConstants with
// Apply. Field names are the lowerCamel/snake spellings a mod author would
// actually write, not Go struct field names.
type overlayDoc struct {
	TileSize int32 `yaml:"tile_size"`
	Textures map[string]struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"textures"`
	Locale map[string]string `yaml:"locale"`
	Stages []struct {
		ID       uint16            `yaml:"id"`
		Tileset  string            `yaml:"tileset"`
		Filename string            `yaml:"filename"`
		BossNo   uint8             `yaml:"boss_no"`
		Names    map[string]string `yaml:"names"`
	} `yaml:"stages"`
	Music []struct {
		ID       uint16 `yaml:"id"`
		Filename string `yaml:"filename"`
	} `yaml:"music"`
}

// LoadPatch decodes a mod/variant overlay file (YAML) into a Patch ready
// for EngineConstants.Apply. This is the CS+/Switch/Demo per-mod patching
// mechanism named in the design note: rather than forking Build for every
// release, a release ships a small overlay document.
func LoadPatch(data []byte) (Patch, error) {
	var doc overlayDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Patch{}, err
	}

	p := Patch{
		TileSize:     doc.TileSize,
		TextureSizes: make(map[string]TextureSizeHint, len(doc.Textures)),
		Locale:       doc.Locale,
	}
	for name, sz := range doc.Textures {
		p.TextureSizes[name] = TextureSizeHint{Width: sz.Width, Height: sz.Height}
	}
	for _, s := range doc.Stages {
		p.StageTable = append(p.StageTable, StageTableEntry{
			ID: s.ID, Tileset: s.Tileset, Filename: s.Filename, BossNo: s.BossNo, DisplayName: s.Names,
		})
	}
	for _, m := range doc.Music {
		p.MusicTable = append(p.MusicTable, MusicTableEntry{ID: m.ID, Filename: m.Filename})
	}
	return p, nil
}
