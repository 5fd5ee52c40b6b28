// Package assets loads the embedded merchandising data: the ZIP-prefix
// hardiness zone table and the plant-to-zones database. Loaders return
// immutable domain objects; nothing in here is a package-level singleton,
// so tests can build fixture tables instead of touching these assets.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/zonelens/backend/internal/domain"
)

//go:embed plants.json
var assetFS embed.FS

// plantFile mirrors the on-disk shape: {"plants": {name: {"zones": [...]}}}.
type plantFile struct {
	Plants map[string]plantEntry `json:"plants"`
}

type plantEntry struct {
	Zones []string `json:"zones"`
}

// LoadZoneTable builds the zone table from the generated prefix mapping.
// Temperature ranges follow the USDA band formula: zone N spans a 10°F band
// starting at -60°F for zone 1, split into a 5°F "a" half and "b" half.
func LoadZoneTable() (*domain.ZoneTable, error) {
	ranges := make(map[string]domain.TempRange, 26)
	for n := 1; n <= 13; n++ {
		min := -60 + (n-1)*10
		ranges[fmt.Sprintf("%da", n)] = domain.TempRange{MinF: min, MaxF: min + 5}
		ranges[fmt.Sprintf("%db", n)] = domain.TempRange{MinF: min + 5, MaxF: min + 10}
	}
	return domain.NewZoneTable(zipPrefixToZone, ranges)
}

// LoadPlantDatabase parses the embedded plant database asset.
func LoadPlantDatabase() (*domain.PlantDatabase, error) {
	raw, err := assetFS.ReadFile("plants.json")
	if err != nil {
		return nil, fmt.Errorf("%w: reading plants.json: %v", domain.ErrParse, err)
	}

	var file plantFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: decoding plants.json: %v", domain.ErrParse, err)
	}
	if len(file.Plants) == 0 {
		return nil, fmt.Errorf("%w: plants.json contains no plants", domain.ErrParse)
	}

	plants := make(map[string][]string, len(file.Plants))
	for name, entry := range file.Plants {
		if len(entry.Zones) == 0 {
			return nil, fmt.Errorf("%w: plant %q has no zones", domain.ErrParse, name)
		}
		plants[name] = entry.Zones
	}

	return domain.NewPlantDatabase(plants)
}
