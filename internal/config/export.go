package config

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/next-trace/scg-core/erno"
)

type codesFile struct {
	Codes []CodeEntry `toml:"codes"`
}

// MarshalCodes renders the defined codes of tbl in the [[codes]] layout Load
// reads back.
func MarshalCodes(tbl *erno.Table) ([]byte, error) {
	infos := tbl.Infos()
	out := codesFile{Codes: make([]CodeEntry, 0, len(infos))}

	for _, info := range infos {
		out.Codes = append(out.Codes, CodeEntry{
			Value:  uint64(info.Code),
			Name:   info.Name,
			Detail: info.Detail,
		})
	}

	data, err := gotoml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("export codes: %w", err)
	}

	return data, nil
}
