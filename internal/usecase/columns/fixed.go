package columns

import "github.com/simaogato/shifttrade-backend/internal/domain"

// Fixed resolves fields by position. No header is expected; header rows that
// do appear are left for the trade builder to recognise and skip.
type Fixed struct {
	Layout FieldMap
}

func (f Fixed) Resolve(grid domain.Grid) (FieldMap, domain.Grid, error) {
	if len(grid) == 0 {
		return FieldMap{}, nil, domain.ErrEmptyInput
	}
	return f.Layout, grid, nil
}
