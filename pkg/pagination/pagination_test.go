package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	p := Params{Page: 0, PageSize: -1}.Normalize()
	assert.Equal(t, Params{Page: 1, PageSize: 0}, p)

	p = Params{Page: 3, PageSize: MaxPageSize + 1}.Normalize()
	assert.Equal(t, Params{Page: 3, PageSize: MaxPageSize}, p)
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := Params{Page: 1, PageSize: 0}.CalculateOffsetLimit()
	assert.Zero(t, offset)
	assert.Zero(t, limit)

	offset, limit = Params{Page: 3, PageSize: 20}.CalculateOffsetLimit()
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)
}

func TestBuildMeta(t *testing.T) {
	meta := Params{Page: 2, PageSize: 10}.BuildMeta(25)
	assert.Equal(t, Meta{Page: 2, PageSize: 10, TotalItems: 25, TotalPages: 3}, meta)

	meta = Params{Page: 1, PageSize: 0}.BuildMeta(25)
	assert.Equal(t, Meta{Page: 1, PageSize: 0, TotalItems: 25, TotalPages: 0}, meta)
}
