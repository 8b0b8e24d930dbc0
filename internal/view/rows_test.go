package view

import (
	"fmt"
	"testing"

	"github.com/mmcdole/astrogator/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildRowsOrderAndPosition(t *testing.T) {
	native := sampleTransfers()
	sorted := SortTransfers(native, domain.SortName, false)
	ctx := NewRowContext(native, Columns, 1, 0)

	rows := BuildRows(sorted, RowRendererFunc(func(t *domain.Transfer, ctx RowContext) string {
		return fmt.Sprintf("%d:%s", ctx.Position(t), t.DestinationName())
	}), ctx)

	assert.Equal(t, []string{"5:Dres", "3:Duna", "2:Eve", "4:Jool", "1:Moho"}, rows)
}

func TestFilterTransfers(t *testing.T) {
	sorted := SortTransfers(sampleTransfers(), domain.SortName, true)

	assert.Equal(t, names(sorted), names(FilterTransfers(sorted, "")))
	assert.Equal(t, names(sorted), names(FilterTransfers(sorted, "   ")))
	assert.Equal(t, []string{"Moho", "Jool"}, names(FilterTransfers(sorted, "O")))
	assert.Empty(t, FilterTransfers(sorted, "xyz"))
}
