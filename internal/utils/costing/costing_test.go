package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prodbooks/mfg_ledger/internal/apperrors"
	"github.com/prodbooks/mfg_ledger/internal/core/domain"
	"github.com/prodbooks/mfg_ledger/internal/utils/costing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func simpleBOM(yieldPercent, quantityPer, scrapPercent string) domain.BillOfMaterial {
	return domain.BillOfMaterial{
		BOMID:        "bom-1",
		YieldPercent: dec(yieldPercent),
		Lines: []domain.BOMLine{
			{
				BOMLineID:          "line-1",
				LineNumber:         1,
				ComponentProductID: "comp-A",
				QuantityPer:        dec(quantityPer),
				ScrapPercent:       dec(scrapPercent),
			},
		},
	}
}

func TestExplodeBOM_ScrapOnTop(t *testing.T) {
	// 2 per unit, 10% scrap, full yield, 10 units: 20 planned, 2 scrap, 22 issued.
	bom := simpleBOM("100", "2", "10")

	reqs, err := costing.ExplodeBOM(bom, dec("10"))
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	r := reqs[0]
	assert.Equal(t, "comp-A", r.ComponentProductID)
	assert.True(t, r.PlannedQuantity.Equal(dec("20")), "planned = %s", r.PlannedQuantity)
	assert.True(t, r.RequiredBeforeScrap.Equal(dec("20")), "required = %s", r.RequiredBeforeScrap)
	assert.True(t, r.ScrapQuantity.Equal(dec("2")), "scrap = %s", r.ScrapQuantity)
	assert.True(t, r.ActualQuantity.Equal(dec("22")), "actual = %s", r.ActualQuantity)
}

func TestExplodeBOM_YieldInflatesRequirement(t *testing.T) {
	// 80% yield means issuing 1/0.8 = 1.25x the planned quantity.
	bom := simpleBOM("80", "4", "0")

	reqs, err := costing.ExplodeBOM(bom, dec("10"))
	require.NoError(t, err)

	r := reqs[0]
	assert.True(t, r.PlannedQuantity.Equal(dec("40")))
	assert.True(t, r.RequiredBeforeScrap.Equal(dec("50")), "required = %s", r.RequiredBeforeScrap)
	assert.True(t, r.ScrapQuantity.IsZero())
	assert.True(t, r.ActualQuantity.Equal(dec("50")))
}

func TestExplodeBOM_YieldAndScrapCompound(t *testing.T) {
	bom := simpleBOM("50", "1", "10")

	reqs, err := costing.ExplodeBOM(bom, dec("10"))
	require.NoError(t, err)

	r := reqs[0]
	assert.True(t, r.RequiredBeforeScrap.Equal(dec("20")))
	assert.True(t, r.ScrapQuantity.Equal(dec("2")))
	assert.True(t, r.ActualQuantity.Equal(dec("22")))
}

func TestExplodeBOM_MultipleLines(t *testing.T) {
	bom := domain.BillOfMaterial{
		YieldPercent: dec("100"),
		Lines: []domain.BOMLine{
			{LineNumber: 1, ComponentProductID: "comp-A", QuantityPer: dec("2"), ScrapPercent: dec("0")},
			{LineNumber: 2, ComponentProductID: "comp-B", QuantityPer: dec("0.5"), ScrapPercent: dec("20")},
		},
	}

	reqs, err := costing.ExplodeBOM(bom, dec("4"))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.True(t, reqs[0].ActualQuantity.Equal(dec("8")))
	assert.True(t, reqs[1].ActualQuantity.Equal(dec("2.4")), "actual = %s", reqs[1].ActualQuantity)
}

func TestExplodeBOM_Errors(t *testing.T) {
	tests := []struct {
		name     string
		bom      domain.BillOfMaterial
		quantity decimal.Decimal
	}{
		{"zero quantity", simpleBOM("100", "2", "0"), dec("0")},
		{"negative quantity", simpleBOM("100", "2", "0"), dec("-1")},
		{"zero yield", simpleBOM("0", "2", "0"), dec("10")},
		{"no lines", domain.BillOfMaterial{YieldPercent: dec("100")}, dec("10")},
		{"zero quantity per", simpleBOM("100", "0", "0"), dec("10")},
		{"negative scrap", simpleBOM("100", "2", "-5"), dec("10")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := costing.ExplodeBOM(tt.bom, tt.quantity)
			assert.ErrorIs(t, err, apperrors.ErrInvalidBOM)
		})
	}
}

func TestWeightedAverageCost(t *testing.T) {
	// 10 units valued 100, receive 10 more costing 180: average moves to 14.
	newQty, newValue, newAvg := costing.WeightedAverageCost(dec("10"), dec("100"), dec("10"), dec("180"))
	assert.True(t, newQty.Equal(dec("20")))
	assert.True(t, newValue.Equal(dec("280")))
	assert.True(t, newAvg.Equal(dec("14")), "avg = %s", newAvg)
}

func TestWeightedAverageCost_FirstReceipt(t *testing.T) {
	newQty, newValue, newAvg := costing.WeightedAverageCost(decimal.Zero, decimal.Zero, dec("5"), dec("60"))
	assert.True(t, newQty.Equal(dec("5")))
	assert.True(t, newValue.Equal(dec("60")))
	assert.True(t, newAvg.Equal(dec("12")))
}

func TestWeightedAverageCost_ZeroQuantityYieldsZeroAverage(t *testing.T) {
	_, _, newAvg := costing.WeightedAverageCost(dec("5"), dec("50"), dec("-5"), dec("-50"))
	assert.True(t, newAvg.IsZero())
}

func TestAverageOf(t *testing.T) {
	assert.True(t, costing.AverageOf(dec("100"), dec("8")).Equal(dec("12.5")))
	assert.True(t, costing.AverageOf(dec("100"), decimal.Zero).IsZero())
}

func TestExciseAmount(t *testing.T) {
	// 5% of 320 is 16.
	assert.True(t, costing.ExciseAmount(dec("320"), dec("5")).Equal(dec("16")))
	assert.True(t, costing.ExciseAmount(dec("320"), decimal.Zero).IsZero())
}

func TestWastagePercentage(t *testing.T) {
	assert.True(t, costing.WastagePercentage(dec("25"), dec("250")).Equal(dec("10")))
	assert.True(t, costing.WastagePercentage(dec("25"), decimal.Zero).IsZero())
}
