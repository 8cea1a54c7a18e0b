package usecase

import (
	"context"
	"time"

	"canteen/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// DeficitLine reports how far current stock falls short of one full
// serving cycle for an ingredient.
type DeficitLine struct {
	IngredientName string
	Unit           string
	Needed         float64
	Available      float64
	Deficit        float64
	DeficitCost    decimal.Decimal
}

// PlanFactLine compares planned against actual usage of an ingredient
// over a date range, costed at current prices.
type PlanFactLine struct {
	IngredientName string
	Unit           string
	PlannedQty     float64
	ActualQty      float64
	DeviationQty   float64
	DeviationCost  decimal.Decimal
}

// WriteOffLine is one journal entry of the write-off report.
type WriteOffLine struct {
	WriteOff       entity.WriteOff
	IngredientName string
	Cost           decimal.Decimal
}

// SpendLine is one approved procurement purchase with its cost.
type SpendLine struct {
	Request entity.PurchaseRequest
	Cost    decimal.Decimal
}

// WeeklySummary aggregates the current school week.
type WeeklySummary struct {
	WeekStart       time.Time
	WeekEnd         time.Time
	PaidOrders      int
	ConfirmedOrders int
	Revenue         decimal.Decimal
}

// WriteOffReport bundles the journal lines with their total cost.
type WriteOffReport struct {
	Lines []WriteOffLine
	Total decimal.Decimal
}

// SpendReport bundles approved procurement lines with their total cost.
type SpendReport struct {
	Lines []SpendLine
	Total decimal.Decimal
}

// AdminReport is the combined dashboard payload.
type AdminReport struct {
	Deficit   []DeficitLine
	PlanFact  []PlanFactLine
	WriteOffs WriteOffReport
	Spend     SpendReport
	Week      WeeklySummary
}

// ReportUsecase defines the interface for reporting use cases
type ReportUsecase interface {
	// DeficitReport projects one serving cycle of the live catalog over
	// the active student count and costs each shortfall.
	DeficitReport(ctx context.Context) ([]DeficitLine, error)

	// PlanVsFact compares the frozen recipes of paid orders against the
	// fully consumed subset over the serving dates [from, to] inclusive.
	PlanVsFact(ctx context.Context, from, to time.Time) ([]PlanFactLine, error)

	// WriteOffs journals write-offs over [from, to) with total cost.
	WriteOffs(ctx context.Context, from, to time.Time) (*WriteOffReport, error)

	// ProcurementSpend totals approved purchases decided in [from, to).
	ProcurementSpend(ctx context.Context, from, to time.Time) (*SpendReport, error)

	// WeeklySummary aggregates orders and revenue for the current week.
	WeeklySummary(ctx context.Context, today time.Time) (*WeeklySummary, error)

	// Dashboard assembles the combined admin report for the current week.
	Dashboard(ctx context.Context, today time.Time) (*AdminReport, error)
}
