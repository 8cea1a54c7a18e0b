package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/schedule"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type reportService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// ingredientIndex resolves ingredients by name and by ID for costing.
type ingredientIndex struct {
	byName map[string]*entity.Ingredient
	byID   map[uuid.UUID]*entity.Ingredient
}

func loadIngredientIndex(ctx context.Context, txRepos repository.RepositoryFactory) (*ingredientIndex, error) {
	ingredients, err := txRepos.CatalogRepo().ListIngredients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	idx := &ingredientIndex{
		byName: make(map[string]*entity.Ingredient, len(ingredients)),
		byID:   make(map[uuid.UUID]*entity.Ingredient, len(ingredients)),
	}
	for _, ingredient := range ingredients {
		idx.byName[ingredient.Name] = ingredient
		idx.byID[ingredient.ID] = ingredient
	}

	return idx, nil
}

// priceOf returns the live costing price of an ingredient name, zero when
// the ingredient has never been priced.
func (idx *ingredientIndex) priceOf(name string) decimal.Decimal {
	if ingredient, ok := idx.byName[name]; ok {
		return ingredient.PricePerUnit
	}

	return decimal.Zero
}

func costOf(price decimal.Decimal, qty float64) decimal.Decimal {
	return price.Mul(decimal.NewFromFloat(qty))
}

// DeficitReport projects one full serving cycle of the live catalog over the
// active student count and reports every ingredient that current stock does
// not cover, costed at its live price.
func (s *reportService) DeficitReport(ctx context.Context) ([]usecase.DeficitLine, error) {
	var lines []usecase.DeficitLine

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		students, err := txRepos.AccountRepo().CountActiveByRole(ctx, entity.RoleStudent)
		if err != nil {
			return errors.Wrap(err, "failed to count students")
		}
		if students == 0 {
			// Keep the projection meaningful on an empty roster.
			students = 1
		}

		meals, err := txRepos.CatalogRepo().ListMeals(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list meals")
		}

		needed := make(map[string]float64)
		units := make(map[string]string)
		for _, meal := range meals {
			for _, line := range meal.Recipe {
				needed[line.IngredientName] += line.Quantity * float64(students)
				units[line.IngredientName] = line.Unit
			}
		}

		stocks, err := txRepos.StockRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list stock")
		}
		idx, err := loadIngredientIndex(ctx, txRepos)
		if err != nil {
			return err
		}

		available := make(map[string]float64, len(stocks))
		for _, stock := range stocks {
			if ingredient, ok := idx.byID[stock.IngredientID]; ok {
				available[ingredient.Name] = stock.Quantity
			}
		}

		for name, need := range needed {
			deficit := need - available[name]
			if deficit <= 0 {
				continue
			}
			lines = append(lines, usecase.DeficitLine{
				IngredientName: name,
				Unit:           units[name],
				Needed:         need,
				Available:      available[name],
				Deficit:        deficit,
				DeficitCost:    costOf(idx.priceOf(name), deficit),
			})
		}

		sort.Slice(lines, func(i, j int) bool {
			if c := lines[i].DeficitCost.Cmp(lines[j].DeficitCost); c != 0 {
				return c > 0
			}

			return lines[i].IngredientName < lines[j].IngredientName
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// PlanVsFact compares the frozen recipes of every paid order in the range
// (the plan) against the fully consumed subset (the fact). Costing uses
// current ingredient prices, so the report answers "what does the deviation
// cost today", not "what did it cost then".
func (s *reportService) PlanVsFact(ctx context.Context, from, to time.Time) ([]usecase.PlanFactLine, error) {
	var lines []usecase.PlanFactLine

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		orders, err := txRepos.OrderRepo().ListPaidInRange(ctx, schedule.DateOnly(from), schedule.DateOnly(to))
		if err != nil {
			return errors.Wrap(err, "failed to list paid orders")
		}
		idx, err := loadIngredientIndex(ctx, txRepos)
		if err != nil {
			return err
		}

		planned := make(map[string]float64)
		actual := make(map[string]float64)
		units := make(map[string]string)
		for _, order := range orders {
			for _, line := range order.Recipe {
				planned[line.IngredientName] += line.Quantity
				units[line.IngredientName] = line.Unit
				if order.FullyConsumed() {
					actual[line.IngredientName] += line.Quantity
				}
			}
		}

		for name, plan := range planned {
			deviation := actual[name] - plan
			lines = append(lines, usecase.PlanFactLine{
				IngredientName: name,
				Unit:           units[name],
				PlannedQty:     plan,
				ActualQty:      actual[name],
				DeviationQty:   deviation,
				DeviationCost:  costOf(idx.priceOf(name), deviation),
			})
		}

		sort.Slice(lines, func(i, j int) bool {
			if c := lines[i].DeviationCost.Abs().Cmp(lines[j].DeviationCost.Abs()); c != 0 {
				return c > 0
			}

			return lines[i].IngredientName < lines[j].IngredientName
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// WriteOffs journals every write-off in [from, to) with its cost at current
// prices.
func (s *reportService) WriteOffs(ctx context.Context, from, to time.Time) (*usecase.WriteOffReport, error) {
	report := &usecase.WriteOffReport{Total: decimal.Zero}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		writeOffs, err := txRepos.WriteOffRepo().ListInRange(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list write-offs")
		}
		idx, err := loadIngredientIndex(ctx, txRepos)
		if err != nil {
			return err
		}

		for _, wo := range writeOffs {
			name := ""
			price := decimal.Zero
			if ingredient, ok := idx.byID[wo.IngredientID]; ok {
				name = ingredient.Name
				price = ingredient.PricePerUnit
			}
			cost := costOf(price, wo.Quantity)
			report.Lines = append(report.Lines, usecase.WriteOffLine{
				WriteOff:       *wo,
				IngredientName: name,
				Cost:           cost,
			})
			report.Total = report.Total.Add(cost)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ProcurementSpend totals the approved purchases decided in [from, to),
// costed at current ingredient prices.
func (s *reportService) ProcurementSpend(ctx context.Context, from, to time.Time) (*usecase.SpendReport, error) {
	report := &usecase.SpendReport{Total: decimal.Zero}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		requests, err := txRepos.ProcurementRepo().ListApprovedInRange(ctx, from, to)
		if err != nil {
			return errors.Wrap(err, "failed to list approved requests")
		}
		idx, err := loadIngredientIndex(ctx, txRepos)
		if err != nil {
			return err
		}

		for _, req := range requests {
			cost := costOf(idx.priceOf(req.IngredientName), req.Quantity)
			report.Lines = append(report.Lines, usecase.SpendLine{
				Request: *req,
				Cost:    cost,
			})
			report.Total = report.Total.Add(cost)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// WeeklySummary aggregates paid orders, confirmed servings and revenue for
// the school week containing today. Revenue sums frozen prices, so it is
// exactly what the ledger collected.
func (s *reportService) WeeklySummary(ctx context.Context, today time.Time) (*usecase.WeeklySummary, error) {
	monday, friday := schedule.WeekBounds(today)
	summary := &usecase.WeeklySummary{
		WeekStart: monday,
		WeekEnd:   friday,
		Revenue:   decimal.Zero,
	}

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		orders, err := txRepos.OrderRepo().ListPaidInRange(ctx, monday, friday)
		if err != nil {
			return errors.Wrap(err, "failed to list paid orders")
		}

		for _, order := range orders {
			summary.PaidOrders++
			summary.Revenue = summary.Revenue.Add(order.MealPrice)
			if order.FullyConsumed() {
				summary.ConfirmedOrders++
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// Dashboard assembles the combined admin report for the week containing
// today.
func (s *reportService) Dashboard(ctx context.Context, today time.Time) (*usecase.AdminReport, error) {
	monday, friday := schedule.WeekBounds(today)
	rangeEnd := friday.AddDate(0, 0, 1)

	deficit, err := s.DeficitReport(ctx)
	if err != nil {
		return nil, err
	}
	planFact, err := s.PlanVsFact(ctx, monday, friday)
	if err != nil {
		return nil, err
	}
	writeOffs, err := s.WriteOffs(ctx, monday, rangeEnd)
	if err != nil {
		return nil, err
	}
	spend, err := s.ProcurementSpend(ctx, monday, rangeEnd)
	if err != nil {
		return nil, err
	}
	week, err := s.WeeklySummary(ctx, today)
	if err != nil {
		return nil, err
	}

	return &usecase.AdminReport{
		Deficit:   deficit,
		PlanFact:  planFact,
		WriteOffs: *writeOffs,
		Spend:     *spend,
		Week:      *week,
	}, nil
}
