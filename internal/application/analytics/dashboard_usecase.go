// Package analytics contiene los casos de uso de agregación: métricas del
// dashboard y las series de la vista de analítica.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

const (
	lowestStockWidget = 10 // productos en el widget de stock más bajo
	topValueWidget    = 8  // productos en el ranking por valor
	trendWindowDays   = 30 // ventana de la serie de movimientos
)

// DashboardUseCase calcula agregados de solo lectura sobre productos y
// transacciones. No muta nada.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, txRepo: txRepo}
}

// Stats calcula las métricas del dashboard: total de productos, cuántos
// están en o bajo su nivel de reorden, valor total del inventario
// (Σ quantity × unitPrice) y transacciones de las últimas 24 horas.
func (uc *DashboardUseCase) Stats() (*dto.DashboardStatsDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	txs, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts: len(products),
		TotalValue:    decimal.Zero,
		LowStockList:  []dto.ProductResponse{},
	}
	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.StockValue())
		if p.LowStock() {
			stats.LowStockProducts++
			stats.LowStockList = append(stats.LowStockList, productToResponse(p))
		}
	}

	dayAgo := time.Now().Add(-24 * time.Hour)
	for _, tx := range txs {
		if tx.Timestamp.After(dayAgo) {
			stats.RecentTransactions++
		}
	}
	return stats, nil
}

// CategoryBreakdown agrupa los productos por categoría con su cuenta y el
// valor de stock acumulado, en orden de primera aparición.
func (uc *DashboardUseCase) CategoryBreakdown() ([]dto.CategoryBreakdownDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	index := make(map[string]int)
	out := []dto.CategoryBreakdownDTO{}
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(out)
			index[p.Category] = i
			out = append(out, dto.CategoryBreakdownDTO{Name: p.Category, TotalValue: decimal.Zero})
		}
		out[i].Count++
		out[i].TotalValue = out[i].TotalValue.Add(p.StockValue())
	}
	return out, nil
}

// LowestStock devuelve hasta diez productos ordenados por cantidad
// ascendente, con su nivel de reorden para contraste.
func (uc *DashboardUseCase) LowestStock() ([]dto.StockLevelDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	sorted := make([]*entity.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity < sorted[j].Quantity
	})
	if len(sorted) > lowestStockWidget {
		sorted = sorted[:lowestStockWidget]
	}
	out := make([]dto.StockLevelDTO, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, dto.StockLevelDTO{
			Name:         p.Name,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
		})
	}
	return out, nil
}

// TransactionTrends agrega entradas y salidas por día de los últimos 30
// días, en orden cronológico. Los ajustes no aportan a ninguna serie.
func (uc *DashboardUseCase) TransactionTrends() ([]dto.TrendPointDTO, error) {
	txs, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	since := time.Now().AddDate(0, 0, -trendWindowDays)
	byDay := make(map[string]*dto.TrendPointDTO)
	for _, tx := range txs {
		if tx.Timestamp.Before(since) {
			continue
		}
		day := tx.Timestamp.Format("2006-01-02")
		point, ok := byDay[day]
		if !ok {
			point = &dto.TrendPointDTO{Date: day}
			byDay[day] = point
		}
		switch tx.Type {
		case entity.TransactionIn:
			point.StockIn += tx.Quantity
		case entity.TransactionOut:
			point.StockOut += tx.Quantity
		}
	}
	out := make([]dto.TrendPointDTO, 0, len(byDay))
	for _, point := range byDay {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

// TopProductsByValue devuelve hasta ocho productos ordenados por valor de
// stock descendente.
func (uc *DashboardUseCase) TopProductsByValue() ([]dto.TopProductDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TopProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, dto.TopProductDTO{Name: p.Name, Value: p.StockValue()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if len(out) > topValueWidget {
		out = out[:topValueWidget]
	}
	return out, nil
}

func productToResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		Quantity:     p.Quantity,
		ReorderLevel: p.ReorderLevel,
		UnitPrice:    p.UnitPrice,
		SupplierID:   p.SupplierID,
		Description:  p.Description,
		LowStock:     p.LowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
