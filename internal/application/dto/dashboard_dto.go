package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO métricas agregadas del inventario para el dashboard.
// TotalValue es Σ quantity × unitPrice; RecentTransactions cuenta las
// últimas 24 horas.
type DashboardStatsDTO struct {
	TotalProducts      int               `json:"totalProducts"`
	LowStockProducts   int               `json:"lowStockProducts"`
	TotalValue         decimal.Decimal   `json:"totalValue"`
	RecentTransactions int               `json:"recentTransactions"`
	LowStockList       []ProductResponse `json:"lowStockList"`
}

// CategoryBreakdownDTO productos y valor de stock agrupados por categoría.
type CategoryBreakdownDTO struct {
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// StockLevelDTO nivel de stock de un producto frente a su nivel de reorden.
type StockLevelDTO struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ReorderLevel int    `json:"reorderLevel"`
}

// TrendPointDTO entradas y salidas agregadas de un día.
type TrendPointDTO struct {
	Date     string `json:"date"` // YYYY-MM-DD
	StockIn  int    `json:"stockIn"`
	StockOut int    `json:"stockOut"`
}

// TopProductDTO producto con su valor de stock, para el ranking por valor.
type TopProductDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}
