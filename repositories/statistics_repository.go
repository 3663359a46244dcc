package repositories

import (
	"customer-app/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type StatisticsRepository struct {
	DB *gorm.DB
}

func NewStatisticsRepository(DB *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{DB: DB}
}

// GetCustomerStatistics assembles the dashboard aggregate. Revenue sums every
// order regardless of status; per-type revenue is not computed and stays zero.
func (r *StatisticsRepository) GetCustomerStatistics() (*models.CustomerStatsDTO, error) {
	var totalCustomers, activeCustomers, totalOrders int64

	if err := r.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Customer{}).Where("is_active = ?", true).Count(&activeCustomers).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return nil, err
	}

	var totalRevenue float64
	if err := r.DB.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return nil, err
	}

	breakdown, err := r.getCustomerTypeBreakdown()
	if err != nil {
		return nil, err
	}

	return &models.CustomerStatsDTO{
		TotalCustomers:        int(totalCustomers),
		ActiveCustomers:       int(activeCustomers),
		InactiveCustomers:     int(totalCustomers - activeCustomers),
		TotalOrders:           int(totalOrders),
		TotalRevenue:          totalRevenue,
		CustomerTypeBreakdown: breakdown,
	}, nil
}

func (r *StatisticsRepository) getCustomerTypeBreakdown() ([]models.CustomerTypeStatsDTO, error) {
	var rows []struct {
		CustomerType string
		Count        int
	}

	err := r.DB.Model(&models.Customer{}).
		Select("customer_type, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("customer_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	breakdown := make([]models.CustomerTypeStatsDTO, 0, len(rows))
	for _, row := range rows {
		customerType := row.CustomerType
		if customerType == "" {
			customerType = "Unknown"
		}
		breakdown = append(breakdown, models.CustomerTypeStatsDTO{
			CustomerType: customerType,
			Count:        row.Count,
			TotalRevenue: 0,
		})
	}

	// GROUP BY ordering is driver-dependent; keep the buckets stable.
	slices.SortFunc(breakdown, func(a, b models.CustomerTypeStatsDTO) int {
		switch {
		case a.CustomerType < b.CustomerType:
			return -1
		case a.CustomerType > b.CustomerType:
			return 1
		default:
			return 0
		}
	})

	return breakdown, nil
}
