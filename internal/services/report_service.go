package services

import (
	"log"
	"time"

	"cobbler_crm/internal/models"
	"cobbler_crm/internal/repository"
	"cobbler_crm/internal/workflow"
)

// ReportData is the dashboard projection over enquiries and expenses for
// one time window.
type ReportData struct {
	Period         string             `json:"period"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	TotalEnquiries int                `json:"total_enquiries"`
	ByStage        map[string]int     `json:"by_stage"`
	ByStatus       map[string]int     `json:"by_status"`
	ByInquiryType  map[string]int     `json:"by_inquiry_type"`
	TotalRevenue   float64            `json:"total_revenue"`
	TotalExpenses  float64            `json:"total_expenses"`
	NetIncome      float64            `json:"net_income"`
	ExpenseStats   *ExpenseStats      `json:"expense_stats"`
}

type ReportMetrics struct {
	Period          string  `json:"period"`
	ConversionRate  float64 `json:"conversion_rate"`
	CompletionRate  float64 `json:"completion_rate"`
	AverageQuote    float64 `json:"average_quote"`
	ConvertedCount  int     `json:"converted_count"`
	CompletedCount  int     `json:"completed_count"`
	NewCount        int     `json:"new_count"`
}

type ChartPoint struct {
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

type ExportRow struct {
	EnquiryID    uint    `json:"enquiry_id"`
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	InquiryType  string  `json:"inquiry_type"`
	Status       string  `json:"status"`
	CurrentStage string  `json:"current_stage"`
	QuotedAmount float64 `json:"quoted_amount"`
	Date         string  `json:"date"`
}

type ReportService interface {
	GetReportData(period string) (*ReportData, error)
	GetMetrics(period string) (*ReportMetrics, error)
	GetRevenueChart(period string) ([]ChartPoint, error)
	GetExportData(period string) ([]ExportRow, error)
	GetCustomReport(startDate, endDate time.Time) (*ReportData, error)
}

type reportService struct {
	enquiryRepo repository.EnquiryRepository
	expenseRepo repository.ExpenseRepository
	cache       ReportCache
	cacheTTL    time.Duration
}

func NewReportService(enquiryRepo repository.EnquiryRepository, expenseRepo repository.ExpenseRepository, cache ReportCache, cacheTTL time.Duration) ReportService {
	return &reportService{
		enquiryRepo: enquiryRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

// resolvePeriod turns a named period into a rolling window ending now.
func resolvePeriod(period string) (time.Time, time.Time, error) {
	now := time.Now()
	switch period {
	case "week":
		return now.AddDate(0, 0, -7), now, nil
	case "month":
		return now.AddDate(0, -1, 0), now, nil
	case "quarter":
		return now.AddDate(0, -3, 0), now, nil
	case "year":
		return now.AddDate(-1, 0, 0), now, nil
	}
	verr := &workflow.ValidationError{}
	verr.Add("period", "period must be one of week, month, quarter, year")
	return time.Time{}, time.Time{}, verr
}

func (s *reportService) GetReportData(period string) (*ReportData, error) {
	startDate, endDate, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	cacheKey := "data:" + period
	var cached ReportData
	if s.cacheGet(cacheKey, &cached) {
		return &cached, nil
	}

	data, err := s.buildReportData(period, startDate, endDate)
	if err != nil {
		return nil, err
	}
	s.cacheSet(cacheKey, data)
	return data, nil
}

func (s *reportService) GetCustomReport(startDate, endDate time.Time) (*ReportData, error) {
	if endDate.Before(startDate) {
		verr := &workflow.ValidationError{}
		verr.Add("to", "end date must not be before start date")
		return nil, verr
	}
	// custom ranges are not cached; they rarely repeat
	return s.buildReportData("custom", startDate, endDate)
}

// buildReportData is a pure projection over the two collections; empty
// collections produce a zero-valued report.
func (s *reportService) buildReportData(period string, startDate, endDate time.Time) (*ReportData, error) {
	enquiries, err := s.enquiryRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	data := &ReportData{
		Period:        period,
		StartDate:     startDate,
		EndDate:       endDate,
		ByStage:       make(map[string]int),
		ByStatus:      make(map[string]int),
		ByInquiryType: make(map[string]int),
		ExpenseStats:  &ExpenseStats{ByCategory: make(map[string]CategoryStat)},
	}

	for _, e := range enquiries {
		data.TotalEnquiries++
		data.ByStage[e.CurrentStage]++
		data.ByStatus[e.Status]++
		data.ByInquiryType[e.InquiryType]++
		if e.Status == string(models.StatusConverted) {
			data.TotalRevenue += e.QuotedAmount
		}
	}

	for _, e := range expenses {
		data.TotalExpenses += e.Amount
		data.ExpenseStats.TotalAmount += e.Amount
		data.ExpenseStats.TotalCount++
		cat := data.ExpenseStats.ByCategory[e.Category]
		cat.Count++
		cat.Amount += e.Amount
		data.ExpenseStats.ByCategory[e.Category] = cat
	}

	data.NetIncome = data.TotalRevenue - data.TotalExpenses
	return data, nil
}

func (s *reportService) GetMetrics(period string) (*ReportMetrics, error) {
	startDate, endDate, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	cacheKey := "metrics:" + period
	var cached ReportMetrics
	if s.cacheGet(cacheKey, &cached) {
		return &cached, nil
	}

	enquiries, err := s.enquiryRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	metrics := &ReportMetrics{Period: period}
	var quoteSum float64
	for _, e := range enquiries {
		switch e.Status {
		case string(models.StatusNew):
			metrics.NewCount++
		case string(models.StatusConverted):
			metrics.ConvertedCount++
			quoteSum += e.QuotedAmount
		}
		if e.CurrentStage == string(models.StageCompleted) {
			metrics.CompletedCount++
		}
	}

	if len(enquiries) > 0 {
		metrics.ConversionRate = float64(metrics.ConvertedCount) / float64(len(enquiries)) * 100
		metrics.CompletionRate = float64(metrics.CompletedCount) / float64(len(enquiries)) * 100
	}
	if metrics.ConvertedCount > 0 {
		metrics.AverageQuote = quoteSum / float64(metrics.ConvertedCount)
	}

	s.cacheSet(cacheKey, metrics)
	return metrics, nil
}

// GetRevenueChart buckets revenue and expenses across the window: daily
// buckets for a week, otherwise monthly.
func (s *reportService) GetRevenueChart(period string) ([]ChartPoint, error) {
	startDate, endDate, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	cacheKey := "revenue-chart:" + period
	var cached []ChartPoint
	if s.cacheGet(cacheKey, &cached) {
		return cached, nil
	}

	enquiries, err := s.enquiryRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	daily := period == "week"
	bucketKey := func(t time.Time) string {
		if daily {
			return t.Format("2006-01-02")
		}
		return t.Format("2006-01")
	}

	buckets := make(map[string]*ChartPoint)
	var labels []string
	for cursor := startDate; !cursor.After(endDate); {
		label := bucketKey(cursor)
		if _, ok := buckets[label]; !ok {
			buckets[label] = &ChartPoint{Label: label}
			labels = append(labels, label)
		}
		if daily {
			cursor = cursor.AddDate(0, 0, 1)
		} else {
			cursor = cursor.AddDate(0, 1, 0)
		}
	}

	for _, e := range enquiries {
		if e.Status != string(models.StatusConverted) {
			continue
		}
		if point, ok := buckets[bucketKey(e.Date)]; ok {
			point.Revenue += e.QuotedAmount
		}
	}
	for _, e := range expenses {
		if point, ok := buckets[bucketKey(e.Date)]; ok {
			point.Expenses += e.Amount
		}
	}

	points := make([]ChartPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, *buckets[label])
	}

	s.cacheSet(cacheKey, points)
	return points, nil
}

func (s *reportService) GetExportData(period string) ([]ExportRow, error) {
	startDate, endDate, err := resolvePeriod(period)
	if err != nil {
		return nil, err
	}

	enquiries, err := s.enquiryRepo.GetByDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	rows := make([]ExportRow, 0, len(enquiries))
	for _, e := range enquiries {
		rows = append(rows, ExportRow{
			EnquiryID:    e.ID,
			CustomerName: e.CustomerName,
			Phone:        e.Phone,
			InquiryType:  e.InquiryType,
			Status:       e.Status,
			CurrentStage: e.CurrentStage,
			QuotedAmount: e.QuotedAmount,
			Date:         e.Date.Format("2006-01-02"),
		})
	}
	return rows, nil
}

func (s *reportService) cacheGet(key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	if err := s.cache.GetReport(key, dest); err != nil {
		return false
	}
	return true
}

func (s *reportService) cacheSet(key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetReport(key, value, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache report %s: %v", key, err)
	}
}
