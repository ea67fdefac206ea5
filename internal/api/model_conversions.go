package api

import (
	"database/sql"

	"inventory-backend/internal/database"
	"inventory-backend/pkg/api"
)

func nullInt32(v int32) sql.NullInt32 {
	return sql.NullInt32{Int32: v, Valid: true}
}

func convertBranch(b database.Branch) api.Branch {
	return api.Branch{
		Id:         b.Id,
		BranchName: b.BranchName,
		Location:   b.Location,
		IsActive:   b.IsActive,
	}
}

func convertBranches(bs []database.Branch) []api.Branch {
	branches := make([]api.Branch, 0, len(bs))
	for _, b := range bs {
		branches = append(branches, convertBranch(b))
	}
	return branches
}

func convertProduct(p database.Product) api.Product {
	return api.Product{
		Id:       p.Id,
		Name:     p.Name,
		Category: p.Category,
		Cost:     p.Cost,
		Srp:      p.Srp,
	}
}

func convertProducts(ps []database.Product) []api.Product {
	products := make([]api.Product, 0, len(ps))
	for _, p := range ps {
		products = append(products, convertProduct(p))
	}
	return products
}

func convertItem(it database.InvReportItem) api.ReportItem {
	item := api.ReportItem{
		ProductId:   it.ProductId,
		Beginning:   it.Beginning,
		Deliver:     it.Deliver,
		Transfer:    it.Transfer,
		SellingArea: it.SellingArea,
		PullOut:     it.PullOut,
		Offtake:     it.Offtake,
		CurrentCost: it.CurrentCost,
	}
	if it.CurrentSrp.Valid {
		srp := it.CurrentSrp.Float64
		item.CurrentSrp = &srp
	}
	return item
}

func convertItemsToRecords(items []api.ReportItem) []database.InvReportItem {
	records := make([]database.InvReportItem, 0, len(items))
	for _, it := range items {
		record := database.InvReportItem{
			ProductId:   it.ProductId,
			Beginning:   it.Beginning,
			Deliver:     it.Deliver,
			Transfer:    it.Transfer,
			SellingArea: it.SellingArea,
			PullOut:     it.PullOut,
			Offtake:     it.Offtake,
			CurrentCost: it.CurrentCost,
		}
		if it.CurrentSrp != nil {
			record.CurrentSrp = sql.NullFloat64{Float64: *it.CurrentSrp, Valid: true}
		}
		records = append(records, record)
	}
	return records
}

func convertReport(r database.InvReport) api.Report {
	report := api.Report{
		Id:          r.Id,
		BranchId:    r.BranchId,
		DateCreated: r.DateCreated,
	}

	if r.LastEdit.Valid {
		lastEdit := r.LastEdit.Time
		report.LastEdit = &lastEdit
	}
	if r.Status.Valid {
		status := r.Status.Int32
		report.Status = &status
	}
	if r.ViewedBy.Valid {
		viewedBy := int(r.ViewedBy.Int32)
		report.ViewedBy = &viewedBy
	}

	for _, it := range r.Items {
		report.Items = append(report.Items, convertItem(it))
	}

	return report
}

func convertReports(rs []database.InvReport) []api.Report {
	reports := make([]api.Report, 0, len(rs))
	for _, r := range rs {
		reports = append(reports, convertReport(r))
	}
	return reports
}
