// Package analytics folds the current order list into the head-office
// overview. Every call recomputes from scratch; the order list only grows
// and totals never change, so there is nothing to invalidate.
package analytics

import "github.com/thepromise/ordering-platform/models"

// MenuLookup resolves a menu item id to its catalog entry.
type MenuLookup func(id string) (models.MenuItem, bool)

type BestSeller struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Behavior struct {
	DineIn          int     `json:"dineIn"`
	Takeaway        int     `json:"takeaway"`
	AvgBasket       float64 `json:"avgBasket"`
	RepeatCustomers int     `json:"repeatCustomers"`
}

type Overview struct {
	BranchTotals  map[string]float64     `json:"branchTotals"`
	HourlyRevenue map[int]float64        `json:"hourlyRevenue"`
	BestSellers   map[string]*BestSeller `json:"bestSellers"`
	Behavior      Behavior               `json:"behavior"`
}

// BuildOverview aggregates the full order list. Branches without orders are
// absent from BranchTotals and BestSellers. A best seller whose item id is
// no longer on the menu maps to nil.
func BuildOverview(orders []models.Order, lookup MenuLookup) Overview {
	branchTotals := make(map[string]float64)
	hourly := make(map[int]float64)
	itemQty := make(map[string]map[string]int)
	itemSeen := make(map[string][]string)
	customers := make(map[string]int)

	var dineIn, takeaway int
	var basketTotal float64

	for _, o := range orders {
		branchTotals[o.BranchID] += o.Total
		hourly[o.CreatedAt.Hour()] += o.Total

		for _, it := range o.Items {
			if itemQty[o.BranchID] == nil {
				itemQty[o.BranchID] = make(map[string]int)
			}
			if _, seen := itemQty[o.BranchID][it.ID]; !seen {
				itemSeen[o.BranchID] = append(itemSeen[o.BranchID], it.ID)
			}
			itemQty[o.BranchID][it.ID] += it.Quantity
		}

		customers[o.CustomerID]++

		if o.Mode == models.ModeDineIn {
			dineIn++
		} else {
			takeaway++
		}
		basketTotal += o.Total
	}

	bestSellers := make(map[string]*BestSeller)
	for branchID, quantities := range itemQty {
		bestID := ""
		bestQty := 0
		// Walk items in first-encountered order so ties resolve to the
		// earlier item.
		for _, itemID := range itemSeen[branchID] {
			if qty := quantities[itemID]; qty > bestQty {
				bestQty = qty
				bestID = itemID
			}
		}
		if item, ok := lookup(bestID); ok {
			bestSellers[branchID] = &BestSeller{ID: item.ID, Name: item.Name, Qty: bestQty}
		} else {
			bestSellers[branchID] = nil
		}
	}

	repeatCustomers := 0
	for _, count := range customers {
		if count > 1 {
			repeatCustomers++
		}
	}

	orderCount := len(orders)
	if orderCount == 0 {
		orderCount = 1
	}

	return Overview{
		BranchTotals:  branchTotals,
		HourlyRevenue: hourly,
		BestSellers:   bestSellers,
		Behavior: Behavior{
			DineIn:          dineIn,
			Takeaway:        takeaway,
			AvgBasket:       basketTotal / float64(orderCount),
			RepeatCustomers: repeatCustomers,
		},
	}
}
