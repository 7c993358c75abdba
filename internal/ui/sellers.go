package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"stylus/internal/crate"
)

// handleSellersKey processes keys specific to the sellers view.
func (m Model) handleSellersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		m.modal = newAddSellerModal()
		return m, nil

	case "x":
		seller := m.selectedSeller()
		if seller == nil {
			return m, nil
		}
		username := seller.Username
		client := m.client
		return m, m.runAction("Removed "+username, false, func(ctx context.Context) error {
			return client.RemoveSeller(ctx, username)
		})

	case "s":
		seller := m.selectedSeller()
		if seller == nil {
			return m, nil
		}
		username := seller.Username
		client := m.client
		return m, m.runAction("Scanning "+username, false, func(ctx context.Context) error {
			return client.StartSellerScan(ctx, username)
		})

	case "R":
		return m, m.runAction("Refreshing all inventories", false, m.client.RefreshSellerInventories)
	}
	return m, nil
}

// renderSellers renders the monitored sellers list with scan state.
func (m Model) renderSellers() string {
	sellers := m.snapshot.Sellers
	if len(sellers) == 0 {
		return m.emptyMessage("No sellers monitored. Press a to add one.")
	}

	nameW := m.width * 30 / 100
	if nameW < 16 {
		nameW = 16
	}

	header := pad("Seller", nameW) + pad("Inventory", 11) + pad("Matches", 9) + pad("Last scan", 12) + "Status"

	rows := make([]string, 0, len(sellers))
	for _, seller := range sellers {
		name := seller.DisplayName
		if name == "" {
			name = seller.Username
		}
		lastScan := ""
		if t := seller.ParsedLastScanned(); !t.IsZero() {
			lastScan = t.Format("2006-01-02")
		}
		status := ""
		if scan, ok := m.snapshot.SellerScans[seller.Username]; ok && scan.Status != crate.JobIdle {
			status = string(scan.Status)
			if scan.Status.InProgress() && scan.TotalItems > 0 {
				status += fmt.Sprintf(" %d/%d", scan.ItemsScanned, scan.TotalItems)
			}
			if scan.Status == crate.JobError && scan.Error != "" {
				status += " " + truncate(scan.Error, 30)
			}
		}
		rows = append(rows,
			pad(name, nameW)+
				pad(fmt.Sprintf("%d", seller.InventorySize), 11)+
				pad(fmt.Sprintf("%d", seller.MatchCount), 9)+
				pad(lastScan, 12)+
				status)
	}

	return m.renderList(header, rows, m.sellersSelected, m.listFooter(nil, false, len(sellers)))
}

func (m *Model) selectedSeller() *crate.Seller {
	if m.sellersSelected < 0 || m.sellersSelected >= len(m.snapshot.Sellers) {
		return nil
	}
	return &m.snapshot.Sellers[m.sellersSelected]
}
